package usecase

import (
	"fmt"

	"tradehub/go-backend/internal/domains/campaign/model"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/platform/fixedpoint"
)

// The getCampaign tuple layout is a compatibility contract with the deployed
// contract; reordering any index silently corrupts decoded data.
//
//	 0  organizer          address
//	 1  campaignType       enum (0 product, 1 container)
//	 2  direction          enum (0 inbound, 1 outbound)
//	 3  productName        string
//	 4  productDescription string
//	 5  minOrderQuantity   integer
//	 6  currentQuantity    integer
//	 7  pricePerUnit       minor units
//	 8  unit               string
//	 9  targetAmount       minor units
//	10  currentAmount      minor units
//	11  deadline           epoch seconds
//	12  status             enum
//	13  createdAt          epoch seconds
//	14  participantCount   integer
//	15  originPort         string
//	16  destinationPort    string
const campaignTupleLen = 17

func decodeCampaign(id uint64, t ledger.Tuple) (model.Campaign, error) {
	if len(t) < campaignTupleLen {
		return model.Campaign{}, fmt.Errorf("campaign record has %d fields, want %d", len(t), campaignTupleLen)
	}

	creator, err := t.String(0)
	if err != nil {
		return model.Campaign{}, err
	}
	rawType, err := t.Uint64(1)
	if err != nil {
		return model.Campaign{}, err
	}
	campaignType := model.CampaignType(rawType)
	if !campaignType.Valid() {
		return model.Campaign{}, fmt.Errorf("unknown campaign type %d", rawType)
	}
	rawDirection, err := t.Uint64(2)
	if err != nil {
		return model.Campaign{}, err
	}
	name, err := t.String(3)
	if err != nil {
		return model.Campaign{}, err
	}
	description, err := t.String(4)
	if err != nil {
		return model.Campaign{}, err
	}
	targetAmount, err := t.BigInt(9)
	if err != nil {
		return model.Campaign{}, err
	}
	currentAmount, err := t.BigInt(10)
	if err != nil {
		return model.Campaign{}, err
	}
	deadline, err := t.Time(11)
	if err != nil {
		return model.Campaign{}, err
	}
	rawStatus, err := t.Uint64(12)
	if err != nil {
		return model.Campaign{}, err
	}
	status := model.Status(rawStatus)
	if !status.Valid() {
		return model.Campaign{}, fmt.Errorf("unknown campaign status %d", rawStatus)
	}
	createdAt, err := t.Time(13)
	if err != nil {
		return model.Campaign{}, err
	}
	participants, err := t.Uint64(14)
	if err != nil {
		return model.Campaign{}, err
	}

	out := model.Campaign{
		ID:               id,
		Creator:          creator,
		Type:             campaignType,
		Direction:        model.Direction(rawDirection),
		Name:             name,
		Description:      description,
		TargetAmount:     fixedpoint.Format(targetAmount),
		CurrentAmount:    fixedpoint.Format(currentAmount),
		Deadline:         deadline,
		Status:           status,
		CreatedAt:        createdAt,
		ParticipantCount: participants,
	}

	switch campaignType {
	case model.CampaignTypeProduct:
		minQuantity, err := t.Uint64(5)
		if err != nil {
			return model.Campaign{}, err
		}
		currentQuantity, err := t.Uint64(6)
		if err != nil {
			return model.Campaign{}, err
		}
		pricePerUnit, err := t.BigInt(7)
		if err != nil {
			return model.Campaign{}, err
		}
		unit, err := t.String(8)
		if err != nil {
			return model.Campaign{}, err
		}
		out.Product = &model.ProductDetails{
			MinQuantity:     minQuantity,
			CurrentQuantity: currentQuantity,
			PricePerUnit:    fixedpoint.Format(pricePerUnit),
			Unit:            unit,
		}
	case model.CampaignTypeContainer:
		originPort, err := t.String(15)
		if err != nil {
			return model.Campaign{}, err
		}
		destinationPort, err := t.String(16)
		if err != nil {
			return model.Campaign{}, err
		}
		out.Container = &model.ContainerDetails{
			OriginPort:      originPort,
			DestinationPort: destinationPort,
		}
	}
	return out, nil
}

// getContainerRequirements tuple layout:
//
//	0  containerType         enum
//	1  minTempCelsius        integer (may be negative)
//	2  maxTempCelsius        integer (may be negative)
//	3  maxWeightKg           integer
//	4  currentWeightKg       integer
//	5  requiresVentilation   bool
//	6  requiresRefrigeration bool
const requirementsTupleLen = 7

func decodeRequirements(t ledger.Tuple) (model.ContainerRequirements, error) {
	if len(t) < requirementsTupleLen {
		return model.ContainerRequirements{}, fmt.Errorf("requirements record has %d fields, want %d", len(t), requirementsTupleLen)
	}
	rawType, err := t.Uint64(0)
	if err != nil {
		return model.ContainerRequirements{}, err
	}
	minTemp, err := t.Int64(1)
	if err != nil {
		return model.ContainerRequirements{}, err
	}
	maxTemp, err := t.Int64(2)
	if err != nil {
		return model.ContainerRequirements{}, err
	}
	maxWeight, err := t.Uint64(3)
	if err != nil {
		return model.ContainerRequirements{}, err
	}
	currentWeight, err := t.Uint64(4)
	if err != nil {
		return model.ContainerRequirements{}, err
	}
	ventilation, err := t.Bool(5)
	if err != nil {
		return model.ContainerRequirements{}, err
	}
	refrigeration, err := t.Bool(6)
	if err != nil {
		return model.ContainerRequirements{}, err
	}
	return model.ContainerRequirements{
		ContainerType:         model.ContainerType(rawType),
		MinTempCelsius:        minTemp,
		MaxTempCelsius:        maxTemp,
		MaxWeightKg:           maxWeight,
		CurrentWeightKg:       currentWeight,
		RequiresVentilation:   ventilation,
		RequiresRefrigeration: refrigeration,
	}, nil
}
