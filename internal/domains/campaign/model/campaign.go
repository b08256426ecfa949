// Package model defines the campaign domain entities decoded from the
// ledger's positional records.
package model

import (
	"time"
)

// CampaignType discriminates the two campaign variants.
type CampaignType uint8

const (
	CampaignTypeProduct   CampaignType = 0
	CampaignTypeContainer CampaignType = 1
)

func (t CampaignType) Valid() bool {
	return t == CampaignTypeProduct || t == CampaignTypeContainer
}

func (t CampaignType) String() string {
	switch t {
	case CampaignTypeProduct:
		return "product"
	case CampaignTypeContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Direction is the trade direction of a campaign.
type Direction uint8

const (
	DirectionInbound  Direction = 0
	DirectionOutbound Direction = 1
)

func (d Direction) Valid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

func (d Direction) String() string {
	switch d {
	case DirectionInbound:
		return "inbound"
	case DirectionOutbound:
		return "outbound"
	default:
		return "unknown"
	}
}

// Status is the campaign lifecycle state. It is authoritative on the ledger
// and never computed client-side: a campaign becomes Funded only when the
// ledger says so, regardless of the amounts we observe.
type Status uint8

const (
	StatusActive    Status = 0
	StatusFunded    Status = 1
	StatusCancelled Status = 2
	StatusCompleted Status = 3
)

func (s Status) Valid() bool { return s <= StatusCompleted }

func (s Status) Terminal() bool { return s == StatusCancelled || s == StatusCompleted }

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFunded:
		return "funded"
	case StatusCancelled:
		return "cancelled"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ContainerType enumerates the physical container classes.
type ContainerType uint8

const (
	ContainerStandard20    ContainerType = 0
	ContainerStandard40    ContainerType = 1
	ContainerHighCube40    ContainerType = 2
	ContainerHighCube45    ContainerType = 3
	ContainerRefrigerated20 ContainerType = 4
	ContainerRefrigerated40 ContainerType = 5
)

func (c ContainerType) Valid() bool { return c <= ContainerRefrigerated40 }

// ProductDetails carries the fields present only on product campaigns.
type ProductDetails struct {
	MinQuantity     uint64 `json:"min_quantity"`
	CurrentQuantity uint64 `json:"current_quantity"`
	PricePerUnit    string `json:"price_per_unit"`
	Unit            string `json:"unit"`
}

// ContainerDetails carries the fields present only on container campaigns.
type ContainerDetails struct {
	OriginPort      string `json:"origin_port"`
	DestinationPort string `json:"destination_port"`
}

// Campaign is the decoded ledger entity. Exactly one of Product or Container
// is set, matching Type.
type Campaign struct {
	ID               uint64       `json:"id,string"`
	Creator          string       `json:"creator"`
	Type             CampaignType `json:"campaign_type"`
	Direction        Direction    `json:"direction"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	TargetAmount     string       `json:"target_amount"`
	CurrentAmount    string       `json:"current_amount"`
	Deadline         time.Time    `json:"deadline"`
	Status           Status       `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	ParticipantCount uint64       `json:"participant_count"`

	Product   *ProductDetails   `json:"product,omitempty"`
	Container *ContainerDetails `json:"container,omitempty"`
}

// ContainerRequirements is the 1:1 sub-entity that exists iff the campaign is
// a container campaign.
type ContainerRequirements struct {
	ContainerType         ContainerType `json:"container_type"`
	MinTempCelsius        int64         `json:"min_temp_celsius"`
	MaxTempCelsius        int64         `json:"max_temp_celsius"`
	MaxWeightKg           uint64        `json:"max_weight_kg"`
	CurrentWeightKg       uint64        `json:"current_weight_kg"`
	RequiresVentilation   bool          `json:"requires_ventilation"`
	RequiresRefrigeration bool          `json:"requires_refrigeration"`
}
