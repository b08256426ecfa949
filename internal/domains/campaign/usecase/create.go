package usecase

import (
	"context"

	"tradehub/go-backend/internal/domains/campaign/model"
	"tradehub/go-backend/internal/domains/contracts"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/platform/fixedpoint"
	"tradehub/go-backend/internal/session"
)

// CreateProduct validates the draft, submits the creation write and recovers
// the assigned id from the running counter once the write is confirmed.
func (c *Coordinator) CreateProduct(ctx context.Context, sess session.Context, draft model.ProductDraft) (CreateResult, error) {
	if err := draft.Validate(); err != nil {
		return CreateResult{}, err
	}
	pricePerUnit, err := fixedpoint.Parse(draft.PricePerUnit)
	if err != nil {
		return CreateResult{}, contracts.NewValidation("price_per_unit", err.Error())
	}
	targetAmount, err := fixedpoint.Parse(draft.TargetAmount)
	if err != nil {
		return CreateResult{}, contracts.NewValidation("target_amount", err.Error())
	}

	rcpt, err := c.Ledger.Submit(ctx, sess.Signer, ledger.ContractGroupPurchasing, "createSingleProductCampaign", c.Fees,
		draft.Name,
		draft.Description,
		draft.MinQuantity,
		pricePerUnit,
		draft.Unit,
		targetAmount,
		draft.Deadline.Unix(),
	)
	if err != nil {
		return CreateResult{}, err
	}
	return c.createdResult(ctx, rcpt)
}

// CreateContainer is the container-campaign counterpart of CreateProduct.
// The requirements block travels as a nested positional tuple.
func (c *Coordinator) CreateContainer(ctx context.Context, sess session.Context, draft model.ContainerDraft) (CreateResult, error) {
	if err := draft.Validate(); err != nil {
		return CreateResult{}, err
	}
	targetAmount, err := fixedpoint.Parse(draft.TargetAmount)
	if err != nil {
		return CreateResult{}, contracts.NewValidation("target_amount", err.Error())
	}

	requirements := ledger.Tuple{
		uint64(draft.Requirements.ContainerType),
		draft.Requirements.MinTempCelsius,
		draft.Requirements.MaxTempCelsius,
		draft.Requirements.MaxWeightKg,
		uint64(0), // currentWeightKg always starts at zero
		draft.Requirements.RequiresVentilation,
		draft.Requirements.RequiresRefrigeration,
	}

	rcpt, err := c.Ledger.Submit(ctx, sess.Signer, ledger.ContractGroupPurchasing, "createContainerCampaign", c.Fees,
		draft.Name,
		draft.Description,
		uint64(draft.Direction),
		draft.OriginPort,
		draft.DestinationPort,
		requirements,
		targetAmount,
		draft.Deadline.Unix(),
	)
	if err != nil {
		return CreateResult{}, err
	}
	return c.createdResult(ctx, rcpt)
}

func (c *Coordinator) createdResult(ctx context.Context, rcpt *ledger.Receipt) (CreateResult, error) {
	counter, err := c.campaignCounter(ctx)
	if err != nil {
		return CreateResult{}, err
	}
	result := CreateResult{CampaignID: counter - 1, Receipt: rcpt}
	c.Log.Info("campaign created", "campaign_id", result.CampaignID, "tx", rcpt.TxHash)
	return result, nil
}
