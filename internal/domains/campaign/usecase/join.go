package usecase

import (
	"context"
	"fmt"
	"strings"

	"tradehub/go-backend/internal/domains/contracts"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/platform/fixedpoint"
	"tradehub/go-backend/internal/session"
)

// JoinProduct joins a product campaign. The payment is quantity x
// pricePerUnit; the spending approval is secured first, and the join write is
// only submitted once the approval is confirmed.
func (c *Coordinator) JoinProduct(ctx context.Context, sess session.Context, campaignID, quantity uint64, shippingAddress, pricePerUnit string) (JoinResult, error) {
	if campaignID == 0 {
		return JoinResult{}, contracts.NewValidation("campaign_id", "is required")
	}
	if quantity == 0 {
		return JoinResult{}, contracts.NewValidation("quantity", "must be greater than zero")
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return JoinResult{}, contracts.NewValidation("shipping_address", "is required")
	}
	priceUnits, err := fixedpoint.Parse(pricePerUnit)
	if err != nil {
		return JoinResult{}, contracts.NewValidation("price_per_unit", err.Error())
	}
	payment := ProductCost(priceUnits, quantity)

	if _, err := c.ApproveIfNeeded(ctx, sess); err != nil {
		return JoinResult{}, fmt.Errorf("spending approval failed: %w", err)
	}

	rcpt, err := c.Ledger.Submit(ctx, sess.Signer, ledger.ContractGroupPurchasing, "joinSingleProductCampaign", c.Fees,
		campaignID, quantity, shippingAddress)
	if err != nil {
		return JoinResult{}, err
	}
	return JoinResult{Payment: fixedpoint.Format(payment), Receipt: rcpt}, nil
}

// JoinContainer joins a container campaign with a caller-computed payment
// (see ContainerPayment). Same approve-then-join sequencing as JoinProduct.
func (c *Coordinator) JoinContainer(ctx context.Context, sess session.Context, campaignID uint64, paymentAmount string, weightKg uint64, shippingAddress string) (JoinResult, error) {
	if campaignID == 0 {
		return JoinResult{}, contracts.NewValidation("campaign_id", "is required")
	}
	if weightKg == 0 {
		return JoinResult{}, contracts.NewValidation("weight_kg", "must be greater than zero")
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return JoinResult{}, contracts.NewValidation("shipping_address", "is required")
	}
	paymentUnits, err := fixedpoint.Parse(paymentAmount)
	if err != nil {
		return JoinResult{}, contracts.NewValidation("payment_amount", err.Error())
	}

	if _, err := c.ApproveIfNeeded(ctx, sess); err != nil {
		return JoinResult{}, fmt.Errorf("spending approval failed: %w", err)
	}

	rcpt, err := c.Ledger.Submit(ctx, sess.Signer, ledger.ContractGroupPurchasing, "joinContainerCampaign", c.Fees,
		campaignID, paymentUnits, weightKg, shippingAddress)
	if err != nil {
		return JoinResult{}, err
	}
	return JoinResult{Payment: fixedpoint.Format(paymentUnits), Receipt: rcpt}, nil
}

// Cancel asks the ledger to cancel a campaign. The ledger enforces that only
// the creator may cancel and only while the campaign is active; its rejection
// is surfaced verbatim.
func (c *Coordinator) Cancel(ctx context.Context, sess session.Context, campaignID uint64) (*ledger.Receipt, error) {
	if campaignID == 0 {
		return nil, contracts.NewValidation("campaign_id", "is required")
	}
	return c.Ledger.Submit(ctx, sess.Signer, ledger.ContractGroupPurchasing, "cancelCampaign", c.Fees, campaignID)
}
