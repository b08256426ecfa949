package usecase

import (
	"context"

	"tradehub/go-backend/internal/domains/campaign/model"
	"tradehub/go-backend/internal/ledger"
)

// campaignCounter reads the ledger's running counter. The counter points one
// past the last created campaign, so valid ids are 1..counter-1.
func (c *Coordinator) campaignCounter(ctx context.Context) (uint64, error) {
	out, err := c.Ledger.Call(ctx, ledger.ContractGroupPurchasing, "campaignCounter")
	if err != nil {
		return 0, err
	}
	return out.Uint64(0)
}

// ListCampaigns fetches every campaign in id order. A record that fails to
// fetch or decode is skipped and logged; the listing never aborts because of
// a single bad item.
func (c *Coordinator) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	counter, err := c.campaignCounter(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Campaign, 0, counter)
	for id := uint64(1); id < counter; id++ {
		campaign, err := c.GetCampaign(ctx, id)
		if err != nil {
			c.Log.Warn("skipping undecodable campaign", "campaign_id", id, "error", err)
			continue
		}
		out = append(out, campaign)
	}
	return out, nil
}

// GetCampaign fetches and decodes one campaign record.
func (c *Coordinator) GetCampaign(ctx context.Context, id uint64) (model.Campaign, error) {
	out, err := c.Ledger.Call(ctx, ledger.ContractGroupPurchasing, "getCampaign", id)
	if err != nil {
		return model.Campaign{}, err
	}
	return decodeCampaign(id, out)
}

// ContainerRequirements fetches the 1:1 requirements sub-entity of a
// container campaign.
func (c *Coordinator) ContainerRequirements(ctx context.Context, id uint64) (model.ContainerRequirements, error) {
	out, err := c.Ledger.Call(ctx, ledger.ContractGroupPurchasing, "getContainerRequirements", id)
	if err != nil {
		return model.ContainerRequirements{}, err
	}
	return decodeRequirements(out)
}
