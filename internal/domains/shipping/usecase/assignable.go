package usecase

import (
	"context"
	"fmt"

	campaignmodel "tradehub/go-backend/internal/domains/campaign/model"
	"tradehub/go-backend/internal/domains/shipping/model"
)

// AssignableCampaigns derives the pool of campaigns that can still be booked
// onto a route: funded or completed campaigns not already assigned anywhere.
// The derivation is client-side because the ledger stores assignments only
// route-by-route.
func (c *Coordinator) AssignableCampaigns(ctx context.Context) ([]campaignmodel.Campaign, error) {
	if c.ListCampaigns == nil {
		return nil, fmt.Errorf("campaign listing not wired")
	}
	routes, err := c.ListActiveRoutes(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := c.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return AssignablePool(routes, campaigns), nil
}

// AssignablePool is the pure derivation over two snapshots: the union of the
// routes' assigned sets subtracted from the fundable campaigns. A campaign is
// fundable here when the ledger marks it Funded or Completed.
func AssignablePool(routes []model.Route, campaigns []campaignmodel.Campaign) []campaignmodel.Campaign {
	assigned := make(map[uint64]struct{})
	for _, r := range routes {
		for _, id := range r.AssignedCampaigns {
			assigned[id] = struct{}{}
		}
	}

	pool := make([]campaignmodel.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign.Status != campaignmodel.StatusFunded && campaign.Status != campaignmodel.StatusCompleted {
			continue
		}
		if _, taken := assigned[campaign.ID]; taken {
			continue
		}
		pool = append(pool, campaign)
	}
	return pool
}
