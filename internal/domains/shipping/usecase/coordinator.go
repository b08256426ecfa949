// Package usecase coordinates shipping-route operations against the remote
// ledger: route creation with itinerary decomposition, route aggregation from
// the ledger's three per-route records, and campaign-to-route assignment.
package usecase

import (
	"context"
	"log/slog"

	campaignmodel "tradehub/go-backend/internal/domains/campaign/model"
	"tradehub/go-backend/internal/ledger"
)

// Coordinator orchestrates route reads and writes. It holds no route state;
// every operation round-trips to the ledger.
type Coordinator struct {
	Ledger ledger.Client
	Fees   ledger.FeePolicy
	Log    *slog.Logger

	// ListCampaigns supplies the campaign snapshot for assignment-pool
	// derivation; wired to the campaign coordinator at composition time.
	ListCampaigns func(ctx context.Context) ([]campaignmodel.Campaign, error)
}

func New(client ledger.Client, log *slog.Logger) *Coordinator {
	return &Coordinator{
		Ledger: client,
		Fees:   ledger.DefaultFees,
		Log:    log,
	}
}

// CreateResult reports a confirmed route creation.
type CreateResult struct {
	RouteID uint64          `json:"route_id,string"`
	Receipt *ledger.Receipt `json:"receipt"`
}
