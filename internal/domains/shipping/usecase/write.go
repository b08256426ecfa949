package usecase

import (
	"context"
	"strings"

	"tradehub/go-backend/internal/domains/contracts"
	"tradehub/go-backend/internal/domains/shipping/model"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/session"
)

// Assign books a funded campaign onto a route. The ledger enforces the
// one-route-per-campaign invariant; its rejection is surfaced verbatim.
func (c *Coordinator) Assign(ctx context.Context, sess session.Context, draft model.AssignmentDraft) (*ledger.Receipt, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return c.Ledger.Submit(ctx, sess.Signer, ledger.ContractShippingRoutes, "assignCampaignToRoute", c.Fees,
		draft.CampaignID,
		draft.RouteID,
		draft.ContainerCount,
		draft.RequiresRefrigeration,
		draft.Notes,
	)
}

// UpdateStatus moves a route through its lifecycle and records the vessel's
// current location.
func (c *Coordinator) UpdateStatus(ctx context.Context, sess session.Context, routeID uint64, status model.RouteStatus, location string) (*ledger.Receipt, error) {
	if !status.Valid() {
		return nil, contracts.NewValidation("status", "is out of range")
	}
	if strings.TrimSpace(location) == "" {
		return nil, contracts.NewValidation("location", "is required")
	}
	return c.Ledger.Submit(ctx, sess.Signer, ledger.ContractShippingRoutes, "updateRouteStatus", c.Fees,
		routeID, uint64(status), location)
}

// MarkPortVisited flags one itinerary stop as reached. Only the targeted
// stop changes; the rest of the itinerary is untouched.
func (c *Coordinator) MarkPortVisited(ctx context.Context, sess session.Context, routeID, portIndex uint64) (*ledger.Receipt, error) {
	return c.Ledger.Submit(ctx, sess.Signer, ledger.ContractShippingRoutes, "markPortVisited", c.Fees,
		routeID, portIndex)
}

// Complete closes out a route.
func (c *Coordinator) Complete(ctx context.Context, sess session.Context, routeID uint64) (*ledger.Receipt, error) {
	return c.Ledger.Submit(ctx, sess.Signer, ledger.ContractShippingRoutes, "completeRoute", c.Fees, routeID)
}
