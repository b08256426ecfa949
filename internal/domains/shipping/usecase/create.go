package usecase

import (
	"context"

	"tradehub/go-backend/internal/domains/shipping/model"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/session"
)

// CreateRoute validates the draft, decomposes the ordered itinerary into the
// contract's four parallel arrays and recovers the assigned id from the route
// count once the write is confirmed.
func (c *Coordinator) CreateRoute(ctx context.Context, sess session.Context, draft model.RouteDraft) (CreateResult, error) {
	if err := draft.Validate(); err != nil {
		return CreateResult{}, err
	}

	names := make([]string, len(draft.Ports))
	codes := make([]string, len(draft.Ports))
	countries := make([]string, len(draft.Ports))
	arrivals := make([]int64, len(draft.Ports))
	for i, p := range draft.Ports {
		names[i] = p.Name
		codes[i] = p.Code
		countries[i] = p.Country
		arrivals[i] = p.ArrivalTime.Unix()
	}

	rcpt, err := c.Ledger.Submit(ctx, sess.Signer, ledger.ContractShippingRoutes, "createRoute", c.Fees,
		draft.ShipID,
		draft.ShipName,
		draft.Description,
		draft.DeparturePort,
		names,
		codes,
		countries,
		arrivals,
		draft.Capacity,
		uint64(draft.Refrigeration),
	)
	if err != nil {
		return CreateResult{}, err
	}

	total, err := c.totalRoutes(ctx)
	if err != nil {
		return CreateResult{}, err
	}
	result := CreateResult{RouteID: total - 1, Receipt: rcpt}
	c.Log.Info("route created", "route_id", result.RouteID, "tx", rcpt.TxHash)
	return result, nil
}
