package usecase

import (
	"context"

	"tradehub/go-backend/internal/domains/shipping/model"
	"tradehub/go-backend/internal/ledger"
)

// totalRoutes reads the ledger's running route count. Route ids are
// zero-based, so valid ids are 0..total-1.
func (c *Coordinator) totalRoutes(ctx context.Context) (uint64, error) {
	out, err := c.Ledger.Call(ctx, ledger.ContractShippingRoutes, "getTotalRoutes")
	if err != nil {
		return 0, err
	}
	return out.Uint64(0)
}

// ListActiveRoutes fetches every route the ledger reports as active and
// aggregates each one. A route that fails to fetch or decode is skipped and
// logged; the listing never aborts because of a single bad item.
func (c *Coordinator) ListActiveRoutes(ctx context.Context) ([]model.Route, error) {
	out, err := c.Ledger.Call(ctx, ledger.ContractShippingRoutes, "getActiveRoutes")
	if err != nil {
		return nil, err
	}

	routes := make([]model.Route, 0, len(out))
	for i := range out {
		id, err := out.Uint64(i)
		if err != nil {
			c.Log.Warn("skipping malformed route id", "index", i, "error", err)
			continue
		}
		route, err := c.GetRoute(ctx, id)
		if err != nil {
			c.Log.Warn("skipping undecodable route", "route_id", id, "error", err)
			continue
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// GetRoute reassembles one route from its three ledger records: the route
// head, the port itinerary and the campaign assignment list.
func (c *Coordinator) GetRoute(ctx context.Context, id uint64) (model.Route, error) {
	head, err := c.Ledger.Call(ctx, ledger.ContractShippingRoutes, "getRoute", id)
	if err != nil {
		return model.Route{}, err
	}
	route, err := decodeRoute(id, head)
	if err != nil {
		return model.Route{}, err
	}

	ports, err := c.Ledger.Call(ctx, ledger.ContractShippingRoutes, "getRoutePorts", id)
	if err != nil {
		return model.Route{}, err
	}
	route.Ports = make([]model.PortStop, 0, len(ports))
	for i := range ports {
		record, err := ports.Tuple(i)
		if err != nil {
			return model.Route{}, err
		}
		stop, err := decodePortStop(record)
		if err != nil {
			return model.Route{}, err
		}
		route.Ports = append(route.Ports, stop)
	}

	assignments, err := c.Ledger.Call(ctx, ledger.ContractShippingRoutes, "getRouteCampaigns", id)
	if err != nil {
		return model.Route{}, err
	}
	route.AssignedCampaigns, err = decodeAssignments(assignments)
	if err != nil {
		return model.Route{}, err
	}
	return route, nil
}
