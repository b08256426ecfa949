package rpc

import (
	"context"
	"encoding/json"

	shippingmodel "tradehub/go-backend/internal/domains/shipping/model"
)

type routeIDParams struct {
	ID uint64 `json:"id,string"`
}

type routeStatusParams struct {
	ID       uint64                    `json:"id,string"`
	Status   shippingmodel.RouteStatus `json:"status"`
	Location string                    `json:"location"`
}

type markPortParams struct {
	RouteID   uint64 `json:"route_id,string"`
	PortIndex uint64 `json:"port_index"`
}

func (s *Server) dispatchShippingRPC(ctx context.Context, method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "shipping.route.create":
		var draft shippingmodel.RouteDraft
		if err := decodeParams(rawParams, &draft); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.CreateRoute(ctx, draft) })
		return result, rpcErr, true
	case "shipping.route.list":
		result, rpcErr := call(func() (any, error) { return s.service.ListActiveRoutes(ctx) })
		return result, rpcErr, true
	case "shipping.route.get":
		var p routeIDParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.GetRoute(ctx, p.ID) })
		return result, rpcErr, true
	case "shipping.route.assign":
		var draft shippingmodel.AssignmentDraft
		if err := decodeParams(rawParams, &draft); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.AssignCampaign(ctx, draft) })
		return result, rpcErr, true
	case "shipping.route.update_status":
		var p routeStatusParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) {
			return s.service.UpdateRouteStatus(ctx, p.ID, p.Status, p.Location)
		})
		return result, rpcErr, true
	case "shipping.route.mark_port":
		var p markPortParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.MarkPortVisited(ctx, p.RouteID, p.PortIndex) })
		return result, rpcErr, true
	case "shipping.route.complete":
		var p routeIDParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.CompleteRoute(ctx, p.ID) })
		return result, rpcErr, true
	case "shipping.assignable":
		result, rpcErr := call(func() (any, error) { return s.service.AssignableCampaigns(ctx) })
		return result, rpcErr, true
	}
	return nil, nil, false
}
