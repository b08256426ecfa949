package rpc

import (
	"context"
	"encoding/json"

	campaignmodel "tradehub/go-backend/internal/domains/campaign/model"
)

// Ids travel as decimal strings on the wire, matching the entity encoding.
type campaignIDParams struct {
	ID uint64 `json:"id,string"`
}

type joinProductParams struct {
	ID              uint64 `json:"id,string"`
	Quantity        uint64 `json:"quantity"`
	ShippingAddress string `json:"shipping_address"`
	PricePerUnit    string `json:"price_per_unit"`
}

type joinContainerParams struct {
	ID              uint64 `json:"id,string"`
	PaymentAmount   string `json:"payment_amount"`
	WeightKg        uint64 `json:"weight_kg"`
	ShippingAddress string `json:"shipping_address"`
}

func (s *Server) dispatchCampaignRPC(ctx context.Context, method string, rawParams json.RawMessage) (any, *rpcError, bool) {
	switch method {
	case "campaign.create_product":
		var draft campaignmodel.ProductDraft
		if err := decodeParams(rawParams, &draft); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.CreateProductCampaign(ctx, draft) })
		return result, rpcErr, true
	case "campaign.create_container":
		var draft campaignmodel.ContainerDraft
		if err := decodeParams(rawParams, &draft); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.CreateContainerCampaign(ctx, draft) })
		return result, rpcErr, true
	case "campaign.list":
		result, rpcErr := call(func() (any, error) { return s.service.ListCampaigns(ctx) })
		return result, rpcErr, true
	case "campaign.get":
		var p campaignIDParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.GetCampaign(ctx, p.ID) })
		return result, rpcErr, true
	case "campaign.requirements":
		var p campaignIDParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.GetContainerRequirements(ctx, p.ID) })
		return result, rpcErr, true
	case "campaign.join_product":
		var p joinProductParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) {
			return s.service.JoinProductCampaign(ctx, p.ID, p.Quantity, p.ShippingAddress, p.PricePerUnit)
		})
		return result, rpcErr, true
	case "campaign.join_container":
		var p joinContainerParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) {
			return s.service.JoinContainerCampaign(ctx, p.ID, p.PaymentAmount, p.WeightKg, p.ShippingAddress)
		})
		return result, rpcErr, true
	case "campaign.cancel":
		var p campaignIDParams
		if err := decodeParams(rawParams, &p); err != nil {
			return nil, rpcInvalidParams(), true
		}
		result, rpcErr := call(func() (any, error) { return s.service.CancelCampaign(ctx, p.ID) })
		return result, rpcErr, true
	case "campaign.approval_status":
		result, rpcErr := call(func() (any, error) {
			approved, err := s.service.ApprovalStatus(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]bool{"approved": approved}, nil
		})
		return result, rpcErr, true
	case "campaign.approve":
		result, rpcErr := call(func() (any, error) { return s.service.Approve(ctx) })
		return result, rpcErr, true
	}
	return nil, nil, false
}
