package rpc

import (
	"bytes"
	"context"
	"encoding/json"

	"tradehub/go-backend/internal/domains/shipping/refdata"
)

func (s *Server) dispatch(ctx context.Context, method string, rawParams json.RawMessage) (any, *rpcError) {
	if method == "health_check" {
		return map[string]string{"status": "ok"}, nil
	}
	if result, rpcErr, ok := s.dispatchCampaignRPC(ctx, method, rawParams); ok {
		return result, rpcErr
	}
	if result, rpcErr, ok := s.dispatchShippingRPC(ctx, method, rawParams); ok {
		return result, rpcErr
	}
	if result, rpcErr, ok := s.dispatchSessionRPC(ctx, method); ok {
		return result, rpcErr
	}
	if method == "shipping.ports" {
		return refdata.Ports(), nil
	}
	return nil, &rpcError{Code: -32601, Message: "method not found"}
}

// call adapts a coordinator invocation to the dispatch result shape.
func call(invoke func() (any, error)) (any, *rpcError) {
	result, err := invoke()
	if err != nil {
		return nil, mapServiceError(err)
	}
	return result, nil
}

// decodeParams unmarshals the params object strictly: unknown fields are
// invalid-params, not silently dropped.
func decodeParams(rawParams json.RawMessage, into any) error {
	dec := json.NewDecoder(bytes.NewReader(rawParams))
	dec.DisallowUnknownFields()
	return dec.Decode(into)
}
