package rpc

import "context"

func (s *Server) dispatchSessionRPC(ctx context.Context, method string) (any, *rpcError, bool) {
	switch method {
	case "session.address":
		result, rpcErr := call(func() (any, error) {
			address, err := s.service.ActiveAddress()
			if err != nil {
				return nil, err
			}
			return map[string]string{"address": address}, nil
		})
		return result, rpcErr, true
	case "session.balance":
		result, rpcErr := call(func() (any, error) {
			balance, err := s.service.Balance(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]string{"balance": balance}, nil
		})
		return result, rpcErr, true
	}
	return nil, nil, false
}
