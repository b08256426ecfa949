package rpc

import (
	"errors"

	"tradehub/go-backend/internal/domains/contracts"
	"tradehub/go-backend/internal/session"
)

// Service error codes. Validation failures and ledger rejections are distinct
// so clients can tell a bad form from a reverted transaction.
const (
	codeServiceError = -32000
	codeValidation   = -32010
	codeRemoteCall   = -32011
	codeNoSession    = -32012
)

func rpcInvalidParams() *rpcError {
	return &rpcError{Code: -32602, Message: "invalid params"}
}

// mapServiceError categorizes a coordinator error. Ledger messages pass
// through verbatim; nothing is retried here.
func mapServiceError(err error) *rpcError {
	switch {
	case contracts.IsValidation(err):
		return &rpcError{Code: codeValidation, Message: err.Error()}
	case contracts.IsRemoteCall(err):
		return &rpcError{Code: codeRemoteCall, Message: err.Error()}
	case errors.Is(err, session.ErrNoActiveSession):
		return &rpcError{Code: codeNoSession, Message: err.Error()}
	default:
		return &rpcError{Code: codeServiceError, Message: err.Error()}
	}
}
