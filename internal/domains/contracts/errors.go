// Package contracts holds the transport-neutral API surfaces and the error
// taxonomy shared by the coordinators.
package contracts

import (
	"errors"
	"fmt"

	"tradehub/go-backend/internal/ledger"
)

// ValidationError reports a missing or malformed input field. It is always
// returned before any ledger call is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRemoteCall reports whether the error originated at the ledger boundary
// (a rejected call or a failed round trip). The ledger's message is carried
// verbatim inside.
func IsRemoteCall(err error) bool {
	var ce *ledger.CallError
	return errors.As(err, &ce)
}
