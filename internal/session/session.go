// Package session supplies the active account identity and signing
// capability that every coordinator write takes as an explicit argument.
package session

import (
	"context"
	"errors"
	"math/big"

	"tradehub/go-backend/internal/ledger"
)

var (
	ErrNoActiveSession    = errors.New("no active session")
	ErrPassphraseRequired = errors.New("passphrase is required")
	ErrMnemonicRequired   = errors.New("mnemonic is required")
	ErrInvalidMnemonic    = errors.New("invalid mnemonic")
	ErrKeystoreExists     = errors.New("keystore already holds an identity")
)

// Context is the per-call session value threaded into coordinator writes.
// It never outlives the provider snapshot it came from, so a coordinator can
// key caches by Address without risk of serving another account.
type Context struct {
	Address string
	Signer  ledger.Signer
}

// Provider exposes the active account and its balance. The daemon runs with
// a local provider; tests inject static contexts directly.
type Provider interface {
	Active() (Context, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
}
