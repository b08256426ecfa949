package session

import (
	"crypto/ed25519"
)

// keySigner implements ledger.Signer over a derived key pair.
type keySigner struct {
	address string
	priv    ed25519.PrivateKey
}

func (s *keySigner) Address() string { return s.address }

func (s *keySigner) Sign(payload []byte) ([]byte, error) {
	return ed25519.Sign(s.priv, payload), nil
}
