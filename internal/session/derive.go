package session

import (
	"crypto/ed25519"
	"crypto/sha256"
	"io"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

const (
	hkdfInfoSigning = "tradehub/session/signing/v1"

	// AddressPrefix tags every account address produced by this backend.
	AddressPrefix = "hub1"
)

// Keys holds the signing key pair derived from a seed.
type Keys struct {
	SigningPrivateKey ed25519.PrivateKey
	SigningPublicKey  ed25519.PublicKey
}

// DeriveKeys expands a BIP-39 seed into the account signing key pair.
func DeriveKeys(seed []byte) (*Keys, error) {
	reader := hkdf.New(sha256.New, seed, nil, []byte(hkdfInfoSigning))
	signingSeed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(reader, signingSeed); err != nil {
		return nil, err
	}
	priv := ed25519.NewKeyFromSeed(signingSeed)
	return &Keys{
		SigningPrivateKey: priv,
		SigningPublicKey:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// BuildAddress derives the account address from a signing public key.
func BuildAddress(signingPublicKey ed25519.PublicKey) string {
	h := blake2b.Sum256(signingPublicKey)
	return AddressPrefix + base58.Encode(h[:])
}
