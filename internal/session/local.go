package session

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39"

	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/securestore"
)

// LocalProvider derives the account identity from a BIP-39 mnemonic kept
// encrypted on disk. Balance queries go through the token contract.
type LocalProvider struct {
	mu           sync.RWMutex
	ledger       ledger.Client
	keystorePath string
	keys         *Keys
	address      string
}

func NewLocalProvider(client ledger.Client, keystorePath string) *LocalProvider {
	return &LocalProvider{ledger: client, keystorePath: strings.TrimSpace(keystorePath)}
}

// Create generates a fresh mnemonic, persists it encrypted and activates the
// derived account. It refuses to overwrite an existing keystore.
func (p *LocalProvider) Create(passphrase string) (string, error) {
	if strings.TrimSpace(passphrase) == "" {
		return "", ErrPassphraseRequired
	}
	if p.keystorePath != "" {
		if _, err := os.Stat(p.keystorePath); err == nil {
			return "", ErrKeystoreExists
		}
	}
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", err
	}
	if err := p.Import(mnemonic, passphrase); err != nil {
		return "", err
	}
	return mnemonic, nil
}

// Import activates the account derived from the mnemonic and persists the
// mnemonic encrypted under the passphrase.
func (p *LocalProvider) Import(mnemonic, passphrase string) error {
	mnemonic = strings.TrimSpace(mnemonic)
	if mnemonic == "" {
		return ErrMnemonicRequired
	}
	if strings.TrimSpace(passphrase) == "" {
		return ErrPassphraseRequired
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}

	keys, err := DeriveKeys(bip39.NewSeed(mnemonic, ""))
	if err != nil {
		return err
	}

	if p.keystorePath != "" {
		encrypted, err := securestore.Encrypt(passphrase, []byte(mnemonic))
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(p.keystorePath), 0o700); err != nil {
			return err
		}
		if err := os.WriteFile(p.keystorePath, encrypted, 0o600); err != nil {
			return err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = keys
	p.address = BuildAddress(keys.SigningPublicKey)
	return nil
}

// Unlock loads the encrypted mnemonic from the keystore and activates the
// derived account.
func (p *LocalProvider) Unlock(passphrase string) error {
	if strings.TrimSpace(passphrase) == "" {
		return ErrPassphraseRequired
	}
	raw, err := os.ReadFile(p.keystorePath)
	if err != nil {
		return err
	}
	plain, err := securestore.Decrypt(passphrase, raw)
	if err != nil {
		return err
	}
	mnemonic := strings.TrimSpace(string(plain))
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	keys, err := DeriveKeys(bip39.NewSeed(mnemonic, ""))
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = keys
	p.address = BuildAddress(keys.SigningPublicKey)
	return nil
}

func (p *LocalProvider) Active() (Context, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.keys == nil {
		return Context{}, ErrNoActiveSession
	}
	return Context{
		Address: p.address,
		Signer:  &keySigner{address: p.address, priv: p.keys.SigningPrivateKey},
	}, nil
}

func (p *LocalProvider) Balance(ctx context.Context, address string) (*big.Int, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.New("address is required")
	}
	out, err := p.ledger.Call(ctx, ledger.ContractToken, "balanceOf", address)
	if err != nil {
		return nil, err
	}
	return out.BigInt(0)
}
