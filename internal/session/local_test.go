package session

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/ledger/ledgertest"
	"tradehub/go-backend/internal/testutil/fsperm"
)

const testMnemonic = "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth title"

func TestDeriveKeysDeterministic(t *testing.T) {
	a, err := DeriveKeys([]byte("seed material"))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	b, err := DeriveKeys([]byte("seed material"))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !a.SigningPublicKey.Equal(b.SigningPublicKey) {
		t.Fatal("same seed produced different keys")
	}
	c, err := DeriveKeys([]byte("other material"))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if a.SigningPublicKey.Equal(c.SigningPublicKey) {
		t.Fatal("different seeds produced identical keys")
	}
}

func TestBuildAddressPrefix(t *testing.T) {
	keys, err := DeriveKeys([]byte("seed"))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	addr := BuildAddress(keys.SigningPublicKey)
	if !strings.HasPrefix(addr, AddressPrefix) {
		t.Fatalf("address %q lacks prefix %q", addr, AddressPrefix)
	}
	if len(addr) <= len(AddressPrefix) {
		t.Fatalf("address %q has no payload", addr)
	}
}

func TestLocalProviderImportUnlockRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore", "session.enc")

	p := NewLocalProvider(nil, path)
	if err := p.Import(testMnemonic, "pass"); err != nil {
		t.Fatalf("import: %v", err)
	}
	first, err := p.Active()
	if err != nil {
		t.Fatalf("active: %v", err)
	}

	fsperm.AssertPrivateDirPerm(t, filepath.Dir(path))
	fsperm.AssertPrivateFilePerm(t, path)

	q := NewLocalProvider(nil, path)
	if _, err := q.Active(); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession before unlock, got %v", err)
	}
	if err := q.Unlock("pass"); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	second, err := q.Active()
	if err != nil {
		t.Fatalf("active after unlock: %v", err)
	}
	if first.Address != second.Address {
		t.Fatalf("address changed across unlock: %q vs %q", first.Address, second.Address)
	}
}

func TestLocalProviderUnlockWrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.enc")
	p := NewLocalProvider(nil, path)
	if err := p.Import(testMnemonic, "right"); err != nil {
		t.Fatalf("import: %v", err)
	}
	q := NewLocalProvider(nil, path)
	if err := q.Unlock("wrong"); err == nil {
		t.Fatal("expected unlock failure with wrong passphrase")
	}
}

func TestLocalProviderImportRejectsBadMnemonic(t *testing.T) {
	p := NewLocalProvider(nil, "")
	if err := p.Import("definitely not a mnemonic", "pass"); !errors.Is(err, ErrInvalidMnemonic) {
		t.Fatalf("expected ErrInvalidMnemonic, got %v", err)
	}
}

func TestLocalProviderBalance(t *testing.T) {
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			if contract != ledger.ContractToken || method != "balanceOf" {
				t.Fatalf("unexpected call %s.%s", contract, method)
			}
			return ledger.Tuple{"250000000"}, nil
		},
	}
	p := NewLocalProvider(fake, "")
	got, err := p.Balance(context.Background(), "hub1somebody")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if got.Cmp(big.NewInt(250_000_000)) != 0 {
		t.Fatalf("balance = %v", got)
	}
}
