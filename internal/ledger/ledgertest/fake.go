// Package ledgertest provides a scripted in-memory ledger client for tests.
package ledgertest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tradehub/go-backend/internal/ledger"
)

// Submission records one write accepted by the fake, in submit order.
type Submission struct {
	Contract string
	Method   string
	Signer   string
	Fees     ledger.FeePolicy
	Args     []any
}

// Fake implements ledger.Client with scripted behavior. Tests set CallFn to
// answer reads; writes are logged and acknowledged unless SubmitFn overrides.
type Fake struct {
	mu sync.Mutex

	CallFn   func(contract, method string, args []any) (ledger.Tuple, error)
	SubmitFn func(contract, method string, args []any) (*ledger.Receipt, error)

	submissions []Submission
}

func (f *Fake) Call(_ context.Context, contract, method string, args ...any) (ledger.Tuple, error) {
	if f.CallFn == nil {
		return nil, &ledger.CallError{Contract: contract, Method: method, Err: errors.New("no read script configured")}
	}
	out, err := f.CallFn(contract, method, args)
	if err != nil {
		var ce *ledger.CallError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &ledger.CallError{Contract: contract, Method: method, Err: err}
	}
	return out, nil
}

func (f *Fake) Submit(_ context.Context, signer ledger.Signer, contract, method string, fees ledger.FeePolicy, args ...any) (*ledger.Receipt, error) {
	var rcpt *ledger.Receipt
	var err error
	if f.SubmitFn != nil {
		rcpt, err = f.SubmitFn(contract, method, args)
	}
	if err != nil {
		var ce *ledger.CallError
		if !errors.As(err, &ce) {
			err = &ledger.CallError{Contract: contract, Method: method, Err: err}
		}
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	addr := ""
	if signer != nil {
		addr = signer.Address()
	}
	f.submissions = append(f.submissions, Submission{
		Contract: contract,
		Method:   method,
		Signer:   addr,
		Fees:     fees,
		Args:     append([]any(nil), args...),
	})
	if rcpt == nil {
		rcpt = &ledger.Receipt{
			TxHash:      fmt.Sprintf("0xfake%04d", len(f.submissions)),
			BlockNumber: uint64(len(f.submissions)),
			GasUsed:     21000,
		}
	}
	return rcpt, nil
}

// Submissions returns a copy of the accepted writes in order.
func (f *Fake) Submissions() []Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Submission(nil), f.submissions...)
}

// SubmitCount reports how many writes were accepted for a contract method.
func (f *Fake) SubmitCount(contract, method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.submissions {
		if s.Contract == contract && s.Method == method {
			n++
		}
	}
	return n
}

// StaticSigner is a trivial ledger.Signer for tests.
type StaticSigner string

func (s StaticSigner) Address() string { return string(s) }

func (s StaticSigner) Sign(payload []byte) ([]byte, error) {
	out := append([]byte("sig:"), payload...)
	return out, nil
}
