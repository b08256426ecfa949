package ledger

import (
	"context"
	"fmt"
)

// Contract names understood by the gateway. The gateway resolves each name to
// the deployed address on the configured chain, so coordinators never handle
// raw addresses.
const (
	ContractToken           = "token"
	ContractGroupPurchasing = "group-purchasing"
	ContractShippingRoutes  = "shipping-routes"
)

// FeePolicy carries the two independent fee rates attached to every write.
type FeePolicy struct {
	MaxFeeGwei      uint64 `json:"max_fee_gwei"`
	PriorityFeeGwei uint64 `json:"priority_fee_gwei"`
}

// DefaultFees is the fixed override the platform submits with every write.
var DefaultFees = FeePolicy{MaxFeeGwei: 2, PriorityFeeGwei: 1}

// Receipt describes a confirmed write.
type Receipt struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
}

// Signer is the signing capability supplied by the session provider.
type Signer interface {
	Address() string
	Sign(payload []byte) ([]byte, error)
}

// Client is the raw call/send primitive against the remote ledger. Call
// executes a read and returns the fixed-order positional tuple. Submit signs
// and sends a write and returns only after the ledger has confirmed it, so a
// dependent write is sequenced simply by awaiting the prior Submit.
type Client interface {
	Call(ctx context.Context, contract, method string, args ...any) (Tuple, error)
	Submit(ctx context.Context, signer Signer, contract, method string, fees FeePolicy, args ...any) (*Receipt, error)
}

// CallError wraps a rejected call or a failed round trip. The ledger's own
// message is kept verbatim; callers surface it unmodified.
type CallError struct {
	Contract string
	Method   string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("ledger %s.%s: %v", e.Contract, e.Method, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }
