package usecase

import (
	"context"
	"math/big"

	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/platform/fixedpoint"
	"tradehub/go-backend/internal/session"
)

// approvalThreshold is half of the maximum representable value: a coarse
// "effectively unlimited" check rather than exact equality, so an allowance
// partially consumed since approval still passes.
var approvalThreshold = new(big.Int).Rsh(fixedpoint.MaxUint256, 1)

// CheckApproval reports whether the active account has an effectively
// unlimited spending allowance for the group purchasing contract. The result
// is cached per account for the lifetime of the coordinator; a different
// session address never sees another account's cached value.
func (c *Coordinator) CheckApproval(ctx context.Context, sess session.Context) (bool, error) {
	c.mu.Lock()
	cached := c.approved[sess.Address]
	c.mu.Unlock()
	if cached {
		return true, nil
	}

	out, err := c.Ledger.Call(ctx, ledger.ContractToken, "allowance", sess.Address, ledger.ContractGroupPurchasing)
	if err != nil {
		return false, err
	}
	allowance, err := out.BigInt(0)
	if err != nil {
		return false, err
	}

	ok := allowance.Cmp(approvalThreshold) >= 0
	if ok {
		c.mu.Lock()
		c.approved[sess.Address] = true
		c.mu.Unlock()
	}
	return ok, nil
}

// ApproveIfNeeded grants the group purchasing contract an unlimited spending
// allowance unless one is already in place. It is idempotent: once approval
// is observed or granted, further calls perform no writes.
func (c *Coordinator) ApproveIfNeeded(ctx context.Context, sess session.Context) (ApprovalResult, error) {
	ok, err := c.CheckApproval(ctx, sess)
	if err != nil {
		return ApprovalResult{}, err
	}
	if ok {
		return ApprovalResult{AlreadyApproved: true}, nil
	}

	c.Log.Info("requesting unlimited spending approval", "account", sess.Address)
	rcpt, err := c.Ledger.Submit(ctx, sess.Signer, ledger.ContractToken, "approve", c.Fees,
		ledger.ContractGroupPurchasing, new(big.Int).Set(fixedpoint.MaxUint256))
	if err != nil {
		return ApprovalResult{}, err
	}

	c.mu.Lock()
	c.approved[sess.Address] = true
	c.mu.Unlock()
	return ApprovalResult{Receipt: rcpt}, nil
}
