// Package usecase implements the campaign coordinator: decoding ledger
// records into campaign entities, sequencing the approve-then-act write
// flows, and computing derived pricing.
package usecase

import (
	"log/slog"
	"sync"

	"tradehub/go-backend/internal/ledger"
)

// Coordinator orchestrates campaign reads and writes against the ledger.
// All operations take the active session context explicitly; nothing is read
// from ambient state.
type Coordinator struct {
	Ledger ledger.Client
	Fees   ledger.FeePolicy
	Log    *slog.Logger

	mu       sync.Mutex
	approved map[string]bool // spending approval cache, keyed by account address
}

func New(client ledger.Client, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{
		Ledger:   client,
		Fees:     ledger.DefaultFees,
		Log:      log,
		approved: make(map[string]bool),
	}
}

// ApprovalResult reports the outcome of ApproveIfNeeded. AlreadyApproved is
// set when no write was necessary; Receipt is set when one was submitted.
type ApprovalResult struct {
	AlreadyApproved bool            `json:"already_approved"`
	Receipt         *ledger.Receipt `json:"receipt,omitempty"`
}

// CreateResult reports a confirmed campaign creation.
type CreateResult struct {
	CampaignID uint64          `json:"campaign_id,string"`
	Receipt    *ledger.Receipt `json:"receipt"`
}

// JoinResult reports a confirmed join. Payment is the decimal amount charged,
// echoed back for display.
type JoinResult struct {
	Payment string          `json:"payment"`
	Receipt *ledger.Receipt `json:"receipt"`
}
