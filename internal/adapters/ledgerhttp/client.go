// Package ledgerhttp implements the ledger client against the gateway's
// HTTP/JSON API. The gateway mediates contract reads and signed writes; this
// adapter is deliberately thin and leaves retry policy to callers.
package ledgerhttp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tradehub/go-backend/internal/ledger"
)

const maxResponseBytes = 4 << 20

// Client talks to one gateway endpoint. Safe for concurrent use.
type Client struct {
	baseURL string
	chainID uint64
	http    *http.Client
}

// New builds a client for the given base URL (see config.GatewayURL).
func New(baseURL string, chainID uint64, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		chainID: chainID,
		http:    &http.Client{Timeout: timeout},
	}
}

type callRequest struct {
	ChainID  uint64 `json:"chain_id"`
	Contract string `json:"contract"`
	Method   string `json:"method"`
	Args     []any  `json:"args"`
}

type callResponse struct {
	Result []any  `json:"result"`
	Error  string `json:"error"`
}

type submitRequest struct {
	ChainID   uint64 `json:"chain_id"`
	Contract  string `json:"contract"`
	Method    string `json:"method"`
	Args      []any  `json:"args"`
	From      string `json:"from"`
	Fees      fees   `json:"fees"`
	Signature string `json:"signature"`
}

type fees struct {
	MaxFeeGwei      uint64 `json:"max_fee_gwei"`
	PriorityFeeGwei uint64 `json:"priority_fee_gwei"`
}

type submitResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
	Error       string `json:"error"`
}

// Call performs a read. The result tuple keeps json.Number values so big
// integers survive the trip.
func (c *Client) Call(ctx context.Context, contract, method string, args ...any) (ledger.Tuple, error) {
	body := callRequest{ChainID: c.chainID, Contract: contract, Method: method, Args: normalizeArgs(args)}
	var out callResponse
	if err := c.post(ctx, "/v1/call", body, &out); err != nil {
		return nil, &ledger.CallError{Contract: contract, Method: method, Err: err}
	}
	if out.Error != "" {
		return nil, &ledger.CallError{Contract: contract, Method: method, Err: fmt.Errorf("%s", out.Error)}
	}
	return ledger.Tuple(out.Result), nil
}

// Submit signs and sends a write, returning once the gateway reports the
// transaction confirmed.
func (c *Client) Submit(ctx context.Context, signer ledger.Signer, contract, method string, policy ledger.FeePolicy, args ...any) (*ledger.Receipt, error) {
	body := submitRequest{
		ChainID:  c.chainID,
		Contract: contract,
		Method:   method,
		Args:     normalizeArgs(args),
		From:     signer.Address(),
		Fees:     fees{MaxFeeGwei: policy.MaxFeeGwei, PriorityFeeGwei: policy.PriorityFeeGwei},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &ledger.CallError{Contract: contract, Method: method, Err: err}
	}
	sig, err := signer.Sign(payload)
	if err != nil {
		return nil, &ledger.CallError{Contract: contract, Method: method, Err: fmt.Errorf("sign: %w", err)}
	}
	body.Signature = base64.StdEncoding.EncodeToString(sig)

	var out submitResponse
	if err := c.post(ctx, "/v1/submit", body, &out); err != nil {
		return nil, &ledger.CallError{Contract: contract, Method: method, Err: err}
	}
	if out.Error != "" {
		return nil, &ledger.CallError{Contract: contract, Method: method, Err: fmt.Errorf("%s", out.Error)}
	}
	return &ledger.Receipt{TxHash: out.TxHash, BlockNumber: out.BlockNumber, GasUsed: out.GasUsed}, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &failure) == nil && failure.Error != "" {
			return fmt.Errorf("%s", failure.Error)
		}
		return fmt.Errorf("gateway returned %s", resp.Status)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(out)
}

// normalizeArgs flattens nested tuples so they encode as plain JSON arrays.
func normalizeArgs(args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		if t, ok := arg.(ledger.Tuple); ok {
			out[i] = normalizeArgs(t)
			continue
		}
		out[i] = arg
	}
	return out
}
