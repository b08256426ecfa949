package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradehub/go-backend/internal/api"
	"tradehub/go-backend/internal/config"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/ledger/ledgertest"
	"tradehub/go-backend/internal/session"
)

type staticProvider struct{}

func (staticProvider) Active() (session.Context, error) {
	return session.Context{Address: "hub1alice", Signer: ledgertest.StaticSigner("hub1alice")}, nil
}

func (staticProvider) Balance(ctx context.Context, address string) (*big.Int, error) {
	return big.NewInt(0), nil
}

func testServer(t *testing.T, token string, fake *ledgertest.Fake) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := api.NewService(fake, staticProvider{}, log)
	return NewServer(config.RPCConfig{Token: token}, svc, log, nil)
}

func postRPC(t *testing.T, s *Server, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.HandleRPC(w, req)
	return w
}

func decodeRPCResponse(t *testing.T, w *httptest.ResponseRecorder) rpcResponse {
	t.Helper()
	var resp rpcResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v; body %s", err, w.Body.String())
	}
	return resp
}

func TestRPCRejectsMissingToken(t *testing.T) {
	s := testServer(t, "sekrit", &ledgertest.Fake{})
	w := postRPC(t, s, "", `{"jsonrpc":"2.0","id":1,"method":"health_check"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRPCHealthCheck(t *testing.T) {
	s := testServer(t, "sekrit", &ledgertest.Fake{})
	w := postRPC(t, s, "sekrit", `{"jsonrpc":"2.0","id":1,"method":"health_check"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeRPCResponse(t, w)
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}
}

func TestRPCParseError(t *testing.T) {
	s := testServer(t, "", &ledgertest.Fake{})
	resp := decodeRPCResponse(t, postRPC(t, s, "", `{not json`))
	if resp.Error == nil || resp.Error.Code != -32700 {
		t.Fatalf("error = %+v, want parse error", resp.Error)
	}
}

func TestRPCInvalidVersion(t *testing.T) {
	s := testServer(t, "", &ledgertest.Fake{})
	resp := decodeRPCResponse(t, postRPC(t, s, "", `{"jsonrpc":"1.0","id":1,"method":"health_check"}`))
	if resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("error = %+v, want invalid request", resp.Error)
	}
}

func TestRPCMethodNotFound(t *testing.T) {
	s := testServer(t, "", &ledgertest.Fake{})
	resp := decodeRPCResponse(t, postRPC(t, s, "", `{"jsonrpc":"2.0","id":1,"method":"campaign.fly"}`))
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("error = %+v, want method not found", resp.Error)
	}
}

func TestRPCBodyTooLarge(t *testing.T) {
	s := testServer(t, "", &ledgertest.Fake{})
	huge := `{"jsonrpc":"2.0","id":1,"method":"health_check","params":{"pad":"` +
		strings.Repeat("x", int(maxRPCBodyBytes)) + `"}}`
	w := postRPC(t, s, "", huge)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
}

func TestRPCCampaignGetRoundTrip(t *testing.T) {
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			if method != "getCampaign" {
				t.Fatalf("unexpected read %s.%s", contract, method)
			}
			if args[0] != uint64(3) {
				t.Fatalf("id arg = %v", args[0])
			}
			return ledger.Tuple{
				"hub1organizer", uint64(0), uint64(1), "bulk mango order", "desc",
				uint64(10), uint64(4), "5500000", "crate", "15000000000", "275000000",
				int64(1767225600), uint64(0), int64(1764547200), uint64(2), "", "",
			}, nil
		},
	}
	s := testServer(t, "", fake)
	resp := decodeRPCResponse(t, postRPC(t, s, "",
		`{"jsonrpc":"2.0","id":7,"method":"campaign.get","params":{"id":"3"}}`))
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}
	payload, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("re-marshal result: %v", err)
	}
	var campaign struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(payload, &campaign); err != nil {
		t.Fatalf("decode campaign: %v", err)
	}
	if campaign.ID != "3" || campaign.Name != "bulk mango order" {
		t.Fatalf("campaign = %+v", campaign)
	}
}

func TestRPCValidationErrorCode(t *testing.T) {
	s := testServer(t, "", &ledgertest.Fake{})
	resp := decodeRPCResponse(t, postRPC(t, s, "",
		`{"jsonrpc":"2.0","id":1,"method":"campaign.cancel","params":{"id":"0"}}`))
	if resp.Error == nil || resp.Error.Code != codeValidation {
		t.Fatalf("error = %+v, want validation code", resp.Error)
	}
}

func TestRPCRemoteCallErrorSurfacedVerbatim(t *testing.T) {
	fake := &ledgertest.Fake{
		SubmitFn: func(contract, method string, args []any) (*ledger.Receipt, error) {
			return nil, &ledger.CallError{Contract: contract, Method: method,
				Err: errorString("execution reverted: not the organizer")}
		},
	}
	s := testServer(t, "", fake)
	resp := decodeRPCResponse(t, postRPC(t, s, "",
		`{"jsonrpc":"2.0","id":1,"method":"campaign.cancel","params":{"id":"4"}}`))
	if resp.Error == nil || resp.Error.Code != codeRemoteCall {
		t.Fatalf("error = %+v, want remote call code", resp.Error)
	}
	if !strings.Contains(resp.Error.Message, "execution reverted: not the organizer") {
		t.Fatalf("message = %q, want ledger text verbatim", resp.Error.Message)
	}
}

func TestRPCUnknownParamFieldRejected(t *testing.T) {
	s := testServer(t, "", &ledgertest.Fake{})
	resp := decodeRPCResponse(t, postRPC(t, s, "",
		`{"jsonrpc":"2.0","id":1,"method":"campaign.get","params":{"id":"3","bogus":true}}`))
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("error = %+v, want invalid params", resp.Error)
	}
}

func TestRPCShippingPorts(t *testing.T) {
	s := testServer(t, "", &ledgertest.Fake{})
	resp := decodeRPCResponse(t, postRPC(t, s, "",
		`{"jsonrpc":"2.0","id":1,"method":"shipping.ports"}`))
	if resp.Error != nil {
		t.Fatalf("error = %+v", resp.Error)
	}
	ports, ok := resp.Result.([]any)
	if !ok || len(ports) == 0 {
		t.Fatalf("result = %T", resp.Result)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t, "sekrit", &ledgertest.Fake{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.HandleHealth(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"ok"`)) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

type errorString string

func (e errorString) Error() string { return string(e) }
