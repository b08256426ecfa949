package usecase

import (
	"context"
	"testing"
	"time"

	"tradehub/go-backend/internal/domains/contracts"
	"tradehub/go-backend/internal/domains/shipping/model"
	"tradehub/go-backend/internal/ledger"
	"tradehub/go-backend/internal/ledger/ledgertest"
)

func routeDraft() model.RouteDraft {
	return model.RouteDraft{
		ShipID:        "CAR-001",
		ShipName:      "MV Island Runner",
		Description:   "weekly Kingston loop",
		DeparturePort: "Kingston",
		Capacity:      12,
		Refrigeration: model.RefrigerationStandard,
		Ports: []model.PortStopDraft{
			{Name: "Miami", Code: "MIA", Country: "United States", ArrivalTime: time.Unix(1767225600, 0)},
			{Name: "Nassau", Code: "NAS", Country: "Bahamas", ArrivalTime: time.Unix(1767312000, 0)},
		},
	}
}

func TestCreateRoute(t *testing.T) {
	fake := &ledgertest.Fake{
		CallFn: func(contract, method string, args []any) (ledger.Tuple, error) {
			if method != "getTotalRoutes" {
				t.Fatalf("unexpected read %s.%s", contract, method)
			}
			return ledger.Tuple{uint64(5)}, nil
		},
	}
	c := New(fake, quietLogger())

	got, err := c.CreateRoute(context.Background(), testSession("hub1alice"), routeDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.RouteID != 4 {
		t.Fatalf("route id = %d, want 4", got.RouteID)
	}
	if got.Receipt == nil {
		t.Fatal("missing receipt")
	}

	subs := fake.Submissions()
	if len(subs) != 1 {
		t.Fatalf("writes = %d, want 1", len(subs))
	}
	sub := subs[0]
	if sub.Contract != ledger.ContractShippingRoutes || sub.Method != "createRoute" {
		t.Fatalf("submitted %s.%s", sub.Contract, sub.Method)
	}
	if sub.Fees != ledger.DefaultFees {
		t.Fatalf("fees = %+v", sub.Fees)
	}
	if len(sub.Args) != 10 {
		t.Fatalf("args = %d, want 10", len(sub.Args))
	}

	names := sub.Args[4].([]string)
	codes := sub.Args[5].([]string)
	countries := sub.Args[6].([]string)
	arrivals := sub.Args[7].([]int64)
	if len(names) != 2 || names[0] != "Miami" || names[1] != "Nassau" {
		t.Fatalf("port names = %v", names)
	}
	if codes[0] != "MIA" || codes[1] != "NAS" {
		t.Fatalf("port codes = %v", codes)
	}
	if countries[1] != "Bahamas" {
		t.Fatalf("countries = %v", countries)
	}
	if arrivals[0] != 1767225600 || arrivals[1] != 1767312000 {
		t.Fatalf("arrival times = %v", arrivals)
	}
	if sub.Args[8] != uint64(12) || sub.Args[9] != uint64(model.RefrigerationStandard) {
		t.Fatalf("capacity/refrigeration args = %v/%v", sub.Args[8], sub.Args[9])
	}
}

func TestCreateRouteRejectsInvalidDraft(t *testing.T) {
	fake := &ledgertest.Fake{}
	c := New(fake, quietLogger())

	draft := routeDraft()
	draft.Ports = nil
	_, err := c.CreateRoute(context.Background(), testSession("hub1alice"), draft)
	if !contracts.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(fake.Submissions()) != 0 {
		t.Fatal("invalid draft must not reach the ledger")
	}
}
