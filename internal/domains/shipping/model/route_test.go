package model

import (
	"testing"
	"time"
)

func stop(name string, visited bool) PortStop {
	return PortStop{Name: name, Code: "XXX", Country: "Nowhere", ArrivalTime: time.Unix(1767225600, 0), Visited: visited}
}

func TestNextPort(t *testing.T) {
	cases := []struct {
		name     string
		ports    []PortStop
		wantName string
		wantOK   bool
	}{
		{name: "no stops", ports: nil, wantOK: false},
		{
			name:     "none visited picks first",
			ports:    []PortStop{stop("Kingston", false), stop("Miami", false)},
			wantName: "Kingston", wantOK: true,
		},
		{
			name:     "skips visited in stored order",
			ports:    []PortStop{stop("Kingston", true), stop("Miami", false), stop("Nassau", false)},
			wantName: "Miami", wantOK: true,
		},
		{
			name:   "all visited",
			ports:  []PortStop{stop("Kingston", true), stop("Miami", true)},
			wantOK: false,
		},
		{
			name:     "unvisited before a later visited stop still wins",
			ports:    []PortStop{stop("Kingston", false), stop("Miami", true)},
			wantName: "Kingston", wantOK: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Route{Ports: tc.ports}.NextPort()
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got.Name != tc.wantName {
				t.Fatalf("next port = %q, want %q", got.Name, tc.wantName)
			}
		})
	}
}

func TestRouteDraftValidate(t *testing.T) {
	valid := RouteDraft{
		ShipID:        "CAR-001",
		ShipName:      "MV Island Runner",
		Description:   "weekly Kingston loop",
		DeparturePort: "Kingston",
		Capacity:      12,
		Refrigeration: RefrigerationStandard,
		Ports: []PortStopDraft{
			{Name: "Miami", Code: "MIA", Country: "United States", ArrivalTime: time.Unix(1767225600, 0)},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*RouteDraft)
	}{
		{name: "blank ship id", mutate: func(d *RouteDraft) { d.ShipID = " " }},
		{name: "blank ship name", mutate: func(d *RouteDraft) { d.ShipName = "" }},
		{name: "blank departure port", mutate: func(d *RouteDraft) { d.DeparturePort = "" }},
		{name: "zero capacity", mutate: func(d *RouteDraft) { d.Capacity = 0 }},
		{name: "refrigeration out of range", mutate: func(d *RouteDraft) { d.Refrigeration = 9 }},
		{name: "empty itinerary", mutate: func(d *RouteDraft) { d.Ports = nil }},
		{name: "stop missing code", mutate: func(d *RouteDraft) { d.Ports[0].Code = "" }},
		{name: "stop missing arrival", mutate: func(d *RouteDraft) { d.Ports[0].ArrivalTime = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := valid
			draft.Ports = append([]PortStopDraft(nil), valid.Ports...)
			tc.mutate(&draft)
			if err := draft.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
