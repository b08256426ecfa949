// Package model defines the shipping-route domain entities decoded from the
// ledger's positional records.
package model

import (
	"time"
)

// RouteStatus is the route lifecycle state, authoritative on the ledger.
type RouteStatus uint8

const (
	RouteScheduled RouteStatus = 0
	RouteInTransit RouteStatus = 1
	RouteCompleted RouteStatus = 2
)

func (s RouteStatus) Valid() bool { return s <= RouteCompleted }

func (s RouteStatus) String() string {
	switch s {
	case RouteScheduled:
		return "scheduled"
	case RouteInTransit:
		return "in_transit"
	case RouteCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// RefrigerationType is the cooling capability of a vessel.
type RefrigerationType uint8

const (
	RefrigerationNone              RefrigerationType = 0
	RefrigerationStandard          RefrigerationType = 1
	RefrigerationDeepFreeze        RefrigerationType = 2
	RefrigerationClimateControlled RefrigerationType = 3
)

func (r RefrigerationType) Valid() bool { return r <= RefrigerationClimateControlled }

func (r RefrigerationType) String() string {
	switch r {
	case RefrigerationNone:
		return "none"
	case RefrigerationStandard:
		return "standard"
	case RefrigerationDeepFreeze:
		return "deep_freeze"
	case RefrigerationClimateControlled:
		return "climate_controlled"
	default:
		return "unknown"
	}
}

// PortStop is one scheduled call on a route, in itinerary order.
type PortStop struct {
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Country     string    `json:"country"`
	ArrivalTime time.Time `json:"arrival_time"`
	Visited     bool      `json:"visited"`
}

// Route is the decoded ledger entity plus its aggregated sub-lists. The
// ledger stores the route head, the port itinerary and the campaign
// assignment list as three separate records; the coordinator reassembles
// them into one value.
type Route struct {
	ID              uint64            `json:"id,string"`
	ShipID          string            `json:"ship_id"`
	ShipName        string            `json:"ship_name"`
	Description     string            `json:"description"`
	DeparturePort   string            `json:"departure_port"`
	Capacity        uint64            `json:"capacity"`
	Refrigeration   RefrigerationType `json:"refrigeration_type"`
	Status          RouteStatus       `json:"status"`
	CurrentLocation string            `json:"current_location"`

	Ports             []PortStop `json:"ports"`
	AssignedCampaigns []uint64   `json:"assigned_campaigns"`
}

// NextPort is the first unvisited stop in stored order. ok is false once
// every stop has been visited.
func (r Route) NextPort() (stop PortStop, ok bool) {
	for _, p := range r.Ports {
		if !p.Visited {
			return p, true
		}
	}
	return PortStop{}, false
}
