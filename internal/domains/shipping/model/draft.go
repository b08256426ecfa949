package model

import (
	"strings"
	"time"

	"tradehub/go-backend/internal/domains/contracts"
)

// PortStopDraft is one itinerary entry of a route draft. Visited always
// starts false on the ledger.
type PortStopDraft struct {
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Country     string    `json:"country"`
	ArrivalTime time.Time `json:"arrival_time"`
}

// RouteDraft is the validated input for creating a route.
type RouteDraft struct {
	ShipID        string            `json:"ship_id"`
	ShipName      string            `json:"ship_name"`
	Description   string            `json:"description"`
	DeparturePort string            `json:"departure_port"`
	Capacity      uint64            `json:"capacity"`
	Refrigeration RefrigerationType `json:"refrigeration_type"`
	Ports         []PortStopDraft   `json:"ports"`
}

func (d RouteDraft) Validate() error {
	if strings.TrimSpace(d.ShipID) == "" {
		return contracts.NewValidation("ship_id", "is required")
	}
	if strings.TrimSpace(d.ShipName) == "" {
		return contracts.NewValidation("ship_name", "is required")
	}
	if strings.TrimSpace(d.DeparturePort) == "" {
		return contracts.NewValidation("departure_port", "is required")
	}
	if d.Capacity == 0 {
		return contracts.NewValidation("capacity", "must be greater than zero")
	}
	if !d.Refrigeration.Valid() {
		return contracts.NewValidation("refrigeration_type", "is out of range")
	}
	if len(d.Ports) == 0 {
		return contracts.NewValidation("ports", "at least one stop is required")
	}
	for _, p := range d.Ports {
		if strings.TrimSpace(p.Name) == "" {
			return contracts.NewValidation("ports.name", "is required")
		}
		if strings.TrimSpace(p.Code) == "" {
			return contracts.NewValidation("ports.code", "is required")
		}
		if strings.TrimSpace(p.Country) == "" {
			return contracts.NewValidation("ports.country", "is required")
		}
		if p.ArrivalTime.IsZero() {
			return contracts.NewValidation("ports.arrival_time", "is required")
		}
	}
	return nil
}

// AssignmentDraft is the validated input for assigning a campaign to a route.
type AssignmentDraft struct {
	CampaignID            uint64 `json:"campaign_id,string"`
	RouteID               uint64 `json:"route_id,string"`
	ContainerCount        uint64 `json:"container_count"`
	RequiresRefrigeration bool   `json:"requires_refrigeration"`
	Notes                 string `json:"notes"`
}

func (d AssignmentDraft) Validate() error {
	if d.CampaignID == 0 {
		return contracts.NewValidation("campaign_id", "is required")
	}
	if d.ContainerCount == 0 {
		return contracts.NewValidation("container_count", "must be greater than zero")
	}
	return nil
}
