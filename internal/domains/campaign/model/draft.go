package model

import (
	"strings"
	"time"

	"tradehub/go-backend/internal/domains/contracts"
)

// ProductDraft is the validated input for creating a product campaign.
// Monetary fields are decimal strings; conversion to fixed point happens in
// the coordinator, after validation.
type ProductDraft struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MinQuantity  uint64    `json:"min_quantity"`
	PricePerUnit string    `json:"price_per_unit"`
	Unit         string    `json:"unit"`
	TargetAmount string    `json:"target_amount"`
	Deadline     time.Time `json:"deadline"`
}

func (d ProductDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return contracts.NewValidation("name", "is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return contracts.NewValidation("description", "is required")
	}
	if d.MinQuantity == 0 {
		return contracts.NewValidation("min_quantity", "must be greater than zero")
	}
	if strings.TrimSpace(d.PricePerUnit) == "" {
		return contracts.NewValidation("price_per_unit", "is required")
	}
	if strings.TrimSpace(d.Unit) == "" {
		return contracts.NewValidation("unit", "is required")
	}
	if strings.TrimSpace(d.TargetAmount) == "" {
		return contracts.NewValidation("target_amount", "is required")
	}
	if d.Deadline.IsZero() {
		return contracts.NewValidation("deadline", "is required")
	}
	return nil
}

// RequirementsDraft is the container requirements block of a container
// campaign draft. CurrentWeightKg always starts at zero on the ledger.
type RequirementsDraft struct {
	ContainerType         ContainerType `json:"container_type"`
	MinTempCelsius        int64         `json:"min_temp_celsius"`
	MaxTempCelsius        int64         `json:"max_temp_celsius"`
	MaxWeightKg           uint64        `json:"max_weight_kg"`
	RequiresVentilation   bool          `json:"requires_ventilation"`
	RequiresRefrigeration bool          `json:"requires_refrigeration"`
}

// ContainerDraft is the validated input for creating a container campaign.
type ContainerDraft struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Direction       Direction         `json:"direction"`
	OriginPort      string            `json:"origin_port"`
	DestinationPort string            `json:"destination_port"`
	Requirements    RequirementsDraft `json:"requirements"`
	TargetAmount    string            `json:"target_amount"`
	Deadline        time.Time         `json:"deadline"`
}

func (d ContainerDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return contracts.NewValidation("name", "is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return contracts.NewValidation("description", "is required")
	}
	if !d.Direction.Valid() {
		return contracts.NewValidation("direction", "must be inbound or outbound")
	}
	if strings.TrimSpace(d.OriginPort) == "" {
		return contracts.NewValidation("origin_port", "is required")
	}
	if strings.TrimSpace(d.DestinationPort) == "" {
		return contracts.NewValidation("destination_port", "is required")
	}
	if !d.Requirements.ContainerType.Valid() {
		return contracts.NewValidation("requirements.container_type", "is out of range")
	}
	if d.Requirements.MaxWeightKg == 0 {
		return contracts.NewValidation("requirements.max_weight_kg", "must be greater than zero")
	}
	if d.Requirements.MinTempCelsius > d.Requirements.MaxTempCelsius {
		return contracts.NewValidation("requirements.min_temp_celsius", "exceeds max temperature")
	}
	if strings.TrimSpace(d.TargetAmount) == "" {
		return contracts.NewValidation("target_amount", "is required")
	}
	if d.Deadline.IsZero() {
		return contracts.NewValidation("deadline", "is required")
	}
	return nil
}
