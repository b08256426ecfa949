package usecase

import (
	"fmt"

	"tradehub/go-backend/internal/domains/shipping/model"
	"tradehub/go-backend/internal/ledger"
)

// The getRoute tuple layout is a compatibility contract with the deployed
// contract; reordering any index silently corrupts decoded data.
//
//	0  shipId            string
//	1  shipName          string
//	2  description       string
//	3  departurePort     string
//	4  containerCapacity integer
//	5  refrigeration     enum
//	6  status            enum
//	7  currentLocation   string
const routeTupleLen = 8

func decodeRoute(id uint64, t ledger.Tuple) (model.Route, error) {
	if len(t) < routeTupleLen {
		return model.Route{}, fmt.Errorf("route record has %d fields, want %d", len(t), routeTupleLen)
	}
	shipID, err := t.String(0)
	if err != nil {
		return model.Route{}, err
	}
	shipName, err := t.String(1)
	if err != nil {
		return model.Route{}, err
	}
	description, err := t.String(2)
	if err != nil {
		return model.Route{}, err
	}
	departurePort, err := t.String(3)
	if err != nil {
		return model.Route{}, err
	}
	capacity, err := t.Uint64(4)
	if err != nil {
		return model.Route{}, err
	}
	rawRefrigeration, err := t.Uint64(5)
	if err != nil {
		return model.Route{}, err
	}
	refrigeration := model.RefrigerationType(rawRefrigeration)
	if !refrigeration.Valid() {
		return model.Route{}, fmt.Errorf("unknown refrigeration type %d", rawRefrigeration)
	}
	rawStatus, err := t.Uint64(6)
	if err != nil {
		return model.Route{}, err
	}
	status := model.RouteStatus(rawStatus)
	if !status.Valid() {
		return model.Route{}, fmt.Errorf("unknown route status %d", rawStatus)
	}
	currentLocation, err := t.String(7)
	if err != nil {
		return model.Route{}, err
	}
	return model.Route{
		ID:              id,
		ShipID:          shipID,
		ShipName:        shipName,
		Description:     description,
		DeparturePort:   departurePort,
		Capacity:        capacity,
		Refrigeration:   refrigeration,
		Status:          status,
		CurrentLocation: currentLocation,
	}, nil
}

// getRoutePorts returns one tuple per stop:
//
//	0  name        string
//	1  code        string
//	2  country     string
//	3  arrivalTime epoch seconds
//	4  visited     bool
const portTupleLen = 5

func decodePortStop(t ledger.Tuple) (model.PortStop, error) {
	if len(t) < portTupleLen {
		return model.PortStop{}, fmt.Errorf("port record has %d fields, want %d", len(t), portTupleLen)
	}
	name, err := t.String(0)
	if err != nil {
		return model.PortStop{}, err
	}
	code, err := t.String(1)
	if err != nil {
		return model.PortStop{}, err
	}
	country, err := t.String(2)
	if err != nil {
		return model.PortStop{}, err
	}
	arrival, err := t.Time(3)
	if err != nil {
		return model.PortStop{}, err
	}
	visited, err := t.Bool(4)
	if err != nil {
		return model.PortStop{}, err
	}
	return model.PortStop{
		Name:        name,
		Code:        code,
		Country:     country,
		ArrivalTime: arrival,
		Visited:     visited,
	}, nil
}

// decodeAssignments filters the ledger's assignment list down to real ids.
// The contract pads the list with sentinel entries (zero, or an empty string
// on some gateway encodings); a sentinel is a hole, never an assignment.
func decodeAssignments(t ledger.Tuple) ([]uint64, error) {
	out := make([]uint64, 0, len(t))
	for i, raw := range t {
		if s, ok := raw.(string); ok && s == "" {
			continue
		}
		id, err := t.Uint64(i)
		if err != nil {
			return nil, err
		}
		if id == 0 {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}
