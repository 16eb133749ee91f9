// Package fleet models the session's equipment lists. Fleets have value
// semantics: every mutation returns a new Fleet and leaves the receiver
// untouched, so callers never observe a half-updated state.
package fleet

import (
	"fmt"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/config"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/validation"
)

// EquipmentID identifies one piece of equipment within its fleet list.
// IDs come from a monotonically increasing per-fleet counter and are never
// reused within a session.
type EquipmentID string

// Excavator is one digging unit. Invariant: BucketCapacity > 0, CycleTime > 0.
type Excavator struct {
	ID             EquipmentID `json:"id"`
	Name           string      `json:"name"`
	BucketCapacity float64     `json:"bucket_capacity"` // cubic yards
	CycleTime      float64     `json:"cycle_time"`      // minutes per cycle
	IsActive       bool        `json:"is_active"`
}

// Truck is one hauling unit. Invariant: Capacity > 0, RoundTripTime > 0.
type Truck struct {
	ID            EquipmentID `json:"id"`
	Name          string      `json:"name"`
	Capacity      float64     `json:"capacity"`        // cubic yards
	RoundTripTime float64     `json:"round_trip_time"` // minutes per round trip
	IsActive      bool        `json:"is_active"`
}

// Fleet holds both equipment lists in insertion order.
type Fleet struct {
	Excavators []Excavator `json:"excavators"`
	Trucks     []Truck     `json:"trucks"`

	nextExcavator int
	nextTruck     int
}

// NewFromConfig seeds a fleet from the configured defaults. All default
// equipment starts active.
func NewFromConfig(cfg *config.Config) Fleet {
	f := Fleet{}
	for _, d := range cfg.Defaults.Excavators {
		f.nextExcavator++
		f.Excavators = append(f.Excavators, Excavator{
			ID:             EquipmentID(fmt.Sprintf("excavator-%d", f.nextExcavator)),
			Name:           d.Name,
			BucketCapacity: d.BucketCapacity,
			CycleTime:      d.CycleTime,
			IsActive:       true,
		})
	}
	for _, d := range cfg.Defaults.Trucks {
		f.nextTruck++
		f.Trucks = append(f.Trucks, Truck{
			ID:            EquipmentID(fmt.Sprintf("truck-%d", f.nextTruck)),
			Name:          d.Name,
			Capacity:      d.Capacity,
			RoundTripTime: d.RoundTripTime,
			IsActive:      true,
		})
	}
	return f
}

// AddExcavator appends a new excavator with a fresh id. A non-positive
// capacity or cycle time, or a full fleet, is rejected and the fleet is
// returned unchanged.
func (f Fleet) AddExcavator(limits config.FleetLimits, name string, bucketCapacity, cycleTime float64) (Fleet, error) {
	if len(f.Excavators) >= limits.MaxExcavators {
		return f, &validation.EdgeCaseError{
			Issue:    fmt.Sprintf("excavator fleet is at its limit of %d", limits.MaxExcavators),
			Guidance: "Remove an excavator before adding another",
		}
	}
	if bucketCapacity <= 0 || cycleTime <= 0 {
		return f, &validation.EdgeCaseError{
			Issue:    "excavator capacity and cycle time must be positive",
			Guidance: "Enter values greater than zero",
		}
	}
	out := f.clone()
	out.nextExcavator++
	out.Excavators = append(out.Excavators, Excavator{
		ID:             EquipmentID(fmt.Sprintf("excavator-%d", out.nextExcavator)),
		Name:           name,
		BucketCapacity: bucketCapacity,
		CycleTime:      cycleTime,
		IsActive:       true,
	})
	return out, nil
}

// RemoveExcavator deletes the excavator with the given id. Removing the last
// excavator is rejected and the fleet is returned unchanged.
func (f Fleet) RemoveExcavator(id EquipmentID) (Fleet, error) {
	idx := f.excavatorIndex(id)
	if idx < 0 {
		return f, unknownEquipment(id)
	}
	if len(f.Excavators) == 1 {
		return f, &validation.EdgeCaseError{
			Issue:    "cannot remove the last excavator",
			Guidance: "A fleet needs at least one excavator",
		}
	}
	out := f.clone()
	out.Excavators = append(out.Excavators[:idx], out.Excavators[idx+1:]...)
	return out, nil
}

// UpdateExcavator replaces one numeric field of the matching excavator,
// leaving order and the other entries untouched.
func (f Fleet) UpdateExcavator(id EquipmentID, field validation.Field, value float64) (Fleet, error) {
	idx := f.excavatorIndex(id)
	if idx < 0 {
		return f, unknownEquipment(id)
	}
	if value <= 0 {
		return f, &validation.EdgeCaseError{
			Field:    field,
			Issue:    "value must be positive",
			Guidance: "Enter a value greater than zero",
		}
	}
	out := f.clone()
	switch field {
	case validation.FieldExcavatorCapacity:
		out.Excavators[idx].BucketCapacity = value
	case validation.FieldCycleTime:
		out.Excavators[idx].CycleTime = value
	default:
		return f, validation.ConfigurationError(fmt.Sprintf("field %s does not apply to excavators", field))
	}
	return out, nil
}

// RenameExcavator replaces the display name of the matching excavator.
func (f Fleet) RenameExcavator(id EquipmentID, name string) (Fleet, error) {
	idx := f.excavatorIndex(id)
	if idx < 0 {
		return f, unknownEquipment(id)
	}
	out := f.clone()
	out.Excavators[idx].Name = name
	return out, nil
}

// ToggleExcavator flips the active flag. Inactive equipment keeps its
// configuration but contributes nothing to the fleet rate.
func (f Fleet) ToggleExcavator(id EquipmentID) (Fleet, error) {
	idx := f.excavatorIndex(id)
	if idx < 0 {
		return f, unknownEquipment(id)
	}
	out := f.clone()
	out.Excavators[idx].IsActive = !out.Excavators[idx].IsActive
	return out, nil
}

// AddTruck appends a new truck with a fresh id, symmetric to AddExcavator.
func (f Fleet) AddTruck(limits config.FleetLimits, name string, capacity, roundTripTime float64) (Fleet, error) {
	if len(f.Trucks) >= limits.MaxTrucks {
		return f, &validation.EdgeCaseError{
			Issue:    fmt.Sprintf("truck fleet is at its limit of %d", limits.MaxTrucks),
			Guidance: "Remove a truck before adding another",
		}
	}
	if capacity <= 0 || roundTripTime <= 0 {
		return f, &validation.EdgeCaseError{
			Issue:    "truck capacity and round-trip time must be positive",
			Guidance: "Enter values greater than zero",
		}
	}
	out := f.clone()
	out.nextTruck++
	out.Trucks = append(out.Trucks, Truck{
		ID:            EquipmentID(fmt.Sprintf("truck-%d", out.nextTruck)),
		Name:          name,
		Capacity:      capacity,
		RoundTripTime: roundTripTime,
		IsActive:      true,
	})
	return out, nil
}

// RemoveTruck deletes the truck with the given id, refusing to empty the fleet.
func (f Fleet) RemoveTruck(id EquipmentID) (Fleet, error) {
	idx := f.truckIndex(id)
	if idx < 0 {
		return f, unknownEquipment(id)
	}
	if len(f.Trucks) == 1 {
		return f, &validation.EdgeCaseError{
			Issue:    "cannot remove the last truck",
			Guidance: "A fleet needs at least one truck",
		}
	}
	out := f.clone()
	out.Trucks = append(out.Trucks[:idx], out.Trucks[idx+1:]...)
	return out, nil
}

// UpdateTruck replaces one numeric field of the matching truck.
func (f Fleet) UpdateTruck(id EquipmentID, field validation.Field, value float64) (Fleet, error) {
	idx := f.truckIndex(id)
	if idx < 0 {
		return f, unknownEquipment(id)
	}
	if value <= 0 {
		return f, &validation.EdgeCaseError{
			Field:    field,
			Issue:    "value must be positive",
			Guidance: "Enter a value greater than zero",
		}
	}
	out := f.clone()
	switch field {
	case validation.FieldTruckCapacity:
		out.Trucks[idx].Capacity = value
	case validation.FieldRoundTripTime:
		out.Trucks[idx].RoundTripTime = value
	default:
		return f, validation.ConfigurationError(fmt.Sprintf("field %s does not apply to trucks", field))
	}
	return out, nil
}

// RenameTruck replaces the display name of the matching truck.
func (f Fleet) RenameTruck(id EquipmentID, name string) (Fleet, error) {
	idx := f.truckIndex(id)
	if idx < 0 {
		return f, unknownEquipment(id)
	}
	out := f.clone()
	out.Trucks[idx].Name = name
	return out, nil
}

// ToggleTruck flips the active flag of the matching truck.
func (f Fleet) ToggleTruck(id EquipmentID) (Fleet, error) {
	idx := f.truckIndex(id)
	if idx < 0 {
		return f, unknownEquipment(id)
	}
	out := f.clone()
	out.Trucks[idx].IsActive = !out.Trucks[idx].IsActive
	return out, nil
}

// HasExcavator reports whether the id belongs to an excavator in this fleet.
func (f Fleet) HasExcavator(id EquipmentID) bool { return f.excavatorIndex(id) >= 0 }

// HasTruck reports whether the id belongs to a truck in this fleet.
func (f Fleet) HasTruck(id EquipmentID) bool { return f.truckIndex(id) >= 0 }

func (f Fleet) excavatorIndex(id EquipmentID) int {
	for i := range f.Excavators {
		if f.Excavators[i].ID == id {
			return i
		}
	}
	return -1
}

func (f Fleet) truckIndex(id EquipmentID) int {
	for i := range f.Trucks {
		if f.Trucks[i].ID == id {
			return i
		}
	}
	return -1
}

func (f Fleet) clone() Fleet {
	out := Fleet{
		Excavators:    make([]Excavator, len(f.Excavators)),
		Trucks:        make([]Truck, len(f.Trucks)),
		nextExcavator: f.nextExcavator,
		nextTruck:     f.nextTruck,
	}
	copy(out.Excavators, f.Excavators)
	copy(out.Trucks, f.Trucks)
	return out
}

func unknownEquipment(id EquipmentID) error {
	return &validation.EdgeCaseError{
		Issue:    fmt.Sprintf("no equipment with id %s", id),
		Guidance: "The equipment may have already been removed",
	}
}
