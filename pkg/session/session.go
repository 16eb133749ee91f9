// Package session owns the mutable state of one calculator session: the
// config (shared read-only), the equipment fleet, the raw project inputs,
// per-field validation errors, and the last successfully computed result.
// All core state lives on the Session; there are no package-level statics.
package session

import (
	"strconv"
	"sync"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/config"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/estimate"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/fleet"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/validation"
)

// projectFields are the session-owned scalar inputs, in validation order.
var projectFields = []validation.Field{
	validation.FieldPondLength,
	validation.FieldPondWidth,
	validation.FieldPondDepth,
	validation.FieldWorkHours,
}

// Session is the single state object passed to all core operations.
type Session struct {
	mu sync.Mutex

	cfg         *config.Config
	fleet       fleet.Fleet
	raw         map[validation.Field]string
	fieldErrors map[validation.Field]error
	calcErr     error
	lastGood    *estimate.Result
}

// State is an atomic snapshot of the session for rendering. Result is the
// last known good estimate; it survives validation failures so the display
// never reverts to an empty state once one calculation has succeeded.
type State struct {
	Result             *estimate.Result             `json:"result,omitempty"`
	HasValidationError bool                         `json:"has_validation_error"`
	FieldErrors        map[string]validation.Detail `json:"field_errors,omitempty"`
	CalculationFailed  bool                         `json:"calculation_failed"`
	Fleet              fleet.Fleet                  `json:"fleet"`
	Inputs             map[string]string            `json:"inputs"`
}

// New builds a session seeded from the config defaults and runs the first
// calculation so a result is available immediately.
func New(cfg *config.Config) *Session {
	s := &Session{
		cfg:         cfg,
		fleet:       fleet.NewFromConfig(cfg),
		raw:         make(map[validation.Field]string, len(projectFields)),
		fieldErrors: make(map[validation.Field]error),
	}
	p := cfg.Defaults.Project
	s.raw[validation.FieldPondLength] = formatValue(p.PondLength)
	s.raw[validation.FieldPondWidth] = formatValue(p.PondWidth)
	s.raw[validation.FieldPondDepth] = formatValue(p.PondDepth)
	s.raw[validation.FieldWorkHours] = formatValue(p.WorkHours)
	s.recalculate()
	return s
}

// Config returns the session's immutable configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// SetField replaces the raw text of one project input and recalculates.
// The returned error is also recorded per field for display; it never
// clears the last good result.
func (s *Session) SetField(field validation.Field, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.raw[field]; !ok {
		return validation.ConfigurationError("unknown project field " + string(field))
	}
	s.raw[field] = raw
	s.recalculate()
	return s.fieldErrors[field]
}

// AddExcavator validates the raw values and appends a new excavator.
func (s *Session) AddExcavator(name, bucketRaw, cycleRaw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket, err := validation.ValidateField(s.cfg.Validation, validation.FieldExcavatorCapacity, bucketRaw)
	if err != nil {
		return err
	}
	cycle, err := validation.ValidateField(s.cfg.Validation, validation.FieldCycleTime, cycleRaw)
	if err != nil {
		return err
	}
	next, err := s.fleet.AddExcavator(s.cfg.FleetLimits, name, bucket, cycle)
	if err != nil {
		return err
	}
	s.fleet = next
	s.recalculate()
	return nil
}

// AddTruck validates the raw values and appends a new truck.
func (s *Session) AddTruck(name, capacityRaw, roundTripRaw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	capacity, err := validation.ValidateField(s.cfg.Validation, validation.FieldTruckCapacity, capacityRaw)
	if err != nil {
		return err
	}
	roundTrip, err := validation.ValidateField(s.cfg.Validation, validation.FieldRoundTripTime, roundTripRaw)
	if err != nil {
		return err
	}
	next, err := s.fleet.AddTruck(s.cfg.FleetLimits, name, capacity, roundTrip)
	if err != nil {
		return err
	}
	s.fleet = next
	s.recalculate()
	return nil
}

// RemoveEquipment removes the excavator or truck with the given id.
func (s *Session) RemoveEquipment(id fleet.EquipmentID) error {
	return s.mutateFleet(func(f fleet.Fleet) (fleet.Fleet, error) {
		if f.HasExcavator(id) {
			return f.RemoveExcavator(id)
		}
		return f.RemoveTruck(id)
	})
}

// UpdateEquipment validates the raw value and updates one numeric field of
// the matching equipment. The field kind selects excavator vs truck.
func (s *Session) UpdateEquipment(id fleet.EquipmentID, field validation.Field, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, err := validation.ValidateField(s.cfg.Validation, field, raw)
	if err != nil {
		return err
	}
	var next fleet.Fleet
	switch field {
	case validation.FieldExcavatorCapacity, validation.FieldCycleTime:
		next, err = s.fleet.UpdateExcavator(id, field, value)
	case validation.FieldTruckCapacity, validation.FieldRoundTripTime:
		next, err = s.fleet.UpdateTruck(id, field, value)
	default:
		return validation.ConfigurationError("field " + string(field) + " is not an equipment field")
	}
	if err != nil {
		return err
	}
	s.fleet = next
	s.recalculate()
	return nil
}

// ToggleEquipment flips the active flag of the matching equipment.
func (s *Session) ToggleEquipment(id fleet.EquipmentID) error {
	return s.mutateFleet(func(f fleet.Fleet) (fleet.Fleet, error) {
		if f.HasExcavator(id) {
			return f.ToggleExcavator(id)
		}
		return f.ToggleTruck(id)
	})
}

// Snapshot returns an atomic copy of the renderable state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		Result:            s.lastGood,
		CalculationFailed: s.calcErr != nil,
		Fleet:             s.fleet,
		Inputs:            make(map[string]string, len(s.raw)),
	}
	for field, raw := range s.raw {
		state.Inputs[string(field)] = raw
	}
	if len(s.fieldErrors) > 0 {
		state.HasValidationError = true
		state.FieldErrors = make(map[string]validation.Detail, len(s.fieldErrors))
		for field, err := range s.fieldErrors {
			state.FieldErrors[string(field)] = validation.Describe(err)
		}
	}
	return state
}

// recalculate runs one validate-then-calculate pass over the current value of
// every field. Callers must hold s.mu.
func (s *Session) recalculate() {
	s.fieldErrors = make(map[validation.Field]error)
	values := make(map[validation.Field]float64, len(projectFields))
	for _, field := range projectFields {
		value, err := validation.ValidateField(s.cfg.Validation, field, s.raw[field])
		if err != nil {
			s.fieldErrors[field] = err
			continue
		}
		values[field] = value
	}
	if len(s.fieldErrors) > 0 {
		// Last good result is retained; the errors alone are surfaced.
		return
	}

	volume := estimate.PondVolume(
		values[validation.FieldPondLength],
		values[validation.FieldPondWidth],
		values[validation.FieldPondDepth],
	)
	result, err := estimate.TimelineForFleet(s.fleet, volume, values[validation.FieldWorkHours])
	if err != nil {
		s.calcErr = err
		return
	}
	s.calcErr = nil
	s.lastGood = result
}

func (s *Session) mutateFleet(op func(fleet.Fleet) (fleet.Fleet, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := op(s.fleet)
	if err != nil {
		return err
	}
	s.fleet = next
	s.recalculate()
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
