package session

import (
	"testing"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/config"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/validation"
)

func newSession() *Session {
	return New(config.Fallback())
}

func TestNewSessionHasInitialResult(t *testing.T) {
	s := newSession()
	state := s.Snapshot()
	if state.Result == nil {
		t.Fatal("expected an initial result from the default inputs")
	}
	// Default pond 40x25x5 at 48 yd3/hr effective: well under one 8-hour day.
	if state.Result.TimelineInDays != 1 {
		t.Errorf("initial timeline = %d days, want 1", state.Result.TimelineInDays)
	}
	if state.HasValidationError {
		t.Error("default inputs should validate cleanly")
	}
}

func TestSetFieldRecalculates(t *testing.T) {
	s := newSession()
	if err := s.SetField(validation.FieldPondLength, "100"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state := s.Snapshot()
	// 100x25x5 ft = 462.96 yd3; 462.96/48 = 9.645 hr; ceil(9.645/8) = 2 days.
	if state.Result.TimelineInDays != 2 {
		t.Errorf("timeline = %d days, want 2", state.Result.TimelineInDays)
	}
	if state.Inputs["pond_length"] != "100" {
		t.Errorf("raw input = %q, want 100", state.Inputs["pond_length"])
	}
}

func TestInvalidEditKeepsLastGoodResult(t *testing.T) {
	s := newSession()
	before := s.Snapshot().Result

	err := s.SetField(validation.FieldPondWidth, "not a number")
	if err == nil {
		t.Fatal("expected a validation error")
	}

	state := s.Snapshot()
	if !state.HasValidationError {
		t.Error("expected has_validation_error flag")
	}
	if state.Result == nil {
		t.Fatal("last good result cleared by an invalid edit")
	}
	if state.Result.TimelineInDays != before.TimelineInDays {
		t.Errorf("result changed on invalid edit: %d -> %d", before.TimelineInDays, state.Result.TimelineInDays)
	}
	detail, ok := state.FieldErrors["pond_width"]
	if !ok {
		t.Fatal("expected error keyed by field id")
	}
	if detail.Kind != "invalid_format" {
		t.Errorf("error kind = %q, want invalid_format", detail.Kind)
	}
}

func TestValidEditClearsFieldError(t *testing.T) {
	s := newSession()
	s.SetField(validation.FieldPondWidth, "junk")
	if err := s.SetField(validation.FieldPondWidth, "30"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state := s.Snapshot()
	if state.HasValidationError {
		t.Errorf("stale validation errors: %v", state.FieldErrors)
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	s := newSession()
	if err := s.SetField(validation.Field("bogus"), "1"); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestAllEquipmentInactiveIsCalculationFailure(t *testing.T) {
	s := newSession()
	before := s.Snapshot().Result

	if err := s.ToggleEquipment("excavator-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state := s.Snapshot()
	if !state.CalculationFailed {
		t.Error("expected calculation_failed with zero effective rate")
	}
	if state.Result == nil || state.Result.TimelineInDays != before.TimelineInDays {
		t.Error("calculation failure should not clear the last good result")
	}

	if err := s.ToggleEquipment("excavator-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Snapshot().CalculationFailed {
		t.Error("calculation_failed flag should clear after recovery")
	}
}

func TestFleetEditsRecalculate(t *testing.T) {
	s := newSession()
	// A second truck doubles hauling to 96 yd3/hr; excavation (75) becomes
	// the bottleneck.
	if err := s.AddTruck("Second Truck", "12", "15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state := s.Snapshot()
	if state.Result.HaulingRate != 96 {
		t.Errorf("hauling rate = %v, want 96", state.Result.HaulingRate)
	}
	if state.Result.ExcavationRate != 75 {
		t.Errorf("excavation rate = %v, want 75", state.Result.ExcavationRate)
	}
}

func TestAddEquipmentValidatesRawValues(t *testing.T) {
	s := newSession()
	if err := s.AddExcavator("Bad", "0", "2.0"); err == nil {
		t.Error("expected edge-case error for zero capacity")
	}
	if err := s.AddTruck("Bad", "12", "999"); err == nil {
		t.Error("expected range error for round-trip time")
	}
	if len(s.Snapshot().Fleet.Excavators) != 1 {
		t.Error("fleet changed on rejected add")
	}
}

func TestUpdateEquipmentDispatchesByField(t *testing.T) {
	s := newSession()
	if err := s.UpdateEquipment("excavator-1", validation.FieldCycleTime, "1.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state := s.Snapshot()
	// 2.5 yd3 / 1.0 min = 150 yd3/hr.
	if state.Result.ExcavationRate != 150 {
		t.Errorf("excavation rate = %v, want 150", state.Result.ExcavationRate)
	}

	if err := s.UpdateEquipment("truck-1", validation.FieldRoundTripTime, "10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 12 yd3 / 10 min = 72 yd3/hr.
	if got := s.Snapshot().Result.HaulingRate; got != 72 {
		t.Errorf("hauling rate = %v, want 72", got)
	}
}

func TestRemoveLastEquipmentRejected(t *testing.T) {
	s := newSession()
	if err := s.RemoveEquipment("truck-1"); err == nil {
		t.Error("expected error removing the last truck")
	}
	if len(s.Snapshot().Fleet.Trucks) != 1 {
		t.Error("fleet changed on rejected remove")
	}
}
