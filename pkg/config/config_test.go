package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
version: "1.2.0"
defaults:
  excavators:
    - name: "Mid-Size Excavator"
      bucket_capacity: 1.5
      cycle_time: 2.5
  trucks:
    - name: "Tri-Axle"
      capacity: 10
      round_trip_time: 20
  project:
    pond_length: 60
    pond_width: 30
    pond_depth: 6
    work_hours: 10
fleet_limits:
  max_excavators: 5
  max_trucks: 8
validation:
  max_decimals: 2
  excavator_capacity: {min: 0.1, max: 15}
  cycle_time: {min: 0.5, max: 10}
  truck_capacity: {min: 5, max: 30}
  round_trip_time: {min: 5, max: 60}
  pond_length: {min: 1, max: 1000}
  pond_width: {min: 1, max: 1000}
  pond_depth: {min: 0.1, max: 50}
  work_hours: {min: 1, max: 16}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pond-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Version != "1.2.0" {
		t.Errorf("version = %q, want 1.2.0", cfg.Version)
	}
	if len(cfg.Defaults.Excavators) != 1 || cfg.Defaults.Excavators[0].BucketCapacity != 1.5 {
		t.Errorf("excavator defaults = %+v", cfg.Defaults.Excavators)
	}
	if cfg.FleetLimits.MaxTrucks != 8 {
		t.Errorf("max_trucks = %d, want 8", cfg.FleetLimits.MaxTrucks)
	}
	if cfg.Validation.PondDepth.Max != 50 {
		t.Errorf("pond_depth.max = %v, want 50", cfg.Validation.PondDepth.Max)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "defaults: [not: valid")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadIncomplete(t *testing.T) {
	// Syntactically valid but missing the trucks list and ranges.
	if _, err := Load(writeConfig(t, "version: \"1.0\"\n")); err == nil {
		t.Error("expected error for incomplete config")
	}
}

func TestLoadOrFallbackRecovers(t *testing.T) {
	cfg := LoadOrFallback(filepath.Join(t.TempDir(), "missing.yaml"))
	if cfg.Version != "fallback" {
		t.Errorf("version = %q, want fallback", cfg.Version)
	}
	if err := cfg.Check(); err != nil {
		t.Errorf("fallback config incomplete: %v", err)
	}
}

func TestFallbackCoversEveryCalculationPath(t *testing.T) {
	cfg := Fallback()
	if len(cfg.Defaults.Excavators) < 1 || len(cfg.Defaults.Trucks) < 1 {
		t.Fatal("fallback must seed at least one excavator and one truck")
	}
	if cfg.Defaults.Project.WorkHours <= 0 {
		t.Error("fallback work hours must be positive")
	}
	for _, field := range []string{
		"excavator_capacity", "cycle_time", "truck_capacity", "round_trip_time",
		"pond_length", "pond_width", "pond_depth", "work_hours",
	} {
		rule, ok := cfg.Validation.For(field)
		if !ok {
			t.Errorf("fallback missing rule for %s", field)
			continue
		}
		if rule.Min >= rule.Max {
			t.Errorf("fallback rule %s: min %v >= max %v", field, rule.Min, rule.Max)
		}
	}
}

func TestRulesForUnknownField(t *testing.T) {
	if _, ok := Fallback().Validation.For("not_a_field"); ok {
		t.Error("expected no rule for unknown field")
	}
}
