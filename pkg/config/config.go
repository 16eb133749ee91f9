package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a calculator config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("incomplete config: %w", err)
	}
	return &cfg, nil
}

// LoadOrFallback loads the config at path, falling back to the built-in
// defaults on any load or completeness failure. The fallback is complete
// enough to run every calculation path, so a bad config file is logged but
// never surfaced as a user-facing error.
func LoadOrFallback(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Printf("[WARN] config %s unusable (%v); using built-in defaults", path, err)
		return Fallback()
	}
	return cfg
}

// Check verifies the config can drive every calculation path.
func (c *Config) Check() error {
	if len(c.Defaults.Excavators) == 0 {
		return fmt.Errorf("defaults.excavators must contain at least one excavator")
	}
	if len(c.Defaults.Trucks) == 0 {
		return fmt.Errorf("defaults.trucks must contain at least one truck")
	}
	if c.FleetLimits.MaxExcavators < 1 || c.FleetLimits.MaxTrucks < 1 {
		return fmt.Errorf("fleet_limits must allow at least one of each equipment type")
	}
	if c.Validation.MaxDecimals < 0 {
		return fmt.Errorf("validation.max_decimals must be >= 0")
	}
	for _, field := range []string{
		"excavator_capacity", "cycle_time", "truck_capacity", "round_trip_time",
		"pond_length", "pond_width", "pond_depth", "work_hours",
	} {
		rule, ok := c.Validation.For(field)
		if !ok {
			return fmt.Errorf("validation range for %s missing", field)
		}
		if rule.Min > rule.Max {
			return fmt.Errorf("validation.%s: min %.2f exceeds max %.2f", field, rule.Min, rule.Max)
		}
		if rule.Max == 0 {
			return fmt.Errorf("validation.%s: range not set", field)
		}
	}
	return nil
}

// Fallback returns the hardcoded default configuration. It mirrors the shape
// of the external document and covers one excavator, one truck, project
// scalars, and full validation ranges.
func Fallback() *Config {
	return &Config{
		Version: "fallback",
		Defaults: Defaults{
			Excavators: []ExcavatorDefault{
				{Name: "CAT 320 Excavator", BucketCapacity: 2.5, CycleTime: 2.0},
			},
			Trucks: []TruckDefault{
				{Name: "Standard Dump Truck", Capacity: 12.0, RoundTripTime: 15.0},
			},
			Project: ProjectDefaults{
				PondLength: 40,
				PondWidth:  25,
				PondDepth:  5,
				WorkHours:  8,
			},
		},
		FleetLimits: FleetLimits{
			MaxExcavators: 10,
			MaxTrucks:     20,
		},
		Validation: Rules{
			MaxDecimals:       2,
			ExcavatorCapacity: Rule{Min: 0.1, Max: 15.0},
			CycleTime:         Rule{Min: 0.5, Max: 10.0},
			TruckCapacity:     Rule{Min: 5.0, Max: 30.0},
			RoundTripTime:     Rule{Min: 5.0, Max: 60.0},
			PondLength:        Rule{Min: 1.0, Max: 1000.0},
			PondWidth:         Rule{Min: 1.0, Max: 1000.0},
			PondDepth:         Rule{Min: 0.1, Max: 50.0},
			WorkHours:         Rule{Min: 1.0, Max: 16.0},
		},
	}
}
