// Package estimate is the calculation engine: pure functions from validated
// rates and pond volume to a project timeline. Nothing here reads or writes
// shared state, so equal inputs always produce equal results.
package estimate

import (
	"fmt"
	"math"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/fleet"
)

// CubicFeetPerCubicYard converts pond dimensions (feet) to volume (yd³).
const CubicFeetPerCubicYard = 27.0

const minutesPerHour = 60.0

// Result is one completed timeline estimate. Results are immutable; a new
// calculation supersedes the previous result wholesale.
type Result struct {
	TimelineInDays int      `json:"timeline_in_days"`
	TotalHours     float64  `json:"total_hours"`
	ExcavationRate float64  `json:"excavation_rate"` // yd³/hour
	HaulingRate    float64  `json:"hauling_rate"`    // yd³/hour
	Assumptions    []string `json:"assumptions"`
}

// ErrorKind tags the defensive failure modes of the engine. These represent
// internal consistency failures, not user input problems: validation should
// have stopped every one of them upstream.
type ErrorKind string

const (
	ErrZeroRate      ErrorKind = "zero_rate"
	ErrZeroWorkHours ErrorKind = "zero_work_hours"
	ErrInvalidVolume ErrorKind = "invalid_volume"
	ErrNonFinite     ErrorKind = "non_finite"
)

// CalculationError reports that the engine could not complete.
type CalculationError struct {
	Kind   ErrorKind
	Detail string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed (%s): %s", e.Kind, e.Detail)
}

// PondVolume converts pond dimensions in feet to cubic yards. The conversion
// lives here, outside Timeline, so the engine itself is a pure function of
// rates and volume and the division by 27 happens exactly once.
func PondVolume(lengthFt, widthFt, depthFt float64) float64 {
	return lengthFt * widthFt * depthFt / CubicFeetPerCubicYard
}

// Timeline computes the project timeline from per-minute rates, pond volume
// in cubic yards, and work hours per day. The effective rate is the slower of
// excavation and hauling: dirt cannot be hauled faster than trucks cycle, and
// trucks cannot be filled faster than buckets dig.
func Timeline(excavationRatePerMin, haulingRatePerMin, pondVolumeYd3, workHoursPerDay float64) (*Result, error) {
	if workHoursPerDay <= 0 {
		return nil, &CalculationError{
			Kind:   ErrZeroWorkHours,
			Detail: fmt.Sprintf("work hours per day must be positive, got %v", workHoursPerDay),
		}
	}
	if pondVolumeYd3 <= 0 || math.IsInf(pondVolumeYd3, 0) || math.IsNaN(pondVolumeYd3) {
		return nil, &CalculationError{
			Kind:   ErrInvalidVolume,
			Detail: fmt.Sprintf("pond volume must be a positive finite number, got %v", pondVolumeYd3),
		}
	}

	excavationPerHour := excavationRatePerMin * minutesPerHour
	haulingPerHour := haulingRatePerMin * minutesPerHour

	effective := math.Min(excavationPerHour, haulingPerHour)
	if effective <= 0 {
		return nil, &CalculationError{
			Kind:   ErrZeroRate,
			Detail: "effective rate is zero; all equipment inactive or zero-valued",
		}
	}

	totalHours := pondVolumeYd3 / effective
	if math.IsInf(totalHours, 0) || math.IsNaN(totalHours) {
		return nil, &CalculationError{
			Kind:   ErrNonFinite,
			Detail: fmt.Sprintf("total hours is not finite (volume %v / rate %v)", pondVolumeYd3, effective),
		}
	}

	days := int(math.Ceil(totalHours / workHoursPerDay))
	if days < 1 {
		days = 1
	}

	bottleneck := "hauling"
	if excavationPerHour <= haulingPerHour {
		bottleneck = "excavation"
	}

	return &Result{
		TimelineInDays: days,
		TotalHours:     totalHours,
		ExcavationRate: excavationPerHour,
		HaulingRate:    haulingPerHour,
		Assumptions: []string{
			"Assumes continuous operation without weather delays",
			"Based on active equipment only",
			fmt.Sprintf("Throughput limited by %s rate", bottleneck),
		},
	}, nil
}

// TimelineForFleet aggregates active equipment rates and delegates to
// Timeline. A fleet of exactly one excavator and one truck produces the same
// result as the scalar path with the same parameters.
func TimelineForFleet(f fleet.Fleet, pondVolumeYd3, workHoursPerDay float64) (*Result, error) {
	return Timeline(f.ExcavationRate(), f.HaulingRate(), pondVolumeYd3, workHoursPerDay)
}
