package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/config"
)

// RawInputs carries the raw text of every scalar input, exactly as typed.
type RawInputs struct {
	ExcavatorCapacity string
	CycleTime         string
	TruckCapacity     string
	RoundTripTime     string
	PondLength        string
	PondWidth         string
	PondDepth         string
	WorkHours         string
}

// Get returns the raw text for the given field.
func (r RawInputs) Get(field Field) string {
	switch field {
	case FieldExcavatorCapacity:
		return r.ExcavatorCapacity
	case FieldCycleTime:
		return r.CycleTime
	case FieldTruckCapacity:
		return r.TruckCapacity
	case FieldRoundTripTime:
		return r.RoundTripTime
	case FieldPondLength:
		return r.PondLength
	case FieldPondWidth:
		return r.PondWidth
	case FieldPondDepth:
		return r.PondDepth
	case FieldWorkHours:
		return r.WorkHours
	}
	return ""
}

// Set returns a copy of the inputs with the given field replaced.
func (r RawInputs) Set(field Field, raw string) RawInputs {
	switch field {
	case FieldExcavatorCapacity:
		r.ExcavatorCapacity = raw
	case FieldCycleTime:
		r.CycleTime = raw
	case FieldTruckCapacity:
		r.TruckCapacity = raw
	case FieldRoundTripTime:
		r.RoundTripTime = raw
	case FieldPondLength:
		r.PondLength = raw
	case FieldPondWidth:
		r.PondWidth = raw
	case FieldPondDepth:
		r.PondDepth = raw
	case FieldWorkHours:
		r.WorkHours = raw
	}
	return r
}

// ProjectInputs is the validated counterpart of RawInputs.
type ProjectInputs struct {
	ExcavatorCapacity float64 `json:"excavator_capacity"`
	CycleTime         float64 `json:"cycle_time"`
	TruckCapacity     float64 `json:"truck_capacity"`
	RoundTripTime     float64 `json:"round_trip_time"`
	PondLength        float64 `json:"pond_length"`
	PondWidth         float64 `json:"pond_width"`
	PondDepth         float64 `json:"pond_depth"`
	WorkHours         float64 `json:"work_hours"`
}

// ValidateField checks raw text against the configured rule for one field.
// Checks run in order: format, zero edge case, range, precision. It is a pure
// mapping from (rules, field, raw) to a value or a tagged error.
func ValidateField(rules config.Rules, field Field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &RequiredFieldError{
			Field:    field,
			Guidance: fmt.Sprintf("Enter a value for %s", field.Label()),
		}
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, &InvalidFormatError{
			Field:    field,
			Input:    raw,
			Guidance: "Enter a plain decimal number, such as 2.5",
		}
	}

	// Zero is undefined for multiplicative quantities regardless of the
	// configured minimum; report it as an edge case, not a range miss.
	if d.IsZero() && isMultiplicative(field) {
		return 0, &EdgeCaseError{
			Field:    field,
			Issue:    "zero makes the calculation undefined",
			Guidance: fmt.Sprintf("Enter a %s greater than zero", field.Label()),
		}
	}

	rule, ok := rules.For(string(field))
	if !ok {
		return 0, ConfigurationError(fmt.Sprintf("no validation rule configured for %s", field))
	}

	value, _ := d.Float64()
	if value < rule.Min {
		return 0, &ValueTooLowError{
			Field:    field,
			Actual:   value,
			Minimum:  rule.Min,
			Guidance: rangeGuidance(field, rule),
		}
	}
	if value > rule.Max {
		return 0, &ValueTooHighError{
			Field:    field,
			Actual:   value,
			Maximum:  rule.Max,
			Guidance: rangeGuidance(field, rule),
		}
	}

	if places := decimalPlaces(d); places > rules.MaxDecimals {
		return 0, &DecimalPrecisionError{
			Field:       field,
			Actual:      places,
			MaxDecimals: rules.MaxDecimals,
			Guidance:    fmt.Sprintf("Use at most %d decimal places", rules.MaxDecimals),
		}
	}

	return value, nil
}

// ValidateInputs validates every field in the fixed order, failing fast on
// the first invalid one.
func ValidateInputs(rules config.Rules, raw RawInputs) (ProjectInputs, error) {
	var out ProjectInputs
	for _, field := range FieldOrder {
		value, err := ValidateField(rules, field, raw.Get(field))
		if err != nil {
			return ProjectInputs{}, err
		}
		switch field {
		case FieldExcavatorCapacity:
			out.ExcavatorCapacity = value
		case FieldCycleTime:
			out.CycleTime = value
		case FieldTruckCapacity:
			out.TruckCapacity = value
		case FieldRoundTripTime:
			out.RoundTripTime = value
		case FieldPondLength:
			out.PondLength = value
		case FieldPondWidth:
			out.PondWidth = value
		case FieldPondDepth:
			out.PondDepth = value
		case FieldWorkHours:
			out.WorkHours = value
		}
	}
	return out, nil
}

// isMultiplicative reports whether the field feeds a product or divisor in
// the timeline formula. Work hours is excluded here: its configured minimum
// is always above zero, and the calculation engine still guards the divide.
func isMultiplicative(field Field) bool {
	switch field {
	case FieldExcavatorCapacity, FieldCycleTime, FieldTruckCapacity, FieldRoundTripTime,
		FieldPondLength, FieldPondWidth, FieldPondDepth:
		return true
	}
	return false
}

// decimalPlaces counts typed decimal places, so "1.50" counts as two.
func decimalPlaces(d decimal.Decimal) int {
	if d.Exponent() >= 0 {
		return 0
	}
	return int(-d.Exponent())
}

func rangeGuidance(field Field, rule config.Rule) string {
	return fmt.Sprintf("Enter a %s between %v and %v", field.Label(), rule.Min, rule.Max)
}
