package validation

import "fmt"

// Field identifies one user-editable input. The string value doubles as the
// lookup key into the configured validation ranges.
type Field string

const (
	FieldExcavatorCapacity Field = "excavator_capacity"
	FieldCycleTime         Field = "cycle_time"
	FieldTruckCapacity     Field = "truck_capacity"
	FieldRoundTripTime     Field = "round_trip_time"
	FieldPondLength        Field = "pond_length"
	FieldPondWidth         Field = "pond_width"
	FieldPondDepth         Field = "pond_depth"
	FieldWorkHours         Field = "work_hours"
)

// FieldOrder is the fixed order in which inputs are validated.
var FieldOrder = []Field{
	FieldExcavatorCapacity,
	FieldCycleTime,
	FieldTruckCapacity,
	FieldRoundTripTime,
	FieldPondLength,
	FieldPondWidth,
	FieldPondDepth,
	FieldWorkHours,
}

// Label returns a human-readable name for the field.
func (f Field) Label() string {
	switch f {
	case FieldExcavatorCapacity:
		return "excavator bucket capacity"
	case FieldCycleTime:
		return "excavator cycle time"
	case FieldTruckCapacity:
		return "truck capacity"
	case FieldRoundTripTime:
		return "truck round-trip time"
	case FieldPondLength:
		return "pond length"
	case FieldPondWidth:
		return "pond width"
	case FieldPondDepth:
		return "pond depth"
	case FieldWorkHours:
		return "work hours per day"
	}
	return string(f)
}

// ValueTooLowError reports a value below the configured minimum.
type ValueTooLowError struct {
	Field    Field
	Actual   float64
	Minimum  float64
	Guidance string
}

func (e *ValueTooLowError) Error() string {
	return fmt.Sprintf("%s: %v is below the minimum of %v", e.Field.Label(), e.Actual, e.Minimum)
}

// ValueTooHighError reports a value above the configured maximum.
type ValueTooHighError struct {
	Field    Field
	Actual   float64
	Maximum  float64
	Guidance string
}

func (e *ValueTooHighError) Error() string {
	return fmt.Sprintf("%s: %v is above the maximum of %v", e.Field.Label(), e.Actual, e.Maximum)
}

// RequiredFieldError reports an empty input.
type RequiredFieldError struct {
	Field    Field
	Guidance string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field.Label())
}

// InvalidFormatError reports text that does not parse as a finite decimal.
type InvalidFormatError struct {
	Field    Field
	Input    string
	Guidance string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid number", e.Field.Label(), e.Input)
}

// DecimalPrecisionError reports a value with more decimal places than the
// configured cap. Spurious precision is rejected outright rather than
// silently rounded.
type DecimalPrecisionError struct {
	Field       Field
	Actual      int
	MaxDecimals int
	Guidance    string
}

func (e *DecimalPrecisionError) Error() string {
	return fmt.Sprintf("%s: %d decimal places exceeds the maximum of %d", e.Field.Label(), e.Actual, e.MaxDecimals)
}

// EdgeCaseError reports a value that passes range checks but would make the
// downstream calculation undefined, for example a zero divisor.
type EdgeCaseError struct {
	Field    Field
	Issue    string
	Guidance string
}

func (e *EdgeCaseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field.Label(), e.Issue)
	}
	return e.Issue
}

// ConfigurationError reports a rule-table problem rather than a bad input.
type ConfigurationError string

func (e ConfigurationError) Error() string { return string(e) }

// Detail is the renderable form of a validation error: a stable kind tag plus
// the structured payload, so callers never re-derive context from a message.
type Detail struct {
	Kind        string  `json:"kind"`
	Field       string  `json:"field,omitempty"`
	Message     string  `json:"message"`
	Guidance    string  `json:"guidance,omitempty"`
	Actual      any     `json:"actual,omitempty"`
	Minimum     float64 `json:"minimum,omitempty"`
	Maximum     float64 `json:"maximum,omitempty"`
	MaxDecimals int     `json:"max_decimals,omitempty"`
}

// Describe flattens a validation error into its Detail form.
func Describe(err error) Detail {
	switch e := err.(type) {
	case *ValueTooLowError:
		return Detail{Kind: "value_too_low", Field: string(e.Field), Message: e.Error(), Guidance: e.Guidance, Actual: e.Actual, Minimum: e.Minimum}
	case *ValueTooHighError:
		return Detail{Kind: "value_too_high", Field: string(e.Field), Message: e.Error(), Guidance: e.Guidance, Actual: e.Actual, Maximum: e.Maximum}
	case *RequiredFieldError:
		return Detail{Kind: "required_field", Field: string(e.Field), Message: e.Error(), Guidance: e.Guidance}
	case *InvalidFormatError:
		return Detail{Kind: "invalid_format", Field: string(e.Field), Message: e.Error(), Guidance: e.Guidance, Actual: e.Input}
	case *DecimalPrecisionError:
		return Detail{Kind: "decimal_precision", Field: string(e.Field), Message: e.Error(), Guidance: e.Guidance, Actual: e.Actual, MaxDecimals: e.MaxDecimals}
	case *EdgeCaseError:
		return Detail{Kind: "edge_case", Field: string(e.Field), Message: e.Error(), Guidance: e.Guidance}
	case ConfigurationError:
		return Detail{Kind: "configuration", Message: e.Error()}
	}
	return Detail{Kind: "unknown", Message: err.Error()}
}
