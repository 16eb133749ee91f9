package validation

import (
	"errors"
	"testing"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/config"
)

func testRules() config.Rules {
	return config.Fallback().Validation
}

func validRaw() RawInputs {
	return RawInputs{
		ExcavatorCapacity: "2.5",
		CycleTime:         "2.0",
		TruckCapacity:     "12.0",
		RoundTripTime:     "15.0",
		PondLength:        "40",
		PondWidth:         "25",
		PondDepth:         "5",
		WorkHours:         "8",
	}
}

func TestValidateFieldAccepts(t *testing.T) {
	cases := []struct {
		field Field
		raw   string
		want  float64
	}{
		{FieldExcavatorCapacity, "2.5", 2.5},
		{FieldExcavatorCapacity, " 2.5 ", 2.5},
		{FieldCycleTime, "0.5", 0.5},
		{FieldTruckCapacity, "12", 12},
		{FieldWorkHours, "8", 8},
		{FieldPondDepth, "5.25", 5.25},
	}
	for _, tc := range cases {
		got, err := ValidateField(testRules(), tc.field, tc.raw)
		if err != nil {
			t.Errorf("%s %q: unexpected error %v", tc.field, tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s %q = %v, want %v", tc.field, tc.raw, got, tc.want)
		}
	}
}

func TestValidateFieldBoundariesInclusive(t *testing.T) {
	rules := testRules()
	// Exactly min and exactly max are accepted.
	if _, err := ValidateField(rules, FieldExcavatorCapacity, "0.1"); err != nil {
		t.Errorf("value at min rejected: %v", err)
	}
	if _, err := ValidateField(rules, FieldExcavatorCapacity, "15"); err != nil {
		t.Errorf("value at max rejected: %v", err)
	}

	_, err := ValidateField(rules, FieldExcavatorCapacity, "0.09")
	var tooLow *ValueTooLowError
	if !errors.As(err, &tooLow) {
		t.Fatalf("below min: got %v, want ValueTooLowError", err)
	}
	if tooLow.Minimum != 0.1 || tooLow.Actual != 0.09 {
		t.Errorf("ValueTooLowError payload = %+v", tooLow)
	}
	if tooLow.Guidance == "" {
		t.Error("expected guidance text on range error")
	}

	_, err = ValidateField(rules, FieldExcavatorCapacity, "15.01")
	var tooHigh *ValueTooHighError
	if !errors.As(err, &tooHigh) {
		t.Fatalf("above max: got %v, want ValueTooHighError", err)
	}
	if tooHigh.Maximum != 15 || tooHigh.Actual != 15.01 {
		t.Errorf("ValueTooHighError payload = %+v", tooHigh)
	}
}

func TestValidateFieldRequired(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		_, err := ValidateField(testRules(), FieldPondLength, raw)
		var required *RequiredFieldError
		if !errors.As(err, &required) {
			t.Errorf("raw %q: got %v, want RequiredFieldError", raw, err)
		}
	}
}

func TestValidateFieldFormat(t *testing.T) {
	for _, raw := range []string{"abc", "1.2.3", "12ft", "--5"} {
		_, err := ValidateField(testRules(), FieldPondWidth, raw)
		var format *InvalidFormatError
		if !errors.As(err, &format) {
			t.Errorf("raw %q: got %v, want InvalidFormatError", raw, err)
			continue
		}
		if format.Input != raw {
			t.Errorf("InvalidFormatError.Input = %q, want %q", format.Input, raw)
		}
	}
}

func TestValidateFieldPrecision(t *testing.T) {
	_, err := ValidateField(testRules(), FieldExcavatorCapacity, "2.555")
	var precision *DecimalPrecisionError
	if !errors.As(err, &precision) {
		t.Fatalf("got %v, want DecimalPrecisionError", err)
	}
	if precision.Actual != 3 || precision.MaxDecimals != 2 {
		t.Errorf("DecimalPrecisionError payload = %+v", precision)
	}

	// Trailing zeros count as typed precision: "2.550" has three places.
	if _, err := ValidateField(testRules(), FieldExcavatorCapacity, "2.550"); err == nil {
		t.Error("expected precision error for trailing-zero third decimal")
	}
}

func TestValidateFieldZeroEdgeCase(t *testing.T) {
	// Zero must surface as an edge case, not a range miss, for every
	// multiplicative quantity.
	for _, field := range []Field{
		FieldExcavatorCapacity, FieldCycleTime, FieldTruckCapacity,
		FieldRoundTripTime, FieldPondLength, FieldPondWidth, FieldPondDepth,
	} {
		for _, raw := range []string{"0", "0.0", "0.00"} {
			_, err := ValidateField(testRules(), field, raw)
			var edge *EdgeCaseError
			if !errors.As(err, &edge) {
				t.Errorf("%s %q: got %v, want EdgeCaseError", field, raw, err)
			}
		}
	}
}

func TestValidateFieldMissingRule(t *testing.T) {
	_, err := ValidateField(testRules(), Field("bogus_field"), "1")
	var cfgErr ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("got %v, want ConfigurationError", err)
	}
}

func TestValidateInputsValid(t *testing.T) {
	inputs, err := ValidateInputs(testRules(), validRaw())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inputs.ExcavatorCapacity != 2.5 || inputs.CycleTime != 2.0 {
		t.Errorf("excavator values = %v / %v", inputs.ExcavatorCapacity, inputs.CycleTime)
	}
	if inputs.PondLength != 40 || inputs.PondWidth != 25 || inputs.PondDepth != 5 {
		t.Errorf("pond values = %v x %v x %v", inputs.PondLength, inputs.PondWidth, inputs.PondDepth)
	}
	if inputs.WorkHours != 8 {
		t.Errorf("work hours = %v, want 8", inputs.WorkHours)
	}
}

func TestValidateInputsFailsFastInOrder(t *testing.T) {
	raw := validRaw()
	raw.CycleTime = "bad"
	raw.PondDepth = "also bad"

	_, err := ValidateInputs(testRules(), raw)
	var format *InvalidFormatError
	if !errors.As(err, &format) {
		t.Fatalf("got %v, want InvalidFormatError", err)
	}
	// Cycle time precedes pond depth in the fixed order.
	if format.Field != FieldCycleTime {
		t.Errorf("first error field = %s, want %s", format.Field, FieldCycleTime)
	}
}

func TestValidateFieldReferentiallyTransparent(t *testing.T) {
	rules := testRules()
	for _, raw := range []string{"2.5", "", "abc", "0", "99"} {
		v1, e1 := ValidateField(rules, FieldExcavatorCapacity, raw)
		v2, e2 := ValidateField(rules, FieldExcavatorCapacity, raw)
		if v1 != v2 {
			t.Errorf("raw %q: values differ across calls: %v vs %v", raw, v1, v2)
		}
		if (e1 == nil) != (e2 == nil) {
			t.Errorf("raw %q: error presence differs across calls", raw)
		}
		if e1 != nil && e2 != nil && e1.Error() != e2.Error() {
			t.Errorf("raw %q: errors differ: %v vs %v", raw, e1, e2)
		}
	}
}

func TestDescribeCarriesPayload(t *testing.T) {
	_, err := ValidateField(testRules(), FieldWorkHours, "20")
	d := Describe(err)
	if d.Kind != "value_too_high" {
		t.Errorf("kind = %q, want value_too_high", d.Kind)
	}
	if d.Maximum != 16 {
		t.Errorf("maximum = %v, want 16", d.Maximum)
	}
	if d.Field != string(FieldWorkHours) {
		t.Errorf("field = %q, want %q", d.Field, FieldWorkHours)
	}
}
