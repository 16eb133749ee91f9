package main

import (
	"fmt"
	"strconv"

	"github.com/Meshed/PondDiggingCalculator-sub005/internal/export"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/config"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/estimate"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/fleet"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/validation"
)

// rawFlags carries the eight inputs exactly as the user typed them.
type rawFlags struct {
	excavatorCapacity string
	cycleTime         string
	truckCapacity     string
	roundTripTime     string
	pondLength        string
	pondWidth         string
	pondDepth         string
	workHours         string
}

// toRawInputs fills unset flags from the configured defaults so a bare
// `pondcalc estimate` works out of the box.
func (r rawFlags) toRawInputs(cfg *config.Config) validation.RawInputs {
	d := cfg.Defaults
	return validation.RawInputs{
		ExcavatorCapacity: orDefault(r.excavatorCapacity, d.Excavators[0].BucketCapacity),
		CycleTime:         orDefault(r.cycleTime, d.Excavators[0].CycleTime),
		TruckCapacity:     orDefault(r.truckCapacity, d.Trucks[0].Capacity),
		RoundTripTime:     orDefault(r.roundTripTime, d.Trucks[0].RoundTripTime),
		PondLength:        orDefault(r.pondLength, d.Project.PondLength),
		PondWidth:         orDefault(r.pondWidth, d.Project.PondWidth),
		PondDepth:         orDefault(r.pondDepth, d.Project.PondDepth),
		WorkHours:         orDefault(r.workHours, d.Project.WorkHours),
	}
}

func orDefault(raw string, fallback float64) string {
	if raw != "" {
		return raw
	}
	return strconv.FormatFloat(fallback, 'f', -1, 64)
}

// resolve validates the inputs and computes the estimate over a one-excavator
// one-truck fleet built from the validated scalars.
func resolve(configPath string, raw rawFlags) (*config.Config, validation.ProjectInputs, fleet.Fleet, *estimate.Result, error) {
	cfg := config.LoadOrFallback(configPath)

	inputs, err := validation.ValidateInputs(cfg.Validation, raw.toRawInputs(cfg))
	if err != nil {
		return cfg, validation.ProjectInputs{}, fleet.Fleet{}, nil, err
	}

	f := fleet.NewFromConfig(cfg)
	f.Excavators = f.Excavators[:1]
	f.Trucks = f.Trucks[:1]
	f.Excavators[0].BucketCapacity = inputs.ExcavatorCapacity
	f.Excavators[0].CycleTime = inputs.CycleTime
	f.Trucks[0].Capacity = inputs.TruckCapacity
	f.Trucks[0].RoundTripTime = inputs.RoundTripTime

	volume := estimate.PondVolume(inputs.PondLength, inputs.PondWidth, inputs.PondDepth)
	result, err := estimate.TimelineForFleet(f, volume, inputs.WorkHours)
	if err != nil {
		return cfg, inputs, f, nil, fmt.Errorf("computing timeline: %w", err)
	}
	return cfg, inputs, f, result, nil
}

func runEstimate(configPath string, raw rawFlags) error {
	_, inputs, _, result, err := resolve(configPath, raw)
	if err != nil {
		printInputError(err)
		return err
	}
	printEstimateReport(inputs, result)
	return nil
}

func runValidate(configPath string, raw rawFlags) error {
	cfg := config.LoadOrFallback(configPath)
	rawInputs := raw.toRawInputs(cfg)

	// Check every field so the user sees all problems, not just the first.
	invalid := 0
	for _, field := range validation.FieldOrder {
		if _, err := validation.ValidateField(cfg.Validation, field, rawInputs.Get(field)); err != nil {
			printInputError(err)
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid field(s)", invalid)
	}
	fmt.Println("All inputs valid.")
	return nil
}

func runExport(configPath string, raw rawFlags, out string) error {
	_, inputs, f, result, err := resolve(configPath, raw)
	if err != nil {
		printInputError(err)
		return err
	}
	if err := export.WriteReport(out, inputs, f, result); err != nil {
		return fmt.Errorf("exporting report: %w", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
