package main

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/estimate"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/validation"
)

func printEstimateReport(inputs validation.ProjectInputs, r *estimate.Result) {
	volume := estimate.PondVolume(inputs.PondLength, inputs.PondWidth, inputs.PondDepth)

	fmt.Println("Pond Excavation Estimate")
	fmt.Println("========================")
	fmt.Println()
	fmt.Printf("  Pond:            %s x %s x %s ft\n",
		humanize.CommafWithDigits(inputs.PondLength, 1),
		humanize.CommafWithDigits(inputs.PondWidth, 1),
		humanize.CommafWithDigits(inputs.PondDepth, 1))
	fmt.Printf("  Volume:          %s yd3\n", humanize.CommafWithDigits(volume, 1))
	fmt.Printf("  Work hours/day:  %s\n", humanize.CommafWithDigits(inputs.WorkHours, 1))
	fmt.Println()
	fmt.Printf("  Excavation rate: %s yd3/hr\n", humanize.CommafWithDigits(r.ExcavationRate, 1))
	fmt.Printf("  Hauling rate:    %s yd3/hr\n", humanize.CommafWithDigits(r.HaulingRate, 1))
	fmt.Printf("  Total hours:     %s\n", humanize.CommafWithDigits(r.TotalHours, 2))
	fmt.Println()
	fmt.Printf("  Timeline:        %d day(s)\n", r.TimelineInDays)
	fmt.Println()
	fmt.Println("Assumptions:")
	for _, a := range r.Assumptions {
		fmt.Printf("  * %s\n", a)
	}
}

func printInputError(err error) {
	d := validation.Describe(err)
	fmt.Printf("INVALID: %s\n", d.Message)
	if d.Guidance != "" {
		fmt.Printf("  * %s\n", d.Guidance)
	}
}
