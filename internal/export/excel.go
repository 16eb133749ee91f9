// Package export writes a completed estimate to an .xlsx workbook for
// handing off to clients.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/estimate"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/fleet"
	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/validation"
)

const sheet = "Estimate"

// WriteReport writes the inputs, fleet, rates, and timeline to path.
func WriteReport(path string, inputs validation.ProjectInputs, f fleet.Fleet, res *estimate.Result) error {
	x := excelize.NewFile()
	defer x.Close()

	x.SetSheetName("Sheet1", sheet)

	rows := [][]any{
		{"Pond Digging Estimate"},
		{},
		{"Pond length (ft)", inputs.PondLength},
		{"Pond width (ft)", inputs.PondWidth},
		{"Pond depth (ft)", inputs.PondDepth},
		{"Pond volume (yd3)", estimate.PondVolume(inputs.PondLength, inputs.PondWidth, inputs.PondDepth)},
		{"Work hours per day", inputs.WorkHours},
		{},
		{"Excavation rate (yd3/hr)", res.ExcavationRate},
		{"Hauling rate (yd3/hr)", res.HaulingRate},
		{"Total hours", res.TotalHours},
		{"Timeline (days)", res.TimelineInDays},
		{},
		{"Equipment", "Capacity (yd3)", "Cycle/Trip (min)", "Active"},
	}
	for _, e := range f.Excavators {
		rows = append(rows, []any{e.Name, e.BucketCapacity, e.CycleTime, e.IsActive})
	}
	for _, t := range f.Trucks {
		rows = append(rows, []any{t.Name, t.Capacity, t.RoundTripTime, t.IsActive})
	}
	rows = append(rows, []any{})
	rows = append(rows, []any{"Assumptions"})
	for _, a := range res.Assumptions {
		rows = append(rows, []any{a})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+1, err)
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := x.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
