package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"wanderplan/internal/tripplan"
)

// Sheet names of the workbook, in tab order.
const (
	SheetOverview       = "Overview"
	SheetItinerary      = "Itinerary"
	SheetAccommodations = "Accommodations"
	SheetLists          = "Lists"
)

// WriteXLSX writes plan as a workbook with one sheet per part of the plan.
func WriteXLSX(out io.Writer, plan *tripplan.TripPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return fmt.Errorf("renaming default sheet: %w", err)
	}
	for _, name := range []string{SheetItinerary, SheetAccommodations, SheetLists} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetOverview, []interface{}{"Field", "Value"}, overviewRows(plan)},
		{SheetItinerary, []interface{}{"Day", "Date", "Weather", "Time", "Activity", "Image"}, itineraryRows(plan)},
		{SheetAccommodations, []interface{}{"Name", "Price", "Rating", "Description", "Image"}, accommodationRows(plan)},
		{SheetLists, []interface{}{"List", "Item", "Amount"}, listRows(plan)},
	}

	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.header, s.rows, headerStyle); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 24)
}

func overviewRows(plan *tripplan.TripPlan) [][]interface{} {
	var rows [][]interface{}
	for _, fl := range overviewFields(plan) {
		rows = append(rows, []interface{}{fl.name, fl.value})
	}
	for _, fl := range flightFields(plan.FlightDetails) {
		rows = append(rows, []interface{}{"Flight " + fl.name, fl.value})
	}
	return rows
}

func itineraryRows(plan *tripplan.TripPlan) [][]interface{} {
	var rows [][]interface{}
	for _, d := range plan.Activities {
		if len(d.Items) == 0 {
			rows = append(rows, []interface{}{d.Day, d.Date, d.Weather, "", "", d.Image})
			continue
		}
		for _, item := range d.Items {
			rows = append(rows, []interface{}{d.Day, d.Date, d.Weather, item.Time, item.Description, d.Image})
		}
	}
	return rows
}

func accommodationRows(plan *tripplan.TripPlan) [][]interface{} {
	rows := make([][]interface{}, 0, len(plan.Accommodations))
	for _, a := range plan.Accommodations {
		rows = append(rows, []interface{}{a.Name, a.Price, a.Rating, a.Description, a.Image})
	}
	return rows
}

func listRows(plan *tripplan.TripPlan) [][]interface{} {
	var rows [][]interface{}
	for _, item := range plan.PackingList {
		rows = append(rows, []interface{}{"Packing List", item, ""})
	}
	for i, item := range plan.BudgetItems {
		rows = append(rows, []interface{}{"Budget", budgetLine(plan, i), item.Amount})
	}
	for _, item := range plan.LocalCustoms {
		rows = append(rows, []interface{}{"Local Customs", item, ""})
	}
	for _, item := range plan.PracticalTips {
		rows = append(rows, []interface{}{"Practical Tips", item, ""})
	}
	return rows
}
