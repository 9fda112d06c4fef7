package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"wanderplan/internal/tripplan"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Section",
	"Day",
	"Date",
	"Time",
	"Name",
	"Details",
	"Price",
	"Rating",
	"Amount",
}

const (
	colSection = iota
	colDay
	colDate
	colTime
	colName
	colDetails
	colPrice
	colRating
	colAmount
)

// Writer wraps csv.Writer for exporting a trip plan as one flat table.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WritePlan converts every part of a trip plan to rows and writes them.
func (w *Writer) WritePlan(plan *tripplan.TripPlan) error {
	for _, row := range planToRows(plan) {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, header and all rows of plan to out.
func WriteCSV(out io.Writer, plan *tripplan.TripPlan) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WritePlan(plan); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func newRow(section string) []string {
	row := make([]string, len(columns))
	row[colSection] = section
	return row
}

func fieldRow(section, name, value string) []string {
	row := newRow(section)
	row[colName] = name
	row[colDetails] = value
	return row
}

// planToRows flattens a plan. Empty scalar fields are skipped; list entries
// are always written.
func planToRows(plan *tripplan.TripPlan) [][]string {
	var rows [][]string

	for _, f := range overviewFields(plan) {
		if f.value != "" {
			rows = append(rows, fieldRow("Overview", f.name, f.value))
		}
	}
	for _, f := range flightFields(plan.FlightDetails) {
		if f.value != "" {
			rows = append(rows, fieldRow("Flight", f.name, f.value))
		}
	}

	for _, a := range plan.Accommodations {
		row := fieldRow("Accommodation", a.Name, a.Description)
		row[colPrice] = a.Price
		row[colRating] = formatNumber(a.Rating)
		rows = append(rows, row)
	}

	for _, d := range plan.Activities {
		if d.Weather != "" {
			row := fieldRow("Itinerary", "Weather", d.Weather)
			row[colDay] = strconv.Itoa(d.Day)
			row[colDate] = d.Date
			rows = append(rows, row)
		}
		for _, item := range d.Items {
			row := newRow("Itinerary")
			row[colDay] = strconv.Itoa(d.Day)
			row[colDate] = d.Date
			row[colTime] = item.Time
			row[colDetails] = item.Description
			rows = append(rows, row)
		}
	}

	for _, item := range plan.PackingList {
		rows = append(rows, fieldRow("Packing List", "", item))
	}
	for i, item := range plan.BudgetItems {
		row := fieldRow("Budget", item.Category, budgetLine(plan, i))
		row[colAmount] = formatMoney(item.Amount)
		rows = append(rows, row)
	}
	for _, item := range plan.LocalCustoms {
		rows = append(rows, fieldRow("Local Customs", "", item))
	}
	for _, item := range plan.PracticalTips {
		rows = append(rows, fieldRow("Practical Tips", "", item))
	}

	return rows
}

type field struct {
	name  string
	value string
}

func overviewFields(plan *tripplan.TripPlan) []field {
	return []field{
		{"Title", plan.Title},
		{"Destination", plan.Destination},
		{"Introduction", plan.Introduction},
		{"Conclusion", plan.Conclusion},
	}
}

func flightFields(fd tripplan.FlightDetails) []field {
	return []field{
		{"Departure", fd.Departure},
		{"Return", fd.Return},
		{"Airline", fd.Airline},
		{"Price", fd.Price},
		{"Duration", fd.Duration},
		{"Booking URL", fd.BookingURL},
	}
}

// budgetLine returns the raw budget line for the i-th budget item.
func budgetLine(plan *tripplan.TripPlan, i int) string {
	if i < len(plan.BudgetBreakdown) {
		return plan.BudgetBreakdown[i]
	}
	return ""
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
