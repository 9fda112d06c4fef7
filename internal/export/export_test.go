package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"wanderplan/internal/domain"
	"wanderplan/internal/export"
	"wanderplan/internal/tripplan"
)

const document = `# Kyoto in Spring
Pack your bags for a journey to Kyoto! Cherry blossoms await.
## Flight Details
- **Airline**: ANA
- **Price**: $900
## Accommodation Options
### Ryokan Sakura
![Ryokan](https://img/ryokan.jpg)
- Price: $210/night
- Rating: 4.5
- Traditional inn near Gion
## Day-by-Day Itinerary
### Day 1: April 2
- **Weather**: Mild
- **Morning**: Fushimi Inari
- **Evening**: Pontocho dinner
### Day 2: April 3
## Packing List
- Umbrella
## Budget Breakdown
- Flights: $900
- Food: about $40/day
## Local Customs and Useful Phrases
- Bow when greeting
## Practical Tips
- Get an IC card
## Conclusion
Enjoy Kyoto.`

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, export.BOM))
	rows, err := csv.NewReader(bytes.NewReader(data[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	return rows
}

func rowsBySection(rows [][]string, section string) [][]string {
	var out [][]string
	for _, r := range rows {
		if r[0] == section {
			out = append(out, r)
		}
	}
	return out
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, tripplan.Parse(document)))

	rows := readCSV(t, buf.Bytes())
	assert.Equal(t, []string{"Section", "Day", "Date", "Time", "Name", "Details", "Price", "Rating", "Amount"}, rows[0])

	overview := rowsBySection(rows, "Overview")
	require.Len(t, overview, 4)
	assert.Equal(t, "Title", overview[0][4])
	assert.Equal(t, "Kyoto in Spring", overview[0][5])
	assert.Equal(t, "Kyoto", overview[1][5])

	flight := rowsBySection(rows, "Flight")
	require.Len(t, flight, 2)
	assert.Equal(t, []string{"Flight", "", "", "", "Airline", "ANA", "", "", ""}, flight[0])

	acc := rowsBySection(rows, "Accommodation")
	require.Len(t, acc, 1)
	assert.Equal(t, "Ryokan Sakura", acc[0][4])
	assert.Equal(t, "$210/night", acc[0][6])
	assert.Equal(t, "4.5", acc[0][7])

	itinerary := rowsBySection(rows, "Itinerary")
	require.Len(t, itinerary, 3)
	assert.Equal(t, []string{"Itinerary", "1", "April 2", "", "Weather", "Mild", "", "", ""}, itinerary[0])
	assert.Equal(t, []string{"Itinerary", "1", "April 2", "Morning", "", "Fushimi Inari", "", "", ""}, itinerary[1])

	budget := rowsBySection(rows, "Budget")
	require.Len(t, budget, 2)
	assert.Equal(t, "Flights", budget[0][4])
	assert.Equal(t, "Flights: $900", budget[0][5])
	assert.Equal(t, "900.00", budget[0][8])
	assert.Equal(t, "40.00", budget[1][8])

	assert.Len(t, rowsBySection(rows, "Packing List"), 1)
	assert.Len(t, rowsBySection(rows, "Local Customs"), 1)
	assert.Len(t, rowsBySection(rows, "Practical Tips"), 1)
}

func TestWriteCSV_EmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, tripplan.NewTripPlan()))

	rows := readCSV(t, buf.Bytes())
	assert.Len(t, rows, 1)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, tripplan.Parse(document)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		export.SheetOverview, export.SheetItinerary, export.SheetAccommodations, export.SheetLists,
	}, f.GetSheetList())

	itinerary, err := f.GetRows(export.SheetItinerary)
	require.NoError(t, err)
	require.Len(t, itinerary, 4)
	assert.Equal(t, []string{"Day", "Date", "Weather", "Time", "Activity", "Image"}, itinerary[0])
	assert.Equal(t, "Fushimi Inari", itinerary[1][4])
	assert.Equal(t, "2", itinerary[3][0])

	acc, err := f.GetRows(export.SheetAccommodations)
	require.NoError(t, err)
	require.Len(t, acc, 2)
	assert.Equal(t, "Ryokan Sakura", acc[1][0])
	assert.Equal(t, "4.5", acc[1][2])
	assert.Equal(t, "https://img/ryokan.jpg", acc[1][4])

	lists, err := f.GetRows(export.SheetLists)
	require.NoError(t, err)
	assert.Len(t, lists, 1+1+2+1+1)
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	err := export.Write(&bytes.Buffer{}, domain.ExportFormat("pdf"), tripplan.NewTripPlan())
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := export.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatCSV, f)

	f, err = export.ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatXLSX, f)

	_, err = export.ParseFormat("pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Kyoto_in_Spring", export.SanitizeFilename("Kyoto in Spring!"))
	assert.Equal(t, "a_b", export.SanitizeFilename("a///b"))
	assert.Equal(t, "trip_plan", export.SanitizeFilename("***"))
	assert.Len(t, export.SanitizeFilename(strings.Repeat("x", 150)), 100)
}

func TestBuildFilename(t *testing.T) {
	date := time.Now().Format("2006-01-02")
	assert.Equal(t, "Kyoto_"+date+".xlsx", export.BuildFilename("Kyoto", domain.ExportFormatXLSX))
	assert.Equal(t, "trip_plan_"+date+".csv", export.BuildFilename("", domain.ExportFormatCSV))
}
