package tripplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlightDetails_AnyOrderAndMissingLabels(t *testing.T) {
	content := "Some chatter first.\n- **Duration**: 2h\n- **Departure**: 08:00\n- Not a label: ignored\n- **Gate**: B12"

	d := parseFlightDetails(content)

	assert.Equal(t, FlightDetails{Departure: "08:00", Duration: "2h"}, d)
}

func TestParseFlightDetails_AirlineWithoutImage(t *testing.T) {
	d := parseFlightDetails("- **Airline**: Lufthansa")
	assert.Equal(t, "Lufthansa", d.Airline)
}

func TestParseFlightDetails_BulletedBookingLine(t *testing.T) {
	d := parseFlightDetails("- [Book your flight here](https://b)")
	assert.Equal(t, "https://b", d.BookingURL)
}

func TestParseAccommodations_NoPreamble(t *testing.T) {
	accs := parseAccommodations("### First Inn\n- Cozy\n### Second Inn\n- Price: $50\n- **Rating**: 3 stars")

	require.Len(t, accs, 2)
	assert.Equal(t, "First Inn", accs[0].Name)
	assert.Equal(t, "Cozy", accs[0].Description)
	assert.Equal(t, "$50", accs[1].Price)
	assert.Equal(t, float64(3), accs[1].Rating)
	assert.Empty(t, accs[1].Description)
}

func TestParseAccommodations_UnparsableRatingIsZero(t *testing.T) {
	accs := parseAccommodations("### Inn\n- Rating: excellent")

	require.Len(t, accs, 1)
	assert.Equal(t, float64(0), accs[0].Rating)
}

func TestParseAccommodations_PreambleOnly(t *testing.T) {
	accs := parseAccommodations("Nothing bookable yet.\n- stay tuned")
	assert.NotNil(t, accs)
	assert.Empty(t, accs)
}

func TestParseActivities_TwoDays(t *testing.T) {
	content := "Intro text\n### Day 1: June 1\n- **Weather**: Sunny\n- **Morning**: Museum\n- **Evening**: Dinner\n" +
		"### Day 2: June 2\n- **Weather**: Rainy\n- **Morning**: Cafe\n- **Afternoon**: Gallery"

	days := parseActivities(content)

	require.Len(t, days, 2)
	assert.Equal(t, DayPlan{
		Day: 1, Date: "June 1", Weather: "Sunny",
		Items: []ActivityItem{{Time: "Morning", Description: "Museum"}, {Time: "Evening", Description: "Dinner"}},
	}, days[0])
	assert.Equal(t, DayPlan{
		Day: 2, Date: "June 2", Weather: "Rainy",
		Items: []ActivityItem{{Time: "Morning", Description: "Cafe"}, {Time: "Afternoon", Description: "Gallery"}},
	}, days[1])
}

func TestParseActivities_DayWithoutItems(t *testing.T) {
	days := parseActivities("### Day 3: Rest day")

	require.Len(t, days, 1)
	assert.NotNil(t, days[0].Items)
	assert.Empty(t, days[0].Items)
	assert.Empty(t, days[0].Weather)
	assert.Empty(t, days[0].Image)
}

func TestParseDayHeading(t *testing.T) {
	tests := []struct {
		heading string
		day     int
		date    string
	}{
		{"Day 1: June 1", 1, "June 1"},
		{"Day 12: Saturday, 14:00 arrival", 12, "Saturday, 14:00 arrival"},
		{"day 3 (Arrival): July 4", 3, "July 4"},
		{"Day Five: Aug 5", 0, "Aug 5"},
		{"Arrival", 0, ""},
		{"", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			day, date := parseDayHeading(tt.heading)
			assert.Equal(t, tt.day, day)
			assert.Equal(t, tt.date, date)
		})
	}
}

func TestParseActivityItem(t *testing.T) {
	assert.Equal(t, ActivityItem{Time: "10:00 AM", Description: "Walking tour"}, parseActivityItem("- **10:00 AM**: Walking tour"))
	assert.Equal(t, ActivityItem{Time: "Lunch", Description: "Tapas"}, parseActivityItem("- **Lunch** Tapas"))
	assert.Equal(t, ActivityItem{Time: "Broken"}, parseActivityItem("- **Broken"))
}

func TestParseList_KeepsTextAfterMarker(t *testing.T) {
	items := parseList("intro\n- one\n-two\n- two  \n  - nested\n- - dash")

	assert.Equal(t, []string{"one", "two  ", "- dash"}, items)
}

func TestParseList_Empty(t *testing.T) {
	items := parseList("")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 1200.0, parseAmount(" $1,200 - $1,500"))
	assert.Equal(t, 49.99, parseAmount("€49.99 per day"))
	assert.Equal(t, -20.0, parseAmount("-$20 refund"))
	assert.Equal(t, 0.0, parseAmount("varies"))
	assert.Equal(t, 0.0, parseAmount(""))
}

func TestParseBudgetItems_LineWithoutColon(t *testing.T) {
	items := parseBudgetItems([]string{"Miscellaneous"})
	assert.Equal(t, []BudgetItem{{Category: "Miscellaneous"}}, items)
}

func TestSplitSubBlocks(t *testing.T) {
	assert.Equal(t, []string{"A\nx", "B"}, splitSubBlocks("pre\n### A\nx\n### B\n"))
	assert.Equal(t, []string{"A"}, splitSubBlocks("### A"))
	assert.Empty(t, splitSubBlocks("no entries"))
}
