package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderplan/internal/email"
	"wanderplan/internal/tripplan"
)

func samplePlan() *tripplan.TripPlan {
	plan := tripplan.NewTripPlan()
	plan.Title = "Lisbon Getaway"
	plan.Destination = "Lisbon"
	plan.Introduction = "Get ready for **sunshine** <script>alert(1)</script>"
	plan.FlightDetails.Airline = "TAP"
	plan.Accommodations = []tripplan.Accommodation{{Name: "Hotel <Alfama>", Price: "$120/night"}}
	plan.Activities = []tripplan.DayPlan{{
		Day: 1, Date: "June 1",
		Items: []tripplan.ActivityItem{{Time: "Morning", Description: "Tram 28"}},
	}}
	plan.PackingList = []string{"Sunscreen"}
	plan.Conclusion = "Boa viagem!"
	return plan
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Your trip plan: Lisbon", email.Subject(samplePlan()))

	noDest := samplePlan()
	noDest.Destination = ""
	assert.Equal(t, "Your trip plan: Lisbon Getaway", email.Subject(noDest))

	assert.Equal(t, "Your trip plan", email.Subject(tripplan.NewTripPlan()))
}

func TestTextBody(t *testing.T) {
	body := email.TextBody(samplePlan(), "https://app.example")

	assert.Contains(t, body, "Lisbon Getaway")
	assert.Contains(t, body, "  Airline: TAP")
	assert.Contains(t, body, "  - Hotel <Alfama> ($120/night)")
	assert.Contains(t, body, "  Day 1 June 1")
	assert.Contains(t, body, "    Morning: Tram 28")
	assert.Contains(t, body, "Packing list\n  - Sunscreen")
	assert.Contains(t, body, "Open Wanderplan: https://app.example")
	assert.NotContains(t, body, "Budget")
}

func TestTextBody_EmptyPlan(t *testing.T) {
	body := email.TextBody(tripplan.NewTripPlan(), "https://app.example")

	assert.Equal(t, "Open Wanderplan: https://app.example\n", body)
}

func TestHTMLBody(t *testing.T) {
	body, err := email.HTMLBody(samplePlan(), "https://app.example")
	require.NoError(t, err)

	assert.Contains(t, body, "<strong>sunshine</strong>")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Hotel &lt;Alfama&gt;")
	assert.Contains(t, body, "<li><strong>Morning</strong>: Tram 28</li>")
	assert.Contains(t, body, `href="https://app.example"`)
}
