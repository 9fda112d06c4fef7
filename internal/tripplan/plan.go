package tripplan

// Version identifies the extraction rules. Bump it whenever Parse changes the
// shape or content of the record it produces so stored plans can be re-parsed.
const Version = 3

// TripPlan is the structured record extracted from a generated itinerary.
type TripPlan struct {
	Title           string          `json:"title"`
	Introduction    string          `json:"introduction"`
	Destination     string          `json:"destination"`
	FlightDetails   FlightDetails   `json:"flightDetails"`
	Accommodations  []Accommodation `json:"accommodations"`
	Activities      []DayPlan       `json:"activities"`
	PackingList     []string        `json:"packingList"`
	BudgetBreakdown []string        `json:"budgetBreakdown"`
	BudgetItems     []BudgetItem    `json:"budgetItems"`
	LocalCustoms    []string        `json:"localCustoms"`
	PracticalTips   []string        `json:"practicalTips"`
	Conclusion      string          `json:"conclusion"`
	PackingImage    string          `json:"packingImage"`
	BudgetImage     string          `json:"budgetImage"`
	CultureImage    string          `json:"cultureImage"`
	TipsImage       string          `json:"tipsImage"`
	ConclusionImage string          `json:"conclusionImage"`
}

// FlightDetails holds the outbound/return flight summary.
type FlightDetails struct {
	Departure  string `json:"departure"`
	Return     string `json:"return"`
	Airline    string `json:"airline"`
	Price      string `json:"price"`
	Duration   string `json:"duration"`
	BookingURL string `json:"bookingUrl"`
}

// Accommodation is one lodging option.
type Accommodation struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       string  `json:"price"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	Day     int            `json:"day"`
	Date    string         `json:"date"`
	Weather string         `json:"weather"`
	Image   string         `json:"image"`
	Items   []ActivityItem `json:"items"`
}

// ActivityItem is a time-of-day entry within a day.
type ActivityItem struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// BudgetItem is a budget line split into its category and numeric amount.
type BudgetItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// NewTripPlan returns a record with every field set to its default. Lists are
// allocated so they serialise as [] rather than null.
func NewTripPlan() *TripPlan {
	return &TripPlan{
		Accommodations:  []Accommodation{},
		Activities:      []DayPlan{},
		PackingList:     []string{},
		BudgetBreakdown: []string{},
		BudgetItems:     []BudgetItem{},
		LocalCustoms:    []string{},
		PracticalTips:   []string{},
	}
}
