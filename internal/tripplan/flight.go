package tripplan

import "strings"

const bookingPhrase = "Book your flight here"

// parseFlightDetails scans content for the bold-label flight bullets and the
// booking link. Labels may appear in any order; missing ones stay empty.
func parseFlightDetails(content string) FlightDetails {
	var d FlightDetails
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, "- **Departure**:"):
			d.Departure = valueAfterColon(line)
		case strings.HasPrefix(line, "- **Return**:"):
			d.Return = valueAfterColon(line)
		case strings.HasPrefix(line, "- **Airline**:"):
			airline := valueAfterColon(line)
			if i := strings.Index(airline, "!["); i >= 0 {
				airline = airline[:i]
			}
			d.Airline = strings.TrimSpace(airline)
		case strings.HasPrefix(line, "- **Price**:"):
			d.Price = valueAfterColon(line)
		case strings.HasPrefix(line, "- **Duration**:"):
			d.Duration = valueAfterColon(line)
		case strings.HasPrefix(strings.TrimPrefix(line, "- "), "["+bookingPhrase+"]"):
			d.BookingURL = ExtractLink(line, bookingPhrase)
		}
	}
	return d
}

// fillBlanks copies every non-empty field of src into the empty fields of d.
func (d *FlightDetails) fillBlanks(src FlightDetails) {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&d.Departure, src.Departure)
	fill(&d.Return, src.Return)
	fill(&d.Airline, src.Airline)
	fill(&d.Price, src.Price)
	fill(&d.Duration, src.Duration)
	fill(&d.BookingURL, src.BookingURL)
}
