package tripplan

import (
	"strings"
)

// parseAccommodations turns each ### sub-block into one Accommodation.
func parseAccommodations(content string) []Accommodation {
	accommodations := []Accommodation{}
	for _, block := range splitSubBlocks(content) {
		name, rest := splitHeading(block)
		acc := Accommodation{Name: strings.TrimSpace(name)}

		var description []string
		for _, line := range rest {
			switch {
			case isImageLine(line):
				acc.Image = ExtractImage(line)
			case isPriceLine(line):
				acc.Price = valueAfterColon(line)
			case isRatingLine(line):
				acc.Rating = parseRating(valueAfterColon(line))
			case strings.HasPrefix(line, "- "):
				if text := strings.TrimSpace(strings.TrimPrefix(line, "- ")); text != "" {
					description = append(description, text)
				}
			}
		}
		acc.Description = strings.TrimSpace(strings.Join(description, " "))
		accommodations = append(accommodations, acc)
	}
	return accommodations
}

func isPriceLine(line string) bool {
	return strings.HasPrefix(line, "- Price:") || strings.HasPrefix(line, "- **Price**:")
}

func isRatingLine(line string) bool {
	return strings.HasPrefix(line, "- Rating:") || strings.HasPrefix(line, "- **Rating**:")
}

// parseRating reads the leading number of values like "4.5", "4.5/5" or
// "4 stars". Anything unparsable yields 0.
func parseRating(value string) float64 {
	return leadingNumber(value)
}
