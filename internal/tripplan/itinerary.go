package tripplan

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dayNumberRe = regexp.MustCompile(`^\d+`)
	boldItemRe  = regexp.MustCompile(`^- \*\*(.*?)\*\*:?\s*(.*)$`)
)

// parseActivities turns each ### sub-block into one DayPlan.
func parseActivities(content string) []DayPlan {
	days := []DayPlan{}
	for _, block := range splitSubBlocks(content) {
		heading, rest := splitHeading(block)
		day := DayPlan{Items: []ActivityItem{}}
		day.Day, day.Date = parseDayHeading(heading)

		for _, line := range rest {
			switch {
			case isImageLine(line):
				day.Image = ExtractImage(line)
			case strings.HasPrefix(line, "- **Weather**:"):
				day.Weather = valueAfterColon(line)
			case strings.HasPrefix(line, "- **"):
				day.Items = append(day.Items, parseActivityItem(line))
			}
		}
		days = append(days, day)
	}
	return days
}

// parseDayHeading splits "Day N: date-text" into its number and date. A number
// that cannot be read becomes 0.
func parseDayHeading(heading string) (int, string) {
	label, date, _ := strings.Cut(strings.TrimSpace(heading), ":")

	label = strings.TrimSpace(label)
	if len(label) >= 3 && strings.EqualFold(label[:3], "day") {
		label = strings.TrimSpace(label[3:])
	}

	n := 0
	if digits := dayNumberRe.FindString(label); digits != "" {
		if v, err := strconv.Atoi(digits); err == nil {
			n = v
		}
	}
	return n, strings.TrimSpace(date)
}

// parseActivityItem reads "- **Morning**: Visit the museum".
func parseActivityItem(line string) ActivityItem {
	if m := boldItemRe.FindStringSubmatch(line); m != nil {
		return ActivityItem{
			Time:        strings.TrimSpace(m[1]),
			Description: strings.TrimSpace(m[2]),
		}
	}
	// Unclosed bold label: the whole remainder is the time.
	return ActivityItem{Time: strings.TrimSpace(strings.TrimPrefix(line, "- **"))}
}
