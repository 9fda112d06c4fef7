package tripplan

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingNumberRe = regexp.MustCompile(`^-?\d+(\.\d+)?`)
	nonAmountRe     = regexp.MustCompile(`[^0-9.\-]+`)
	floatPrefixRe   = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)`)
)

// parseList returns every bullet line with its "- " marker removed. The rest
// of the line is kept as is.
func parseList(content string) []string {
	items := []string{}
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "- ") {
			items = append(items, strings.TrimPrefix(line, "- "))
		}
	}
	return items
}

// parseBudgetItems splits "Category: amount" budget lines. The amount keeps
// only digits, dots and minus signs before being read; unreadable amounts are 0.
func parseBudgetItems(lines []string) []BudgetItem {
	items := make([]BudgetItem, 0, len(lines))
	for _, line := range lines {
		category, value, _ := strings.Cut(line, ":")
		items = append(items, BudgetItem{
			Category: strings.Trim(category, "* \t"),
			Amount:   parseAmount(value),
		})
	}
	return items
}

func parseAmount(value string) float64 {
	digits := nonAmountRe.ReplaceAllString(value, "")
	prefix := floatPrefixRe.FindString(digits)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return f
}

// leadingNumber reads the number at the start of value, ignoring surrounding
// whitespace. It returns 0 when value does not start with a number.
func leadingNumber(value string) float64 {
	s := leadingNumberRe.FindString(strings.TrimSpace(value))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
