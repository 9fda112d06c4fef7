// Package export renders parsed trip plans as downloadable files.
package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"wanderplan/internal/domain"
	"wanderplan/internal/tripplan"
)

// Write renders plan in the given format.
func Write(out io.Writer, format domain.ExportFormat, plan *tripplan.TripPlan) error {
	switch format {
	case domain.ExportFormatCSV:
		return WriteCSV(out, plan)
	case domain.ExportFormatXLSX:
		return WriteXLSX(out, plan)
	default:
		return domain.ErrUnsupportedExportFormat
	}
}

// ParseFormat maps a query value to an export format. An empty value means CSV.
func ParseFormat(s string) (domain.ExportFormat, error) {
	switch domain.ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", domain.ExportFormatCSV:
		return domain.ExportFormatCSV, nil
	case domain.ExportFormatXLSX:
		return domain.ExportFormatXLSX, nil
	default:
		return "", domain.ErrUnsupportedExportFormat
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a plan name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "trip_plan"
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_plan_name}_{YYYY-MM-DD}.{format}
func BuildFilename(planName string, format domain.ExportFormat) string {
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(planName), date, format)
}
