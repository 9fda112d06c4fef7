// Package tripplan extracts a structured TripPlan from the markdown itinerary
// produced by the trip planning service.
//
// The document grammar is line oriented: "## " starts a section, "### " starts
// an entry inside a section, "- " starts a bullet and "- **Label**: value" is a
// labelled bullet. Images and links use the usual ![alt](url) and [text](url)
// markup. Anything the grammar does not recognise is skipped, so Parse always
// returns a complete record.
package tripplan

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

const (
	sectionMarker    = "\n## "
	subsectionMarker = "\n### "
)

var destinationRe = regexp.MustCompile(`\bto[ \t]+([^!\n]*)`)

// sectionHandler receives the content of a routed section, without its heading.
type sectionHandler func(a *assembler, content string)

// sectionHandlers maps case-folded headings to their handler. Headings not in
// the table are ignored.
var sectionHandlers = map[string]sectionHandler{
	"introduction":                     (*assembler).introduction,
	"flight details":                   (*assembler).flightDetails,
	"accommodation options":            (*assembler).accommodations,
	"day-by-day itinerary":             (*assembler).itinerary,
	"packing list":                     (*assembler).packingList,
	"budget breakdown":                 (*assembler).budgetBreakdown,
	"local customs and useful phrases": (*assembler).localCustoms,
	"practical tips":                   (*assembler).practicalTips,
	"conclusion":                       (*assembler).conclusion,
}

// Parse extracts a TripPlan from document. It never fails: sections that are
// missing or malformed leave their fields at the defaults of NewTripPlan.
// Parse holds no state between calls and is safe for concurrent use.
func Parse(document string) *TripPlan {
	a := &assembler{plan: NewTripPlan(), folder: cases.Fold()}

	blocks := splitSections(strings.ReplaceAll(document, "\r\n", "\n"))
	first := blocks[0]
	if strings.HasPrefix(first, "## ") {
		a.route(strings.TrimPrefix(first, "## "))
	} else {
		title, rest := splitHeading(first)
		a.plan.Title = strings.TrimSpace(strings.TrimLeft(title, "#"))
		a.plan.Introduction = strings.TrimSpace(strings.Join(rest, "\n"))
	}
	for _, block := range blocks[1:] {
		a.route(block)
	}

	a.finish()
	return a.plan
}

// assembler fills one TripPlan while its document is routed.
type assembler struct {
	plan   *TripPlan
	folder cases.Caser
}

func (a *assembler) route(block string) {
	heading, rest := splitHeading(block)
	handler, ok := sectionHandlers[a.normalizeHeading(heading)]
	if !ok {
		return
	}
	handler(a, strings.Join(rest, "\n"))
}

func (a *assembler) normalizeHeading(heading string) string {
	return a.folder.String(strings.TrimSpace(heading))
}

func (a *assembler) introduction(content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}
	if a.plan.Introduction == "" {
		a.plan.Introduction = content
		return
	}
	a.plan.Introduction += "\n\n" + content
}

func (a *assembler) flightDetails(content string) {
	a.plan.FlightDetails = parseFlightDetails(content)
}

func (a *assembler) accommodations(content string) {
	a.plan.Accommodations = parseAccommodations(content)
}

func (a *assembler) itinerary(content string) {
	a.plan.Activities = parseActivities(content)
}

func (a *assembler) packingList(content string) {
	a.plan.PackingList = parseList(content)
	a.plan.PackingImage = ExtractImage(content)
}

func (a *assembler) budgetBreakdown(content string) {
	a.plan.BudgetBreakdown = parseList(content)
	a.plan.BudgetItems = parseBudgetItems(a.plan.BudgetBreakdown)
	a.plan.BudgetImage = ExtractImage(content)
}

func (a *assembler) localCustoms(content string) {
	a.plan.LocalCustoms = parseList(content)
	a.plan.CultureImage = ExtractImage(content)
}

func (a *assembler) practicalTips(content string) {
	a.plan.PracticalTips = parseList(content)
	a.plan.TipsImage = ExtractImage(content)
}

func (a *assembler) conclusion(content string) {
	a.plan.Conclusion = strings.TrimSpace(content)
	a.plan.ConclusionImage = ExtractImage(content)
}

// finish derives the fields that depend on the whole introduction. Flight
// bullets in the introduction only fill what a Flight Details section left
// empty.
func (a *assembler) finish() {
	a.plan.FlightDetails.fillBlanks(parseFlightDetails(a.plan.Introduction))
	a.plan.Destination = extractDestination(a.plan.Introduction)
}

// extractDestination returns the text after the first whole-word "to" up to
// the next "!" or line end.
func extractDestination(intro string) string {
	m := destinationRe.FindStringSubmatch(intro)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// splitSections splits on the top-level heading marker and trims every block.
// The result always has at least one element.
func splitSections(document string) []string {
	blocks := strings.Split(document, sectionMarker)
	for i := range blocks {
		blocks[i] = strings.TrimSpace(blocks[i])
	}
	return blocks
}

// splitSubBlocks returns the ### entries of a section, dropping the preamble.
// A section that opens directly with "### " keeps its first entry.
func splitSubBlocks(content string) []string {
	parts := strings.Split("\n"+content, subsectionMarker)
	blocks := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		blocks = append(blocks, strings.TrimSpace(p))
	}
	return blocks
}

// splitHeading separates the first line of a block from the remaining lines.
func splitHeading(block string) (string, []string) {
	lines := strings.Split(block, "\n")
	return lines[0], lines[1:]
}
