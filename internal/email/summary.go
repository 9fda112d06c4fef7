package email

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"wanderplan/internal/tripplan"
)

// Subject returns the subject line for a shared trip plan.
func Subject(plan *tripplan.TripPlan) string {
	switch {
	case plan.Destination != "":
		return fmt.Sprintf("Your trip plan: %s", plan.Destination)
	case plan.Title != "":
		return fmt.Sprintf("Your trip plan: %s", plan.Title)
	default:
		return "Your trip plan"
	}
}

// TextBody renders the plain-text summary of a trip plan.
func TextBody(plan *tripplan.TripPlan, frontendURL string) string {
	var b strings.Builder

	if plan.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", plan.Title)
	}
	if plan.Introduction != "" {
		fmt.Fprintf(&b, "%s\n\n", plan.Introduction)
	}

	fd := plan.FlightDetails
	if fd != (tripplan.FlightDetails{}) {
		b.WriteString("Flight\n")
		writeField(&b, "Departure", fd.Departure)
		writeField(&b, "Return", fd.Return)
		writeField(&b, "Airline", fd.Airline)
		writeField(&b, "Price", fd.Price)
		writeField(&b, "Duration", fd.Duration)
		writeField(&b, "Book", fd.BookingURL)
		b.WriteString("\n")
	}

	if len(plan.Accommodations) > 0 {
		b.WriteString("Where to stay\n")
		for _, a := range plan.Accommodations {
			line := a.Name
			if a.Price != "" {
				line += " (" + a.Price + ")"
			}
			fmt.Fprintf(&b, "  - %s\n", line)
		}
		b.WriteString("\n")
	}

	if len(plan.Activities) > 0 {
		b.WriteString("Itinerary\n")
		for _, d := range plan.Activities {
			fmt.Fprintf(&b, "  Day %d %s\n", d.Day, d.Date)
			for _, item := range d.Items {
				fmt.Fprintf(&b, "    %s: %s\n", item.Time, item.Description)
			}
		}
		b.WriteString("\n")
	}

	writeList(&b, "Packing list", plan.PackingList)
	writeList(&b, "Budget", plan.BudgetBreakdown)

	if plan.Conclusion != "" {
		fmt.Fprintf(&b, "%s\n\n", plan.Conclusion)
	}
	fmt.Fprintf(&b, "Open Wanderplan: %s\n", frontendURL)
	return b.String()
}

// HTMLBody renders the HTML summary of a trip plan. Free text from the plan is
// treated as markdown; raw HTML inside it is dropped by the renderer.
func HTMLBody(plan *tripplan.TripPlan, frontendURL string) (string, error) {
	intro, err := markdownToHTML(plan.Introduction)
	if err != nil {
		return "", fmt.Errorf("rendering introduction: %w", err)
	}
	conclusion, err := markdownToHTML(plan.Conclusion)
	if err != nil {
		return "", fmt.Errorf("rendering conclusion: %w", err)
	}

	var days strings.Builder
	for _, d := range plan.Activities {
		fmt.Fprintf(&days, `<h3 style="color: #333;">Day %d %s</h3><ul>`, d.Day, html.EscapeString(d.Date))
		for _, item := range d.Items {
			fmt.Fprintf(&days, "<li><strong>%s</strong>: %s</li>",
				html.EscapeString(item.Time), html.EscapeString(item.Description))
		}
		days.WriteString("</ul>")
	}

	var stays strings.Builder
	for _, a := range plan.Accommodations {
		fmt.Fprintf(&stays, "<li><strong>%s</strong> %s</li>",
			html.EscapeString(a.Name), html.EscapeString(a.Price))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s</h2>
  %s
  <ul>%s</ul>
  %s
  %s
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #0F766E; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open Wanderplan</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Wanderplan - Trip Planning</p>
</body>
</html>`,
		html.EscapeString(Subject(plan)), intro, stays.String(), days.String(), conclusion,
		html.EscapeString(frontendURL)), nil
}

func markdownToHTML(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeField(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "  %s: %s\n", label, value)
	}
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
	b.WriteString("\n")
}
