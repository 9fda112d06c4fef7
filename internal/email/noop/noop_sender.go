package noop

import (
	"context"
	"log"

	"wanderplan/internal/email"
	"wanderplan/internal/port"
	"wanderplan/internal/tripplan"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs the plan summary to stdout.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendTripPlan(_ context.Context, toEmail string, plan *tripplan.TripPlan) error {
	log.Printf("[NOOP EMAIL] %q for %s:\n%s", email.Subject(plan), toEmail, email.TextBody(plan, s.frontendURL))
	return nil
}
