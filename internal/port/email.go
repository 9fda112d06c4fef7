package port

import (
	"context"

	"wanderplan/internal/tripplan"
)

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendTripPlan(ctx context.Context, toEmail string, plan *tripplan.TripPlan) error
}
