package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wanderplan/internal/tripplan"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendTripPlan(ctx context.Context, toEmail string, plan *tripplan.TripPlan) error {
	args := m.Called(ctx, toEmail, plan)
	return args.Error(0)
}
