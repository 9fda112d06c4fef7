package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"wanderplan/internal/domain"
	"wanderplan/internal/service"
	"wanderplan/internal/tripplan"
)

// MockPlanService is a mock implementation of service.PlanService.
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) Create(ctx context.Context, input *service.CreatePlanInput) (*domain.Plan, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanService) GetByID(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error) {
	args := m.Called(ctx, ownerID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanService) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Plan, int, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Plan), args.Int(1), args.Error(2)
}

func (m *MockPlanService) GetSourceURL(ctx context.Context, ownerID, planID uuid.UUID) (string, error) {
	args := m.Called(ctx, ownerID, planID)
	return args.String(0), args.Error(1)
}

func (m *MockPlanService) Reparse(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error) {
	args := m.Called(ctx, ownerID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanService) ProcessPlan(ctx context.Context, plan *domain.Plan, maxAttempts int) {
	m.Called(ctx, plan, maxAttempts)
}

func (m *MockPlanService) Share(ctx context.Context, input *service.SharePlanInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockPlanService) Decode(plan *domain.Plan) (*tripplan.TripPlan, error) {
	args := m.Called(plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tripplan.TripPlan), args.Error(1)
}

func (m *MockPlanService) Delete(ctx context.Context, ownerID, planID uuid.UUID) error {
	args := m.Called(ctx, ownerID, planID)
	return args.Error(0)
}
