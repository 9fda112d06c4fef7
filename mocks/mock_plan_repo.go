package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"wanderplan/internal/domain"
)

// MockPlanRepo is a mock implementation of port.PlanRepository.
type MockPlanRepo struct {
	mock.Mock
}

func (m *MockPlanRepo) Create(ctx context.Context, plan *domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepo) GetByID(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error) {
	args := m.Called(ctx, ownerID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Plan, int, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Plan), args.Int(1), args.Error(2)
}

func (m *MockPlanRepo) UpdateStructuredData(ctx context.Context, plan *domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.Plan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanRepo) QueueOutdated(ctx context.Context, parserVersion int) (int64, error) {
	args := m.Called(ctx, parserVersion)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlanRepo) Delete(ctx context.Context, ownerID, planID uuid.UUID) error {
	args := m.Called(ctx, ownerID, planID)
	return args.Error(0)
}
