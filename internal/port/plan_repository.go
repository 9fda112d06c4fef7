package port

import (
	"context"

	"github.com/google/uuid"

	"wanderplan/internal/domain"
)

// PlanRepository defines the contract for plan persistence.
// All owner-facing queries include ownerID so one user never reads another's plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) error
	GetByID(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Plan, int, error)
	UpdateStructuredData(ctx context.Context, plan *domain.Plan) error
	// ClaimQueued moves up to limit queued plans, plus plans abandoned in
	// processing by a crashed worker, to processing and returns them.
	ClaimQueued(ctx context.Context, limit int) ([]domain.Plan, error)
	// QueueOutdated queues every completed plan parsed by an older extractor version.
	QueueOutdated(ctx context.Context, parserVersion int) (int64, error)
	Delete(ctx context.Context, ownerID, planID uuid.UUID) error
}
