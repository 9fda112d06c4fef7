package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"wanderplan/internal/domain"
	"wanderplan/internal/port"
)

// staleClaimAfter is how long a plan may sit in processing before another
// worker may claim it. It must exceed the worker's per-plan timeout.
const staleClaimAfter = 10 * time.Minute

type planRepo struct {
	db *sqlx.DB
}

// NewPlanRepo creates a new PostgreSQL-backed PlanRepository.
func NewPlanRepo(db *sqlx.DB) port.PlanRepository {
	return &planRepo{db: db}
}

func (r *planRepo) Create(ctx context.Context, plan *domain.Plan) error {
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	if len(plan.StructuredData) == 0 {
		plan.StructuredData = []byte("{}")
	}

	query := `INSERT INTO plans (
		id, owner_id, name, title, destination,
		source_bucket, source_key, source_size,
		structured_data, parser_version,
		parsing_status, parsing_error, parse_attempts, parsed_at,
		created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7, $8,
		$9, $10,
		$11, $12, $13, $14,
		$15, $16
	)`

	_, err := r.db.ExecContext(ctx, query,
		plan.ID, plan.OwnerID, plan.Name, plan.Title, plan.Destination,
		plan.SourceBucket, plan.SourceKey, plan.SourceSize,
		plan.StructuredData, plan.ParserVersion,
		plan.ParsingStatus, plan.ParsingError, plan.ParseAttempts, plan.ParsedAt,
		plan.CreatedAt, plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("planRepo.Create: %w", err)
	}
	return nil
}

func (r *planRepo) GetByID(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error) {
	var plan domain.Plan
	err := r.db.GetContext(ctx, &plan,
		"SELECT * FROM plans WHERE id = $1 AND owner_id = $2", planID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("planRepo.GetByID: %w", err)
	}
	return &plan, nil
}

func (r *planRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Plan, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM plans WHERE owner_id = $1", ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("planRepo.ListByOwner count: %w", err)
	}

	var plans []domain.Plan
	err = r.db.SelectContext(ctx, &plans,
		`SELECT * FROM plans WHERE owner_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("planRepo.ListByOwner: %w", err)
	}
	return plans, total, nil
}

func (r *planRepo) UpdateStructuredData(ctx context.Context, plan *domain.Plan) error {
	plan.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE plans SET
			title = $1, destination = $2,
			structured_data = $3, parser_version = $4,
			parsing_status = $5, parsing_error = $6, parse_attempts = $7,
			parsed_at = $8, updated_at = $9
		 WHERE id = $10 AND owner_id = $11`,
		plan.Title, plan.Destination,
		plan.StructuredData, plan.ParserVersion,
		plan.ParsingStatus, plan.ParsingError, plan.ParseAttempts,
		plan.ParsedAt, plan.UpdatedAt,
		plan.ID, plan.OwnerID)
	if err != nil {
		return fmt.Errorf("planRepo.UpdateStructuredData: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

func (r *planRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.Plan, error) {
	now := time.Now().UTC()
	var plans []domain.Plan
	err := r.db.SelectContext(ctx, &plans,
		`UPDATE plans SET parsing_status = $1, updated_at = $2
		 WHERE id IN (
			SELECT id FROM plans
			WHERE parsing_status = $3
			   OR (parsing_status = $1 AND updated_at < $5)
			ORDER BY updated_at
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		 )
		 RETURNING *`,
		domain.ParsingStatusProcessing, now,
		domain.ParsingStatusQueued, limit,
		now.Add(-staleClaimAfter))
	if err != nil {
		return nil, fmt.Errorf("planRepo.ClaimQueued: %w", err)
	}
	return plans, nil
}

func (r *planRepo) QueueOutdated(ctx context.Context, parserVersion int) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE plans SET parsing_status = $1, parse_attempts = 0, updated_at = $2
		 WHERE parsing_status = $3 AND parser_version < $4`,
		domain.ParsingStatusQueued, time.Now().UTC(),
		domain.ParsingStatusCompleted, parserVersion)
	if err != nil {
		return 0, fmt.Errorf("planRepo.QueueOutdated: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

func (r *planRepo) Delete(ctx context.Context, ownerID, planID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM plans WHERE id = $1 AND owner_id = $2",
		planID, ownerID)
	if err != nil {
		return fmt.Errorf("planRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}
