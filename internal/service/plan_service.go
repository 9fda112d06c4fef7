package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"wanderplan/internal/domain"
	"wanderplan/internal/port"
	"wanderplan/internal/tripplan"
)

const (
	sourceContentType = "text/markdown; charset=utf-8"
	defaultPlanName   = "Untitled plan"
	maxPlanNameRunes  = 255
)

// PlanServiceConfig holds storage and size settings for the plan service.
type PlanServiceConfig struct {
	Bucket           string
	MaxDocumentBytes int64
	PresignExpiry    int64
}

// CreatePlanInput is the DTO for storing and parsing a new trip plan document.
type CreatePlanInput struct {
	OwnerID  uuid.UUID
	Name     string
	Document string
}

// SharePlanInput is the DTO for emailing a parsed plan.
type SharePlanInput struct {
	OwnerID uuid.UUID
	PlanID  uuid.UUID
	Email   string
}

// PlanService defines the trip plan management contract.
type PlanService interface {
	Create(ctx context.Context, input *CreatePlanInput) (*domain.Plan, error)
	GetByID(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Plan, int, error)
	GetSourceURL(ctx context.Context, ownerID, planID uuid.UUID) (string, error)
	Reparse(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error)
	ProcessPlan(ctx context.Context, plan *domain.Plan, maxAttempts int)
	Share(ctx context.Context, input *SharePlanInput) error
	Decode(plan *domain.Plan) (*tripplan.TripPlan, error)
	Delete(ctx context.Context, ownerID, planID uuid.UUID) error
}

type planService struct {
	planRepo port.PlanRepository
	storage  port.ObjectStorage
	sender   port.EmailSender
	cfg      PlanServiceConfig
}

// NewPlanService creates a new PlanService implementation.
func NewPlanService(
	planRepo port.PlanRepository,
	storage port.ObjectStorage,
	sender port.EmailSender,
	cfg PlanServiceConfig,
) PlanService {
	return &planService{
		planRepo: planRepo,
		storage:  storage,
		sender:   sender,
		cfg:      cfg,
	}
}

// SourceKey returns the object key under which a plan's raw document is stored.
func SourceKey(ownerID, planID uuid.UUID) string {
	return fmt.Sprintf("owners/%s/plans/%s/source.md", ownerID, planID)
}

// ValidateDocument checks a raw document against the size limit and text encoding.
func ValidateDocument(document string, maxBytes int64) error {
	if strings.TrimSpace(document) == "" {
		return domain.ErrDocumentEmpty
	}
	if maxBytes > 0 && int64(len(document)) > maxBytes {
		return domain.ErrDocumentTooLarge
	}
	if !utf8.ValidString(document) {
		return domain.ErrDocumentNotText
	}
	return nil
}

func (s *planService) Create(ctx context.Context, input *CreatePlanInput) (*domain.Plan, error) {
	if err := ValidateDocument(input.Document, s.cfg.MaxDocumentBytes); err != nil {
		return nil, err
	}

	planID := uuid.New()
	key := SourceKey(input.OwnerID, planID)
	size := int64(len(input.Document))

	log.Printf("planService.Create: uploading plan %s (%d bytes) for owner %s", planID, size, input.OwnerID)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        strings.NewReader(input.Document),
		ContentType: sourceContentType,
		Size:        size,
		Metadata: map[string]string{
			"owner-id": input.OwnerID.String(),
			"plan-id":  planID.String(),
		},
	})
	if err != nil {
		log.Printf("planService.Create: upload failed for plan %s: %v", planID, err)
		return nil, domain.ErrUploadFailed
	}

	plan := &domain.Plan{
		ID:           planID,
		OwnerID:      input.OwnerID,
		Name:         strings.TrimSpace(input.Name),
		SourceBucket: s.cfg.Bucket,
		SourceKey:    key,
		SourceSize:   size,
	}
	if err := applyRecord(plan, tripplan.Parse(input.Document)); err != nil {
		s.removeSource(ctx, plan)
		return nil, fmt.Errorf("planService.Create: %w", err)
	}
	if plan.Name == "" {
		plan.Name = plan.Title
	}
	if plan.Name == "" {
		plan.Name = defaultPlanName
	}
	plan.Name = truncateRunes(plan.Name, maxPlanNameRunes)

	if err := s.planRepo.Create(ctx, plan); err != nil {
		log.Printf("planService.Create: failed to persist plan %s: %v", planID, err)
		s.removeSource(ctx, plan)
		return nil, fmt.Errorf("creating plan: %w", err)
	}

	log.Printf("planService.Create: plan %s parsed (title=%q, destination=%q)", plan.ID, plan.Title, plan.Destination)
	return plan, nil
}

func (s *planService) GetByID(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error) {
	return s.planRepo.GetByID(ctx, ownerID, planID)
}

func (s *planService) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Plan, int, error) {
	return s.planRepo.ListByOwner(ctx, ownerID, offset, limit)
}

func (s *planService) GetSourceURL(ctx context.Context, ownerID, planID uuid.UUID) (string, error) {
	plan, err := s.planRepo.GetByID(ctx, ownerID, planID)
	if err != nil {
		return "", err
	}
	url, err := s.storage.GetPresignedURL(ctx, plan.SourceBucket, plan.SourceKey, s.cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("planService.GetSourceURL: %w", err)
	}
	return url, nil
}

func (s *planService) Reparse(ctx context.Context, ownerID, planID uuid.UUID) (*domain.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, ownerID, planID)
	if err != nil {
		return nil, err
	}

	plan.ParsingStatus = domain.ParsingStatusQueued
	plan.ParsingError = ""
	plan.ParseAttempts = 0
	if err := s.planRepo.UpdateStructuredData(ctx, plan); err != nil {
		return nil, fmt.Errorf("planService.Reparse: %w", err)
	}

	log.Printf("planService.Reparse: plan %s queued for re-extraction", plan.ID)
	return plan, nil
}

// ProcessPlan re-extracts a claimed plan from its stored document. Transient
// storage failures requeue the plan until maxAttempts is reached, then mark it
// failed.
func (s *planService) ProcessPlan(ctx context.Context, plan *domain.Plan, maxAttempts int) {
	raw, err := s.storage.Download(ctx, plan.SourceBucket, plan.SourceKey)
	if err != nil {
		errMsg := fmt.Sprintf("downloading document: %v", err)
		// Retrying cannot bring back a missing or oversized document.
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDocumentTooLarge) {
			s.failParsing(ctx, plan, errMsg)
			return
		}
		s.handleProcessError(ctx, plan, errMsg, maxAttempts)
		return
	}

	if err := applyRecord(plan, tripplan.Parse(string(raw))); err != nil {
		s.failParsing(ctx, plan, err.Error())
		return
	}

	if err := s.planRepo.UpdateStructuredData(ctx, plan); err != nil {
		log.Printf("planService.ProcessPlan: failed to save results for %s: %v", plan.ID, err)
		return
	}
	log.Printf("planService.ProcessPlan: plan %s parsed successfully (version %d)", plan.ID, plan.ParserVersion)
}

func (s *planService) handleProcessError(ctx context.Context, plan *domain.Plan, errMsg string, maxAttempts int) {
	if plan.ParseAttempts >= maxAttempts {
		s.failParsing(ctx, plan, errMsg)
		return
	}

	plan.ParsingStatus = domain.ParsingStatusQueued
	plan.ParsingError = errMsg
	if err := s.planRepo.UpdateStructuredData(ctx, plan); err != nil {
		log.Printf("planService.handleProcessError: failed to requeue plan %s: %v", plan.ID, err)
		return
	}
	log.Printf("planService.handleProcessError: plan %s requeued (attempt %d/%d): %s",
		plan.ID, plan.ParseAttempts, maxAttempts, errMsg)
}

func (s *planService) failParsing(ctx context.Context, plan *domain.Plan, errMsg string) {
	log.Printf("planService.failParsing: plan %s failed: %s", plan.ID, errMsg)
	plan.ParsingStatus = domain.ParsingStatusFailed
	plan.ParsingError = errMsg
	if err := s.planRepo.UpdateStructuredData(ctx, plan); err != nil {
		log.Printf("planService.failParsing: failed to update status for %s: %v", plan.ID, err)
	}
}

func (s *planService) Share(ctx context.Context, input *SharePlanInput) error {
	recipient, err := mail.ParseAddress(strings.TrimSpace(input.Email))
	if err != nil {
		return domain.ErrInvalidEmail
	}

	plan, err := s.planRepo.GetByID(ctx, input.OwnerID, input.PlanID)
	if err != nil {
		return err
	}
	record, err := s.Decode(plan)
	if err != nil {
		return err
	}

	if err := s.sender.SendTripPlan(ctx, recipient.Address, record); err != nil {
		return fmt.Errorf("planService.Share: %w", err)
	}
	log.Printf("planService.Share: plan %s sent to %s", plan.ID, recipient.Address)
	return nil
}

func (s *planService) Decode(plan *domain.Plan) (*tripplan.TripPlan, error) {
	if plan.ParserVersion == 0 || len(plan.StructuredData) == 0 {
		return nil, domain.ErrPlanNotParsed
	}
	record := tripplan.NewTripPlan()
	if err := json.Unmarshal(plan.StructuredData, record); err != nil {
		return nil, fmt.Errorf("decoding plan %s: %w", plan.ID, err)
	}
	return record, nil
}

func (s *planService) Delete(ctx context.Context, ownerID, planID uuid.UUID) error {
	plan, err := s.planRepo.GetByID(ctx, ownerID, planID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, plan.SourceBucket, plan.SourceKey); err != nil {
		return fmt.Errorf("planService.Delete: %w", err)
	}
	if err := s.planRepo.Delete(ctx, ownerID, planID); err != nil {
		return err
	}
	log.Printf("planService.Delete: plan %s deleted", planID)
	return nil
}

func (s *planService) removeSource(ctx context.Context, plan *domain.Plan) {
	if err := s.storage.Delete(ctx, plan.SourceBucket, plan.SourceKey); err != nil {
		log.Printf("planService: failed to remove source for plan %s: %v", plan.ID, err)
	}
}

// applyRecord stores an extracted record on the plan and marks it completed.
func applyRecord(plan *domain.Plan, record *tripplan.TripPlan) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	now := time.Now().UTC()
	plan.Title = record.Title
	plan.Destination = record.Destination
	plan.StructuredData = data
	plan.ParserVersion = tripplan.Version
	plan.ParsingStatus = domain.ParsingStatusCompleted
	plan.ParsingError = ""
	plan.ParsedAt = &now
	return nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
