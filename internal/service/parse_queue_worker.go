package service

import (
	"context"
	"log"
	"sync"
	"time"

	"wanderplan/internal/port"
)

const processTimeout = 2 * time.Minute

// ParseQueueConfig holds settings for the parse queue worker.
type ParseQueueConfig struct {
	PollInterval time.Duration
	MaxRetries   int
	Concurrency  int
}

// ParseQueueWorker polls for queued plans and re-extracts them from their
// stored documents.
type ParseQueueWorker struct {
	planRepo    port.PlanRepository
	planService PlanService
	cfg         ParseQueueConfig
	wg          sync.WaitGroup
}

// NewParseQueueWorker creates a new ParseQueueWorker.
func NewParseQueueWorker(planRepo port.PlanRepository, planService PlanService, cfg ParseQueueConfig) *ParseQueueWorker {
	return &ParseQueueWorker{
		planRepo:    planRepo,
		planService: planService,
		cfg:         cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight goroutines have finished.
func (w *ParseQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("parseQueueWorker: started (poll=%s, concurrency=%d, maxRetries=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency, w.cfg.MaxRetries)

	for {
		select {
		case <-ctx.Done():
			log.Printf("parseQueueWorker: shutting down, waiting for in-flight plans...")
			w.wg.Wait()
			log.Printf("parseQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			plans, err := w.planRepo.ClaimQueued(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Printf("parseQueueWorker: ClaimQueued error: %v", err)
				continue
			}

			for i := range plans {
				plan := plans[i]
				plan.ParseAttempts++

				sem <- struct{}{}
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }()

					// In-flight plans finish even after shutdown begins.
					processCtx, cancel := context.WithTimeout(context.Background(), processTimeout)
					defer cancel()

					log.Printf("parseQueueWorker: dispatching plan %s (attempt %d)", plan.ID, plan.ParseAttempts)
					w.planService.ProcessPlan(processCtx, &plan, w.cfg.MaxRetries)
				}()
			}
		}
	}
}
