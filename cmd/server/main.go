package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/config"
	"wanderplan/internal/email/noop"
	"wanderplan/internal/email/ses"
	"wanderplan/internal/handler"
	"wanderplan/internal/port"
	"wanderplan/internal/repository/postgres"
	"wanderplan/internal/router"
	"wanderplan/internal/service"
	s3storage "wanderplan/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	planRepo := postgres.NewPlanRepo(db)

	// Initialize storage
	maxDocumentBytes := cfg.Plan.MaxDocumentBytes()
	documentStore, err := s3storage.NewDocumentStore(&cfg.S3, maxDocumentBytes)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	emailSender, err := newEmailSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT)
	planSvc := service.NewPlanService(planRepo, documentStore, emailSender, service.PlanServiceConfig{
		Bucket:           cfg.S3.Bucket,
		MaxDocumentBytes: maxDocumentBytes,
		PresignExpiry:    cfg.S3.PresignExpiry,
	})

	// Initialize handlers
	r := router.Setup(authSvc, router.Handlers{
		Health: handler.NewHealthHandler(db),
		Parse:  handler.NewParseHandler(maxDocumentBytes),
		Plan:   handler.NewPlanHandler(planSvc, cfg.S3.PresignExpiry, maxDocumentBytes),
	}, cfg.CORS.AllowedOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := service.NewParseQueueWorker(planRepo, planSvc, service.ParseQueueConfig{
		PollInterval: cfg.Queue.PollInterval(),
		MaxRetries:   cfg.Queue.MaxRetries,
		Concurrency:  cfg.Queue.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (env=%s)", cfg.Server.Port, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		<-workerDone
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-workerDone

	log.Printf("Server stopped")
	return nil
}

func newEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg)
	case "noop", "":
		log.Println("Email provider is noop; shared plans are logged, not sent")
		return noop.NewNoopSender(cfg.FrontendURL), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
