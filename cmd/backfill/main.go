// Command backfill queues stored plans that were extracted by an older version
// of the extraction rules. The server's parse queue worker re-extracts them.
// Usage: go run ./cmd/backfill [-dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"wanderplan/internal/config"
	"wanderplan/internal/repository/postgres"
	"wanderplan/internal/tripplan"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report how many plans are outdated without queueing them")
	flag.Parse()

	if err := run(*dryRun); err != nil {
		log.Fatal(err)
	}
}

func run(dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()

	if dryRun {
		var outdated int
		err := db.GetContext(ctx, &outdated,
			`SELECT COUNT(*) FROM plans WHERE parsing_status = 'completed' AND parser_version < $1`,
			tripplan.Version)
		if err != nil {
			return fmt.Errorf("counting outdated plans: %w", err)
		}
		log.Printf("Dry run: %d plans extracted before version %d", outdated, tripplan.Version)
		return nil
	}

	planRepo := postgres.NewPlanRepo(db)
	queued, err := planRepo.QueueOutdated(ctx, tripplan.Version)
	if err != nil {
		return fmt.Errorf("queueing outdated plans: %w", err)
	}

	log.Printf("Backfill complete: %d plans queued for re-extraction at version %d", queued, tripplan.Version)
	return nil
}
