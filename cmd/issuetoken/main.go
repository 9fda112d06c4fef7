// Command issuetoken mints an access token for a plan owner. Accounts live in
// the upstream identity service; this is for local development and support.
// Usage: go run ./cmd/issuetoken -email someone@example.com [-user <uuid>]
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"wanderplan/internal/config"
	"wanderplan/internal/service"
)

func main() {
	userFlag := flag.String("user", "", "owner ID (UUID); a new one is generated when empty")
	email := flag.String("email", "", "owner email, used as the default share recipient")
	flag.Parse()

	if err := run(*userFlag, *email); err != nil {
		log.Fatal(err)
	}
}

func run(userFlag, email string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	userID := uuid.New()
	if userFlag != "" {
		userID, err = uuid.Parse(userFlag)
		if err != nil {
			return fmt.Errorf("invalid -user: %w", err)
		}
	}

	token, err := service.NewAuthService(cfg.JWT).IssueToken(userID, email)
	if err != nil {
		return fmt.Errorf("issuing token: %w", err)
	}

	log.Printf("Issued token for owner %s (expires %s)", userID, token.ExpiresAt.Format(time.RFC3339))
	fmt.Println(token.AccessToken)
	return nil
}
