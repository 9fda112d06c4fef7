// Command migrate applies the SQL migrations in db/migrations.
// Usage: go run ./cmd/migrate [-dir db/migrations] up|down|steps N|force V|version
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"wanderplan/internal/config"
)

const usage = "Usage: migrate [-dir path] up|down|steps N|force V|version"

func main() {
	dir := flag.String("dir", "db/migrations", "directory holding the migration files")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err := run(*dir, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(dir string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m, err := migrate.New("file://"+dir, cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch args[0] {
	case "up":
		return report("up", m.Up())
	case "down":
		return report("down", m.Down())
	case "steps":
		n, err := intArg(args, "steps")
		if err != nil {
			return err
		}
		return report(fmt.Sprintf("steps %d", n), m.Steps(n))
	case "force":
		v, err := intArg(args, "force")
		if err != nil {
			return err
		}
		if err := m.Force(v); err != nil {
			return fmt.Errorf("force %d: %w", v, err)
		}
		log.Printf("migration version forced to %d", v)
		return nil
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading version: %w", err)
		}
		fmt.Printf("version: %d, dirty: %v\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

// report logs the outcome of a migration run. ErrNoChange is not a failure.
func report(name string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("migrate %s: already up to date", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", name, err)
	}
	log.Printf("migrate %s: done", name)
	return nil
}

func intArg(args []string, cmd string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s requires a number argument", cmd)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("invalid %s argument: %w", cmd, err)
	}
	return n, nil
}
