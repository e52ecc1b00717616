// Command migrate applies the embedded schema migrations and exits.
// The gateway does the same at startup unless migrations.autoMigrate is off.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"gateway/config"
	"gateway/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "Maximum time to spend applying migrations")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Schema is up to date")
}

func run(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return postgres.RunMigrations(ctx, sqlDB)
}
