// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"codeberg.org/oliverandrich/polyglot/internal/config"
	"codeberg.org/oliverandrich/polyglot/internal/database"
	"github.com/urfave/cli/v3"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the page database schema",
		Commands: []*cli.Command{
			{Name: "up", Usage: "Apply all pending migrations", Action: withDB(database.RunMigrations)},
			{Name: "down", Usage: "Roll back the latest migration", Action: withDB(database.MigrateDown)},
			{Name: "reset", Usage: "Roll back all migrations", Action: withDB(database.MigrateReset)},
			{Name: "status", Usage: "Print the current schema version", Action: withDB(printVersion)},
		},
	}
}

// withDB opens the configured database without applying migrations and
// runs fn against it.
func withDB(fn func(*sql.DB) error) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		cfg := config.NewFromCLI(cmd)

		db, err := database.OpenWithoutMigrations(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = db.Close() }()

		if err := fn(db.DB); err != nil {
			return fmt.Errorf("migrate %s: %w", cmd.Name, err)
		}
		return printVersion(db.DB)
	}
}

func printVersion(db *sql.DB) error {
	version, err := database.MigrationVersion(db)
	if err != nil {
		return err
	}
	slog.Info("database schema", "version", version)
	return nil
}
