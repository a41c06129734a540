// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package database opens the SQLite page store and manages its schema.
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vinovest/sqlx"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// DefaultDSN is used when no DSN is configured.
const DefaultDSN = "./data/app.db"

// connectionPragmas apply to every pooled connection through the DSN.
var connectionPragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
}

// databasePragmas are set once after opening; they persist in the file or
// apply to the single in-memory connection.
var databasePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA temp_store = MEMORY",
	"PRAGMA mmap_size = 134217728",
	"PRAGMA cache_size = 2000",
}

// Open connects to dsn and applies pending migrations.
func Open(dsn string) (*sqlx.DB, error) {
	return open(dsn, true)
}

// OpenWithoutMigrations is Open for callers that manage migrations themselves.
func OpenWithoutMigrations(dsn string) (*sqlx.DB, error) {
	return open(dsn, false)
}

func open(dsn string, migrate bool) (*sqlx.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	inMemory := isMemory(dsn)

	if !inMemory {
		path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sqlx.Open("sqlite", withDefaultParams(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if inMemory {
		// Every connection to :memory: is a separate database.
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxLifetime(0)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(time.Hour)
	}

	if err := exec(context.Background(), conn, databasePragmas); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}

	if migrate {
		if err := RunMigrations(conn.DB); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

func isMemory(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") ||
		strings.HasPrefix(dsn, "file::memory:") ||
		strings.Contains(dsn, "mode=memory")
}

// withDefaultParams appends the immediate transaction lock and the
// connection pragmas the DSN does not set itself.
func withDefaultParams(dsn string) string {
	var params []string
	if !strings.Contains(dsn, "_txlock=") {
		params = append(params, "_txlock=immediate")
	}
	for _, pragma := range connectionPragmas {
		name, _, _ := strings.Cut(pragma, "(")
		if !strings.Contains(dsn, name) {
			params = append(params, "_pragma="+pragma)
		}
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

func exec(ctx context.Context, db *sqlx.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}
