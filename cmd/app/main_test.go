// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/oliverandrich/polyglot/internal/database"
	"codeberg.org/oliverandrich/polyglot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dsn string, args ...string) error {
	t.Helper()
	argv := append([]string{"app", "--database-dsn", dsn, "--log-level", "error"}, args...)
	return newCommand().Run(context.Background(), argv)
}

func TestPagesImportAndDelete(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "app.db")
	src := filepath.Join(dir, "content")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "fr"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "fr", "faq.md"), []byte("# Questions\n\nRéponses."), 0o644))

	require.NoError(t, run(t, dsn, "pages", "import", src))

	db, err := database.Open(dsn)
	require.NoError(t, err)
	repo := repository.New(db)
	page, err := repo.GetPage(context.Background(), "fr", "faq")
	require.NoError(t, err)
	assert.Equal(t, "Questions", page.Title)
	require.NoError(t, db.Close())

	require.NoError(t, run(t, dsn, "pages", "list"))
	require.NoError(t, run(t, dsn, "pages", "delete", "fr", "faq"))
	assert.ErrorIs(t, run(t, dsn, "pages", "delete", "fr", "faq"), repository.ErrNotFound)
	assert.Error(t, run(t, dsn, "pages", "delete", "es", "faq"))
	assert.Error(t, run(t, dsn, "pages", "import"))
}

func TestMigrateCommands(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "app.db")

	require.NoError(t, run(t, dsn, "migrate", "up"))
	require.NoError(t, run(t, dsn, "migrate", "down"))

	db, err := database.OpenWithoutMigrations(dsn)
	require.NoError(t, err)
	version, err := database.MigrationVersion(db.DB)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
	require.NoError(t, db.Close())

	require.NoError(t, run(t, dsn, "migrate", "reset"))
	require.NoError(t, run(t, dsn, "migrate", "status"))
}
