// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/polyglot/internal/database"
	"codeberg.org/oliverandrich/polyglot/internal/i18n"
	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"codeberg.org/oliverandrich/polyglot/internal/models"
	"codeberg.org/oliverandrich/polyglot/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"
)

// NewTestDB creates an in-memory SQLite database for tests.
// Returns both the database connection and the repository for convenience.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	repo := repository.New(db)
	return db, repo
}

// NewTestPage creates a page in the database.
func NewTestPage(t *testing.T, repo *repository.Repository, tag locale.Tag, slug, title string) *models.Page {
	t.Helper()
	page := &models.Page{
		Locale: tag,
		Slug:   slug,
		Title:  title,
		Body:   "# " + title,
	}
	require.NoError(t, repo.UpsertPage(context.Background(), page))
	return page
}

// NewLocaleSet returns the locale set used across tests: en (default), fr, de, he.
func NewLocaleSet(t *testing.T) *locale.Set {
	t.Helper()
	set, err := locale.NewSet([]locale.Tag{"en", "fr", "de", "he"}, "en")
	require.NoError(t, err)
	return set
}

// NewCatalog loads the embedded translations for NewLocaleSet.
func NewCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.New(NewLocaleSet(t))
	require.NoError(t, err)
	return catalog
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// NewLocalizedRequest creates a request as the locale guard would pass it on:
// the locale is in the context and the path has no locale prefix.
func NewLocalizedRequest(catalog *i18n.Catalog, tag locale.Tag, method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(catalog.WithLocale(req.Context(), tag))
}
