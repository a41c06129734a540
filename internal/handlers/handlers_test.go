// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/polyglot/internal/appcontext"
	"codeberg.org/oliverandrich/polyglot/internal/handlers"
	"codeberg.org/oliverandrich/polyglot/internal/htmx"
	"codeberg.org/oliverandrich/polyglot/internal/i18n"
	"codeberg.org/oliverandrich/polyglot/internal/markdown"
	"codeberg.org/oliverandrich/polyglot/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlers(t *testing.T) (*handlers.Handlers, *i18n.Catalog) {
	t.Helper()
	_, repo := testutil.NewTestDB(t)
	catalog := testutil.NewCatalog(t)
	return handlers.New(repo, markdown.New(), catalog.Locales()), catalog
}

func TestNew(t *testing.T) {
	h, _ := newHandlers(t)

	assert.NotNil(t, h)
}

func TestHealth(t *testing.T) {
	h, _ := newHandlers(t)

	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/health", nil)

	err := h.Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealth_DatabaseClosed(t *testing.T) {
	db, repo := testutil.NewTestDB(t)
	h := handlers.New(repo, markdown.New(), testutil.NewLocaleSet(t))
	require.NoError(t, db.Close())

	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/health", nil)

	err := h.Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHome(t *testing.T) {
	h, catalog := newHandlers(t)

	e := echo.New()
	req := testutil.NewLocalizedRequest(catalog, "fr", http.MethodGet, "/")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Home(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!doctype html>")
	assert.Contains(t, rec.Body.String(), `<a href="/fr/about">À propos</a>`)
	assert.Contains(t, rec.Header().Values("Vary"), "HX-Request")
}

func TestHome_DefaultLocale(t *testing.T) {
	h, _ := newHandlers(t)

	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/", nil)

	err := h.Home(c)

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `<a href="/en/about">About us</a>`)
}

func TestPage(t *testing.T) {
	h, catalog := newHandlers(t)

	e := echo.New()
	req := testutil.NewLocalizedRequest(catalog, "de", http.MethodGet, "/about")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("about")

	err := h.Page(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Über uns · Polyglot</title>")
	assert.Contains(t, rec.Body.String(), "Über uns</h1>")
	assert.Equal(t, "/de/about", rec.Header().Get(htmx.HeaderPushURL))
}

func TestPage_NotFound(t *testing.T) {
	h, catalog := newHandlers(t)

	e := echo.New()
	req := testutil.NewLocalizedRequest(catalog, "he", http.MethodGet, "/contact")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("slug")
	c.SetParamValues("contact")

	err := h.Page(c)

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestPage_Partial(t *testing.T) {
	h, catalog := newHandlers(t)

	e := echo.New()
	req := testutil.NewLocalizedRequest(catalog, "en", http.MethodGet, "/contact")
	req.Header.Set(htmx.HeaderRequest, "true")
	rec := httptest.NewRecorder()
	cc := &appcontext.Context{
		Context: e.NewContext(req, rec),
		Htmx:    htmx.ParseRequest(req),
		Locale:  "en",
	}
	cc.SetParamNames("slug")
	cc.SetParamValues("contact")

	err := h.Page(cc)

	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "<!doctype html>")
	assert.Contains(t, rec.Body.String(), `<article data-slug="contact">`)
}

func TestErrorHandler_NotFound(t *testing.T) {
	catalog := testutil.NewCatalog(t)

	e := echo.New()
	req := testutil.NewLocalizedRequest(catalog, "fr", http.MethodGet, "/missing")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlers.ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page introuvable")
}

func TestErrorHandler_InternalError(t *testing.T) {
	catalog := testutil.NewCatalog(t)

	e := echo.New()
	req := testutil.NewLocalizedRequest(catalog, "en", http.MethodGet, "/boom")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlers.ErrorHandler(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestErrorHandler_Head(t *testing.T) {
	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodHead, "/missing", nil)

	handlers.ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_Committed(t *testing.T) {
	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/", nil)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	handlers.ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

