// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/polyglot/internal/appcontext"
	"codeberg.org/oliverandrich/polyglot/internal/i18n"
	"codeberg.org/oliverandrich/polyglot/internal/locale"
	localemw "codeberg.org/oliverandrich/polyglot/internal/middleware"
	"codeberg.org/oliverandrich/polyglot/internal/templates"
	"codeberg.org/oliverandrich/polyglot/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHashedAsset(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/static/js/app.abc12345.js", true},
		{"/static/css/styles.d073ff63.css", true},
		{"/static/js/app.dev.js", false},
		{"/static/js/app.js", false},
		{"/static/js/app.ABCDEFGH.js", false},
		{"/static/js/app.abcd123.js", false},
		{"/static/js/app.abcd12345.js", false},
		{"/static/js/.abc12345.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHashedAsset(tt.path))
		})
	}
}

func TestStaticCacheHeaders(t *testing.T) {
	e := echo.New()
	e.Use(staticCacheHeaders())
	e.GET("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"hashed asset", "/static/js/app.abc12345.js", "public, max-age=31536000, immutable"},
		{"unhashed asset", "/static/js/app.js", "no-cache"},
		{"page", "/about", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expected, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestI18nMiddleware(t *testing.T) {
	catalog := testutil.NewCatalog(t)

	e := echo.New()
	e.Pre(localemw.LocaleGuard(catalog.Locales()))
	e.Use(i18nMiddleware(catalog))
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		tag, _ := locale.FromContext(ctx)
		return c.String(http.StatusOK, tag.String()+":"+i18n.T(ctx, "nav_home"))
	})
	e.GET("/health", func(c echo.Context) error {
		tag, _ := locale.FromContext(c.Request().Context())
		return c.String(http.StatusOK, tag.String())
	})

	t.Run("guarded request uses its locale", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/de/", nil))

		assert.Equal(t, "de:Startseite", rec.Body.String())
	})

	t.Run("skipped request uses default locale", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Accept-Language", "fr")
		e.ServeHTTP(rec, req)

		assert.Equal(t, "en", rec.Body.String())
	})
}

func TestCustomContext(t *testing.T) {
	set := testutil.NewLocaleSet(t)
	assets := &appcontext.Assets{CSSPath: "/static/css/styles.0badc0de.css", JSPath: "/static/js/app.0badc0de.js"}

	e := echo.New()
	e.Pre(localemw.LocaleGuard(set))
	e.Use(customContext(assets, set))

	var got *appcontext.Context
	var css string
	var locales *locale.Set
	e.GET("/", func(c echo.Context) error {
		cc, ok := c.(*appcontext.Context)
		require.True(t, ok)
		got = cc
		css = templates.CSSPath(c.Request().Context())
		locales = templates.Locales(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/he/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, locale.Tag("he"), got.Locale)
	assert.True(t, got.IsLocalized())
	assert.True(t, got.IsPartial())
	assert.Same(t, assets, got.Assets)
	assert.Equal(t, "/he/about", got.LocalizedPath("/about"))
	assert.Equal(t, assets.CSSPath, css)
	assert.Same(t, set, locales)
}
