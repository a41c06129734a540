// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package middleware contains echo middleware specific to this site.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// LocaleKey is the echo context key holding the resolved locale.Tag.
const LocaleKey = "locale"

const headerAcceptLanguage = "Accept-Language"

// LocaleGuardConfig configures the locale guard.
type LocaleGuardConfig struct {
	// Skipper excludes requests from the guard. Defaults to DefaultLocaleSkipper.
	Skipper middleware.Skipper

	Locales *locale.Set
}

// DefaultLocaleSkipper skips static assets and infrastructure endpoints.
func DefaultLocaleSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	switch path {
	case "/health", "/favicon.ico", "/robots.txt":
		return true
	}
	return strings.HasPrefix(path, "/static/")
}

// LocaleGuard returns a guard with the default configuration.
func LocaleGuard(locales *locale.Set) echo.MiddlewareFunc {
	return LocaleGuardWithConfig(LocaleGuardConfig{Locales: locales})
}

// LocaleGuardWithConfig returns middleware that requires every path to start
// with a supported locale. It must be registered with Echo#Pre so it runs
// before routing.
//
// A request with a supported prefix has the locale stored in its context and
// the prefix removed from its path. Any other request is answered with a 302
// to the same path under the locale negotiated from Accept-Language.
func LocaleGuardWithConfig(config LocaleGuardConfig) echo.MiddlewareFunc {
	if config.Locales == nil {
		panic("echo: locale guard requires a locale set")
	}
	if config.Skipper == nil {
		config.Skipper = DefaultLocaleSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			class := config.Locales.Classify(req.URL.Path)

			if !class.Guarded {
				rd := locale.NewRedirect(
					config.Locales,
					req.URL.EscapedPath(),
					req.URL.RawQuery,
					req.Header.Get(headerAcceptLanguage),
				)
				slog.DebugContext(req.Context(), "locale redirect",
					"from", req.URL.RequestURI(),
					"to", rd.Location,
					"negotiated", rd.Negotiated,
				)
				c.Response().Header().Add(echo.HeaderVary, headerAcceptLanguage)
				return c.Redirect(rd.Status, rd.Location)
			}

			stripPrefix(req, class.Rest)
			c.SetRequest(req.WithContext(locale.NewContext(req.Context(), class.Tag)))
			c.Set(LocaleKey, class.Tag)

			return next(c)
		}
	}
}

// stripPrefix rewrites the request path so routes see it without the locale.
// Echo routes on RawPath when it is set, so RawPath is kept only while it
// still encodes the new Path.
func stripPrefix(req *http.Request, rest string) {
	raw := ""
	if req.URL.RawPath != "" {
		if _, after, ok := strings.Cut(strings.TrimPrefix(req.URL.RawPath, "/"), "/"); ok {
			raw = "/" + after
		}
	}

	req.URL.Path = rest
	req.URL.RawPath = raw
	if raw != "" && req.URL.EscapedPath() != raw {
		req.URL.RawPath = ""
	}
}

// Locale returns the locale the guard stored on c.
func Locale(c echo.Context) (locale.Tag, bool) {
	tag, ok := c.Get(LocaleKey).(locale.Tag)
	return tag, ok
}
