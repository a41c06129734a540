// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"codeberg.org/oliverandrich/polyglot/internal/appcontext"
	"codeberg.org/oliverandrich/polyglot/internal/config"
	"codeberg.org/oliverandrich/polyglot/internal/i18n"
	"codeberg.org/oliverandrich/polyglot/internal/locale"
	localemw "codeberg.org/oliverandrich/polyglot/internal/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// setupMiddleware registers the middleware chain. Request IDs, request
// logging and the locale guard run before routing so redirects are logged
// and routes see paths without locale prefix.
func setupMiddleware(e *echo.Echo, cfg *config.Config, catalog *i18n.Catalog, assets *appcontext.Assets) {
	e.Pre(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Pre(requestLogger())
	e.Pre(localemw.LocaleGuard(catalog.Locales()))
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxBodySize)))
	e.Use(staticCacheHeaders())
	e.Use(customContext(assets, catalog.Locales()))
	e.Use(i18nMiddleware(catalog))
}

// requestLogger returns middleware that logs requests using slog.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if tag, ok := localemw.Locale(c); ok {
				attrs = append(attrs, slog.String("locale", tag.String()))
			}

			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// i18nMiddleware attaches a localizer for the request locale. Requests the
// locale guard skipped get the default locale.
func i18nMiddleware(catalog *i18n.Catalog) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			tag, ok := locale.FromContext(req.Context())
			if !ok {
				tag = catalog.Locales().Default()
			}
			c.SetRequest(req.WithContext(catalog.WithLocale(req.Context(), tag)))
			return next(c)
		}
	}
}

// staticCacheHeaders marks content-hashed assets as immutable.
func staticCacheHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := c.Request().URL.Path
			if strings.HasPrefix(p, "/static/") {
				if isHashedAsset(p) {
					c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				} else {
					c.Response().Header().Set("Cache-Control", "no-cache")
				}
			}
			return next(c)
		}
	}
}

// isHashedAsset reports whether p looks like name.<8 lower hex>.ext.
func isHashedAsset(p string) bool {
	stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
	i := strings.LastIndexByte(stem, '.')
	if i < 1 {
		return false
	}
	hash := stem[i+1:]
	if len(hash) != 8 {
		return false
	}
	for _, r := range hash {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
