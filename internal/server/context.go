// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"context"

	"codeberg.org/oliverandrich/polyglot/internal/appcontext"
	"codeberg.org/oliverandrich/polyglot/internal/ctxkeys"
	"codeberg.org/oliverandrich/polyglot/internal/htmx"
	"codeberg.org/oliverandrich/polyglot/internal/locale"
	localemw "codeberg.org/oliverandrich/polyglot/internal/middleware"
	"github.com/labstack/echo/v4"
)

// customContext wraps the Echo context with appcontext.Context and copies
// asset paths and the locale set into the request context for templates.
func customContext(assets *appcontext.Assets, locales *locale.Set) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, ctxkeys.CSSPath{}, assets.CSSPath)
			ctx = context.WithValue(ctx, ctxkeys.JSPath{}, assets.JSPath)
			ctx = context.WithValue(ctx, ctxkeys.Locales{}, locales)
			c.SetRequest(c.Request().WithContext(ctx))

			tag, _ := localemw.Locale(c)
			cc := &appcontext.Context{
				Context: c,
				Htmx:    htmx.ParseRequest(c.Request()),
				Assets:  assets,
				Locales: locales,
				Locale:  tag,
			}
			return next(cc)
		}
	}
}
