// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package appcontext provides the custom Echo context.
package appcontext

import (
	"codeberg.org/oliverandrich/polyglot/internal/htmx"
	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"github.com/labstack/echo/v4"
)

// Assets holds paths to static assets.
type Assets struct {
	CSSPath string
	JSPath  string
}

// Context is a custom Echo context with typed fields for htmx, assets and locale.
type Context struct {
	echo.Context
	Htmx    *htmx.Request
	Assets  *Assets
	Locales *locale.Set
	Locale  locale.Tag // empty for requests the locale guard skipped
}

// IsLocalized returns true if the request passed the locale guard.
func (c *Context) IsLocalized() bool {
	return c.Locale != ""
}

// IsPartial returns true if only the main fragment should be rendered.
func (c *Context) IsPartial() bool {
	return c.Htmx != nil && c.Htmx.IsHtmx && !c.Htmx.IsBoosted && !c.Htmx.IsHistoryRestore
}

// LocalizedPath prefixes path with the request locale.
func (c *Context) LocalizedPath(path string) string {
	tag := c.Locale
	if tag == "" && c.Locales != nil {
		tag = c.Locales.Default()
	}
	return locale.Target(tag, path, "")
}
