// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"codeberg.org/oliverandrich/polyglot/internal/appcontext"
	"codeberg.org/oliverandrich/polyglot/internal/htmx"
	"codeberg.org/oliverandrich/polyglot/internal/templates"
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render renders a templ component with the given status code.
func Render(c echo.Context, statusCode int, component templ.Component) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := component.Render(c.Request().Context(), buf); err != nil {
		return err
	}

	return c.HTML(statusCode, buf.String())
}

// RenderPage renders content inside the layout, or only content when htmx
// asked for a fragment.
func RenderPage(c echo.Context, statusCode int, title string, content templ.Component) error {
	htmx.MarkVary(c.Response().Header())

	if cc, ok := c.(*appcontext.Context); ok && cc.IsPartial() {
		return Render(c, statusCode, content)
	}

	return Render(c, statusCode, templates.Layout(title, c.Request().URL.Path, content))
}
