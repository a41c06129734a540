// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"codeberg.org/oliverandrich/polyglot/internal/templates"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders HTTP errors as localized pages.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"uri", c.Request().RequestURI,
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		title, _ := templates.ErrorText(c.Request().Context(), code)
		err = RenderPage(c, code, title, templates.Error(code))
	}
	if err != nil {
		slog.Error("failed to render error page", "error", err)
	}
}
