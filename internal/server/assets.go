// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"log/slog"
	"net/http"

	"codeberg.org/oliverandrich/polyglot/internal/appcontext"
	"codeberg.org/oliverandrich/polyglot/internal/assets"
	"github.com/labstack/echo/v4"
)

// findAssets returns asset paths from the embedded manifest.
func findAssets() *appcontext.Assets {
	a := &appcontext.Assets{
		CSSPath: assets.CSSPath(),
		JSPath:  assets.JSPath(),
	}
	slog.Debug("assets loaded", "css", a.CSSPath, "js", a.JSPath)
	return a
}

// staticHandler serves the embedded files below /static/.
func staticHandler() echo.HandlerFunc {
	return echo.WrapHandler(http.StripPrefix("/static", assets.FileServer()))
}
