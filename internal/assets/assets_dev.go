// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

//go:build dev

// Package assets serves static files from disk during development.
package assets

import (
	"net/http"
)

// CSSPath returns the unhashed CSS path.
func CSSPath() string {
	return "/static/css/styles.css"
}

// JSPath returns the unhashed JS path.
func JSPath() string {
	return "/static/js/app.js"
}

// FileServer serves internal/assets/static from the working directory.
func FileServer() http.Handler {
	return http.FileServer(http.Dir("internal/assets/static"))
}
