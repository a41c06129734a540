// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

//go:build !dev

// Package assets provides embedded static assets with content-hashed filenames.
package assets

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
)

//go:embed esbuild-meta.json
var metaData []byte

//go:embed static
var staticFS embed.FS

const (
	fallbackCSSPath = "/static/css/styles.css"
	fallbackJSPath  = "/static/js/app.js"
)

// esbuildMeta represents the esbuild metafile format.
type esbuildMeta struct {
	Outputs map[string]struct{} `json:"outputs"`
}

var cssPath, jsPath = resolvePaths(metaData)

// resolvePaths maps esbuild output files to URL paths below /static/.
// Unknown or missing outputs keep the unhashed fallbacks.
func resolvePaths(data []byte) (css, js string) {
	css, js = fallbackCSSPath, fallbackJSPath
	if len(data) == 0 {
		return css, js
	}

	var meta esbuildMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		slog.Error("failed to parse esbuild meta", "error", err)
		return css, js
	}

	for output := range meta.Outputs {
		_, rest, ok := strings.Cut(output, "/static/")
		if !ok {
			continue
		}
		switch urlPath := "/static/" + rest; {
		case strings.HasSuffix(urlPath, ".css"):
			css = urlPath
		case strings.HasSuffix(urlPath, ".js"):
			js = urlPath
		}
	}
	return css, js
}

// CSSPath returns the path to the main CSS file.
func CSSPath() string {
	return cssPath
}

// JSPath returns the path to the bundled JS file.
func JSPath() string {
	return jsPath
}

// FileServer returns an http.Handler that serves embedded static files.
func FileServer() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("failed to create sub filesystem: " + err.Error())
	}
	return http.FileServer(http.FS(sub))
}
