// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

//go:build !dev

package assets

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePaths(t *testing.T) {
	tests := []struct {
		name    string
		meta    string
		wantCSS string
		wantJS  string
	}{
		{"empty", "", fallbackCSSPath, fallbackJSPath},
		{"invalid json", "{", fallbackCSSPath, fallbackJSPath},
		{"no outputs", `{"outputs":{}}`, fallbackCSSPath, fallbackJSPath},
		{
			"hashed outputs",
			`{"outputs":{
				"internal/assets/static/css/styles.3f9a01bc.css":{},
				"internal/assets/static/js/app.77e0c2d1.js":{},
				"internal/assets/other/ignored.js":{}
			}}`,
			"/static/css/styles.3f9a01bc.css",
			"/static/js/app.77e0c2d1.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css, js := resolvePaths([]byte(tt.meta))

			assert.Equal(t, tt.wantCSS, css)
			assert.Equal(t, tt.wantJS, js)
		})
	}
}

func TestFileServer(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/css/styles.css", nil)

	FileServer().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
}

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, fallbackCSSPath, CSSPath())
	assert.Equal(t, fallbackJSPath, JSPath())
}
