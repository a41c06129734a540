// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package markdown_test

import (
	"testing"

	"codeberg.org/oliverandrich/polyglot/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := markdown.New()

	html, err := r.Render("# About\n\nWrite to **us**.")

	require.NoError(t, err)
	assert.Contains(t, html, `<h1 id="about">About</h1>`)
	assert.Contains(t, html, "<strong>us</strong>")
}

func TestRender_StripsScripts(t *testing.T) {
	r := markdown.New()

	html, err := r.Render("hello <script>alert(1)</script>")

	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "hello")
}

func TestRender_Tables(t *testing.T) {
	r := markdown.New()

	html, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")

	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}

func TestMeta(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected markdown.Meta
	}{
		{
			"title and summary",
			"# Über uns\n\nJede Seite erscheint\nin mehreren Sprachen.\n\nMehr.",
			markdown.Meta{Title: "Über uns", Summary: "Jede Seite erscheint in mehreren Sprachen."},
		},
		{
			"second level heading is not a title",
			"## Contact\n\nWrite to us.",
			markdown.Meta{Summary: "Write to us."},
		},
		{"empty", "", markdown.Meta{}},
	}

	r := markdown.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Meta(tt.src))
		})
	}
}
