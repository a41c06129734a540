// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package markdown renders page bodies to sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Renderer converts Markdown to HTML that is safe to embed in a page.
// It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New creates a Renderer with GitHub flavored Markdown and the UGC policy.
func New() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: policy,
	}
}

// Render converts src to sanitized HTML.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Meta is the title and summary found in a Markdown document.
type Meta struct {
	Title   string // text of the first level one heading
	Summary string // text of the first paragraph
}

// Meta extracts page metadata from src without rendering it.
func (r *Renderer) Meta(src string) Meta {
	source := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(source))

	var meta Meta
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if meta.Title == "" && node.Level == 1 {
				meta.Title = flatten(node.Lines().Value(source))
			}
		case *ast.Paragraph:
			if meta.Summary == "" {
				meta.Summary = flatten(node.Lines().Value(source))
			}
		}
		if meta.Title != "" && meta.Summary != "" {
			break
		}
	}
	return meta
}

func flatten(b []byte) string {
	return strings.Join(strings.Fields(string(b)), " ")
}
