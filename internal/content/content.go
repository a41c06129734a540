// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package content imports Markdown files into the page store.
//
// A content tree holds one directory per locale with one file per page:
//
//	en/about.md
//	fr/about.md
//
// Files are positioned in lexical order within their locale.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"codeberg.org/oliverandrich/polyglot/internal/markdown"
	"codeberg.org/oliverandrich/polyglot/internal/models"
	"codeberg.org/oliverandrich/polyglot/internal/repository"
)

// ErrInvalidSlug is returned for file names that cannot be used in a URL.
var ErrInvalidSlug = errors.New("invalid slug")

// Result summarizes an import.
type Result struct {
	Imported int
	Skipped  []string // paths outside a supported locale directory
}

// Importer writes content trees to the repository.
type Importer struct {
	repo    *repository.Repository
	md      *markdown.Renderer
	locales *locale.Set
}

// NewImporter creates an Importer for the supported locales.
func NewImporter(repo *repository.Repository, md *markdown.Renderer, locales *locale.Set) *Importer {
	return &Importer{repo: repo, md: md, locales: locales}
}

// Import upserts every page found in fsys in a single transaction, so a
// failing file leaves the store unchanged.
func (im *Importer) Import(ctx context.Context, fsys fs.FS) (Result, error) {
	var res Result
	err := im.repo.InTx(ctx, func(tx *repository.Repository) error {
		return im.walk(ctx, tx, fsys, &res)
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (im *Importer) walk(ctx context.Context, tx *repository.Repository, fsys fs.FS, res *Result) error {
	positions := make(map[locale.Tag]int)

	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".md" {
			return err
		}

		dir, file := path.Split(p)
		tag := locale.Parse(strings.Trim(dir, "/"))
		if strings.Count(p, "/") != 1 || !im.locales.Contains(tag) {
			slog.WarnContext(ctx, "skipping file outside a supported locale", "path", p)
			res.Skipped = append(res.Skipped, p)
			return nil
		}

		slug := strings.TrimSuffix(file, ".md")
		if !ValidSlug(slug) {
			return fmt.Errorf("%s: %w", p, ErrInvalidSlug)
		}

		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		positions[tag]++
		page := im.page(tag, slug, string(body), positions[tag])
		if err := tx.UpsertPage(ctx, page); err != nil {
			return fmt.Errorf("store %s: %w", p, err)
		}
		slog.DebugContext(ctx, "imported page", "path", page.Path())
		res.Imported++
		return nil
	})
}

func (im *Importer) page(tag locale.Tag, slug, body string, position int) *models.Page {
	meta := im.md.Meta(body)
	title := meta.Title
	if title == "" {
		title = slug
	}
	return &models.Page{
		Locale:   tag,
		Slug:     slug,
		Title:    title,
		Summary:  meta.Summary,
		Body:     body,
		Position: position,
	}
}

// ValidSlug reports whether slug is a non-empty run of lower case ASCII
// letters, digits and inner hyphens.
func ValidSlug(slug string) bool {
	if slug == "" || slug[0] == '-' || slug[len(slug)-1] == '-' {
		return false
	}
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}
