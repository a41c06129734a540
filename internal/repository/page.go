// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"codeberg.org/oliverandrich/polyglot/internal/models"
)

const pageColumns = `id, locale, slug, title, summary, body, position, created_at, updated_at`

// GetPage retrieves the translation of slug in the given locale.
func (r *Repository) GetPage(ctx context.Context, tag locale.Tag, slug string) (*models.Page, error) {
	var page models.Page
	err := r.q.GetContext(ctx, &page,
		`SELECT `+pageColumns+` FROM pages WHERE locale = ? AND slug = ?`, tag, slug)
	if err != nil {
		return nil, wrapError(err)
	}
	return &page, nil
}

// ListPages returns all pages of a locale ordered by position.
func (r *Repository) ListPages(ctx context.Context, tag locale.Tag) ([]models.Page, error) {
	var pages []models.Page
	err := r.q.SelectContext(ctx, &pages,
		`SELECT `+pageColumns+` FROM pages WHERE locale = ? ORDER BY position, slug`, tag)
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// ListTranslations returns the locales that have a page with slug.
func (r *Repository) ListTranslations(ctx context.Context, slug string) ([]locale.Tag, error) {
	var tags []locale.Tag
	err := r.q.SelectContext(ctx, &tags,
		`SELECT locale FROM pages WHERE slug = ? ORDER BY locale`, slug)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// UpsertPage creates the page or updates the existing translation with the
// same locale and slug. ID and timestamps are filled in on return.
func (r *Repository) UpsertPage(ctx context.Context, page *models.Page) error {
	now := time.Now().UTC()
	row := r.q.QueryRowxContext(ctx, `
		INSERT INTO pages (locale, slug, title, summary, body, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (locale, slug) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			body = excluded.body,
			position = excluded.position,
			updated_at = excluded.updated_at
		RETURNING id, created_at, updated_at`,
		page.Locale, page.Slug, page.Title, page.Summary, page.Body, page.Position, now, now)
	return row.Scan(&page.ID, &page.CreatedAt, &page.UpdatedAt)
}

// DeletePage removes one translation of a page.
func (r *Repository) DeletePage(ctx context.Context, tag locale.Tag, slug string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM pages WHERE locale = ? AND slug = ?`, tag, slug)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountPages returns the number of pages in a locale.
func (r *Repository) CountPages(ctx context.Context, tag locale.Tag) (int64, error) {
	var count int64
	if err := r.q.GetContext(ctx, &count, `SELECT count(*) FROM pages WHERE locale = ?`, tag); err != nil {
		return 0, err
	}
	return count, nil
}
