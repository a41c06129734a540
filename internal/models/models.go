// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import (
	"time"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
)

// Page is one translation of a page, addressed by locale and slug.
type Page struct { //nolint:govet // fieldalignment not critical for models
	ID        int64      `db:"id" json:"id"`
	Locale    locale.Tag `db:"locale" json:"locale"`
	Slug      string     `db:"slug" json:"slug"`
	Title     string     `db:"title" json:"title"`
	Summary   string     `db:"summary" json:"summary"`
	Body      string     `db:"body" json:"body"` // Markdown
	Position  int        `db:"position" json:"position"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Path returns the site path of the page including its locale prefix.
func (p *Page) Path() string {
	return "/" + p.Locale.String() + "/" + p.Slug
}
