// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package locale

import (
	"net/http"
	"strings"
)

// Redirect describes the response sent for a path without a locale prefix.
type Redirect struct {
	Location string
	Tag      Tag
	Status   int
	// Negotiated is false when the default locale was used.
	Negotiated bool
}

// Target prefixes path with tag and re-attaches the query string.
func Target(tag Tag, path, rawQuery string) string {
	var b strings.Builder
	b.Grow(len(tag) + len(path) + len(rawQuery) + 3)

	b.WriteByte('/')
	b.WriteString(string(tag))
	b.WriteByte('/')
	b.WriteString(strings.TrimPrefix(path, "/"))
	if rawQuery != "" {
		b.WriteByte('?')
		b.WriteString(rawQuery)
	}
	return b.String()
}

// NewRedirect negotiates a locale from acceptLanguage and builds the redirect
// for path. Callers must only pass paths that Classify did not guard.
func NewRedirect(set *Set, path, rawQuery, acceptLanguage string) Redirect {
	tag, ok := Negotiate(acceptLanguage, set)
	if !ok {
		tag = set.Default()
	}

	return Redirect{
		Location:   Target(tag, path, rawQuery),
		Tag:        tag,
		Status:     http.StatusFound,
		Negotiated: ok,
	}
}
