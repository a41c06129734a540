// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package locale

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying the locale resolved for a request.
func NewContext(ctx context.Context, tag Tag) context.Context {
	return context.WithValue(ctx, contextKey{}, tag)
}

// FromContext returns the locale stored by NewContext.
func FromContext(ctx context.Context) (Tag, bool) {
	tag, ok := ctx.Value(contextKey{}).(Tag)
	return tag, ok
}
