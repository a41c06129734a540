// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package ctxkeys defines typed context keys used across packages.
package ctxkeys

// CSSPath is the context key for the CSS path.
type CSSPath struct{}

// JSPath is the context key for the JS (htmx) path.
type JSPath struct{}

// Locales is the context key for the *locale.Set served by the site.
type Locales struct{}
