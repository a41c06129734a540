// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

import (
	"context"

	"codeberg.org/oliverandrich/polyglot/internal/ctxkeys"
	"codeberg.org/oliverandrich/polyglot/internal/i18n"
	"codeberg.org/oliverandrich/polyglot/internal/locale"
)

// T translates a message by ID.
func T(ctx context.Context, messageID string) string {
	return i18n.T(ctx, messageID)
}

// TData translates a message with template data.
func TData(ctx context.Context, messageID string, data map[string]any) string {
	return i18n.TData(ctx, messageID, data)
}

// TPlural translates a message with plural support.
func TPlural(ctx context.Context, messageID string, count int) string {
	return i18n.TPlural(ctx, messageID, count)
}

// Locales returns the locale set of the site, or nil outside a request.
func Locales(ctx context.Context) *locale.Set {
	if set, ok := ctx.Value(ctxkeys.Locales{}).(*locale.Set); ok {
		return set
	}
	return nil
}

// Locale returns the locale of the request, falling back to the default
// locale for requests the locale guard skipped.
func Locale(ctx context.Context) locale.Tag {
	if tag, ok := locale.FromContext(ctx); ok {
		return tag
	}
	if set := Locales(ctx); set != nil {
		return set.Default()
	}
	return ""
}

// LocalizedURL prefixes route with the current locale.
func LocalizedURL(ctx context.Context, route string) string {
	return locale.Target(Locale(ctx), route, "")
}

// Alternate is the same route in another supported locale.
type Alternate struct {
	Tag     locale.Tag
	URL     string
	Current bool
}

// Alternates lists route in every supported locale, in configured order.
func Alternates(ctx context.Context, route string) []Alternate {
	set := Locales(ctx)
	if set == nil {
		return nil
	}
	current := Locale(ctx)
	tags := set.Tags()
	out := make([]Alternate, 0, len(tags))
	for _, tag := range tags {
		out = append(out, Alternate{
			Tag:     tag,
			URL:     locale.Target(tag, route, ""),
			Current: tag == current,
		})
	}
	return out
}

// CSSPath returns the path to the hashed CSS file.
func CSSPath(ctx context.Context) string {
	if path, ok := ctx.Value(ctxkeys.CSSPath{}).(string); ok {
		return path
	}
	return "/static/css/styles.css"
}

// JSPath returns the path to the hashed htmx JS file.
func JSPath(ctx context.Context) string {
	if path, ok := ctx.Value(ctxkeys.JSPath{}).(string); ok {
		return path
	}
	return "/static/js/app.js"
}
