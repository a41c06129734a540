// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package templates contains the page components of the site.
package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"codeberg.org/oliverandrich/polyglot/internal/models"
	"github.com/a-h/templ"
)

// writer stops writing after the first error.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) component(ctx context.Context, c templ.Component) {
	if w.err == nil {
		w.err = c.Render(ctx, w.w)
	}
}

// Layout wraps content in the HTML document. route is the path of the page
// without locale prefix and is used for the language switcher.
func Layout(title, route string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		tag := Locale(ctx)
		appName := T(ctx, "app_name")

		w.raw(`<!doctype html><html lang="`)
		w.text(tag.String())
		w.raw(`" dir="`)
		w.text(tag.Dir())
		w.raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		if title != "" {
			w.text(title)
			w.raw(` · `)
		}
		w.text(appName)
		w.raw(`</title><link rel="stylesheet" href="`)
		w.text(CSSPath(ctx))
		w.raw(`">`)
		for _, alt := range Alternates(ctx, route) {
			w.raw(`<link rel="alternate" hreflang="`)
			w.text(alt.Tag.String())
			w.raw(`" href="`)
			w.text(alt.URL)
			w.raw(`">`)
		}
		w.raw(`<script src="`)
		w.text(JSPath(ctx))
		w.raw(`" defer></script></head><body hx-boost="true"><header><nav><a href="`)
		w.text(LocalizedURL(ctx, "/"))
		w.raw(`">`)
		w.text(T(ctx, "nav_home"))
		w.raw(`</a>`)
		w.component(ctx, LanguageSwitcher(route))
		w.raw(`</nav></header><main id="main">`)
		w.component(ctx, content)
		w.raw(`</main><footer>`)
		if set := Locales(ctx); set != nil {
			w.text(TData(ctx, "footer", map[string]any{"Count": len(set.Tags())}))
		}
		w.raw(`</footer></body></html>`)
		return w.err
	})
}

// LanguageSwitcher links route in every supported locale.
func LanguageSwitcher(route string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<ul class="languages" aria-label="`)
		w.text(T(ctx, "language"))
		w.raw(`">`)
		for _, alt := range Alternates(ctx, route) {
			w.raw(`<li><a href="`)
			w.text(alt.URL)
			w.raw(`" hreflang="`)
			w.text(alt.Tag.String())
			w.raw(`" lang="`)
			w.text(alt.Tag.String())
			w.raw(`"`)
			if alt.Current {
				w.raw(` aria-current="true"`)
			}
			w.raw(`>`)
			w.text(alt.Tag.Name())
			w.raw(`</a></li>`)
		}
		w.raw(`</ul>`)
		return w.err
	})
}

// Home lists the pages of the current locale.
func Home(pages []models.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<h1>`)
		w.text(T(ctx, "pages_heading"))
		w.raw(`</h1><p class="count">`)
		w.text(TPlural(ctx, "pages_count", len(pages)))
		w.raw(`</p><ul class="pages">`)
		for i := range pages {
			page := &pages[i]
			w.raw(`<li><a href="`)
			w.text(page.Path())
			w.raw(`">`)
			w.text(page.Title)
			w.raw(`</a>`)
			if page.Summary != "" {
				w.raw(`<p>`)
				w.text(page.Summary)
				w.raw(`</p>`)
			}
			w.raw(`</li>`)
		}
		w.raw(`</ul>`)
		return w.err
	})
}

// Page renders a page whose body was already converted to sanitized HTML,
// followed by links to its other translations.
func Page(page *models.Page, bodyHTML string, translations []locale.Tag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<article data-slug="`)
		w.text(page.Slug)
		w.raw(`">`)
		w.component(ctx, templ.Raw(bodyHTML))
		w.raw(`</article>`)

		others := otherTranslations(ctx, page.Locale, translations)
		if len(others) == 0 {
			return w.err
		}
		w.raw(`<aside class="translations"><h2>`)
		w.text(T(ctx, "available_in"))
		w.raw(`</h2><ul>`)
		for _, tag := range others {
			w.raw(`<li><a href="`)
			w.text(locale.Target(tag, page.Slug, ""))
			w.raw(`" hreflang="`)
			w.text(tag.String())
			w.raw(`" lang="`)
			w.text(tag.String())
			w.raw(`">`)
			w.text(tag.Name())
			w.raw(`</a></li>`)
		}
		w.raw(`</ul></aside>`)
		return w.err
	})
}

// otherTranslations drops current and locales the site does not serve.
func otherTranslations(ctx context.Context, current locale.Tag, tags []locale.Tag) []locale.Tag {
	set := Locales(ctx)
	var out []locale.Tag
	for _, tag := range tags {
		if tag == current || (set != nil && !set.Contains(tag)) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// Error renders an error message for the given status code.
func Error(code int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		title, message := ErrorText(ctx, code)
		w.raw(`<section class="error"><p class="code">`)
		w.text(strconv.Itoa(code))
		w.raw(`</p><h1>`)
		w.text(title)
		w.raw(`</h1><p>`)
		w.text(message)
		w.raw(`</p></section>`)
		return w.err
	})
}

// ErrorText returns the localized title and message for code.
func ErrorText(ctx context.Context, code int) (string, string) {
	switch {
	case code == http.StatusNotFound:
		return T(ctx, "not_found_title"), T(ctx, "not_found_body")
	case code >= http.StatusInternalServerError:
		return T(ctx, "error_title"), T(ctx, "error_body")
	default:
		return http.StatusText(code), ""
	}
}
