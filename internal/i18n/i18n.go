// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

//go:embed translations/*.toml
var translationFS embed.FS

type localizerContextKey struct{}

// Catalog holds the message bundle for the supported locales.
type Catalog struct {
	bundle  *i18n.Bundle
	locales *locale.Set
}

// New loads the embedded translations for every locale in locales.
// A locale without a translation file falls back to the default locale's messages.
func New(locales *locale.Set) (*Catalog, error) {
	return NewFromFS(translationFS, "translations", locales)
}

// NewFromFS loads translations named active.<locale>.toml from dir in fsys.
func NewFromFS(fsys fs.FS, dir string, locales *locale.Set) (*Catalog, error) {
	bundle := i18n.NewBundle(locales.Default().Language())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, tag := range locales.Tags() {
		file := fmt.Sprintf("%s/active.%s.toml", dir, tag)
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			if errors.Is(err, fs.ErrNotExist) && tag != locales.Default() {
				slog.Warn("no translations for locale", "locale", tag)
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return &Catalog{bundle: bundle, locales: locales}, nil
}

// Locales returns the locale set the catalog was built for.
func (c *Catalog) Locales() *locale.Set {
	return c.locales
}

// WithLocale adds the locale and a localizer for it to the context.
func (c *Catalog) WithLocale(ctx context.Context, tag locale.Tag) context.Context {
	ctx = locale.NewContext(ctx, tag)
	localizer := i18n.NewLocalizer(c.bundle, tag.String(), c.locales.Default().String())
	return context.WithValue(ctx, localizerContextKey{}, localizer)
}

// T translates a message by ID.
func T(ctx context.Context, messageID string) string {
	return localize(ctx, &i18n.LocalizeConfig{
		MessageID: messageID,
	})
}

// TData translates a message with template data.
func TData(ctx context.Context, messageID string, data map[string]any) string {
	return localize(ctx, &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
}

// TPlural translates a message with plural support.
func TPlural(ctx context.Context, messageID string, count int) string {
	return localize(ctx, &i18n.LocalizeConfig{
		MessageID:    messageID,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}

// localize returns the message ID when no localizer is present or the
// message is missing.
func localize(ctx context.Context, cfg *i18n.LocalizeConfig) string {
	localizer, ok := ctx.Value(localizerContextKey{}).(*i18n.Localizer)
	if !ok {
		return cfg.MessageID
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return cfg.MessageID
	}
	return msg
}
