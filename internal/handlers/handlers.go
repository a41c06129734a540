// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"codeberg.org/oliverandrich/polyglot/internal/htmx"
	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"codeberg.org/oliverandrich/polyglot/internal/markdown"
	"codeberg.org/oliverandrich/polyglot/internal/repository"
	"codeberg.org/oliverandrich/polyglot/internal/templates"
	"github.com/labstack/echo/v4"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	repo    *repository.Repository
	md      *markdown.Renderer
	locales *locale.Set
}

// New creates a new Handlers instance.
func New(repo *repository.Repository, md *markdown.Renderer, locales *locale.Set) *Handlers {
	return &Handlers{repo: repo, md: md, locales: locales}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	if err := h.repo.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Home renders the page index of the request locale.
func (h *Handlers) Home(c echo.Context) error {
	ctx := c.Request().Context()
	tag := h.locale(c)

	pages, err := h.repo.ListPages(ctx, tag)
	if err != nil {
		return fmt.Errorf("list pages for %s: %w", tag, err)
	}

	return RenderPage(c, http.StatusOK, templates.T(ctx, "nav_home"), templates.Home(pages))
}

// Page renders a single page of the request locale.
func (h *Handlers) Page(c echo.Context) error {
	ctx := c.Request().Context()
	tag := h.locale(c)
	slug := c.Param("slug")

	page, err := h.repo.GetPage(ctx, tag, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get page %s/%s: %w", tag, slug, err)
	}

	body, err := h.md.Render(page.Body)
	if err != nil {
		return err
	}

	translations, err := h.repo.ListTranslations(ctx, slug)
	if err != nil {
		return fmt.Errorf("list translations of %s: %w", slug, err)
	}

	htmx.PushURL(c.Response().Header(), page.Path())
	return RenderPage(c, http.StatusOK, page.Title, templates.Page(page, body, translations))
}

// locale returns the locale resolved by the locale guard.
func (h *Handlers) locale(c echo.Context) locale.Tag {
	if tag, ok := locale.FromContext(c.Request().Context()); ok {
		return tag
	}
	return h.locales.Default()
}
