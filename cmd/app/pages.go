// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"codeberg.org/oliverandrich/polyglot/internal/config"
	"codeberg.org/oliverandrich/polyglot/internal/content"
	"codeberg.org/oliverandrich/polyglot/internal/database"
	"codeberg.org/oliverandrich/polyglot/internal/locale"
	"codeberg.org/oliverandrich/polyglot/internal/markdown"
	"codeberg.org/oliverandrich/polyglot/internal/repository"
	"github.com/urfave/cli/v3"
)

func pagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "pages",
		Usage: "Manage localized pages",
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import Markdown files from DIR/<locale>/<slug>.md",
				ArgsUsage: "DIR",
				Action:    withRepo(importPages),
			},
			{
				Name:   "list",
				Usage:  "List pages per locale",
				Action: withRepo(listPages),
			},
			{
				Name:      "delete",
				Usage:     "Delete one translation of a page",
				ArgsUsage: "LOCALE SLUG",
				Action:    withRepo(deletePage),
			},
		},
	}
}

type repoAction func(ctx context.Context, cmd *cli.Command, repo *repository.Repository, locales *locale.Set) error

// withRepo opens the migrated database of the configured DSN for fn.
func withRepo(fn repoAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := config.NewFromCLI(cmd)
		locales, err := cfg.LocaleSet()
		if err != nil {
			return err
		}

		db, err := database.Open(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() { _ = db.Close() }()

		return fn(ctx, cmd, repository.New(db), locales)
	}
}

func importPages(ctx context.Context, cmd *cli.Command, repo *repository.Repository, locales *locale.Set) error {
	dir := cmd.Args().First()
	if dir == "" {
		return errors.New("missing DIR argument")
	}

	res, err := content.NewImporter(repo, markdown.New(), locales).Import(ctx, os.DirFS(dir))
	if err != nil {
		return err
	}
	slog.Info("pages imported", "imported", res.Imported, "skipped", len(res.Skipped))
	return nil
}

func listPages(ctx context.Context, _ *cli.Command, repo *repository.Repository, locales *locale.Set) error {
	for _, tag := range locales.Tags() {
		count, err := repo.CountPages(ctx, tag)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s): %d pages\n", tag, tag.Name(), count)

		pages, err := repo.ListPages(ctx, tag)
		if err != nil {
			return err
		}
		for _, p := range pages {
			fmt.Printf("  %-24s %s\n", p.Path(), p.Title)
		}
	}
	return nil
}

func deletePage(ctx context.Context, cmd *cli.Command, repo *repository.Repository, locales *locale.Set) error {
	if cmd.Args().Len() != 2 {
		return errors.New("expected LOCALE SLUG")
	}
	tag := locale.Parse(cmd.Args().Get(0))
	if !locales.Contains(tag) {
		return fmt.Errorf("unsupported locale %q", cmd.Args().Get(0))
	}
	slug := cmd.Args().Get(1)

	if err := repo.DeletePage(ctx, tag, slug); err != nil {
		return fmt.Errorf("delete %s/%s: %w", tag, slug, err)
	}
	slog.Info("page deleted", "locale", tag, "slug", slug)
	return nil
}
