// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"log"
	"os"

	"codeberg.org/oliverandrich/polyglot/internal/config"
	"codeberg.org/oliverandrich/polyglot/internal/server"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:     "app",
		Usage:    "Serve the localized site",
		Flags:    config.Flags(),
		Action:   server.Run,
		Commands: []*cli.Command{migrateCommand(), pagesCommand()},
	}
}
