// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/oliverandrich/polyglot/internal/config"
	"codeberg.org/oliverandrich/polyglot/internal/database"
	"codeberg.org/oliverandrich/polyglot/internal/handlers"
	"codeberg.org/oliverandrich/polyglot/internal/i18n"
	"codeberg.org/oliverandrich/polyglot/internal/markdown"
	"codeberg.org/oliverandrich/polyglot/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(cfg.Log.Level, cfg.Log.Format)

	locales, err := cfg.LocaleSet()
	if err != nil {
		return err
	}

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
		"locales", locales.Tags(),
		"default_locale", locales.Default(),
	)

	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	catalog, err := i18n.New(locales)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	e := New(cfg, repository.New(db), catalog)
	return startWithGracefulShutdown(ctx, e, cfg)
}

// New builds the Echo instance with middleware and routes.
func New(cfg *config.Config, repo *repository.Repository, catalog *i18n.Catalog) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	setupMiddleware(e, cfg, catalog, findAssets())
	setupRoutes(e, handlers.New(repo, markdown.New(), catalog.Locales()))
	return e
}

func setupRoutes(e *echo.Echo, h *handlers.Handlers) {
	e.GET("/static/*", staticHandler())
	e.GET("/health", h.Health)
	e.GET("/", h.Home)
	e.GET("/:slug", h.Page)
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	tlsResult, err := SetupTLS(cfg)
	if err != nil {
		return fmt.Errorf("TLS setup failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)
	serve := func(name string, fn func() error) {
		go func() {
			if err := fn(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	var redirectServer *http.Server

	switch tlsResult.Mode {
	case TLSModeOff:
		serve("http", func() error { return e.Start(addr) })
	case TLSModeACME:
		serve("https", func() error { return startTLSServer(e, ":443", tlsResult.TLSConfig) })
		redirectServer = &http.Server{
			Addr:              ":80",
			Handler:           tlsResult.HTTPHandler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		serve("acme", redirectServer.ListenAndServe)
		slog.Info("HTTP to HTTPS redirect active", "addr", redirectServer.Addr)
	case TLSModeSelfSigned, TLSModeManual:
		serve("https", func() error { return startTLSServer(e, addr, tlsResult.TLSConfig) })
	}
	slog.Info("server running", "url", cfg.Server.BaseURL)

	select {
	case <-ctx.Done():
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown main server", "error", err)
	}
	if redirectServer != nil {
		if err := redirectServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown HTTP redirect server", "error", err)
		}
	}

	slog.Info("server stopped")
	return nil
}

// startTLSServer starts the Echo server with a custom TLS configuration.
func startTLSServer(e *echo.Echo, addr string, tlsConfig *tls.Config) error {
	lc := &net.ListenConfig{}
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return err
	}
	e.TLSListener = tls.NewListener(ln, tlsConfig)
	e.TLSServer.TLSConfig = tlsConfig
	return e.TLSServer.Serve(e.TLSListener)
}
