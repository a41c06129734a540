// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config

import (
	"net"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"codeberg.org/oliverandrich/polyglot/internal/locale"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var configFile = altsrc.StringSourcer("config.toml")

type Config struct { //nolint:govet // fieldalignment not critical for config structs
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	TLS      TLSConfig
	Locale   LocaleConfig
}

type TLSConfig struct {
	Mode     string // auto, acme, selfsigned, manual, off
	CertDir  string // Directory for auto-generated certificates
	Email    string // ACME email for Let's Encrypt
	CertFile string // Path to certificate file (manual mode)
	KeyFile  string // Path to private key file (manual mode)
}

type ServerConfig struct { //nolint:govet // fieldalignment not critical for config structs
	Host        string
	Port        int
	BaseURL     string
	MaxBodySize int // in MB
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

type DatabaseConfig struct {
	DSN string
}

type LocaleConfig struct {
	Supported []string // e.g. en, fr, de
	Default   string
}

func NewFromCLI(cmd *cli.Command) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:        cmd.String("host"),
			Port:        int(cmd.Int("port")),
			BaseURL:     cmd.String("base-url"),
			MaxBodySize: int(cmd.Int("max-body-size")),
		},
		Log: LogConfig{
			Level:  cmd.String("log-level"),
			Format: cmd.String("log-format"),
		},
		Database: DatabaseConfig{
			DSN: cmd.String("database-dsn"),
		},
		TLS: TLSConfig{
			Mode:     cmd.String("tls-mode"),
			CertDir:  cmd.String("tls-cert-dir"),
			Email:    cmd.String("tls-email"),
			CertFile: cmd.String("tls-cert-file"),
			KeyFile:  cmd.String("tls-key-file"),
		},
		Locale: LocaleConfig{
			Supported: splitLocales(cmd.StringSlice("locales")),
			Default:   cmd.String("default-locale"),
		},
	}

	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = buildBaseURL(cfg)
	}

	return cfg
}

// LocaleSet validates the locale settings and builds the set shared by the
// locale guard, the catalog and the templates.
func (c *Config) LocaleSet() (*locale.Set, error) {
	return locale.ParseSet(c.Locale.Supported, c.Locale.Default)
}

// splitLocales accepts both repeated values and comma separated lists,
// since TOML arrays and the LOCALES env var arrive differently.
func splitLocales(values []string) []string {
	var out []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// buildBaseURL derives the public URL, omitting the port when it is the
// scheme's default.
func buildBaseURL(cfg *Config) string {
	mode := strings.ToLower(cfg.TLS.Mode)
	u := url.URL{Scheme: "http", Host: cfg.Server.Host}
	port := cfg.Server.Port

	switch {
	case mode == "acme":
		u.Scheme, port = "https", 443
	case shouldUseTLS(mode, cfg.Server.Host):
		u.Scheme = "https"
	}

	defaultPort := (u.Scheme == "http" && port == 80) || (u.Scheme == "https" && port == 443)
	if !defaultPort {
		u.Host = net.JoinHostPort(u.Host, strconv.Itoa(port))
	}
	return u.String()
}

func shouldUseTLS(mode, host string) bool {
	switch mode {
	case "off":
		return false
	case "acme", "selfsigned", "manual":
		return true
	default: // "auto" or empty
		return !IsLocalhost(host)
	}
}

// IsLocalhost checks if the host is a localhost address.
func IsLocalhost(host string) bool {
	switch host {
	case "", "localhost", "127.0.0.1", "::1":
		return true
	}
	// Check for *.localhost subdomains (e.g., app.localhost)
	return strings.HasSuffix(host, ".localhost")
}

// source reads a flag from the environment first and config.toml second.
func source(env, key string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(cli.EnvVar(env), toml.TOML(key, configFile))
}

// Flags returns every flag NewFromCLI reads, grouped by config section.
func Flags() []cli.Flag {
	return slices.Concat(serverFlags(), logFlags(), databaseFlags(), tlsFlags(), localeFlags())
}

func serverFlags() []cli.Flag {
	const category = "server"
	return []cli.Flag{
		&cli.StringFlag{Name: "host", Category: category, Value: "localhost",
			Usage: "Host to bind to", Sources: source("HOST", "server.host")},
		&cli.IntFlag{Name: "port", Category: category, Value: 8080,
			Usage: "Port to listen on", Sources: source("PORT", "server.port")},
		&cli.StringFlag{Name: "base-url", Category: category,
			Usage: "Public base URL, derived from host, port and TLS mode when empty", Sources: source("BASE_URL", "server.base_url")},
		&cli.IntFlag{Name: "max-body-size", Category: category, Value: 1,
			Usage: "Maximum request body size in MB", Sources: source("MAX_BODY_SIZE", "server.max_body_size")},
	}
}

func logFlags() []cli.Flag {
	const category = "logging"
	return []cli.Flag{
		&cli.StringFlag{Name: "log-level", Category: category, Value: "info",
			Usage: "Log level (debug, info, warn, error)", Sources: source("LOG_LEVEL", "log.level")},
		&cli.StringFlag{Name: "log-format", Category: category, Value: "text",
			Usage: "Log format (text, json)", Sources: source("LOG_FORMAT", "log.format")},
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "database-dsn", Category: "database", Value: "./data/app.db",
			Usage: "SQLite DSN of the page store", Sources: source("DATABASE_DSN", "database.dsn")},
	}
}

func tlsFlags() []cli.Flag {
	const category = "tls"
	return []cli.Flag{
		&cli.StringFlag{Name: "tls-mode", Category: category, Value: "auto",
			Usage: "TLS mode (auto, acme, selfsigned, manual, off)", Sources: source("TLS_MODE", "tls.mode")},
		&cli.StringFlag{Name: "tls-cert-dir", Category: category, Value: "./data/certs",
			Usage: "Directory for generated and ACME certificates", Sources: source("TLS_CERT_DIR", "tls.cert_dir")},
		&cli.StringFlag{Name: "tls-email", Category: category,
			Usage: "Contact email for Let's Encrypt", Sources: source("TLS_EMAIL", "tls.email")},
		&cli.StringFlag{Name: "tls-cert-file", Category: category,
			Usage: "Certificate file (manual mode)", Sources: source("TLS_CERT_FILE", "tls.cert_file")},
		&cli.StringFlag{Name: "tls-key-file", Category: category,
			Usage: "Private key file (manual mode)", Sources: source("TLS_KEY_FILE", "tls.key_file")},
	}
}

func localeFlags() []cli.Flag {
	const category = "locale"
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "locales", Category: category, Value: []string{"en", "fr", "de", "he"},
			Usage: "Supported locales, the first path segment of every page", Sources: source("LOCALES", "locale.supported")},
		&cli.StringFlag{Name: "default-locale", Category: category, Value: "en",
			Usage: "Locale used when Accept-Language names no supported locale", Sources: source("DEFAULT_LOCALE", "locale.default")},
	}
}
