package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"localebot/pkg/tz"
)

const (
	defaultDatabaseURL    = "postgres://localhost:5432/localebot?sslmode=disable"
	defaultMigrationsPath = "migrations"
	defaultLocale         = "fi"
	defaultFallbackLocale = "en"
	defaultTimezone       = "Europe/Helsinki"
	defaultExtrasReload   = 10 * time.Minute
)

type Config struct {
	Token          string
	GuildID        string
	DatabaseURL    string
	MigrationsPath string

	Locale         string
	FallbackLocale string
	// LocalesDir replaces the embedded bundle when set.
	LocalesDir   string
	VerboseI18n  bool
	ExtrasReload time.Duration
	Timezone     string
	LogLevel     string
}

// Load reads .env when present, then the environment, and validates the result.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
		DatabaseURL:    envOr("DATABASE_URL", defaultDatabaseURL),
		MigrationsPath: envOr("MIGRATIONS_PATH", defaultMigrationsPath),
		Locale:         envOr("LOCALE", defaultLocale),
		FallbackLocale: envOr("FALLBACK_LOCALE", defaultFallbackLocale),
		LocalesDir:     os.Getenv("LOCALES_DIR"),
		Timezone:       envOr("TIMEZONE", defaultTimezone),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		ExtrasReload:   defaultExtrasReload,
	}

	if raw := strings.TrimSpace(os.Getenv("VERBOSE_I18N")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("config: VERBOSE_I18N must be a boolean: %w", err)
		}
		cfg.VerboseI18n = v
	}
	if raw := strings.TrimSpace(os.Getenv("EXTRAS_RELOAD")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: EXTRAS_RELOAD must be a duration: %w", err)
		}
		cfg.ExtrasReload = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// validate checks the loaded values.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	for name, code := range map[string]string{"LOCALE": c.Locale, "FALLBACK_LOCALE": c.FallbackLocale} {
		if _, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err != nil {
			return fmt.Errorf("config: %s is not a locale code (%q): %w", name, code, err)
		}
	}

	if _, err := tz.Load(c.Timezone); err != nil {
		return fmt.Errorf("config: TIMEZONE: %w", err)
	}

	if c.ExtrasReload < 0 {
		return fmt.Errorf("config: EXTRAS_RELOAD cannot be negative")
	}
	return nil
}
