package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	LogLevel      string `env:"LOG_LEVEL"      envDefault:"info"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
	BundleDir     string `env:"BUNDLE_DIR"     envDefault:"bundles"`
	ContractsFile string `env:"CONTRACTS_FILE" envDefault:"contracts.toml"`
	DatabaseURL   string `env:"DATABASE_URL"`
	Token         string `env:"TOKEN"`
	GuildID       string `env:"GUILD_ID"`

	locale language.Tag
}

// Load reads an optional .env file, then the environment, and validates the
// result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Locale returns the parsed DEFAULT_LOCALE.
func (c *Config) Locale() language.Tag {
	return c.locale
}

// UsesDatabase reports whether resource tables are read from PostgreSQL.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// ValidateBot checks the settings only the Discord bot needs.
func (c *Config) ValidateBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required to run the bot")
	}
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}
	return nil
}

func (c *Config) validate() error {
	tag, err := language.Parse(strings.TrimSpace(c.DefaultLocale))
	if err != nil {
		return fmt.Errorf("config: invalid DEFAULT_LOCALE (%q): %w", c.DefaultLocale, err)
	}
	c.locale = tag

	if strings.TrimSpace(c.BundleDir) == "" {
		return fmt.Errorf("config: BUNDLE_DIR cannot be empty")
	}

	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if c.DatabaseURL == "" {
		return nil
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}
	return nil
}
