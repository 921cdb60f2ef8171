// Package config loads server settings from defaults, an optional YAML file,
// and environment variables, in that order of precedence.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	Addr          string        `yaml:"addr"`
	DatabaseURL   string        `yaml:"database_url"`
	LogLevel      string        `yaml:"log_level"`
	LogFormat     string        `yaml:"log_format"`
	SearchTimeout time.Duration `yaml:"search_timeout"`
	MaxNodes      int           `yaml:"max_nodes"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Addr:          ":8000",
		LogLevel:      "info",
		LogFormat:     "text",
		SearchTimeout: 5 * time.Second,
		MaxNodes:      500,
	}
}

// Load reads path (if non-empty) over the defaults, then applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "config: read %s", path)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "config: parse %s", path)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("IDDFS_ADDR"); ok {
		c.Addr = v
	}
	if v, ok := lookup("DATABASE_URL"); ok {
		c.DatabaseURL = v
	}
	if v, ok := lookup("IDDFS_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("IDDFS_LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := lookup("IDDFS_SEARCH_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "config: IDDFS_SEARCH_TIMEOUT")
		}
		c.SearchTimeout = d
	}
	if v, ok := lookup("IDDFS_MAX_NODES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "config: IDDFS_MAX_NODES")
		}
		c.MaxNodes = n
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is empty")
	}
	if c.SearchTimeout <= 0 {
		return errors.Newf("config: search_timeout %s must be positive", c.SearchTimeout)
	}
	if c.MaxNodes <= 0 {
		return errors.Newf("config: max_nodes %d must be positive", c.MaxNodes)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Newf("config: unknown log_format %q", c.LogFormat)
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, errors.Newf("config: unknown log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// Logger builds the slog logger described by the config.
func (c Config) Logger() *slog.Logger {
	lvl, _ := c.level()
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
