// Package config loads client settings from defaults, environment and flags (in that order).
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Preference backends.
const (
	PrefsFile     = "file"
	PrefsMemory   = "memory"
	PrefsRedis    = "redis"
	PrefsPostgres = "postgres"
)

// Config captures client configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Prefs     string // one of Prefs*
	PrefsDSN  string // redis or postgres URL; file path override for PrefsFile
	LogLevel  string
	LogFormat string
	Metrics   bool // print session metrics to stderr after the command
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:   "http://localhost:8000",
		Timeout:   15 * time.Second,
		Prefs:     PrefsFile,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Dir returns the per-user configuration directory.
func Dir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "kid-clinic")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kid-clinic")
}

// PrefsPath returns the default file-backed preference document path.
func PrefsPath() string { return filepath.Join(Dir(), "prefs.json") }

// Load applies environment overrides (KC_*) and then flags parsed from args.
// It returns the remaining positional arguments.
func Load(args []string) (Config, []string, error) {
	cfg := Default()
	if err := cfg.fromEnv(); err != nil {
		return Config{}, nil, err
	}

	fs := flag.NewFlagSet("kc", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "clinic API base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	fs.StringVar(&cfg.Prefs, "prefs", cfg.Prefs, "preference backend: file|memory|redis|postgres")
	fs.StringVar(&cfg.PrefsDSN, "prefs-dsn", cfg.PrefsDSN, "preference backend DSN (redis/postgres URL or file path)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console|json")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "print request metrics to stderr on exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

func (c *Config) fromEnv() error {
	if v := os.Getenv("KC_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("KC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("KC_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("KC_PREFS"); v != "" {
		c.Prefs = v
	}
	if v := os.Getenv("KC_PREFS_DSN"); v != "" {
		c.PrefsDSN = v
	}
	if v := os.Getenv("KC_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("KC_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("KC_METRICS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("KC_METRICS: %w", err)
		}
		c.Metrics = b
	}
	return nil
}

// Validate checks value ranges and backend/DSN combinations.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: empty base URL")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %v", c.Timeout)
	}
	switch c.Prefs {
	case PrefsFile, PrefsMemory:
	case PrefsRedis, PrefsPostgres:
		if c.PrefsDSN == "" {
			return fmt.Errorf("config: %s preferences need -prefs-dsn", c.Prefs)
		}
	default:
		return fmt.Errorf("config: unknown preference backend %q", c.Prefs)
	}
	return nil
}
