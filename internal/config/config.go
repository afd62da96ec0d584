// Package config loads contacts configuration from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "contacts.toml"

// Config is the top-level contacts.toml configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig locates the contacts table.
type DatabaseConfig struct {
	Path string `toml:"path" env:"CONTACTS_DB"` // ":memory:" for a throwaway database
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `toml:"level"  env:"CONTACTS_LOG_LEVEL"`
	Format string `toml:"format" env:"CONTACTS_LOG_FORMAT"`
	File   string `toml:"file"   env:"CONTACTS_LOG_FILE"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Database: DatabaseConfig{Path: "contacts.db"},
		Log:      LogConfig{Level: "warn", Format: "text"},
	}
}

// Load builds the configuration from defaults, then the TOML file at path,
// then CONTACTS_* environment variables.
//
// An empty path reads [DefaultFile] if it exists and skips it otherwise.
// A named file must exist. Unknown keys in the file are rejected.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	return &cfg, nil
}

var (
	validLevels  = []string{"", "debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// Validate checks the configuration and returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, fmt.Errorf("database.path must not be empty"))
	}
	if !slices.Contains(validLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error"))
	}
	if !slices.Contains(validFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be text or json"))
	}

	return errors.Join(errs...)
}
