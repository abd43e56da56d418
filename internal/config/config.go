// Package config holds the YAML configuration surface for the prosal CLI
// and server, plus profile definitions and enum normalizers.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/prosal/internal/apperr"
)

// Config is the root configuration document.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Cache    CacheConfig    `yaml:"cache"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// LoggingConfig controls slog handler selection.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// CacheConfig controls the result cache.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path is the SQLite database path; empty selects in-memory only.
	Path string `yaml:"path"`
}

// DefaultsConfig carries per-call defaults applied when the caller omits them.
type DefaultsConfig struct {
	Lang           string  `yaml:"lang"`
	Profile        string  `yaml:"profile"`
	Intensity      int     `yaml:"intensity"`
	MaxChangeRatio float64 `yaml:"max_change_ratio"`
	// Markdown enables code-span masking for markdown input.
	Markdown bool `yaml:"markdown"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Server:  ServerConfig{Addr: ":8080"},
		Cache:   CacheConfig{Enabled: false},
		Defaults: DefaultsConfig{
			Lang:           "auto",
			Profile:        "web",
			Intensity:      60,
			MaxChangeRatio: 0.6,
		},
	}
}

// Load reads a YAML configuration file, layering it over defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, apperr.Wrap(err, apperr.CategoryConfig, apperr.SeverityFatal, "read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperr.Wrap(err, apperr.CategoryConfig, apperr.SeverityFatal, "parse config file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes enum fields and checks value ranges.
func (c *Config) Validate() error {
	c.Logging.Level = string(NormalizeLogLevel(c.Logging.Level))
	c.Logging.Format = string(NormalizeLogFormat(c.Logging.Format))

	if _, err := ResolveProfile(c.Defaults.Profile); err != nil {
		return apperr.Config("defaults.profile: %v", err)
	}
	if c.Defaults.Intensity < 0 || c.Defaults.Intensity > 100 {
		return apperr.Config("defaults.intensity must be in [0,100], got %d", c.Defaults.Intensity)
	}
	if c.Defaults.MaxChangeRatio < 0 || c.Defaults.MaxChangeRatio > 1 {
		return apperr.Config("defaults.max_change_ratio must be in [0,1], got %v", c.Defaults.MaxChangeRatio)
	}
	if c.Server.Addr == "" {
		return apperr.Config("server.addr must not be empty")
	}
	return nil
}

// String renders the config for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("logging=%s/%s server=%s cache=%v defaults=%s/%s/%d",
		c.Logging.Level, c.Logging.Format, c.Server.Addr, c.Cache.Enabled,
		c.Defaults.Lang, c.Defaults.Profile, c.Defaults.Intensity)
}
