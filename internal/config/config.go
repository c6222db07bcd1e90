// Package config loads server configuration from an optional YAML file.
// Command-line flags override file values; everything has a sensible
// default so the server runs with no config at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration
type Config struct {
	// Port the HTTP server listens on
	Port int `yaml:"port"`
	// DBPath is the SQLite database file location
	DBPath string `yaml:"db_path"`
	// ScrambleServiceURL is the base URL of the scramble-generation service
	ScrambleServiceURL string `yaml:"scramble_service_url"`
	// ModeratorPassword guards the moderation endpoints. Empty means a
	// random password is generated at startup and printed to the log.
	ModeratorPassword string `yaml:"moderator_password"`
	// CompetitionLengthDays is the default competition window length
	CompetitionLengthDays int `yaml:"competition_length_days"`
	// ExtraEvents are event ids added to every new competition's roster
	// on top of the standard catalog.
	ExtraEvents []string `yaml:"extra_events"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file or flags are given
func Default() Config {
	return Config{
		Port:                  8080,
		DBPath:                "cubecomp.db",
		ScrambleServiceURL:    "http://localhost:2014",
		CompetitionLengthDays: 7,
		LogLevel:              "info",
	}
}

// Load reads a YAML config file and overlays it on the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.CompetitionLengthDays <= 0 {
		return cfg, fmt.Errorf("invalid competition length %d days", cfg.CompetitionLengthDays)
	}

	return cfg, nil
}
