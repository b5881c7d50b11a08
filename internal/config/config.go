// Package config defines dashboard configuration structures and loading hooks.
//
// Conventions:
//   - New() builds a Config with defaults; Load layers file, .env and env on top.
//   - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"
	"strings"
)

// Season sources accepted by SeasonSource.
const (
	SeasonFromField = "field"
	SeasonFromDate  = "date"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MatchesPath and DeliveriesPath point at the two input CSV files.
	MatchesPath    string `koanf:"matches_path"`
	DeliveriesPath string `koanf:"deliveries_path"`

	// SeasonSource picks the canonical season derivation: "field" or "date".
	SeasonSource string `koanf:"season_source"`

	// DefaultTopN, MinTopN and MaxTopN bound the top-N sliders on the player page.
	DefaultTopN int `koanf:"default_top_n"`
	MinTopN     int `koanf:"min_top_n"`
	MaxTopN     int `koanf:"max_top_n"`

	// MaxLeaderboardLimit caps GET /api/v1/boards/{board}?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		MatchesPath:         "data/matches.csv",
		DeliveriesPath:      "data/deliveries.csv",
		SeasonSource:        SeasonFromField,
		DefaultTopN:         10,
		MinTopN:             5,
		MaxTopN:             20,
		MaxLeaderboardLimit: 100,
	}
}

// Validate reports the first inconsistency found in c.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.MatchesPath) == "":
		return fmt.Errorf("%w: matches_path must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.DeliveriesPath) == "":
		return fmt.Errorf("%w: deliveries_path must not be empty", ErrInvalidConfig)
	case c.SeasonSource != SeasonFromField && c.SeasonSource != SeasonFromDate:
		return fmt.Errorf("%w: season_source must be %q or %q, got %q", ErrInvalidConfig, SeasonFromField, SeasonFromDate, c.SeasonSource)
	case c.MinTopN < 1 || c.MinTopN > c.MaxTopN:
		return fmt.Errorf("%w: top-n bounds must satisfy 1 <= min_top_n <= max_top_n", ErrInvalidConfig)
	case c.DefaultTopN < c.MinTopN || c.DefaultTopN > c.MaxTopN:
		return fmt.Errorf("%w: default_top_n must lie within [min_top_n, max_top_n]", ErrInvalidConfig)
	case c.MaxLeaderboardLimit < 1:
		return fmt.Errorf("%w: max_leaderboard_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
