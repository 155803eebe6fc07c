// Package config loads and watches the shell configuration.
package config

import "time"

// Config is the application configuration, read from config.toml and
// GEKKO_* environment variables.
type Config struct {
	// SitesDir holds one directory per virtual domain, plus secure/.
	SitesDir string `mapstructure:"sites_dir" toml:"sites_dir"`
	// SharedDir holds resources reachable from every gkp:// domain.
	SharedDir string `mapstructure:"shared_dir" toml:"shared_dir"`
	// DataDir holds the JSON documents (settings, history, bookmarks, downloads).
	DataDir string `mapstructure:"data_dir" toml:"data_dir"`

	HomePage     string `mapstructure:"home_page" toml:"home_page"`
	SearchEngine string `mapstructure:"search_engine" toml:"search_engine"`

	Theme   ThemeConfig   `mapstructure:"theme" toml:"theme"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
}

// ThemeConfig tunes the theme coordinator.
type ThemeConfig struct {
	LockWindowMs     int `mapstructure:"lock_window_ms" toml:"lock_window_ms"`
	RetryBaseDelayMs int `mapstructure:"retry_base_delay_ms" toml:"retry_base_delay_ms"`
	MaxAttempts      int `mapstructure:"max_attempts" toml:"max_attempts"`
}

// LockWindow returns the lock window as a duration.
func (c ThemeConfig) LockWindow() time.Duration {
	return time.Duration(c.LockWindowMs) * time.Millisecond
}

// RetryBaseDelay returns the first backoff delay as a duration.
func (c ThemeConfig) RetryBaseDelay() time.Duration {
	return time.Duration(c.RetryBaseDelayMs) * time.Millisecond
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}
