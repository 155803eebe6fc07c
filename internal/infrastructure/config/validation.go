package config

import (
	"errors"
	"fmt"
	"strings"
)

const maxThemeAttempts = 10

// validateConfig checks every field and joins all problems into one error.
func validateConfig(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.SitesDir) == "" {
		errs = append(errs, errors.New("sites_dir must not be empty"))
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		errs = append(errs, errors.New("data_dir must not be empty"))
	}
	if strings.TrimSpace(cfg.HomePage) == "" {
		errs = append(errs, errors.New("home_page must not be empty"))
	}
	if se := cfg.SearchEngine; se != "" &&
		!strings.HasPrefix(se, "https://") && !strings.HasPrefix(se, "http://") {
		errs = append(errs, fmt.Errorf("search_engine must be an http(s) URL, got %q", se))
	}
	if cfg.Theme.LockWindowMs < 0 {
		errs = append(errs, fmt.Errorf("theme.lock_window_ms must be >= 0, got %d", cfg.Theme.LockWindowMs))
	}
	if cfg.Theme.RetryBaseDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("theme.retry_base_delay_ms must be > 0, got %d", cfg.Theme.RetryBaseDelayMs))
	}
	if cfg.Theme.MaxAttempts < 1 || cfg.Theme.MaxAttempts > maxThemeAttempts {
		errs = append(errs, fmt.Errorf("theme.max_attempts must be between 1 and %d, got %d",
			maxThemeAttempts, cfg.Theme.MaxAttempts))
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
