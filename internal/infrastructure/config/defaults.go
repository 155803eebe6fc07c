package config

import (
	"path/filepath"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// Default configuration constants
const (
	defaultLockWindowMs     = 500
	defaultRetryBaseDelayMs = 100
	defaultMaxAttempts      = 3

	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	sitesDirName   = "sites"
	sharedSiteName = "shared.gekko"

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the configuration used when no file exists,
// rooted at dataHome.
func DefaultConfig(dataHome string) *Config {
	sites := filepath.Join(dataHome, sitesDirName)
	return &Config{
		SitesDir:     sites,
		SharedDir:    filepath.Join(sites, sharedSiteName),
		DataDir:      dataHome,
		HomePage:     entity.DefaultHomePage,
		SearchEngine: entity.DefaultSearchEngine,
		Theme: ThemeConfig{
			LockWindowMs:     defaultLockWindowMs,
			RetryBaseDelayMs: defaultRetryBaseDelayMs,
			MaxAttempts:      defaultMaxAttempts,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
