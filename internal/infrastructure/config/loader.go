package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	dataHome  string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	logger    zerolog.Logger
}

// NewManager creates a configuration manager rooted at the XDG directories.
func NewManager() (*Manager, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDirs(dirs.ConfigHome, dirs.DataHome)
}

// NewManagerWithDirs creates a configuration manager with explicit
// config and data directories.
func NewManagerWithDirs(configDir, dataHome string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("GEKKO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short env names for the logging section.
	if err := v.BindEnv("logging.level", "GEKKO_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GEKKO_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "GEKKO_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind GEKKO_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		dataHome:  dataHome,
		callbacks: make([]func(*Config), 0),
		logger:    zerolog.Nop(),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload()
}

func (m *Manager) setDefaults() {
	d := DefaultConfig(m.dataHome)
	m.viper.SetDefault("sites_dir", d.SitesDir)
	m.viper.SetDefault("shared_dir", "")
	m.viper.SetDefault("data_dir", d.DataDir)
	m.viper.SetDefault("home_page", d.HomePage)
	m.viper.SetDefault("search_engine", d.SearchEngine)
	m.viper.SetDefault("theme.lock_window_ms", d.Theme.LockWindowMs)
	m.viper.SetDefault("theme.retry_base_delay_ms", d.Theme.RetryBaseDelayMs)
	m.viper.SetDefault("theme.max_attempts", d.Theme.MaxAttempts)
	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			m.ConfigFile(), err)
	}

	if createErr := WriteConfig(DefaultConfig(m.dataHome), m.ConfigFile()); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload unmarshals, normalizes and validates the current viper state.
// Must be called with m.mu held for write.
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err)
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	if strings.TrimSpace(config.SharedDir) == "" && config.SitesDir != "" {
		config.SharedDir = filepath.Join(config.SitesDir, sharedSiteName)
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.HomePage = strings.TrimSpace(config.HomePage)
	config.SearchEngine = strings.TrimSpace(config.SearchEngine)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig(m.dataHome)
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}
