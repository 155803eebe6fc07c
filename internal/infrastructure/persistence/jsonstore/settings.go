package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/logging"
)

// SettingsFile is the settings document name inside the data directory.
const SettingsFile = "settings.json"

// SettingsStore implements port.SettingsStore. Nothing is cached: every
// GetAll reads the document.
type SettingsStore struct {
	doc      *document[map[string]json.RawMessage]
	defaults entity.Settings
}

// SettingsOption configures a SettingsStore.
type SettingsOption func(*SettingsStore)

// WithSettingsDefaults adjusts the defaults merged under stored values.
func WithSettingsDefaults(fn func(*entity.Settings)) SettingsOption {
	return func(s *SettingsStore) { fn(&s.defaults) }
}

// NewSettingsStore creates a settings store in dataDir.
func NewSettingsStore(dataDir string, opts ...SettingsOption) *SettingsStore {
	s := &SettingsStore{
		doc: newDocument(filepath.Join(dataDir, SettingsFile), func() map[string]json.RawMessage {
			return map[string]json.RawMessage{}
		}),
		defaults: entity.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the settings used for keys that were never stored.
func (s *SettingsStore) Defaults() entity.Settings {
	d := s.defaults
	if d.SearchShortcuts != nil {
		d.SearchShortcuts = make(map[string]string, len(s.defaults.SearchShortcuts))
		for k, v := range s.defaults.SearchShortcuts {
			d.SearchShortcuts[k] = v
		}
	}
	return d
}

// GetAll returns the stored settings merged over the defaults. Read
// failures are logged and yield the defaults.
func (s *SettingsStore) GetAll(ctx context.Context) entity.Settings {
	settings := s.Defaults()

	raw, err := s.doc.Load(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read settings, using defaults")
		return settings
	}
	if err := mergeSettings(&settings, raw); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("settings document has invalid values, using defaults")
		return s.Defaults()
	}
	return settings
}

// Set stores value under key. The resulting document must still decode
// into entity.Settings.
func (s *SettingsStore) Set(ctx context.Context, key string, value any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("settings key is empty")
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Op: "encode", Path: s.doc.path, Err: err}
	}

	err = s.doc.Update(ctx, func(raw *map[string]json.RawMessage) error {
		(*raw)[key] = encoded
		merged := s.Defaults()
		if err := mergeSettings(&merged, *raw); err != nil {
			return fmt.Errorf("invalid value for setting %q: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("key", key).Msg("setting saved")
	return nil
}

func mergeSettings(dst *entity.Settings, raw map[string]json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
