package jsonstore

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/gekko-browser/gekko/internal/domain/entity"
	"github.com/gekko-browser/gekko/internal/domain/url"
	"github.com/gekko-browser/gekko/internal/logging"
)

// HistoryFile is the history document name inside the data directory.
const HistoryFile = "history.json"

// HistoryStore implements port.HistoryStore. Entries are kept most recent
// first, capped at entity.MaxHistoryEntries.
type HistoryStore struct {
	doc       *document[[]entity.HistoryEntry]
	incognito atomic.Bool
}

// NewHistoryStore creates a history store in dataDir.
func NewHistoryStore(dataDir string) *HistoryStore {
	return &HistoryStore{
		doc: newDocument(filepath.Join(dataDir, HistoryFile), func() []entity.HistoryEntry {
			return []entity.HistoryEntry{}
		}),
	}
}

// SetIncognito toggles the process-wide incognito flag.
func (s *HistoryStore) SetIncognito(enabled bool) {
	s.incognito.Store(enabled)
}

// Incognito reports whether history recording is suppressed.
func (s *HistoryStore) Incognito() bool {
	return s.incognito.Load()
}

// Add records a visit. Internal gkp(s):// pages and incognito visits are
// skipped without error. A revisit moves the entry to the front.
func (s *HistoryStore) Add(ctx context.Context, rawURL, title string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || url.IsInternal(rawURL) || s.Incognito() {
		logging.FromContext(ctx).Trace().Str("url", rawURL).Msg("history add skipped")
		return nil
	}

	return s.doc.Update(ctx, func(entries *[]entity.HistoryEntry) error {
		list := *entries
		entry := *entity.NewHistoryEntry(rawURL, title)
		for i := range list {
			if list[i].URL != rawURL {
				continue
			}
			entry = list[i]
			entry.IncrementVisit()
			if title != "" {
				entry.Title = title
			}
			list = append(list[:i], list[i+1:]...)
			break
		}

		list = append([]entity.HistoryEntry{entry}, list...)
		if len(list) > entity.MaxHistoryEntries {
			list = list[:entity.MaxHistoryEntries]
		}
		*entries = list
		return nil
	})
}

// UpdateTitle sets the title of an already recorded entry. Unknown URLs are
// left alone so a late title never creates a visit.
func (s *HistoryStore) UpdateTitle(ctx context.Context, rawURL, title string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || title == "" || url.IsInternal(rawURL) || s.Incognito() {
		return nil
	}

	return s.doc.Update(ctx, func(entries *[]entity.HistoryEntry) error {
		list := *entries
		for i := range list {
			if list[i].URL == rawURL {
				list[i].Title = title
				return nil
			}
		}
		return nil
	})
}

// GetAll returns history entries, most recent first.
func (s *HistoryStore) GetAll(ctx context.Context) ([]entity.HistoryEntry, error) {
	return s.doc.Load(ctx)
}

// Clear removes every entry.
func (s *HistoryStore) Clear(ctx context.Context) error {
	return s.doc.Update(ctx, func(entries *[]entity.HistoryEntry) error {
		*entries = []entity.HistoryEntry{}
		return nil
	})
}
