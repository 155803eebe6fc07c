package port

import (
	"context"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// SettingsStore persists user settings. GetAll merges defaults and reads
// through to storage on every call.
type SettingsStore interface {
	GetAll(ctx context.Context) entity.Settings
	Set(ctx context.Context, key string, value any) error
}

// HistoryStore records visited pages. Add silently skips internal URLs
// and incognito sessions.
type HistoryStore interface {
	Add(ctx context.Context, url, title string) error
	// GetAll returns entries most recent first.
	GetAll(ctx context.Context) ([]entity.HistoryEntry, error)
	Clear(ctx context.Context) error
	SetIncognito(enabled bool)
	Incognito() bool
}

// BookmarkStore persists bookmarks in user order.
type BookmarkStore interface {
	Add(ctx context.Context, url, title, favicon string) error
	Remove(ctx context.Context, url string) error
	IsBookmarked(ctx context.Context, url string) (bool, error)
	GetAll(ctx context.Context) ([]entity.Bookmark, error)
	Reorder(ctx context.Context, urlsInOrder []string) error
}

// DownloadStore persists download records keyed by ID.
type DownloadStore interface {
	Add(ctx context.Context, download entity.Download) error
	GetAll(ctx context.Context) ([]entity.Download, error)
	Clear(ctx context.Context) error
}
