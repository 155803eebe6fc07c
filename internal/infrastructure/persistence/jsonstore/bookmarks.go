package jsonstore

import (
	"context"
	"path/filepath"
	"time"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// BookmarksFile is the bookmarks document name inside the data directory.
const BookmarksFile = "bookmarks.json"

// BookmarkStore implements port.BookmarkStore.
type BookmarkStore struct {
	doc *document[[]entity.Bookmark]
}

// NewBookmarkStore creates a bookmark store in dataDir.
func NewBookmarkStore(dataDir string) *BookmarkStore {
	return &BookmarkStore{
		doc: newDocument(filepath.Join(dataDir, BookmarksFile), func() []entity.Bookmark {
			return []entity.Bookmark{}
		}),
	}
}

// Add appends a bookmark, or updates title and favicon when url is
// already bookmarked.
func (s *BookmarkStore) Add(ctx context.Context, url, title, favicon string) error {
	return s.doc.Update(ctx, func(list *[]entity.Bookmark) error {
		for i := range *list {
			if (*list)[i].URL == url {
				(*list)[i].Title = title
				(*list)[i].Favicon = favicon
				(*list)[i].UpdatedAt = time.Now()
				return nil
			}
		}
		*list = append(*list, *entity.NewBookmark(url, title, favicon))
		return nil
	})
}

// Remove deletes the bookmark for url, if any.
func (s *BookmarkStore) Remove(ctx context.Context, url string) error {
	return s.doc.Update(ctx, func(list *[]entity.Bookmark) error {
		out := (*list)[:0]
		for _, b := range *list {
			if b.URL != url {
				out = append(out, b)
			}
		}
		*list = out
		return nil
	})
}

// IsBookmarked reports whether url is bookmarked.
func (s *BookmarkStore) IsBookmarked(ctx context.Context, url string) (bool, error) {
	list, err := s.doc.Load(ctx)
	if err != nil {
		return false, err
	}
	for _, b := range list {
		if b.URL == url {
			return true, nil
		}
	}
	return false, nil
}

// GetAll returns bookmarks in user order.
func (s *BookmarkStore) GetAll(ctx context.Context) ([]entity.Bookmark, error) {
	return s.doc.Load(ctx)
}

// Reorder puts the listed bookmarks first, in the given order. Unknown
// URLs are ignored; unlisted bookmarks keep their relative order after
// the listed ones.
func (s *BookmarkStore) Reorder(ctx context.Context, urlsInOrder []string) error {
	return s.doc.Update(ctx, func(list *[]entity.Bookmark) error {
		byURL := make(map[string]entity.Bookmark, len(*list))
		for _, b := range *list {
			byURL[b.URL] = b
		}

		ordered := make([]entity.Bookmark, 0, len(*list))
		placed := make(map[string]bool, len(urlsInOrder))
		for _, u := range urlsInOrder {
			b, ok := byURL[u]
			if !ok || placed[u] {
				continue
			}
			ordered = append(ordered, b)
			placed[u] = true
		}
		for _, b := range *list {
			if !placed[b.URL] {
				ordered = append(ordered, b)
			}
		}
		*list = ordered
		return nil
	})
}
