package jsonstore

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

// DownloadsFile is the downloads document name inside the data directory.
const DownloadsFile = "downloads.json"

// DownloadStore implements port.DownloadStore.
type DownloadStore struct {
	doc *document[[]entity.Download]
}

// NewDownloadStore creates a download store in dataDir.
func NewDownloadStore(dataDir string) *DownloadStore {
	return &DownloadStore{
		doc: newDocument(filepath.Join(dataDir, DownloadsFile), func() []entity.Download {
			return []entity.Download{}
		}),
	}
}

// Add inserts or replaces the download with the same ID. A missing ID
// is generated and a zero StartTime set to now.
func (s *DownloadStore) Add(ctx context.Context, download entity.Download) error {
	if download.ID == "" {
		download.ID = uuid.NewString()
	}
	if download.StartTime.IsZero() {
		download.StartTime = time.Now()
	}
	return s.doc.Update(ctx, func(list *[]entity.Download) error {
		for i := range *list {
			if (*list)[i].ID == download.ID {
				(*list)[i] = download
				return nil
			}
		}
		*list = append(*list, download)
		return nil
	})
}

// GetAll returns every download in insertion order.
func (s *DownloadStore) GetAll(ctx context.Context) ([]entity.Download, error) {
	return s.doc.Load(ctx)
}

// Clear removes every download record.
func (s *DownloadStore) Clear(ctx context.Context) error {
	return s.doc.Update(ctx, func(list *[]entity.Download) error {
		*list = []entity.Download{}
		return nil
	})
}
