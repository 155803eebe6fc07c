package jsonstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko-browser/gekko/internal/domain/entity"
)

func TestDownloadStore_UpsertByID(t *testing.T) {
	ctx := context.Background()
	store := NewDownloadStore(t.TempDir())
	started := time.Now().Truncate(time.Second)

	require.NoError(t, store.Add(ctx, entity.Download{ID: "d1", URL: "https://a.test/f.zip", State: entity.DownloadInProgress, StartTime: started}))
	require.NoError(t, store.Add(ctx, entity.Download{ID: "d1", URL: "https://a.test/f.zip", State: entity.DownloadCompleted, StartTime: started}))

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.DownloadCompleted, list[0].State)
}

func TestDownloadStore_SameStartTimeDoesNotCollide(t *testing.T) {
	ctx := context.Background()
	store := NewDownloadStore(t.TempDir())
	started := time.Now()

	require.NoError(t, store.Add(ctx, entity.Download{URL: "https://a.test/1", StartTime: started}))
	require.NoError(t, store.Add(ctx, entity.Download{URL: "https://a.test/2", StartTime: started}))

	list, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.NotEqual(t, list[0].ID, list[1].ID)

	require.NoError(t, store.Clear(ctx))
	list, err = store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
