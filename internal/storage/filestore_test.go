package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	ID        string    `json:"id"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
}

func TestFileStoreLoadMissingKeepsDefault(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	records := []sampleRecord{{ID: "default"}}
	require.NoError(t, store.Load(context.Background(), "never-written", &records))

	// a dataset that was never saved leaves the caller's default in place
	require.Len(t, records, 1)
	assert.Equal(t, "default", records[0].ID)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	created := time.Date(2025, 6, 1, 12, 30, 45, 123000000, time.UTC)
	in := []sampleRecord{
		{ID: "a", Count: 1, CreatedAt: created},
		{ID: "b", Count: 2, CreatedAt: created.Add(time.Hour)},
	}
	require.NoError(t, store.Save(ctx, DatasetApplications, in))

	out := []sampleRecord{}
	require.NoError(t, store.Load(ctx, DatasetApplications, &out))

	require.Len(t, out, 2)
	assert.Equal(t, in[0].ID, out[0].ID)
	// timestamps survive the text round trip with sub-second precision
	assert.True(t, in[0].CreatedAt.Equal(out[0].CreatedAt))
	assert.True(t, in[1].CreatedAt.Equal(out[1].CreatedAt))
}

func TestFileStoreSaveReplacesWholeDataset(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, DatasetUsers, []sampleRecord{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Save(ctx, DatasetUsers, []sampleRecord{{ID: "c"}}))

	out := []sampleRecord{}
	require.NoError(t, store.Load(ctx, DatasetUsers, &out))

	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].ID)
}

func TestFileStoreKeysAreIndependent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, DatasetUsers, []sampleRecord{{ID: "user"}}))
	require.NoError(t, store.Save(ctx, DatasetConversations, []sampleRecord{{ID: "conversation"}}))

	users := []sampleRecord{}
	require.NoError(t, store.Load(ctx, DatasetUsers, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "user", users[0].ID)
}
