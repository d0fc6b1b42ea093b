package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/volunteer-manager/pkg/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "nested", "volunteers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_LoadEmpty(t *testing.T) {
	s, err := newTestStore(t).LoadSnapshot(context.Background())

	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	snapshot := &db.Snapshot{
		ID:      "first",
		SavedAt: time.Date(2023, 10, 23, 15, 0, 0, 0, time.UTC),
		Volunteers: []db.VolunteerRecord{
			{Name: "Alice", Phone: "94351253", Email: "alice@example.com", Address: "Street", Skills: []string{"driving"}},
		},
		Events: []db.EventRecord{
			{Name: "Food Drive", Roles: []string{"Packer"}, DateAndTime: "01/12/2023 0900", Location: "Town Hall",
				Description: "Packing food", Materials: []string{}, Recurrence: "FREQ=MONTHLY"},
		},
	}
	require.NoError(t, store.SaveSnapshot(ctx, snapshot))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)

	// A second save replaces every bucket
	snapshot.ID = "second"
	snapshot.Volunteers = []db.VolunteerRecord{}
	require.NoError(t, store.SaveSnapshot(ctx, snapshot))

	loaded, err = store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.ID)
	assert.Empty(t, loaded.Volunteers)
	assert.Len(t, loaded.Events, 1)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "volunteers.db")

	store, err := NewStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(ctx, &db.Snapshot{ID: "kept", SavedAt: time.Now().UTC()}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "kept", loaded.ID)
	assert.Empty(t, loaded.Volunteers)
}
