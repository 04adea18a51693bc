package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Spaaern/pubcrawl-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	config := viper.New()
	config.Set("hub.path", filepath.Join(dir, "hub.json"))

	store, err := NewStore(config)
	require.NoError(t, err)
	return store, dir
}

func TestStoreLoadMissingFileYieldsEmptyHub(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	hub, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaVersion, hub.Version)
	assert.Empty(t, hub.Lists)
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	hub := domain.NewHub()
	list := domain.NewList("Friday crawl", now)
	list.Participants = []string{"Alice"}
	checkpoint := domain.NewCheckpoint("First pub")
	checkpoint.Subtasks = append(checkpoint.Subtasks,
		domain.NewSubtask("Order a round", map[string]bool{"Alice": true}))
	checkpoint.SyncDone()
	list.Checkpoints = append(list.Checkpoints, checkpoint)
	hub.Lists = append(hub.Lists, list)
	hub.ActiveListID = list.ID

	require.NoError(t, store.Save(context.Background(), hub))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, hub.ActiveListID, got.ActiveListID)
	require.Len(t, got.Lists, 1)
	assert.Equal(t, "Friday crawl", got.Lists[0].Name)
	assert.Equal(t, now, got.Lists[0].CreatedAt)
	assert.True(t, got.Lists[0].Checkpoints[0].Done)
}

func TestStoreLoadCorruptHubFails(t *testing.T) {
	t.Parallel()

	store, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hub.json"), []byte("{not json"), 0o600))

	_, err := store.Load(context.Background())
	require.Error(t, err)
}

func TestStoreLegacyKeys(t *testing.T) {
	t.Parallel()

	store, dir := newTestStore(t)

	_, found, err := store.LoadLegacy(context.Background())
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "participants.json"),
		[]byte(`["Alice","Bob"]`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "checkpoints.json"),
		[]byte(`{"data":[{"id":"c1","name":"Pub","subtasks":[]}]}`), 0o600))

	doc, found, err := store.LoadLegacy(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Alice", "Bob"}, doc.Participants)
	require.Len(t, doc.Checkpoints, 1)
	assert.Equal(t, "Pub", doc.Checkpoints[0].Name)

	require.NoError(t, store.DeleteLegacy(context.Background()))

	_, found, err = store.LoadLegacy(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreClearUIState(t *testing.T) {
	t.Parallel()

	store, dir := newTestStore(t)

	// Clearing when nothing is persisted is fine.
	require.NoError(t, store.ClearUIState(context.Background()))

	path := filepath.Join(dir, "uistate.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"participantsCollapsed":true}`), 0o600))
	require.NoError(t, store.ClearUIState(context.Background()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
