package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Spaaern/pubcrawl-cli/internal/adapters/repo/jsonfile"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestStore(t *testing.T) (*jsonfile.Store, string) {
	t.Helper()

	dir := t.TempDir()
	config := viper.New()
	config.Set("hub.path", filepath.Join(dir, "hub.json"))

	store, err := jsonfile.NewStore(config)
	require.NoError(t, err)
	return store, dir
}

func testTime() time.Time {
	return time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
}

func TestOpenEmptyStore(t *testing.T) {
	store, _ := newTestStore(t)

	session, err := Open(context.Background(), store, &fakeClock{now: testTime()}, nil)
	require.NoError(t, err)

	assert.Empty(t, session.Hub().Lists)
	assert.Nil(t, session.ActiveList())
}

func TestOpenMigratesLegacyStorage(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "participants.json"),
		[]byte(`["Alice","Bob"]`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "checkpoints.json"),
		[]byte(`[{"name":"First pub","subtasks":[{"name":"Order","participants":{"Alice":true,"Ghost":true}}]}]`), 0o600))

	session, err := Open(context.Background(), store, &fakeClock{now: testTime()}, nil)
	require.NoError(t, err)

	hub := session.Hub()
	require.Len(t, hub.Lists, 1)
	list := hub.Lists[0]
	assert.Equal(t, "My first list", list.Name)
	assert.Equal(t, list.ID, hub.ActiveListID)
	assert.Equal(t, []string{"Alice", "Bob"}, list.Participants)

	// Normalization ran: missing ids filled, stale sign-off pruned.
	require.Len(t, list.Checkpoints, 1)
	assert.NotEmpty(t, list.Checkpoints[0].ID)
	assert.Equal(t, map[string]bool{"Alice": true},
		list.Checkpoints[0].Subtasks[0].Participants)

	// Legacy keys are deleted and the hub persisted.
	_, err = os.Stat(filepath.Join(dir, "checkpoints.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "hub.json"))
	assert.NoError(t, err)

	// Reopening does not migrate again.
	again, err := Open(context.Background(), store, &fakeClock{now: testTime()}, nil)
	require.NoError(t, err)
	assert.Len(t, again.Hub().Lists, 1)
}

func TestOpenSkipsLegacyWithoutCheckpoints(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "participants.json"),
		[]byte(`["Alice"]`), 0o600))

	session, err := Open(context.Background(), store, &fakeClock{now: testTime()}, nil)
	require.NoError(t, err)

	assert.Empty(t, session.Hub().Lists)
}

func TestRetentionCleanup(t *testing.T) {
	tests := []struct {
		name     string
		age      time.Duration
		retained bool
	}{
		{name: "31 days old is pruned", age: 31 * 24 * time.Hour, retained: false},
		{name: "29 days old is retained", age: 29 * 24 * time.Hour, retained: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			clock := &fakeClock{now: testTime()}

			session, err := Open(context.Background(), store, clock, nil)
			require.NoError(t, err)

			list, err := session.AddList(context.Background(), "Old crawl")
			require.NoError(t, err)
			require.NoError(t, session.ArchiveList(context.Background(), list.ID))

			clock.now = clock.now.Add(tt.age)

			reopened, err := Open(context.Background(), store, clock, nil)
			require.NoError(t, err)

			if tt.retained {
				require.Len(t, reopened.Hub().Lists, 1)
				assert.NotNil(t, reopened.Hub().Lists[0].ArchivedAt)
			} else {
				assert.Empty(t, reopened.Hub().Lists)
			}
		})
	}
}
