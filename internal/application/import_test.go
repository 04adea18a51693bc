package application

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportListRoundTrip(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	list, _, _ := seedList(t, s)

	data, filename, err := s.ExportList(list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Friday crawl.json", filename)

	require.NoError(t, s.ImportPayload(ctx, data))

	require.Len(t, s.Hub().Lists, 2)
	imported := s.Hub().Lists[1]
	assert.Equal(t, list.Name, imported.Name)
	assert.Equal(t, list.Participants, imported.Participants)
	assert.NotEqual(t, list.ID, imported.ID, "imported lists get fresh ids")
	assert.Equal(t, imported.ID, s.Hub().ActiveListID, "list import activates the copy")
}

func TestImportHubAppends(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	seedList(t, s)

	other := newTestSession(t)
	_, err := other.AddList(ctx, "Borrowed one")
	require.NoError(t, err)
	_, err = other.AddList(ctx, "Borrowed two")
	require.NoError(t, err)

	data, err := other.ExportHub()
	require.NoError(t, err)

	require.NoError(t, s.ImportPayload(ctx, data))

	require.Len(t, s.Hub().Lists, 3)
	assert.Equal(t, "Friday crawl", s.Hub().Lists[0].Name)
	assert.Equal(t, "Borrowed one", s.Hub().Lists[1].Name)
	assert.Equal(t, "Borrowed two", s.Hub().Lists[2].Name)
	assert.Empty(t, s.Hub().ActiveListID, "hub import returns to hub level")
}

func TestImportRejectsGarbageUntouched(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	list, _, _ := seedList(t, s)

	inputs := [][]byte{
		[]byte("not json"),
		[]byte("null"),
		[]byte(`[1,2,3]`),
		[]byte(`{"version":1,"type":"archive"}`),
		[]byte(`{"version":1,"type":"hub"}`),
	}
	for _, data := range inputs {
		require.Error(t, s.ImportPayload(ctx, data))
	}

	require.Len(t, s.Hub().Lists, 1)
	assert.Equal(t, list.ID, s.Hub().ActiveListID)
}

func TestImportVersionMismatchProceeds(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	data := []byte(`{"version":99,"type":"list","list":{"id":"x","name":"Future","participants":[],"checkpoints":[]}}`)
	require.NoError(t, s.ImportPayload(ctx, data))

	require.Len(t, s.Hub().Lists, 1)
	assert.Equal(t, "Future", s.Hub().Lists[0].Name)
}

func TestShareLinkRoundTrip(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	list, _, _ := seedList(t, s)

	link, err := s.ShareLink("https://example.com/pubcrawl/")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link, "https://example.com/pubcrawl/#data="))

	other := newTestSession(t)
	require.NoError(t, other.ImportShareLink(ctx, link))

	require.Len(t, other.Hub().Lists, 1)
	got := other.Hub().Lists[0]
	assert.Equal(t, list.Name, got.Name)
	assert.Equal(t, list.Participants, got.Participants)
}

func TestShareLinkWithoutActiveList(t *testing.T) {
	s := newTestSession(t)

	link, err := s.ShareLink("https://example.com/")
	require.NoError(t, err)
	assert.Empty(t, link)
}

func TestImportClearsUIState(t *testing.T) {
	store, dir := newTestStore(t)
	uiStatePath := filepath.Join(dir, "uistate.json")
	require.NoError(t, os.WriteFile(uiStatePath, []byte(`{"collapsed":["a"]}`), 0o600))

	s, err := Open(context.Background(), store, &fakeClock{now: testTime()}, nil)
	require.NoError(t, err)

	data := []byte(`{"version":1,"type":"list","list":{"id":"x","name":"New","participants":[],"checkpoints":[]}}`)
	require.NoError(t, s.ImportPayload(context.Background(), data))

	_, err = os.Stat(uiStatePath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExportListNotFound(t *testing.T) {
	s := newTestSession(t)

	_, _, err := s.ExportList("missing")
	assert.Error(t, err)
}
