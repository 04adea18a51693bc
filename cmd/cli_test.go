package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAddAndShow(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "list", "add", "Friday crawl")
	require.NoError(t, err)
	assert.Contains(t, stdout, "created list Friday crawl")

	stdout, _, err = executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Friday crawl")
	assert.Contains(t, stdout, "No checkpoints yet.")
}

func TestSignOffFlowThroughCLI(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "list", "add", "Friday crawl")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "participant", "add", "Alice")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "participant", "add", "Bob")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "checkpoint", "add", "First pub")
	require.NoError(t, err)
	checkpointID := extractID(t, stdout)

	stdout, _, err = executeCLI(t, home, "subtask", "add", checkpointID, "Order a round", "--assign", "Alice,Bob")
	require.NoError(t, err)
	subtaskID := extractID(t, stdout)

	_, _, err = executeCLI(t, home, "subtask", "toggle", checkpointID, subtaskID, "Alice")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[x] Alice")
	assert.Contains(t, stdout, "[ ] Bob")
	assert.Contains(t, stdout, "0/1")

	_, _, err = executeCLI(t, home, "subtask", "toggle", checkpointID, subtaskID, "Bob")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[x] Bob")
	assert.Contains(t, stdout, "1/1")
}

func TestCheckpointAddWithoutActiveList(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "checkpoint", "add", "First pub")
	require.NoError(t, err)
	assert.Contains(t, stdout, "no active list selected")
}

func TestListRmRequiresConfirmation(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "list", "add", "Doomed")
	require.NoError(t, err)
	id := extractID(t, stdout)

	_, _, err = executeCLI(t, home, "list", "rm", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	_, _, err = executeCLI(t, home, "list", "rm", id, "--yes")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "list", "ls")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Doomed")
}

func TestListArchiveHidesFromDefaultListing(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "list", "add", "Old crawl")
	require.NoError(t, err)
	id := extractID(t, stdout)

	_, _, err = executeCLI(t, home, "list", "archive", id)
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "list", "ls")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Old crawl")

	stdout, _, err = executeCLI(t, home, "list", "ls", "--archived")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Old crawl")

	_, _, err = executeCLI(t, home, "list", "restore", id)
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "list", "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Old crawl")
}

func TestShareLinkImportsIntoAnotherHub(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "list", "add", "Friday crawl")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "participant", "add", "Alice")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "share", "--base", "https://example.com/pubcrawl/")
	require.NoError(t, err)
	link := strings.TrimSpace(stdout)
	require.True(t, strings.HasPrefix(link, "https://example.com/pubcrawl/#data="))

	other := t.TempDir()
	stdout, _, err = executeCLI(t, other, "import", "--link", link)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported shared list")

	stdout, _, err = executeCLI(t, other, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Friday crawl")
	assert.Contains(t, stdout, "participants: Alice")
}

func TestExportFileImportsIntoAnotherHub(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "list", "add", "Friday crawl")
	require.NoError(t, err)

	exportPath := filepath.Join(t.TempDir(), "export.json")
	_, _, err = executeCLI(t, home, "export", "-o", exportPath)
	require.NoError(t, err)

	other := t.TempDir()
	_, _, err = executeCLI(t, other, "import", exportPath)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, other, "list", "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Friday crawl")
}

func TestImportRejectsGarbageFile(t *testing.T) {
	home := t.TempDir()

	badPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("not json at all"), 0o600))

	_, _, err := executeCLI(t, home, "import", badPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or corrupted file")
}

func TestConfigShowPrintsResolvedPaths(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(home, ".pubcrawl", "hub.json"))
	assert.Contains(t, stdout, defaultShareBase)
}

func TestConfigInitRefusesToOverwrite(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "config.toml")

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev", strings.TrimSpace(stdout))
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// extractID pulls the id out of "created <kind> <name> (<id>)" output.
func extractID(t *testing.T, stdout string) string {
	t.Helper()

	start := strings.LastIndex(stdout, "(")
	end := strings.LastIndex(stdout, ")")
	require.True(t, start >= 0 && end > start, "no id in output: %q", stdout)
	return stdout[start+1 : end]
}
