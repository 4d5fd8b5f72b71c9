package fileaccess

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "IMSManifest.xml"), []byte("<manifest/>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "res"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "res", "index.html"), []byte("<html/>"), 0o644))
	return dir
}

func TestDirectoryExistsIsCaseInsensitive(t *testing.T) {
	dir := writeTestTree(t)
	fa, err := NewDirectory(dir)
	require.NoError(t, err)
	defer fa.Close()

	assert.True(t, fa.Exists("imsmanifest.xml"))
	assert.True(t, fa.Exists("IMSManifest.xml"))
	assert.False(t, fa.Exists("does-not-exist.xml"))
}

func TestDirectoryOpenReadsContent(t *testing.T) {
	dir := writeTestTree(t)
	fa, err := NewDirectory(dir)
	require.NoError(t, err)
	defer fa.Close()

	rc, err := fa.Open("res/index.html")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<html/>", string(data))
}

func TestDirectoryOpenMissingReturnsNotFoundError(t *testing.T) {
	dir := writeTestTree(t)
	fa, err := NewDirectory(dir)
	require.NoError(t, err)
	defer fa.Close()

	_, err = fa.Open("missing.xml")
	assert.Error(t, err)
}

func TestDirectoryListIncludesNestedEntries(t *testing.T) {
	dir := writeTestTree(t)
	fa, err := NewDirectory(dir)
	require.NoError(t, err)
	defer fa.Close()

	entries, err := fa.List("")
	require.NoError(t, err)
	assert.Contains(t, entries, "res/index.html")
}

func TestNewDirectoryRejectsNonExistentRoot(t *testing.T) {
	_, err := NewDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
