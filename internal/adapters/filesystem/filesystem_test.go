package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_WriteFileReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	fs := New()

	require.NoError(t, fs.WriteFile(path, []byte("first"), 0o600))
	require.NoError(t, fs.WriteFile(path, []byte("second"), 0o600))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestAdapter_WriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")

	err := New().WriteFile(path, []byte("x"), 0o600)
	require.Error(t, err)
}

func TestAdapter_MkdirAllAndChmod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	fs := New()

	require.NoError(t, fs.MkdirAll(dir, 0o700))
	require.NoError(t, fs.Chmod(dir, 0o700))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestAdapter_ReadMissingFile(t *testing.T) {
	_, err := New().ReadFile(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
