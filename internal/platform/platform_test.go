package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "arc.bin")
	require.NoError(t, os.WriteFile(path, []byte("archive bytes"), 0o600))

	m, err := Map(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("archive bytes"), m.Bytes())
	assert.Equal(t, 13, m.Len())

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())
}

func TestMapEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	m, err := Map(path)
	require.NoError(t, err)
	assert.Empty(t, m.Bytes())
	require.NoError(t, m.Close())
}

func TestMapMissing(t *testing.T) {
	t.Parallel()

	_, err := Map(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenFileNoFollow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "target"), []byte("x"), 0o600))
	if err := os.Symlink("target", filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	defer root.Close()

	f, err := OpenFileNoFollow(root, "target")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = OpenFileNoFollow(root, "link")
	require.ErrorIs(t, err, ErrSymlink)
}
