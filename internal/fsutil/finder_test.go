package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("# test"), 0644))
	}
}

func TestFindFilesByExtension_SortedAndRecursive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.hcl", "nested/c.hcl", "notes.txt")

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "europe.map", "dir/one.hcl")

	files, err := CollectFiles(filepath.Join(root, "europe.map"), ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "europe.map")}, files)

	files, err = CollectFiles(filepath.Join(root, "dir"), ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "dir", "one.hcl")}, files)

	empty := filepath.Join(root, "empty")
	require.NoError(t, os.Mkdir(empty, 0755))
	_, err = CollectFiles(empty, ".hcl")
	assert.Error(t, err)

	_, err = CollectFiles(filepath.Join(root, "missing"), ".hcl")
	assert.True(t, os.IsNotExist(err))
}
