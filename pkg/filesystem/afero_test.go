package filesystem

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS(t *testing.T) {
	fsys := NewAfero(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/dir/nested", 0o755))
	require.NoError(t, fsys.WriteFile("/dir/file.txt", []byte("hello"), 0o644))

	t.Run("stat and read", func(t *testing.T) {
		info, err := fsys.Stat("/dir/file.txt")
		require.NoError(t, err)
		assert.False(t, info.IsDir())

		data, err := fsys.ReadFile("/dir/file.txt")
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))

		// Reading a directory is refused
		_, err = fsys.ReadFile("/dir")
		assert.Error(t, err)
	})

	t.Run("read dir", func(t *testing.T) {
		entries, err := fsys.ReadDir("/dir")
		require.NoError(t, err)
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.ElementsMatch(t, []string{"nested", "file.txt"}, names)
	})

	t.Run("simulated symlinks round trip", func(t *testing.T) {
		require.NoError(t, fsys.Symlink("/dir/file.txt", "/dir/link"))
		target, err := fsys.Readlink("/dir/link")
		require.NoError(t, err)
		assert.Equal(t, "/dir/file.txt", target)
	})

	t.Run("hard links are unsupported", func(t *testing.T) {
		err := fsys.Link("/dir/file.txt", "/dir/hard")
		assert.ErrorIs(t, err, errors.ErrUnsupported)
	})

	t.Run("access approximates permission bits", func(t *testing.T) {
		assert.NoError(t, fsys.Access("/dir/file.txt", AccessRead))
		assert.Error(t, fsys.Access("/dir/file.txt", AccessExecute))
		assert.Error(t, fsys.Access("/missing", AccessExists))
	})

	t.Run("rename and remove", func(t *testing.T) {
		require.NoError(t, fsys.Rename("/dir/file.txt", "/dir/renamed.txt"))
		_, err := fsys.Stat("/dir/file.txt")
		assert.Error(t, err)

		require.NoError(t, fsys.RemoveAll("/dir"))
		_, err = fsys.Stat("/dir")
		assert.Error(t, err)
	})
}
