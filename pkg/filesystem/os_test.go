package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFS(t *testing.T) {
	fsys := NewOS()
	tmp := t.TempDir()
	file := filepath.Join(tmp, "f.txt")

	require.NoError(t, fsys.WriteFile(file, []byte("x"), 0o644))

	info, err := fsys.Stat(file)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	assert.NoError(t, fsys.Access(file, AccessRead))
	assert.Error(t, fsys.Access(filepath.Join(tmp, "missing"), AccessExists))

	require.NoError(t, fsys.Symlink("f.txt", filepath.Join(tmp, "link")))
	target, err := fsys.Readlink(filepath.Join(tmp, "link"))
	require.NoError(t, err)
	assert.Equal(t, "f.txt", target)

	entries, err := fsys.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
