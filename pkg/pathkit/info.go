package pathkit

import (
	"path/filepath"

	"github.com/arthur-debert/pathkit/pkg/filesystem"
)

// The predicates below all issue a live stat or access call per
// invocation; nothing is cached. They never return an error: any
// failure, including permission denied, collapses to false so they can
// be used directly in conditionals.

// Exists reports whether anything lives at the raw path.
func (p Path) Exists() bool {
	_, err := fsys.Stat(p.raw)
	return err == nil
}

// IsDirectory reports whether the normalized path resolves, following
// symlinks, to a directory.
func (p Path) IsDirectory() bool {
	info, err := fsys.Stat(p.Normalize().raw)
	return err == nil && info.IsDir()
}

// IsFile reports whether the normalized path resolves, following
// symlinks, to a non-directory.
func (p Path) IsFile() bool {
	info, err := fsys.Stat(p.Normalize().raw)
	return err == nil && !info.IsDir()
}

// IsSymlink reports whether the raw path is itself a symlink, i.e.
// reading its target succeeds.
func (p Path) IsSymlink() bool {
	_, err := fsys.Readlink(p.raw)
	return err == nil
}

// IsReadable reports read permission on the raw path.
func (p Path) IsReadable() bool {
	return fsys.Access(p.raw, filesystem.AccessRead) == nil
}

// IsWritable reports write permission on the raw path.
func (p Path) IsWritable() bool {
	return fsys.Access(p.raw, filesystem.AccessWrite) == nil
}

// IsExecutable reports execute permission on the raw path.
func (p Path) IsExecutable() bool {
	return fsys.Access(p.raw, filesystem.AccessExecute) == nil
}

// IsDeletable reports whether the entry could be removed, which on
// POSIX means write and search permission on its parent directory.
func (p Path) IsDeletable() bool {
	if !p.Exists() {
		return false
	}
	parent := filepath.Dir(p.raw)
	return fsys.Access(parent, filesystem.AccessWrite|filesystem.AccessExecute) == nil
}

// SymlinkDestination resolves one level of symlink. A relative target
// is interpreted relative to the symlink's own parent directory; the
// result is not normalized further, since intermediate components may
// themselves be symlinks. Errors from the OS propagate unchanged.
func (p Path) SymlinkDestination() (Path, error) {
	target, err := fsys.Readlink(p.raw)
	if err != nil {
		return Path{}, err
	}
	destination := New(target)
	if destination.IsAbsolute() {
		return destination, nil
	}
	return p.Join(New("..")).Join(destination), nil
}
