package pathkit

import (
	"io/fs"
	"os"
	"time"
)

// Mutations delegate to the corresponding OS call and propagate its
// error unchanged. Destinations name the final entry, never just a
// containing directory, and nothing is silently overwritten.

const (
	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
)

// Mkdir creates exactly one directory level. It fails if the parent is
// missing or the directory already exists.
func (p Path) Mkdir() error {
	return fsys.Mkdir(p.raw, defaultDirPerm)
}

// Mkpath creates the full directory chain. It is idempotent: an
// already existing chain is not an error.
func (p Path) Mkpath() error {
	return fsys.MkdirAll(p.raw, defaultDirPerm)
}

// Delete removes a file, or recursively removes a directory and its
// contents. Unlike os.RemoveAll, deleting something that does not
// exist is an error.
func (p Path) Delete() error {
	if _, err := fsys.Lstat(p.raw); err != nil {
		return err
	}
	return fsys.RemoveAll(p.raw)
}

// Move renames the entry to destination.
func (p Path) Move(destination Path) error {
	if _, err := fsys.Lstat(destination.raw); err == nil {
		return &os.LinkError{Op: "rename", Old: p.raw, New: destination.raw, Err: fs.ErrExist}
	}
	return fsys.Rename(p.raw, destination.raw)
}

// Copy copies the entry to destination: file contents and permissions
// for files, the whole subtree for directories, the target string for
// symlinks.
func (p Path) Copy(destination Path) error {
	if _, err := fsys.Lstat(destination.raw); err == nil {
		return &fs.PathError{Op: "copy", Path: destination.raw, Err: fs.ErrExist}
	}
	info, err := fsys.Lstat(p.raw)
	if err != nil {
		return err
	}
	return copyItem(p, destination, info)
}

func copyItem(src, dst Path, info fs.FileInfo) error {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := fsys.Readlink(src.raw)
		if err != nil {
			return err
		}
		return fsys.Symlink(target, dst.raw)
	case info.IsDir():
		if err := fsys.Mkdir(dst.raw, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := fsys.ReadDir(src.raw)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			entryInfo, err := entry.Info()
			if err != nil {
				return err
			}
			err = copyItem(src.Join(New(entry.Name())), dst.Join(New(entry.Name())), entryInfo)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		data, err := fsys.ReadFile(src.raw)
		if err != nil {
			return err
		}
		return fsys.WriteFile(dst.raw, data, info.Mode().Perm())
	}
}

// Link creates a hard link at destination pointing to the entry.
func (p Path) Link(destination Path) error {
	return fsys.Link(p.raw, destination.raw)
}

// Symlink creates a symlink at the path pointing to destination.
func (p Path) Symlink(destination Path) error {
	return fsys.Symlink(destination.raw, p.raw)
}

// Read returns the file's contents.
func (p Path) Read() ([]byte, error) {
	return fsys.ReadFile(p.raw)
}

// ReadString returns the file's contents as a string.
func (p Path) ReadString() (string, error) {
	data, err := fsys.ReadFile(p.raw)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write writes data to the file, creating it if needed.
func (p Path) Write(data []byte) error {
	return fsys.WriteFile(p.raw, data, defaultFilePerm)
}

// WriteString writes s to the file, creating it if needed.
func (p Path) WriteString(s string) error {
	return p.Write([]byte(s))
}

// Chmod changes the entry's permission bits.
func (p Path) Chmod(mode fs.FileMode) error {
	return fsys.Chmod(p.raw, mode)
}

// Touch creates the file empty if missing, otherwise bumps its access
// and modification times to now.
func (p Path) Touch() error {
	if _, err := fsys.Lstat(p.raw); err != nil {
		return fsys.WriteFile(p.raw, nil, defaultFilePerm)
	}
	now := time.Now()
	return fsys.Chtimes(p.raw, now, now)
}
