package filesystem

import (
	"io/fs"
	"time"
)

// AccessMode describes the permission being probed by FS.Access.
// The values match the POSIX access(2) constants.
type AccessMode uint32

const (
	// AccessExists checks for the existence of the file only
	AccessExists AccessMode = 0x0

	// AccessExecute checks for execute (or search) permission
	AccessExecute AccessMode = 0x1

	// AccessWrite checks for write permission
	AccessWrite AccessMode = 0x2

	// AccessRead checks for read permission
	AccessRead AccessMode = 0x4
)

// FS abstracts the filesystem operations the path library performs.
// The production implementation (NewOS) issues the corresponding
// syscall directly; errors are returned exactly as the OS reports them,
// without translation.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Readlink(name string) (string, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Mkdir(name string, perm fs.FileMode) error
	MkdirAll(name string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(name string) error
	Rename(oldname, newname string) error
	Symlink(oldname, newname string) error
	Link(oldname, newname string) error
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
	Access(name string, mode AccessMode) error
}
