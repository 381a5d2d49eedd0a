package pathkit

import (
	"github.com/arthur-debert/pathkit/pkg/filesystem"
)

// Package-level seams. Every filesystem-touching operation goes through
// fsys, and Abbreviate consults volumes; both default to the live OS.
// Tests may swap them, restoring the previous value when done. Swapping
// is not synchronized with in-flight operations.
var (
	fsys    filesystem.FS         = filesystem.NewOS()
	volumes filesystem.VolumeInfo = filesystem.NewOSVolumeInfo()
)

// SetFilesystem replaces the filesystem implementation used by all Path
// operations and returns the previous one.
func SetFilesystem(fs filesystem.FS) filesystem.FS {
	previous := fsys
	fsys = fs
	return previous
}

// SetVolumeInfo replaces the volume-info capability used by Abbreviate
// and returns the previous one.
func SetVolumeInfo(v filesystem.VolumeInfo) filesystem.VolumeInfo {
	previous := volumes
	volumes = v
	return previous
}
