// Package filesystem provides filesystem implementations for pathkit.
//
// This package contains implementations of the FS interface, including
// the standard OS filesystem and an afero-backed test filesystem, plus
// the VolumeInfo capability used to answer per-volume questions such as
// case sensitivity.
package filesystem
