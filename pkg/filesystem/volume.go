package filesystem

import (
	"os"
	"path/filepath"
	"unicode"
)

// VolumeInfo answers questions about the volume containing a path.
// It exists as a seam so tests can simulate case-sensitive or
// case-insensitive filesystems without touching real volumes.
type VolumeInfo interface {
	// IsCaseSensitive reports whether the volume holding path
	// distinguishes file names by case.
	IsCaseSensitive(path string) bool
}

// osVolumeInfo probes the real volume
type osVolumeInfo struct{}

// NewOSVolumeInfo creates a VolumeInfo backed by the live filesystem.
func NewOSVolumeInfo() VolumeInfo {
	return &osVolumeInfo{}
}

// IsCaseSensitive walks up from path until it finds an existing
// component containing letters, then checks whether a case-flipped
// spelling of that component resolves to the same file. POSIX default
// (case-sensitive) is reported when nothing can be probed.
func (v *osVolumeInfo) IsCaseSensitive(path string) bool {
	p := path
	for {
		if p == "" || p == "/" || p == "." {
			return true
		}
		base := filepath.Base(p)
		flipped := flipCase(base)
		if flipped != base {
			if fi, err := os.Lstat(p); err == nil {
				fj, err := os.Lstat(filepath.Join(filepath.Dir(p), flipped))
				if err != nil {
					// The flipped spelling does not resolve, so the
					// volume distinguishes case.
					return true
				}
				return !os.SameFile(fi, fj)
			}
		}
		parent := filepath.Dir(p)
		if parent == p {
			return true
		}
		p = parent
	}
}

func flipCase(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.IsLower(r):
			runes[i] = unicode.ToUpper(r)
		case unicode.IsUpper(r):
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

// FixedVolumeInfo is a VolumeInfo test double returning a fixed answer
// for every path.
type FixedVolumeInfo struct {
	CaseSensitive bool
}

func (f FixedVolumeInfo) IsCaseSensitive(string) bool {
	return f.CaseSensitive
}
