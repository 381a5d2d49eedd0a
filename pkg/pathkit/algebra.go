package pathkit

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Normalize collapses ".", ".." and redundant separators lexically.
// It never touches the filesystem, so symlinks are not resolved. An
// empty path stays empty.
func (p Path) Normalize() Path {
	if p.raw == "" {
		return p
	}
	return Path{raw: filepath.Clean(p.raw)}
}

// Absolute resolves the path to an absolute, normalized form. An
// absolute path is just normalized. A relative path first has a leading
// tilde expanded; if that makes it absolute the expansion is
// normalized and returned, otherwise the path is joined onto the
// process working directory.
func (p Path) Absolute() Path {
	if p.IsAbsolute() {
		return p.Normalize()
	}
	expanded := p.expandTilde()
	if expanded.IsAbsolute() {
		return expanded.Normalize()
	}
	return Cwd().Join(p).Normalize()
}

// Abbreviate replaces a leading home-directory prefix with "~". The
// prefix comparison is anchored at the start and honors the volume's
// case sensitivity, re-queried on every call.
func (p Path) Abbreviate() Path {
	home := homeDirectory()
	if home == "" {
		return p
	}
	raw := p.raw
	if len(raw) < len(home) {
		return p
	}
	prefix := raw[:len(home)]
	if volumes.IsCaseSensitive(p.raw) {
		if prefix != home {
			return p
		}
	} else if !strings.EqualFold(prefix, home) {
		return p
	}
	rest := raw[len(home):]
	switch {
	case rest == "" || rest == Separator:
		return Path{raw: "~"}
	case strings.HasPrefix(rest, Separator):
		return Path{raw: "~" + rest}
	default:
		// Home is a string prefix but not a component prefix, e.g.
		// "/home/userX" under home "/home/user". Leave it alone.
		return p
	}
}

// Join concatenates two paths. If rhs is absolute it replaces the
// receiver entirely ("cd /absolute" semantics). Otherwise both sides
// are decomposed into components, "." components are dropped, and
// leading ".." components on the right pop trailing components off the
// left, never popping a leading root marker and never popping past a
// ".." already at the left's tail.
func (p Path) Join(rhs Path) Path {
	if rhs.IsAbsolute() {
		return rhs
	}

	left := p.Components()
	right := rhs.Components()

	// A single trailing slash marker on the left is noise here.
	if n := len(left); n > 1 && left[n-1] == Separator {
		left = left[:n-1]
	}

	left = withoutCurrentDir(left)
	right = withoutCurrentDir(right)

	for len(left) > 0 && left[len(left)-1] != ".." && len(right) > 0 && right[0] == ".." {
		if len(left) > 1 || left[0] != Separator {
			// A leading "/" is never popped.
			left = left[:len(left)-1]
		}
		right = right[1:]
	}

	return FromComponents(append(left, right...)...)
}

// JoinString is Join with a raw string right-hand side.
func (p Path) JoinString(rhs string) Path {
	return p.Join(New(rhs))
}

func withoutCurrentDir(components []string) []string {
	out := components[:0:0]
	for _, c := range components {
		if c != "." {
			out = append(out, c)
		}
	}
	return out
}

// expandTilde expands a leading "~" or "~user" to the matching home
// directory. Paths without a tilde, or with an unknown user, are
// returned unchanged.
func (p Path) expandTilde() Path {
	raw := p.raw
	if raw == "" || raw[0] != '~' {
		return p
	}
	name, rest := raw[1:], ""
	if sep := strings.IndexByte(raw, '/'); sep >= 0 {
		name, rest = raw[1:sep], raw[sep:]
	}
	home := homeDirectory()
	if name != "" {
		u, err := user.Lookup(name)
		if err != nil {
			return p
		}
		home = u.HomeDir
	}
	if home == "" {
		return p
	}
	return Path{raw: home + rest}
}

// homeDirectory returns the invoking user's home directory, or "" when
// it cannot be determined. os.UserHomeDir re-reads $HOME on every call,
// which keeps tests that override the environment honest; xdg.Home is
// only a fallback since it is resolved once at init.
func homeDirectory() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return xdg.Home
}
