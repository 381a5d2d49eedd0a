package pathkit

import (
	"strings"
)

// Separator is the path component separator.
const Separator = "/"

// Path is an immutable value wrapping a single raw path string. The
// raw string is stored exactly as given: no validation, no
// normalization. The zero value (and New("")) represents "no path" and
// is valid; filesystem operations on it simply fail.
//
// Path is comparable: == and map keys use the raw string directly.
type Path struct {
	raw string
}

// New wraps a raw path string.
func New(raw string) Path {
	return Path{raw: raw}
}

// FromComponents builds a Path by joining components with "/".
// No components yields ".". A first component of exactly "/" marks an
// absolute root and the remainder is joined without doubling the
// separator.
func FromComponents(components ...string) Path {
	if len(components) == 0 {
		return Path{raw: "."}
	}
	if components[0] == Separator && len(components) > 1 {
		return Path{raw: Separator + strings.Join(components[1:], Separator)}
	}
	return Path{raw: strings.Join(components, Separator)}
}

// String returns the raw path string.
func (p Path) String() string {
	return p.raw
}

// IsAbsolute reports whether the raw string begins with "/".
func (p Path) IsAbsolute() bool {
	return strings.HasPrefix(p.raw, Separator)
}

// IsRelative reports whether the path is not absolute.
func (p Path) IsRelative() bool {
	return !p.IsAbsolute()
}

// Components splits the raw string into path components. An absolute
// path yields a leading "/" marker; a trailing separator on a
// multi-character path yields a trailing "/" marker. Empty segments
// from doubled separators are dropped.
func (p Path) Components() []string {
	if p.raw == "" {
		return nil
	}
	var components []string
	if strings.HasPrefix(p.raw, Separator) {
		components = append(components, Separator)
	}
	for _, segment := range strings.Split(p.raw, Separator) {
		if segment != "" {
			components = append(components, segment)
		}
	}
	if len(p.raw) > 1 && strings.HasSuffix(p.raw, Separator) {
		components = append(components, Separator)
	}
	return components
}

// LastComponent returns the final path component, ignoring a trailing
// separator.
func (p Path) LastComponent() string {
	components := p.Components()
	for i := len(components) - 1; i >= 0; i-- {
		if components[i] != Separator {
			return components[i]
		}
	}
	if p.IsAbsolute() {
		return Separator
	}
	return ""
}

// Extension returns the last component's extension without the leading
// dot, or "" when there is none. A leading dot alone (".bashrc") does
// not count as an extension.
func (p Path) Extension() string {
	name := p.LastComponent()
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}

// LastComponentWithoutExtension returns the final component with its
// extension removed.
func (p Path) LastComponentWithoutExtension() string {
	name := p.LastComponent()
	if ext := p.Extension(); ext != "" {
		return strings.TrimSuffix(name, "."+ext)
	}
	return name
}

// Parent returns the path's parent directory, computed lexically as
// path + "..".
func (p Path) Parent() Path {
	return p.Join(New(".."))
}

// Less reports whether p sorts before other. The order is raw-string
// lexicographic: a strict total order useful for deterministic sorting,
// not a filesystem-meaningful one.
func (p Path) Less(other Path) bool {
	return p.raw < other.raw
}

// Compare returns -1, 0 or 1 comparing raw strings, for use with
// slices.SortFunc and friends.
func (p Path) Compare(other Path) int {
	return strings.Compare(p.raw, other.raw)
}

// Equivalent reports whether two paths match either on their raw
// strings or on their normalized forms. It is a pattern-match relation
// for control flow, not collection equality: New("a/../b") != New("b"),
// but the two are Equivalent.
func (p Path) Equivalent(other Path) bool {
	if p.raw == other.raw {
		return true
	}
	return p.Normalize().raw == other.Normalize().raw
}
