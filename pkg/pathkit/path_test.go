package pathkit

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRawRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"/",
		"a/b",
		"foo/../bar",
		"/usr/./local//bin/",
		"~",
		"with spaces/andьunicode",
	}

	for _, raw := range tests {
		assert.Equal(t, raw, New(raw).String())
	}
}

func TestFromComponents(t *testing.T) {
	tests := []struct {
		name       string
		components []string
		want       string
	}{
		{
			name:       "empty input is current directory",
			components: nil,
			want:       ".",
		},
		{
			name:       "relative join",
			components: []string{"a", "b", "c"},
			want:       "a/b/c",
		},
		{
			name:       "root marker does not double the separator",
			components: []string{"/", "usr", "bin"},
			want:       "/usr/bin",
		},
		{
			name:       "root alone",
			components: []string{"/"},
			want:       "/",
		},
		{
			name:       "single component",
			components: []string{"a"},
			want:       "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromComponents(tt.components...).String())
		})
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"/", []string{"/"}},
		{"a/b", []string{"a", "b"}},
		{"/a/b", []string{"/", "a", "b"}},
		{"/a/b/", []string{"/", "a", "b", "/"}},
		{"a//b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.raw).Components(), "components of %q", tt.raw)
	}
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, New("/usr").IsAbsolute())
	assert.False(t, New("/usr").IsRelative())
	assert.True(t, New("usr").IsRelative())
	assert.True(t, New("").IsRelative())
	assert.True(t, New("~/x").IsRelative())
}

func TestLastComponent(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"a/b/c.txt", "c.txt"},
		{"/a/b/", "b"},
		{"/", "/"},
		{"", ""},
		{"file", "file"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.raw).LastComponent(), "last component of %q", tt.raw)
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		raw        string
		ext        string
		withoutExt string
	}{
		{"a/b/c.txt", "txt", "c"},
		{"archive.tar.gz", "gz", "archive.tar"},
		{".bashrc", "", ".bashrc"},
		{"noext", "", "noext"},
		{"trailingdot.", "", "trailingdot."},
	}

	for _, tt := range tests {
		p := New(tt.raw)
		assert.Equal(t, tt.ext, p.Extension(), "extension of %q", tt.raw)
		assert.Equal(t, tt.withoutExt, p.LastComponentWithoutExtension(), "stem of %q", tt.raw)
	}
}

func TestParent(t *testing.T) {
	assert.Equal(t, New("a/b"), New("a/b/c").Parent())
	assert.Equal(t, New("/"), New("/a").Parent())
	assert.Equal(t, New(".."), New("a").Parent().Parent())
}

func TestEqualityIsRawString(t *testing.T) {
	// Equality never normalizes
	assert.NotEqual(t, New("a/../b"), New("b"))
	assert.Equal(t, New("a/b"), New("a/b"))

	// Paths work as map keys on the raw string
	seen := map[Path]bool{New("a/../b"): true}
	assert.False(t, seen[New("b")])
	assert.True(t, seen[New("a/../b")])
}

func TestEquivalent(t *testing.T) {
	assert.True(t, New("a/../b").Equivalent(New("b")))
	assert.True(t, New("a/b").Equivalent(New("a/b")))
	assert.False(t, New("a").Equivalent(New("b")))
}

func TestOrdering(t *testing.T) {
	a, b := New("a"), New("b")
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, b.Compare(a))

	paths := []Path{New("c"), New("a/../b"), New("a")}
	sort.Slice(paths, func(i, j int) bool { return paths[i].Less(paths[j]) })
	assert.Equal(t, []Path{New("a"), New("a/../b"), New("c")}, paths)
}
