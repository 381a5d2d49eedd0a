package pathkit

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/arthur-debert/pathkit/pkg/logging"
)

// Glob expands a shell glob pattern against the filesystem. Supported
// syntax: "*", "?", bracket classes, brace alternatives ("{a,b}") and
// a leading tilde. A trailing "/" restricts matches to directories.
// Matched directories carry a trailing "/" marker in the result. No
// matches, and invalid patterns, both yield an empty slice; Glob never
// fails.
func Glob(pattern string) []Path {
	expanded := New(pattern).expandTilde().String()

	directoriesOnly := false
	if len(expanded) > 1 && strings.HasSuffix(expanded, Separator) {
		directoriesOnly = true
		expanded = strings.TrimSuffix(expanded, Separator)
	}

	matches, err := doublestar.FilepathGlob(expanded)
	if err != nil {
		logger := logging.GetLogger("pathkit.glob")
		logger.Debug().
			Err(err).Str("pattern", pattern).Msg("invalid glob pattern")
		return nil
	}

	paths := make([]Path, 0, len(matches))
	for _, match := range matches {
		p := New(match)
		if p.IsDirectory() {
			p = New(match + Separator)
		} else if directoriesOnly {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// Glob expands pattern relative to the path. An absolute pattern
// ignores the base entirely, per the Join rules.
func (p Path) Glob(pattern string) []Path {
	return Glob(p.JoinString(pattern).String())
}

// Match reports whether the raw path matches a shell filename pattern,
// fnmatch style: "*", "?" and bracket classes, with "*" also crossing
// "/" and no special treatment of a leading dot. An invalid pattern
// matches nothing.
func (p Path) Match(pattern string) bool {
	g, err := glob.Compile(pattern)
	if err != nil {
		return false
	}
	return g.Match(p.raw)
}
