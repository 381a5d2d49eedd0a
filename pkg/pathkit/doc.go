// Package pathkit provides a string-backed filesystem path value type.
//
// A Path wraps a single raw string and is immutable; algebra operations
// (Normalize, Absolute, Abbreviate, Join) are pure and return new Path
// values, while queries, mutations and enumeration perform live
// filesystem calls at invocation time. It handles:
//
//   - Lexical normalization and absolute resolution
//   - Tilde expansion and home-directory abbreviation
//   - Path concatenation with "." removal and ".." collapsing
//   - Existence, type and permission predicates
//   - Directory creation, deletion, move, copy, links
//   - Shallow, recursive and lazy directory enumeration
//   - Shell-style glob expansion and fnmatch-style matching
//
// # Equality
//
// Equality, ordering and hashing operate on the raw string, not a
// normalized form: New("foo/../bar") is not equal to New("bar"). The
// Equivalent method additionally considers two paths equal when their
// normalized forms match.
//
// # Shared state
//
// The process working directory is global mutable state. Chdir restores
// the previous directory on every exit path, but is not safe to use
// from multiple goroutines at once; callers needing that must serialize
// externally.
//
// # Usage
//
//	p := pathkit.New("~/projects").Absolute()
//	children, err := p.Children()
//	if err != nil {
//	    return err
//	}
//	for _, child := range children {
//	    fmt.Println(child)
//	}
//
//	matches := pathkit.Glob("~/projects/*/go.mod")
package pathkit
