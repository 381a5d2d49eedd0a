package pathkit

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/pathkit/pkg/logging"
)

// Children returns the immediate entries of the directory, each joined
// onto the parent. The order is whatever the OS reports, not
// guaranteed sorted. Errors propagate unchanged.
func (p Path) Children() ([]Path, error) {
	entries, err := fsys.ReadDir(p.raw)
	if err != nil {
		return nil, err
	}
	children := make([]Path, 0, len(entries))
	for _, entry := range entries {
		children = append(children, p.Join(New(entry.Name())))
	}
	return children, nil
}

// RecursiveChildren returns every entry of the whole subtree, joined
// onto the parent. Symlinked directories are not descended into.
func (p Path) RecursiveChildren() ([]Path, error) {
	entries, err := fsys.ReadDir(p.raw)
	if err != nil {
		return nil, err
	}
	var children []Path
	for _, entry := range entries {
		child := p.Join(New(entry.Name()))
		children = append(children, child)
		if entry.IsDir() {
			grandchildren, err := child.RecursiveChildren()
			if err != nil {
				return nil, err
			}
			children = append(children, grandchildren...)
		}
	}
	return children, nil
}

// IterateOption configures a lazy directory iterator.
type IterateOption func(*iterateOptions)

type iterateOptions struct {
	skipSubdirectories bool
	skipPackages       bool
	skipHidden         bool
}

// SkipSubdirectoryDescendants yields only the directory's immediate
// entries, never descending.
func SkipSubdirectoryDescendants() IterateOption {
	return func(o *iterateOptions) { o.skipSubdirectories = true }
}

// SkipPackageDescendants yields package-like directories (directories
// whose name carries an extension, e.g. "Notes.app") without
// descending into them.
func SkipPackageDescendants() IterateOption {
	return func(o *iterateOptions) { o.skipPackages = true }
}

// SkipHiddenFiles omits dot-prefixed entries entirely, including their
// subtrees.
func SkipHiddenFiles() IterateOption {
	return func(o *iterateOptions) { o.skipHidden = true }
}

// Iterate returns a lazy, single-pass iterator over the directory's
// subtree, depth first. A fresh iterator must be constructed to
// re-iterate; no OS handle outlives the walk. A directory that cannot
// be read mid-walk is yielded but not descended into, matching the
// silent-skip behavior of native directory enumerators.
func (p Path) Iterate(opts ...IterateOption) *Iterator {
	it := &Iterator{root: p}
	for _, opt := range opts {
		opt(&it.opts)
	}
	return it
}

// Iterator walks a directory subtree lazily. It is not safe for
// concurrent use.
type Iterator struct {
	root    Path
	started bool
	opts    iterateOptions
	queue   []Path
	descend *Path
}

// Next yields the next path, or false when the walk is exhausted.
func (it *Iterator) Next() (Path, bool) {
	if !it.started {
		it.started = true
		entries, err := fsys.ReadDir(it.root.raw)
		if err != nil {
			logger := logging.GetLogger("pathkit.iterate")
			logger.Debug().
				Err(err).Str("path", it.root.raw).Msg("cannot read directory")
			return Path{}, false
		}
		for _, entry := range entries {
			it.queue = append(it.queue, it.root.Join(New(entry.Name())))
		}
	}

	for {
		if it.descend != nil {
			dir := *it.descend
			it.descend = nil
			if entries, err := fsys.ReadDir(dir.raw); err == nil {
				children := make([]Path, 0, len(entries)+len(it.queue))
				for _, entry := range entries {
					children = append(children, dir.Join(New(entry.Name())))
				}
				it.queue = append(children, it.queue...)
			}
		}

		if len(it.queue) == 0 {
			return Path{}, false
		}
		next := it.queue[0]
		it.queue = it.queue[1:]

		name := next.LastComponent()
		if it.opts.skipHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !it.opts.skipSubdirectories && isDirectoryEntry(next) {
			if !(it.opts.skipPackages && next.Extension() != "") {
				// Descend on the following Next call, so the caller
				// still has a chance to prune via SkipDescendants.
				dir := next
				it.descend = &dir
			}
		}
		return next, true
	}
}

// SkipDescendants prunes the subtree of the most recently yielded
// directory from the rest of the walk. It only has an effect between
// yielding a directory and the following Next call.
func (it *Iterator) SkipDescendants() {
	it.descend = nil
}

// isDirectoryEntry reports whether the entry is a real directory,
// without following symlinks, mirroring how directory enumerators
// decide whether to descend.
func isDirectoryEntry(p Path) bool {
	info, err := fsys.Lstat(p.raw)
	return err == nil && info.Mode()&fs.ModeSymlink == 0 && info.IsDir()
}
