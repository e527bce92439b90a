package steward

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/steward/errors"
	"github.com/jmgilman/go/steward/storage"
)

// Entry is a classified filesystem node. Entries are snapshots built fresh
// for every call; they are not live handles.
type Entry struct {
	// Path is root-relative (slash separated, "." for the root) or absolute,
	// depending on WithRelative.
	Path string `json:"path"`

	// Kind classifies the entry without following symbolic links.
	Kind Kind `json:"kind"`

	// Info is the storage layer's metadata for the entry.
	Info fs.FileInfo `json:"-"`

	// Children holds the entries below a directory, sorted by name. It is
	// only populated when expansion was requested.
	Children []Entry `json:"children,omitempty"`
}

// Inspect returns the entry at path; an empty path means the root.
//
// With WithChildren(true) a directory gets its immediate children attached,
// or its whole subtree when WithRecursive(true) is also given.
func (s *Steward) Inspect(ctx context.Context, path string, opts ...OpOption) (*Entry, error) {
	if err := canceled(ctx); err != nil {
		return nil, err
	}
	abs, err := s.guard(path)
	if err != nil {
		return nil, err
	}
	o := opOptions{relative: true}.apply(opts)

	info, err := s.lstat(abs)
	if err != nil {
		return nil, err
	}

	t := traversal{store: s.store, root: s.root, relative: o.relative, recursive: o.recursive}
	entry := t.entry(abs, info)
	if entry.Kind == KindDirectory && o.children {
		children, err := t.list(ctx, abs)
		if err != nil {
			return nil, err
		}
		entry.Children = children
	}
	return &entry, nil
}

// List returns the entries below the directory at path; an empty path means
// the root. Subdirectories are expanded unless WithRecursive(false) is given.
func (s *Steward) List(ctx context.Context, path string, opts ...OpOption) ([]Entry, error) {
	if err := canceled(ctx); err != nil {
		return nil, err
	}
	abs, err := s.guard(path)
	if err != nil {
		return nil, err
	}
	o := opOptions{relative: true, recursive: true}.apply(opts)

	info, err := s.lstat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "%q is not a directory", abs),
			"path", abs,
		)
	}

	t := traversal{store: s.store, root: s.root, relative: o.relative, recursive: o.recursive}
	return t.list(ctx, abs)
}

// traversal carries what a directory walk needs down the recursion.
type traversal struct {
	store     storage.ReadFS
	root      string
	relative  bool
	recursive bool
}

func (t traversal) entry(abs string, info fs.FileInfo) Entry {
	p := abs
	if t.relative {
		if rel, err := filepath.Rel(t.root, abs); err == nil {
			p = filepath.ToSlash(rel)
		}
	}
	return Entry{Path: p, Kind: KindOf(info.Mode()), Info: info}
}

// list reads dir one child at a time, descending into subdirectories when
// the traversal is recursive.
func (t traversal) list(ctx context.Context, dir string) ([]Entry, error) {
	infos, err := t.store.ReadDir(dir)
	if err != nil {
		return nil, failed(err, "cannot read directory %q", dir)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if err := canceled(ctx); err != nil {
			return nil, err
		}

		abs := filepath.Join(dir, info.Name())
		entry := t.entry(abs, info)
		if t.recursive && entry.Kind == KindDirectory {
			children, err := t.list(ctx, abs)
			if err != nil {
				return nil, err
			}
			entry.Children = children
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
