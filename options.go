package steward

import (
	"io/fs"

	"github.com/jmgilman/go/steward/storage"
	"github.com/rs/zerolog"
)

// StewardOption configures a Steward at construction time.
type StewardOption func(*Steward)

// WithStorage sets the storage the steward mutates the tree through.
// Defaults to local disk via go-billy.
//
// Example:
//
//	s, _ := steward.New("/workspace", steward.WithStorage(billy.NewMemory()))
func WithStorage(store storage.Storage) StewardOption {
	return func(s *Steward) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets the logger used for operation tracing.
// Defaults to a disabled logger.
func WithLogger(logger zerolog.Logger) StewardOption {
	return func(s *Steward) {
		s.logger = logger
	}
}

// WithDirPerm sets the permission bits for directories the steward creates.
// Defaults to 0755.
func WithDirPerm(perm fs.FileMode) StewardOption {
	return func(s *Steward) {
		s.dirPerm = perm.Perm()
	}
}

// WithFilePerm sets the permission bits for files the steward writes.
// Defaults to 0644.
func WithFilePerm(perm fs.FileMode) StewardOption {
	return func(s *Steward) {
		s.filePerm = perm.Perm()
	}
}

// WithTaskOps restricts the operations the bulk runner accepts. Tasks using
// any other operation are rejected with INVALID_ARGUMENT before anything
// runs. Defaults to all operations.
//
// Example:
//
//	// Only allow additive plans.
//	s, _ := steward.New(root, steward.WithTaskOps(steward.OpCreate, steward.OpCopy))
func WithTaskOps(ops ...Op) StewardOption {
	return func(s *Steward) {
		s.taskOps = make(map[Op]bool, len(ops))
		for _, op := range ops {
			s.taskOps[op] = true
		}
	}
}

// OpOption tunes a single operation. Options an operation does not use are
// ignored.
type OpOption func(*opOptions)

type opOptions struct {
	recursive bool
	cover     bool
	stream    bool
	force     bool
	children  bool
	relative  bool
}

// defaultOpOptions returns the defaults shared by the mutating operations.
func defaultOpOptions() opOptions {
	return opOptions{
		recursive: true,
		cover:     true,
		force:     true,
		relative:  true,
	}
}

func (o opOptions) apply(opts []OpOption) opOptions {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithRecursive controls recursion.
//
// For CreateDirectory it allows missing parents to be created (default true).
// For Inspect it expands the whole subtree when combined with WithChildren
// (default false). For List it descends into subdirectories (default true).
func WithRecursive(recursive bool) OpOption {
	return func(o *opOptions) {
		o.recursive = recursive
	}
}

// WithCover controls whether an existing file may be overwritten by
// CreateFile, Copy, Cut and Seed. Default true.
func WithCover(cover bool) OpOption {
	return func(o *opOptions) {
		o.cover = cover
	}
}

// WithStream makes Copy and Cut pipe file bytes incrementally instead of
// reading each file into memory first. Default false.
func WithStream(stream bool) OpOption {
	return func(o *opOptions) {
		o.stream = stream
	}
}

// WithForce makes Remove succeed silently when the path is absent.
// Default true.
func WithForce(force bool) OpOption {
	return func(o *opOptions) {
		o.force = force
	}
}

// WithChildren makes Inspect attach the child entries of a directory.
// Default false.
func WithChildren(children bool) OpOption {
	return func(o *opOptions) {
		o.children = children
	}
}

// WithRelative makes Inspect and List report paths relative to the root,
// using forward slashes and "." for the root itself. Default true.
func WithRelative(relative bool) OpOption {
	return func(o *opOptions) {
		o.relative = relative
	}
}
