package steward

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/steward/errors"
	"github.com/jmgilman/go/steward/storage"
	"github.com/jmgilman/go/steward/storage/billy"
	"github.com/rs/zerolog"
)

const (
	defaultDirPerm  fs.FileMode = 0o755
	defaultFilePerm fs.FileMode = 0o644
)

// Steward mutates a file tree on behalf of its caller while keeping every
// mutation inside a single root directory.
//
// Containment is decided on the resolved path text alone. Symbolic links
// inside the root are not followed by the check, so a link pointing outside
// the root lets writes through it land outside. Callers that do not control
// the tree's contents must keep such links out of it.
//
// A Steward holds no state about the tree between calls. It is safe for
// concurrent use as long as callers do not issue overlapping mutations
// against the same path.
type Steward struct {
	root     string
	store    storage.Storage
	logger   zerolog.Logger
	dirPerm  fs.FileMode
	filePerm fs.FileMode
	taskOps  map[Op]bool
}

// New binds a steward to root. The root must be an absolute path; it is
// created, along with any parents, if it does not exist yet.
//
// Example:
//
//	s, err := steward.New("/srv/workspace")
//	if err != nil {
//	    return err
//	}
//	err = s.CreateFile(ctx, "notes/todo.txt", []byte("ship it"))
func New(root string, opts ...StewardOption) (*Steward, error) {
	if err := checkPath(root); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(root) {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "root %q is not an absolute path", root),
			"root", root,
		)
	}

	s := &Steward{
		root:     filepath.Clean(root),
		store:    billy.NewLocal(),
		logger:   zerolog.Nop(),
		dirPerm:  defaultDirPerm,
		filePerm: defaultFilePerm,
		taskOps:  allOps(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.ensureRoot(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("root", s.root).
		Stringer("storage", s.store.Type()).
		Msg("steward ready")

	return s, nil
}

// ensureRoot makes sure the root exists and is a directory.
func (s *Steward) ensureRoot() error {
	info, err := s.store.Lstat(s.root)
	if err == nil {
		if !info.IsDir() {
			return errors.WithContext(
				errors.Newf(errors.CodeInvalidArgument, "root %q is not a directory", s.root),
				"root", s.root,
			)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return failed(err, "cannot inspect root %q", s.root)
	}
	if err := s.store.MkdirAll(s.root, s.dirPerm); err != nil {
		return failed(err, "cannot create root %q", s.root)
	}
	return nil
}

// Root returns the absolute root directory the steward is bound to.
func (s *Steward) Root() string {
	return s.root
}

// Storage returns the storage the steward operates on.
func (s *Steward) Storage() storage.Storage {
	return s.store
}

// failed wraps a storage failure as OPERATION_FAILED.
func failed(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, errors.CodeOperationFailed, format, args...)
}

// notFound reports that a path the operation requires is absent.
func notFound(path string) error {
	return errors.WithContext(
		errors.Newf(errors.CodeNotFound, "%q does not exist", path),
		"path", path,
	)
}

// canceled converts a context error so callers can still match it with
// errors.Is(err, context.Canceled).
func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.CodeOperationFailed, "operation canceled")
	}
	return nil
}

// lstat fetches metadata for an absolute path, mapping absence to NOT_FOUND.
func (s *Steward) lstat(path string) (fs.FileInfo, error) {
	info, err := s.store.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(path)
		}
		return nil, failed(err, "cannot inspect %q", path)
	}
	return info, nil
}
