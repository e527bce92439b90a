package steward

import (
	"context"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/steward/errors"
)

// CreateDirectory creates the directory at path. An existing directory is
// not an error.
//
// With WithRecursive(false) the parent must already exist, unless the parent
// is the root itself.
func (s *Steward) CreateDirectory(ctx context.Context, path string, opts ...OpOption) error {
	if err := canceled(ctx); err != nil {
		return err
	}
	abs, err := s.guard(path)
	if err != nil {
		return err
	}
	o := defaultOpOptions().apply(opts)

	s.logger.Debug().Str("op", "create").Str("path", abs).Bool("recursive", o.recursive).Msg("creating directory")
	return s.createDirectory(abs, o.recursive)
}

func (s *Steward) createDirectory(abs string, recursive bool) error {
	info, err := s.store.Lstat(abs)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return errors.WithContext(
			errors.Newf(errors.CodeOperationFailed, "%q exists and is not a directory", abs),
			"path", abs,
		)
	case !errors.Is(err, fs.ErrNotExist):
		return failed(err, "cannot inspect %q", abs)
	}

	if recursive {
		if err := s.store.MkdirAll(abs, s.dirPerm); err != nil {
			return failed(err, "cannot create directory %q", abs)
		}
		return nil
	}

	if parent := filepath.Dir(abs); parent != s.root {
		ok, err := s.store.Exists(parent)
		if err != nil {
			return failed(err, "cannot probe %q", parent)
		}
		if !ok {
			return errors.WithContext(
				errors.Newf(errors.CodeNotFound, "parent directory %q does not exist", parent),
				"path", parent,
			)
		}
	}
	if err := s.store.Mkdir(abs, s.dirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
		return failed(err, "cannot create directory %q", abs)
	}
	return nil
}

// CreateFile writes data to the file at path, creating missing parent
// directories. If the file exists it is overwritten unless WithCover(false)
// is given, in which case ALREADY_EXISTS is returned and the file is left
// untouched.
func (s *Steward) CreateFile(ctx context.Context, path string, data []byte, opts ...OpOption) error {
	if err := canceled(ctx); err != nil {
		return err
	}
	abs, err := s.guard(path)
	if err != nil {
		return err
	}
	o := defaultOpOptions().apply(opts)

	s.logger.Debug().Str("op", "create").Str("path", abs).Int("bytes", len(data)).Msg("creating file")
	if err := s.prepareFile(abs, o.cover); err != nil {
		return err
	}
	if err := s.store.WriteFile(abs, data, s.filePerm); err != nil {
		return failed(err, "cannot write file %q", abs)
	}
	return nil
}

// CreateFileFrom streams the bytes of r into the file at path. It follows
// the same rules as CreateFile. If the transfer fails, a partially written
// file may remain.
func (s *Steward) CreateFileFrom(ctx context.Context, path string, r io.Reader, opts ...OpOption) error {
	if r == nil {
		return errors.New(errors.CodeInvalidArgument, "source reader is nil")
	}
	if err := canceled(ctx); err != nil {
		return err
	}
	abs, err := s.guard(path)
	if err != nil {
		return err
	}
	o := defaultOpOptions().apply(opts)

	s.logger.Debug().Str("op", "create").Str("path", abs).Bool("stream", true).Msg("creating file")
	if err := s.prepareFile(abs, o.cover); err != nil {
		return err
	}
	if err := s.writeStream(ctx, abs, r); err != nil {
		return s.streamFailed(ctx, err, abs)
	}
	return nil
}

// prepareFile applies the overwrite policy for abs and makes sure its parent
// directory exists.
func (s *Steward) prepareFile(abs string, cover bool) error {
	info, err := s.store.Lstat(abs)
	switch {
	case err == nil && !cover:
		return errors.WithContext(
			errors.Newf(errors.CodeAlreadyExists, "file %q already exists", abs),
			"path", abs,
		)
	case err == nil && info.IsDir():
		return errors.WithContext(
			errors.Newf(errors.CodeOperationFailed, "%q is a directory", abs),
			"path", abs,
		)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return failed(err, "cannot inspect %q", abs)
	}

	parent := filepath.Dir(abs)
	if err := s.store.MkdirAll(parent, s.dirPerm); err != nil {
		return failed(err, "cannot create directory %q", parent)
	}
	return nil
}

// writeStream pipes r into abs. The write only counts as complete once the
// destination has been closed successfully.
func (s *Steward) writeStream(ctx context.Context, abs string, r io.Reader) (err error) {
	w, err := s.store.Create(abs, s.filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(w, &contextReader{ctx: ctx, r: r})
	return err
}

// streamFailed converts a failed transfer into a steward error, keeping
// cancellation distinguishable.
func (s *Steward) streamFailed(ctx context.Context, err error, abs string) error {
	if cerr := canceled(ctx); cerr != nil {
		return errors.WithContext(cerr, "path", abs)
	}
	return failed(err, "cannot write file %q", abs)
}

// contextReader stops a stream once its context is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
