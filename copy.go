package steward

import (
	"context"
	"path/filepath"

	"github.com/jmgilman/go/steward/errors"
)

// Copy replicates the file or directory at src to dest.
//
// Only dest must be inside the root; src may be read from anywhere.
// Directories are copied recursively, one child at a time. Entries inside a
// directory that are neither regular files nor directories are skipped.
// A src that is itself neither a file nor a directory fails with
// OPERATION_FAILED.
//
// Copying a directory into itself, into one of its own subdirectories or
// onto one of its ancestors fails with INVALID_ARGUMENT before anything is
// written. Existing destination files are overwritten unless
// WithCover(false) is given. WithStream(true) pipes file bytes
// incrementally instead of buffering whole files.
func (s *Steward) Copy(ctx context.Context, src, dest string, opts ...OpOption) error {
	if err := canceled(ctx); err != nil {
		return err
	}
	if err := checkPath(src); err != nil {
		return err
	}
	srcAbs := resolve(s.root, src)
	destAbs, err := s.guard(dest)
	if err != nil {
		return err
	}
	o := defaultOpOptions().apply(opts)

	s.logger.Debug().Str("op", "copy").Str("src", srcAbs).Str("dest", destAbs).Bool("stream", o.stream).Msg("copying")
	_, err = s.transfer(ctx, srcAbs, destAbs, o)
	return err
}

// transfer copies srcAbs to destAbs after checking the source kind and the
// self-copy guards. It returns the kind that was copied.
func (s *Steward) transfer(ctx context.Context, srcAbs, destAbs string, o opOptions) (Kind, error) {
	info, err := s.lstat(srcAbs)
	if err != nil {
		return KindUnknown, err
	}

	kind := KindOf(info.Mode())
	switch kind {
	case KindDirectory:
		if within(srcAbs, destAbs) {
			return kind, errors.WithContextMap(
				errors.Newf(errors.CodeInvalidArgument, "cannot copy %q to a subdirectory of itself", srcAbs),
				map[string]interface{}{"src": srcAbs, "dest": destAbs},
			)
		}
		if within(destAbs, srcAbs) {
			return kind, errors.WithContextMap(
				errors.Newf(errors.CodeInvalidArgument, "cannot copy %q into its own ancestor %q", srcAbs, destAbs),
				map[string]interface{}{"src": srcAbs, "dest": destAbs},
			)
		}
		return kind, s.copyDir(ctx, srcAbs, destAbs, o)
	case KindFile:
		if srcAbs == destAbs {
			return kind, errors.WithContext(
				errors.Newf(errors.CodeInvalidArgument, "cannot copy %q onto itself", srcAbs),
				"path", srcAbs,
			)
		}
		return kind, s.copyFile(ctx, srcAbs, destAbs, o)
	default:
		return kind, errors.WithContextMap(
			errors.Newf(errors.CodeOperationFailed, "cannot copy %s %q", kind, srcAbs),
			map[string]interface{}{"src": srcAbs, "kind": kind.String()},
		)
	}
}

// copyDir recursively replicates src into dest.
func (s *Steward) copyDir(ctx context.Context, src, dest string, o opOptions) error {
	if err := s.createDirectory(dest, true); err != nil {
		return err
	}

	infos, err := s.store.ReadDir(src)
	if err != nil {
		return failed(err, "cannot read directory %q", src)
	}

	for _, info := range infos {
		if err := canceled(ctx); err != nil {
			return err
		}

		from := filepath.Join(src, info.Name())
		to := filepath.Join(dest, info.Name())
		switch kind := KindOf(info.Mode()); kind {
		case KindDirectory:
			if err := s.copyDir(ctx, from, to, o); err != nil {
				return err
			}
		case KindFile:
			if err := s.copyFile(ctx, from, to, o); err != nil {
				return err
			}
		default:
			s.logger.Debug().Str("path", from).Stringer("kind", kind).Msg("skipping entry")
		}
	}
	return nil
}

// copyFile copies a single regular file, buffered or streamed.
func (s *Steward) copyFile(ctx context.Context, src, dest string, o opOptions) error {
	if err := s.prepareFile(dest, o.cover); err != nil {
		return err
	}

	if !o.stream {
		data, err := s.store.ReadFile(src)
		if err != nil {
			return failed(err, "cannot read file %q", src)
		}
		if err := s.store.WriteFile(dest, data, s.filePerm); err != nil {
			return failed(err, "cannot write file %q", dest)
		}
		return nil
	}

	r, err := s.store.Open(src)
	if err != nil {
		return failed(err, "cannot open file %q", src)
	}
	defer func() { _ = r.Close() }()

	if err := s.writeStream(ctx, dest, r); err != nil {
		return s.streamFailed(ctx, err, dest)
	}
	return nil
}

