package steward

import (
	"context"

	"github.com/jmgilman/go/steward/errors"
)

// Remove deletes the file or directory at path. Directories are removed
// with everything below them.
//
// An absent path is not an error unless WithForce(false) is given, in which
// case NOT_FOUND is returned. Entries that are neither files nor directories
// fail with OPERATION_FAILED. The root itself can never be removed.
func (s *Steward) Remove(ctx context.Context, path string, opts ...OpOption) error {
	if err := canceled(ctx); err != nil {
		return err
	}
	abs, err := s.guard(path)
	if err != nil {
		return err
	}
	if abs == s.root {
		return errors.WithContext(
			errors.Newf(errors.CodeJurisdiction, "refusing to remove the root %q", abs),
			"path", abs,
		)
	}
	o := defaultOpOptions().apply(opts)

	s.logger.Debug().Str("op", "remove").Str("path", abs).Bool("force", o.force).Msg("removing")

	info, err := s.lstat(abs)
	if err != nil {
		if o.force && errors.IsCode(err, errors.CodeNotFound) {
			return nil
		}
		return err
	}
	return s.remove(abs, KindOf(info.Mode()))
}

// remove deletes abs according to its kind.
func (s *Steward) remove(abs string, kind Kind) error {
	switch kind {
	case KindDirectory:
		if err := s.store.RemoveAll(abs); err != nil {
			return failed(err, "cannot remove directory %q", abs)
		}
	case KindFile:
		if err := s.store.Remove(abs); err != nil {
			return failed(err, "cannot remove file %q", abs)
		}
	default:
		return errors.WithContextMap(
			errors.Newf(errors.CodeOperationFailed, "cannot remove %s %q", kind, abs),
			map[string]interface{}{"path": abs, "kind": kind.String()},
		)
	}
	return nil
}
