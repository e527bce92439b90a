package steward

import (
	"context"
	"path/filepath"

	"github.com/jmgilman/go/steward/errors"
)

// Rename gives the entry at oldPath a new name within the same directory.
// Both paths must be inside the root and share the same parent; moving an
// entry elsewhere is Cut's job. The rename is a single storage call and is
// never emulated by copying.
func (s *Steward) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := canceled(ctx); err != nil {
		return err
	}
	oldAbs, err := s.guard(oldPath)
	if err != nil {
		return err
	}
	newAbs, err := s.guard(newPath)
	if err != nil {
		return err
	}

	if filepath.Dir(oldAbs) != filepath.Dir(newAbs) {
		return errors.WithContextMap(
			errors.Newf(errors.CodeInvalidArgument, "the parent directories of %q and %q do not match", oldAbs, newAbs),
			map[string]interface{}{"old": oldAbs, "new": newAbs},
		)
	}
	if _, err := s.lstat(oldAbs); err != nil {
		return err
	}
	if oldAbs == newAbs {
		return nil
	}

	s.logger.Debug().Str("op", "rename").Str("old", oldAbs).Str("new", newAbs).Msg("renaming")
	if err := s.store.Rename(oldAbs, newAbs); err != nil {
		return errors.WithContextMap(
			failed(err, "cannot rename %q to %q", oldAbs, newAbs),
			map[string]interface{}{"old": oldAbs, "new": newAbs},
		)
	}
	return nil
}
