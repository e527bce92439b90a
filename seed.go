package steward

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/steward/errors"
)

// Seed copies the tree rooted at srcRoot in a read-only filesystem
// (typically an embed.FS of templates) into the directory dest, preserving
// its structure. Use "." as srcRoot for the whole source filesystem.
//
// Every written path goes through the same jurisdiction guard as the other
// operations. Existing files are overwritten unless WithCover(false) is
// given. Only directories and regular files are copied.
//
// Example:
//
//	//go:embed templates
//	var templates embed.FS
//
//	err := s.Seed(ctx, templates, "templates", "project")
func (s *Steward) Seed(ctx context.Context, src fs.FS, srcRoot, dest string, opts ...OpOption) error {
	if src == nil {
		return errors.New(errors.CodeInvalidArgument, "seed source is nil")
	}
	if srcRoot == "" {
		srcRoot = "."
	}
	if !fs.ValidPath(srcRoot) {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "seed root %q is not a valid fs.FS path", srcRoot),
			"src_root", srcRoot,
		)
	}
	o := defaultOpOptions().apply(opts)

	s.logger.Debug().Str("op", "seed").Str("src_root", srcRoot).Str("dest", dest).Msg("seeding")

	return fs.WalkDir(src, srcRoot, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			if name == srcRoot && errors.Is(err, fs.ErrNotExist) {
				return notFound(srcRoot)
			}
			return failed(err, "cannot read seed entry %q", name)
		}
		if err := canceled(ctx); err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(name, srcRoot), "/")
		if srcRoot == "." {
			rel = name
		}
		target, err := s.guard(filepath.Join(dest, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return s.createDirectory(target, true)
		case d.Type().IsRegular():
			data, err := fs.ReadFile(src, name)
			if err != nil {
				return failed(err, "cannot read seed file %q", name)
			}
			if err := s.prepareFile(target, o.cover); err != nil {
				return err
			}
			if err := s.store.WriteFile(target, data, s.filePerm); err != nil {
				return failed(err, "cannot write file %q", target)
			}
			return nil
		default:
			s.logger.Debug().Str("path", name).Msg("skipping seed entry")
			return nil
		}
	})
}
