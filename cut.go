package steward

import "context"

// Cut moves src to dest by copying it and then removing the source. The
// source is only removed after the copy has fully succeeded; a failed copy
// leaves the source in place and may leave a partial destination behind.
//
// Unlike Copy, both src and dest must be inside the root, since the source
// is deleted. The same overlap guards and options as Copy apply, so a
// directory can never be moved into its own subtree or onto an ancestor.
func (s *Steward) Cut(ctx context.Context, src, dest string, opts ...OpOption) error {
	if err := canceled(ctx); err != nil {
		return err
	}
	srcAbs, err := s.guard(src)
	if err != nil {
		return err
	}
	destAbs, err := s.guard(dest)
	if err != nil {
		return err
	}
	o := defaultOpOptions().apply(opts)

	s.logger.Debug().Str("op", "cut").Str("src", srcAbs).Str("dest", destAbs).Bool("stream", o.stream).Msg("moving")

	kind, err := s.transfer(ctx, srcAbs, destAbs, o)
	if err != nil {
		return err
	}
	return s.remove(srcAbs, kind)
}
