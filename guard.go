package steward

import (
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/steward/errors"
)

// IsIncluded reports whether path, resolved against root, is root itself or
// one of its descendants. Relative paths are joined to root; absolute paths
// are only cleaned. It never touches storage, so symbolic links along the
// path are not resolved: "link/x" is included even when link points outside
// root.
//
// A path containing a NUL byte is not a well-formed path and yields an
// INVALID_ARGUMENT error.
//
// Example:
//
//	ok, _ := steward.IsIncluded("/srv/ws", "a/../b")     // true
//	ok, _ = steward.IsIncluded("/srv/ws", "../sibling")  // false
func IsIncluded(root, path string) (bool, error) {
	if err := checkPath(root); err != nil {
		return false, err
	}
	if err := checkPath(path); err != nil {
		return false, err
	}
	root = filepath.Clean(root)
	return within(root, resolve(root, path)), nil
}

// IsIncluded reports whether path falls inside the steward's root.
func (s *Steward) IsIncluded(path string) (bool, error) {
	if err := checkPath(path); err != nil {
		return false, err
	}
	return within(s.root, resolve(s.root, path)), nil
}

// Exists reports whether path exists, without following a final symbolic
// link. The path must be inside the root. Absence is (false, nil).
func (s *Steward) Exists(path string) (bool, error) {
	abs, err := s.guard(path)
	if err != nil {
		return false, err
	}
	ok, err := s.store.Exists(abs)
	if err != nil {
		return false, failed(err, "cannot probe %q", abs)
	}
	return ok, nil
}

// guard resolves path against the root and rejects it unless it is
// included. The returned path is absolute and clean.
func (s *Steward) guard(path string) (string, error) {
	if err := checkPath(path); err != nil {
		return "", err
	}
	abs := resolve(s.root, path)
	if !within(s.root, abs) {
		return "", errors.WithContextMap(
			errors.Newf(errors.CodeJurisdiction, "path %q is beyond the steward's jurisdiction", abs),
			map[string]interface{}{"path": abs, "root": s.root},
		)
	}
	return abs, nil
}

// checkPath rejects values that cannot name a file.
func checkPath(path string) error {
	if strings.ContainsRune(path, 0) {
		return errors.WithContext(
			errors.New(errors.CodeInvalidArgument, "path contains a NUL byte"),
			"path", path,
		)
	}
	return nil
}

// resolve turns path into a clean absolute path, joining relative paths to
// root.
func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// within reports whether target is base or lies below it. Both paths must be
// clean and absolute.
func within(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
