// Package billy provides a go-billy-backed implementation of the
// storage.Storage interface.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// filesystems behind a single adapter type, FS.
//
// Usage:
//
//	// Local disk, rooted at "/"; the steward hands over absolute paths.
//	store := billy.NewLocal()
//
//	s, err := steward.New("/srv/workspace", steward.WithStorage(store))
//
// # Memory Filesystem
//
// For testing or throwaway trees, use the in-memory filesystem:
//
//	store := billy.NewMemory()
//	s, err := steward.New("/workspace", steward.WithStorage(store))
//
// # Thread Safety
//
// FS values are as safe for concurrent use as the wrapped billy.Filesystem.
// The steward itself never issues concurrent calls against one path.
package billy
