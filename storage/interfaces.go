package storage

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of storage implementation.
type FSType int

const (
	// FSTypeUnknown indicates the storage type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local, disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Storage is the collaborator the steward mutates the file tree through.
//
// Storage is deliberately unaware of jurisdiction: every name it receives has
// already been resolved to an absolute, in-root path by the caller. It is
// composed of three sub-interfaces representing different categories of
// operations: ReadFS, WriteFS and ManageFS.
type Storage interface {
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying storage type.
	Type() FSType
}

// ReadFS defines read-only storage operations.
type ReadFS interface {
	// Open opens the named file for streaming reads.
	// The returned reader must be closed when no longer needed.
	Open(name string) (io.ReadCloser, error)

	// Lstat returns file metadata without following a final symbolic link.
	// If the file is a symbolic link, the returned FileInfo describes the
	// link itself. If there is an error, it will be of type *fs.PathError.
	Lstat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory one level deep and returns the
	// metadata of each child, sorted by filename. Child metadata is
	// lstat-equivalent: symbolic links are reported as links.
	ReadDir(name string) ([]fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named path exists, without following a
	// final symbolic link. Absence is reported as (false, nil); a non-nil
	// error means existence could not be determined.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for streaming writes, using
	// perm (before umask) when the file is new. Implementations may create
	// missing parent directories. The returned writer must be closed; a write
	// is only complete once Close returns nil.
	Create(name string, perm fs.FileMode) (io.WriteCloser, error)

	// WriteFile writes data to the named file, creating it if necessary.
	// If the file already exists, WriteFile truncates it before writing.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. The parent must exist.
	// If the path already exists, Mkdir returns an error matching fs.ErrExist.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	// Directories it creates get perm. If path is already a directory,
	// MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file and directory management operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// If the path does not exist, Remove returns an error matching fs.ErrNotExist.
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// It returns the first error it encounters.
	// If the path does not exist, RemoveAll returns nil (no error).
	RemoveAll(path string) error

	// Rename renames oldpath to newpath with a single native call.
	// Implementations must fail, not fall back to copy+delete, when the
	// rename crosses an incompatible boundary such as a different volume.
	Rename(oldpath, newpath string) error
}
