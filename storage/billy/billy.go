package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/steward/storage"
)

// FS wraps a billy.Filesystem to implement storage.Storage.
// It provides a thin adapter that keeps access to the underlying
// billy.Filesystem for callers that need it.
type FS struct {
	bfs    billy.Filesystem
	fsType storage.FSType

	// chmod applies permission bits to directories the backend created with
	// its own default mode. Nil when the backend honors perm itself.
	chmod func(name string, perm fs.FileMode) error
}

// Option configures filesystem creation.
type Option func(*FS)

// WithType overrides the reported storage type. Useful when wrapping a
// custom billy.Filesystem with New.
func WithType(t storage.FSType) Option {
	return func(f *FS) {
		f.fsType = t
	}
}

// NewLocal creates a go-billy-backed local filesystem.
// The returned filesystem is rooted at the filesystem root ("/") so the
// absolute paths handed over by the steward map directly onto disk.
//
// osfs creates every directory as 0755 regardless of the requested mode, so
// new directories are chmod-ed to the requested permissions afterwards.
func NewLocal(opts ...Option) *FS {
	f := New(osfs.New("/"), append([]Option{WithType(storage.FSTypeLocal)}, opts...)...)
	f.chmod = os.Chmod
	return f
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(opts ...Option) *FS {
	return New(memfs.New(), append([]Option{WithType(storage.FSTypeMemory)}, opts...)...)
}

// New wraps an arbitrary billy.Filesystem.
func New(bfs billy.Filesystem, opts ...Option) *FS {
	f := &FS{bfs: bfs, fsType: storage.FSTypeUnknown}
	if ch, ok := bfs.(billy.Change); ok {
		f.chmod = ch.Chmod
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the storage type this filesystem was created with.
func (f *FS) Type() storage.FSType {
	return f.fsType
}

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// ReadFS interface implementation

// Open opens the named file for streaming reads.
func (f *FS) Open(name string) (io.ReadCloser, error) {
	return f.bfs.Open(normalize(name))
}

// Lstat returns file metadata without following a final symbolic link.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	info, err := f.bfs.Lstat(normalize(name))
	if errors.Is(err, billy.ErrNotSupported) {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: storage.ErrUnsupported}
	}
	return info, err
}

// ReadDir reads the named directory and returns the metadata of each child,
// sorted by name.
func (f *FS) ReadDir(name string) ([]fs.FileInfo, error) {
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	slices.SortFunc(infos, func(a, b fs.FileInfo) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return infos, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	r, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(r)
}

// Exists reports whether the named path exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.Lstat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFS interface implementation

// Create creates or truncates the named file for streaming writes.
func (f *FS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	return f.bfs.OpenFile(normalize(name), os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(f.bfs, normalize(name), data, perm)
}

// Mkdir creates a single directory.
// Unlike MkdirAll, this will fail if the parent directory does not exist.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := f.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		info, err := f.bfs.Stat(parent)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: errors.New("parent is not a directory")}
		}
	}
	// MkdirAll won't create parents since the parent was verified above
	if err := f.bfs.MkdirAll(name, perm); err != nil {
		return err
	}
	return f.applyPerm([]string{name}, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
// Only directories created by this call receive perm.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	path = normalize(path)
	created := f.missing(path)
	if err := f.bfs.MkdirAll(path, perm); err != nil {
		return err
	}
	return f.applyPerm(created, perm)
}

// missing returns path and each of its ancestors that does not exist yet,
// deepest first.
func (f *FS) missing(path string) []string {
	var dirs []string
	for p := path; ; {
		if _, err := f.bfs.Lstat(p); err == nil {
			return dirs
		}
		dirs = append(dirs, p)
		parent := filepath.Dir(p)
		if parent == p {
			return dirs
		}
		p = parent
	}
}

func (f *FS) applyPerm(dirs []string, perm fs.FileMode) error {
	if f.chmod == nil {
		return nil
	}
	for _, d := range dirs {
		if err := f.chmod(d, perm.Perm()); err != nil && !errors.Is(err, billy.ErrNotSupported) {
			return err
		}
	}
	return nil
}

// ManageFS interface implementation

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	return f.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains.
func (f *FS) RemoveAll(path string) error {
	err := util.RemoveAll(f.bfs, normalize(path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Rename renames oldpath to newpath.
func (f *FS) Rename(oldpath, newpath string) error {
	return f.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Compile-time interface checks.
var _ storage.Storage = (*FS)(nil)
