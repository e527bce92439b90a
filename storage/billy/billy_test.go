package billy

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/jmgilman/go/steward/storage"
	"github.com/jmgilman/go/steward/storage/storagetest"
)

// TestLocalFS_Constructor verifies NewLocal creates a valid filesystem.
func TestLocalFS_Constructor(t *testing.T) {
	fs := NewLocal()
	if fs == nil {
		t.Fatal("NewLocal() returned nil")
	}
	if fs.bfs == nil {
		t.Error("NewLocal() bfs field is nil")
	}
}

// TestMemoryFS_Constructor verifies NewMemory creates a valid filesystem.
func TestMemoryFS_Constructor(t *testing.T) {
	fs := NewMemory()
	if fs == nil {
		t.Fatal("NewMemory() returned nil")
	}
	if fs.bfs == nil {
		t.Error("NewMemory() bfs field is nil")
	}
}

// TestMemoryFS_Unwrap verifies Unwrap returns the underlying billy.Filesystem.
func TestMemoryFS_Unwrap(t *testing.T) {
	fs := NewMemory()
	billyFS := fs.Unwrap()
	if billyFS == nil {
		t.Fatal("Unwrap() returned nil")
	}

	f, err := billyFS.Create("/test.txt")
	if err != nil {
		t.Fatalf("Failed to use unwrapped filesystem: %v", err)
	}
	_ = f.Close()

	ok, err := fs.Exists("/test.txt")
	if err != nil || !ok {
		t.Errorf("Exists(/test.txt) = (%v, %v), want (true, nil)", ok, err)
	}
}

// TestFS_Type verifies each constructor reports the expected storage type.
func TestFS_Type(t *testing.T) {
	tests := []struct {
		name string
		fs   *FS
		want storage.FSType
	}{
		{"local", NewLocal(), storage.FSTypeLocal},
		{"memory", NewMemory(), storage.FSTypeMemory},
		{"custom", New(memfs.New()), storage.FSTypeUnknown},
		{"custom with type", New(memfs.New(), WithType(storage.FSTypeMemory)), storage.FSTypeMemory},
		{"override", NewMemory(WithType(storage.FSTypeLocal)), storage.FSTypeLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fs.Type(); got != tt.want {
				t.Errorf("Type() = %v (%s), want %v (%s)", got, got.String(), tt.want, tt.want.String())
			}
		})
	}
}

// TestLocalFS_LstatSymlink verifies Lstat reports links on disk without
// following them.
func TestLocalFS_LstatSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	info, err := NewLocal().Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v", link, err)
	}
	if info.Mode()&iofs.ModeSymlink == 0 {
		t.Errorf("Lstat(%s).Mode() = %v, want symlink", link, info.Mode())
	}
}

// TestMemoryFS_MkdirMissingParent verifies Mkdir does not create parents.
func TestMemoryFS_MkdirMissingParent(t *testing.T) {
	fs := NewMemory()
	err := fs.Mkdir("/a/b", 0o755)
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Mkdir(/a/b): got error %v, want fs.ErrNotExist", err)
	}
	if ok, _ := fs.Exists("/a"); ok {
		t.Error("Mkdir(/a/b) created the missing parent /a")
	}
}

// TestLocalFS_Suite runs the storage conformance suite against local disk.
func TestLocalFS_Suite(t *testing.T) {
	storagetest.TestSuiteWithConfig(t, func(t *testing.T) (storage.Storage, string) {
		return NewLocal(), t.TempDir()
	}, storagetest.Config{Symlink: os.Symlink})
}

// TestMemoryFS_Suite runs the storage conformance suite against memory.
func TestMemoryFS_Suite(t *testing.T) {
	storagetest.TestSuite(t, func(t *testing.T) (storage.Storage, string) {
		fs := NewMemory()
		if err := fs.MkdirAll("/workspace", 0o755); err != nil {
			t.Fatalf("MkdirAll(/workspace): %v", err)
		}
		return fs, "/workspace"
	})
}
