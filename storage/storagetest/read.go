package storagetest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/steward/storage"
)

var readTests = map[string]func(t *testing.T, store storage.Storage, base string, config Config){
	"OpenAndRead":          testReadOpen,
	"ReadFile":             testReadFile,
	"ReadFileNotExist":     testReadFileNotExist,
	"LstatFile":            testReadLstatFile,
	"LstatDirectory":       testReadLstatDir,
	"LstatSymlink":         testReadLstatSymlink,
	"ReadDirSorted":        testReadDirSorted,
	"ExistsReportsAbsence": testReadExists,
}

// testReadOpen tests Open() streaming reads.
func testReadOpen(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "open.txt")
	if err := store.WriteFile(name, []byte("streamed"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}

	r, err := store.Open(name)
	if err != nil {
		t.Fatalf("Open(%s): got error %v, want nil", name, err)
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: got error %v", err)
	}
	if string(data) != "streamed" {
		t.Errorf("Open(%s) content = %q, want %q", name, data, "streamed")
	}
}

// testReadFile tests ReadFile() returns full content.
func testReadFile(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "read.txt")
	want := bytes.Repeat([]byte("0123456789"), 1000)
	if err := store.WriteFile(name, want, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}

	got, err := store.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): got error %v, want nil", name, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadFile(%s) returned %d bytes, want %d", name, len(got), len(want))
	}
}

// testReadFileNotExist tests ReadFile() on a missing file.
func testReadFileNotExist(t *testing.T, store storage.Storage, base string, _ Config) {
	_, err := store.ReadFile(join(base, "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing.txt): got error %v, want fs.ErrNotExist", err)
	}
}

// testReadLstatFile tests Lstat() on a regular file.
func testReadLstatFile(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "stat.txt")
	if err := store.WriteFile(name, []byte("12345"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}

	info, err := store.Lstat(name)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v, want nil", name, err)
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Lstat(%s).Mode() = %v, want regular file", name, info.Mode())
	}
	if info.Size() != 5 {
		t.Errorf("Lstat(%s).Size() = %d, want 5", name, info.Size())
	}
	if info.Name() != "stat.txt" {
		t.Errorf("Lstat(%s).Name() = %q, want %q", name, info.Name(), "stat.txt")
	}
}

// testReadLstatDir tests Lstat() on a directory.
func testReadLstatDir(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "dir")
	if err := store.MkdirAll(name, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", name, err)
	}

	info, err := store.Lstat(name)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v, want nil", name, err)
	}
	if !info.IsDir() {
		t.Errorf("Lstat(%s).IsDir() = false, want true", name)
	}
}

// testReadLstatSymlink tests Lstat() does not follow a final symbolic link.
func testReadLstatSymlink(t *testing.T, store storage.Storage, base string, config Config) {
	if config.NoSymlinks || config.Symlink == nil {
		t.Skip("backend does not support symbolic links")
	}

	target := join(base, "target.txt")
	link := join(base, "link.txt")
	if err := store.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", target, err)
	}
	if err := config.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(%s, %s): setup failed: %v", target, link, err)
	}

	info, err := store.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v, want nil", link, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(%s).Mode() = %v, want symlink bit set", link, info.Mode())
	}
}

// testReadDirSorted tests ReadDir() returns one level of children sorted by name.
func testReadDirSorted(t *testing.T, store storage.Storage, base string, _ Config) {
	dir := join(base, "list")
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		if err := store.WriteFile(join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
	}
	if err := store.MkdirAll(join(dir, "sub", "deep"), 0o755); err != nil {
		t.Fatalf("MkdirAll(sub/deep): setup failed: %v", err)
	}

	infos, err := store.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): got error %v, want nil", dir, err)
	}

	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	want := []string{"a.txt", "b.txt", "c.txt", "sub"}
	if len(names) != len(want) {
		t.Fatalf("ReadDir(%s) = %v, want %v", dir, names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ReadDir(%s)[%d] = %q, want %q", dir, i, names[i], want[i])
		}
	}
}

// testReadExists tests Exists() for present and absent paths.
func testReadExists(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "exists.txt")
	if err := store.WriteFile(name, nil, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}

	ok, err := store.Exists(name)
	if err != nil || !ok {
		t.Errorf("Exists(%s) = (%v, %v), want (true, nil)", name, ok, err)
	}

	ok, err = store.Exists(join(base, "absent.txt"))
	if err != nil || ok {
		t.Errorf("Exists(absent.txt) = (%v, %v), want (false, nil)", ok, err)
	}
}
