package storagetest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/steward/storage"
)

var writeTests = map[string]func(t *testing.T, store storage.Storage, base string, config Config){
	"CreateAndWrite":       testWriteCreate,
	"CreateTruncates":      testWriteCreateTruncates,
	"WriteFileOverwrites":  testWriteFileOverwrites,
	"MkdirSingle":          testWriteMkdir,
	"MkdirExisting":        testWriteMkdirExisting,
	"MkdirMissingParent":   testWriteMkdirMissingParent,
	"MkdirAllNested":       testWriteMkdirAll,
	"MkdirAllIsIdempotent": testWriteMkdirAllIdempotent,
	"CreateUsesPerm":       testWriteCreatePerm,
	"MkdirUsesPerm":        testWriteMkdirPerm,
	"MkdirAllUsesPerm":     testWriteMkdirAllPerm,
}

// testWriteCreate tests Create() followed by streaming writes.
func testWriteCreate(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "created.txt")
	w, err := store.Create(name, 0o644)
	if err != nil {
		t.Fatalf("Create(%s): got error %v, want nil", name, err)
	}
	if _, err := w.Write([]byte("part one, ")); err != nil {
		t.Fatalf("Write: got error %v", err)
	}
	if _, err := w.Write([]byte("part two")); err != nil {
		t.Fatalf("Write: got error %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: got error %v", err)
	}

	got, err := store.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): got error %v", name, err)
	}
	if string(got) != "part one, part two" {
		t.Errorf("ReadFile(%s) = %q, want %q", name, got, "part one, part two")
	}
}

// testWriteCreateTruncates tests Create() truncates an existing file.
func testWriteCreateTruncates(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "truncate.txt")
	if err := store.WriteFile(name, []byte("a much longer original body"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}

	w, err := store.Create(name, 0o644)
	if err != nil {
		t.Fatalf("Create(%s): got error %v", name, err)
	}
	if _, err := w.Write([]byte("short")); err != nil {
		t.Fatalf("Write: got error %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: got error %v", err)
	}

	got, err := store.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): got error %v", name, err)
	}
	if string(got) != "short" {
		t.Errorf("ReadFile(%s) = %q, want %q", name, got, "short")
	}
}

// testWriteFileOverwrites tests WriteFile() replaces previous content.
func testWriteFileOverwrites(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "overwrite.txt")
	for _, body := range []string{"first version", "v2"} {
		if err := store.WriteFile(name, []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): got error %v", name, err)
		}
	}

	got, err := store.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): got error %v", name, err)
	}
	if string(got) != "v2" {
		t.Errorf("ReadFile(%s) = %q, want %q", name, got, "v2")
	}
}

// testWriteMkdir tests Mkdir() creates a single directory.
func testWriteMkdir(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "single")
	if err := store.Mkdir(name, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): got error %v, want nil", name, err)
	}

	info, err := store.Lstat(name)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v", name, err)
	}
	if !info.IsDir() {
		t.Errorf("Lstat(%s).IsDir() = false, want true", name)
	}
}

// testWriteMkdirExisting tests Mkdir() reports fs.ErrExist.
func testWriteMkdirExisting(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "twice")
	if err := store.Mkdir(name, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): setup failed: %v", name, err)
	}

	err := store.Mkdir(name, 0o755)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(%s) second call: got error %v, want fs.ErrExist", name, err)
	}
}

// testWriteMkdirMissingParent tests Mkdir() refuses to create parents.
func testWriteMkdirMissingParent(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "missing", "child")
	if err := store.Mkdir(name, 0o755); err == nil {
		t.Errorf("Mkdir(%s): got nil error, want failure for missing parent", name)
	}
}

// testWriteMkdirAll tests MkdirAll() creates all parents.
func testWriteMkdirAll(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "a", "b", "c")
	if err := store.MkdirAll(name, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): got error %v, want nil", name, err)
	}

	for _, dir := range []string{join(base, "a"), join(base, "a", "b"), name} {
		info, err := store.Lstat(dir)
		if err != nil {
			t.Fatalf("Lstat(%s): got error %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Lstat(%s).IsDir() = false, want true", dir)
		}
	}
}

// testWriteMkdirAllIdempotent tests MkdirAll() on an existing directory.
func testWriteMkdirAllIdempotent(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "again")
	for i := 0; i < 2; i++ {
		if err := store.MkdirAll(name, 0o755); err != nil {
			t.Fatalf("MkdirAll(%s) call %d: got error %v, want nil", name, i+1, err)
		}
	}
}

// wantPerm fails the test unless name carries exactly perm.
func wantPerm(t *testing.T, store storage.Storage, name string, perm fs.FileMode) {
	t.Helper()
	info, err := store.Lstat(name)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v", name, err)
	}
	if got := info.Mode().Perm(); got != perm {
		t.Errorf("Lstat(%s).Mode().Perm() = %v, want %v", name, got, perm)
	}
}

// testWriteCreatePerm tests Create() applies perm to a new file.
func testWriteCreatePerm(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "private.txt")
	w, err := store.Create(name, 0o600)
	if err != nil {
		t.Fatalf("Create(%s): got error %v", name, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: got error %v", err)
	}
	wantPerm(t, store, name, 0o600)
}

// testWriteMkdirPerm tests Mkdir() applies perm.
func testWriteMkdirPerm(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "private")
	if err := store.Mkdir(name, 0o700); err != nil {
		t.Fatalf("Mkdir(%s): got error %v", name, err)
	}
	wantPerm(t, store, name, 0o700)
}

// testWriteMkdirAllPerm tests MkdirAll() applies perm to every directory it
// creates and leaves existing ones alone.
func testWriteMkdirAllPerm(t *testing.T, store storage.Storage, base string, _ Config) {
	existing := join(base, "existing")
	if err := store.MkdirAll(existing, 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", existing, err)
	}

	leaf := join(existing, "a", "b")
	if err := store.MkdirAll(leaf, 0o700); err != nil {
		t.Fatalf("MkdirAll(%s): got error %v", leaf, err)
	}
	wantPerm(t, store, existing, 0o755)
	wantPerm(t, store, join(existing, "a"), 0o700)
	wantPerm(t, store, leaf, 0o700)
}
