package storagetest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/steward/storage"
)

var manageTests = map[string]func(t *testing.T, store storage.Storage, base string, config Config){
	"RemoveSingleFile":     testManageRemoveFile,
	"RemoveEmptyDirectory": testManageRemoveEmptyDir,
	"RemoveNotExist":       testManageRemoveNotExist,
	"RemoveAll":            testManageRemoveAll,
	"RemoveAllNotExist":    testManageRemoveAllNotExist,
	"RenameFile":           testManageRenameFile,
	"RenameDirectory":      testManageRenameDir,
}

// testManageRemoveFile tests Remove() single file deletion.
func testManageRemoveFile(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "remove.txt")
	if err := store.WriteFile(name, []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove(%s): got error %v, want nil", name, err)
	}

	_, err := store.Lstat(name)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Lstat(%s) after Remove: got error %v, want fs.ErrNotExist", name, err)
	}
}

// testManageRemoveEmptyDir tests Remove() on an empty directory.
func testManageRemoveEmptyDir(t *testing.T, store storage.Storage, base string, _ Config) {
	name := join(base, "emptydir")
	if err := store.Mkdir(name, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): setup failed: %v", name, err)
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove(%s): got error %v, want nil", name, err)
	}

	ok, err := store.Exists(name)
	if err != nil || ok {
		t.Errorf("Exists(%s) after Remove = (%v, %v), want (false, nil)", name, ok, err)
	}
}

// testManageRemoveNotExist tests Remove() on a missing path.
func testManageRemoveNotExist(t *testing.T, store storage.Storage, base string, _ Config) {
	err := store.Remove(join(base, "never-existed"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Remove(never-existed): got error %v, want fs.ErrNotExist", err)
	}
}

// testManageRemoveAll tests RemoveAll() recursive deletion.
func testManageRemoveAll(t *testing.T, store storage.Storage, base string, _ Config) {
	parent := join(base, "parent")
	if err := store.MkdirAll(join(parent, "child1"), 0o755); err != nil {
		t.Fatalf("MkdirAll(parent/child1): setup failed: %v", err)
	}
	if err := store.WriteFile(join(parent, "file1.txt"), []byte("content1"), 0o644); err != nil {
		t.Fatalf("WriteFile(parent/file1.txt): setup failed: %v", err)
	}
	if err := store.WriteFile(join(parent, "child1", "file2.txt"), []byte("content2"), 0o644); err != nil {
		t.Fatalf("WriteFile(parent/child1/file2.txt): setup failed: %v", err)
	}

	if err := store.RemoveAll(parent); err != nil {
		t.Fatalf("RemoveAll(%s): got error %v, want nil", parent, err)
	}

	for _, name := range []string{parent, join(parent, "child1"), join(parent, "file1.txt")} {
		ok, err := store.Exists(name)
		if err != nil || ok {
			t.Errorf("Exists(%s) after RemoveAll = (%v, %v), want (false, nil)", name, ok, err)
		}
	}
}

// testManageRemoveAllNotExist tests RemoveAll() tolerates absence.
func testManageRemoveAllNotExist(t *testing.T, store storage.Storage, base string, _ Config) {
	if err := store.RemoveAll(join(base, "never-existed")); err != nil {
		t.Errorf("RemoveAll(never-existed): got error %v, want nil", err)
	}
}

// testManageRenameFile tests Rename() within one directory.
func testManageRenameFile(t *testing.T, store storage.Storage, base string, _ Config) {
	oldName := join(base, "old.txt")
	newName := join(base, "new.txt")
	if err := store.WriteFile(oldName, []byte("payload"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", oldName, err)
	}

	if err := store.Rename(oldName, newName); err != nil {
		t.Fatalf("Rename(%s, %s): got error %v, want nil", oldName, newName, err)
	}

	if ok, _ := store.Exists(oldName); ok {
		t.Errorf("Exists(%s) after Rename = true, want false", oldName)
	}
	got, err := store.ReadFile(newName)
	if err != nil {
		t.Fatalf("ReadFile(%s): got error %v", newName, err)
	}
	if string(got) != "payload" {
		t.Errorf("ReadFile(%s) = %q, want %q", newName, got, "payload")
	}
}

// testManageRenameDir tests Rename() moves a directory with its children.
func testManageRenameDir(t *testing.T, store storage.Storage, base string, _ Config) {
	oldDir := join(base, "olddir")
	newDir := join(base, "newdir")
	if err := store.WriteFile(join(oldDir, "inner", "f.txt"), []byte("inner"), 0o644); err != nil {
		t.Fatalf("WriteFile(olddir/inner/f.txt): setup failed: %v", err)
	}

	if err := store.Rename(oldDir, newDir); err != nil {
		t.Fatalf("Rename(%s, %s): got error %v, want nil", oldDir, newDir, err)
	}

	got, err := store.ReadFile(join(newDir, "inner", "f.txt"))
	if err != nil {
		t.Fatalf("ReadFile(newdir/inner/f.txt): got error %v", err)
	}
	if string(got) != "inner" {
		t.Errorf("ReadFile(newdir/inner/f.txt) = %q, want %q", got, "inner")
	}
	if ok, _ := store.Exists(oldDir); ok {
		t.Errorf("Exists(%s) after Rename = true, want false", oldDir)
	}
}
