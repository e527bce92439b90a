package steward

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/steward/errors"
	"github.com/jmgilman/go/steward/storage"
	"github.com/stretchr/testify/require"
)

// seedTree writes a small tree below dir.
func seedTree(t *testing.T, store storage.Storage, dir string) {
	t.Helper()
	writeFile(t, store, dir+"/a.txt", "alpha")
	writeFile(t, store, dir+"/sub/b.txt", "bravo")
	writeFile(t, store, dir+"/sub/deeper/c.txt", "charlie")
	require.NoError(t, store.MkdirAll(dir+"/empty", 0o755))
}

// snapshot returns the relative path and content of every file below dir,
// with directories mapped to "<dir>".
func snapshot(t *testing.T, store storage.Storage, dir string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	var walk func(string)
	walk = func(d string) {
		infos, err := store.ReadDir(d)
		require.NoError(t, err)
		for _, info := range infos {
			p := d + "/" + info.Name()
			rel := strings.TrimPrefix(p, dir+"/")
			if info.IsDir() {
				out[rel] = "<dir>"
				walk(p)
				continue
			}
			out[rel] = readFile(t, store, p)
		}
	}
	walk(dir)
	return out
}

func TestCopy_File(t *testing.T) {
	ctx := context.Background()

	for _, stream := range []bool{false, true} {
		name := "buffered"
		if stream {
			name = "streamed"
		}
		t.Run(name, func(t *testing.T) {
			s, store := newMemSteward(t)
			content := bytes.Repeat([]byte{0, 1, 2, 254, 255}, 50000)
			require.NoError(t, store.WriteFile(memRoot+"/src.bin", content, 0o644))

			require.NoError(t, s.Copy(ctx, "src.bin", "copies/dest.bin", WithStream(stream)))

			got, err := store.ReadFile(memRoot + "/copies/dest.bin")
			require.NoError(t, err)
			require.True(t, bytes.Equal(content, got), "copied bytes differ")
			require.Equal(t, content, mustRead(t, store, memRoot+"/src.bin"))
		})
	}
}

func mustRead(t *testing.T, store storage.Storage, path string) []byte {
	t.Helper()
	data, err := store.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestCopy_Directory(t *testing.T) {
	ctx := context.Background()

	for _, stream := range []bool{false, true} {
		t.Run(map[bool]string{false: "buffered", true: "streamed"}[stream], func(t *testing.T) {
			s, store := newMemSteward(t)
			seedTree(t, store, memRoot+"/src")

			require.NoError(t, s.Copy(ctx, "src", "dest", WithStream(stream)))

			require.Equal(t, snapshot(t, store, memRoot+"/src"), snapshot(t, store, memRoot+"/dest"))
		})
	}
}

func TestCopy_Cover(t *testing.T) {
	ctx := context.Background()
	s, store := newMemSteward(t)
	writeFile(t, store, memRoot+"/src.txt", "new")
	writeFile(t, store, memRoot+"/dest.txt", "old")

	err := s.Copy(ctx, "src.txt", "dest.txt", WithCover(false))
	requireCode(t, err, errors.CodeAlreadyExists)
	require.Equal(t, "old", readFile(t, store, memRoot+"/dest.txt"))

	require.NoError(t, s.Copy(ctx, "src.txt", "dest.txt"))
	require.Equal(t, "new", readFile(t, store, memRoot+"/dest.txt"))
}

func TestCopy_SelfSubdirectoryGuard(t *testing.T) {
	ctx := context.Background()

	for _, dest := range []string{"d", "d/child", "d/child/grandchild", "./d/../d/x"} {
		t.Run(dest, func(t *testing.T) {
			s, store := newMemSteward(t)
			writeFile(t, store, memRoot+"/d/f.txt", "x")
			before := snapshot(t, store, memRoot)

			err := s.Copy(ctx, "d", dest)
			requireCode(t, err, errors.CodeInvalidArgument)
			require.Contains(t, err.Error(), "subdirectory of itself")
			require.Equal(t, before, snapshot(t, store, memRoot))
		})
	}
}

func TestCopy_AncestorGuard(t *testing.T) {
	ctx := context.Background()

	for _, dest := range []string{"a", ""} {
		t.Run("dest="+dest, func(t *testing.T) {
			s, store := newMemSteward(t)
			writeFile(t, store, memRoot+"/a/b/b/f.txt", "data")
			before := snapshot(t, store, memRoot)

			err := s.Copy(ctx, "a/b", dest)
			requireCode(t, err, errors.CodeInvalidArgument)
			require.Contains(t, err.Error(), "ancestor")
			require.Equal(t, before, snapshot(t, store, memRoot))
		})
	}
}

func TestCopy_SiblingWithSharedPrefix(t *testing.T) {
	ctx := context.Background()
	s, store := newMemSteward(t)
	writeFile(t, store, memRoot+"/d/f.txt", "x")

	require.NoError(t, s.Copy(ctx, "d", "d2"))
	require.Equal(t, "x", readFile(t, store, memRoot+"/d2/f.txt"))
}

func TestCopy_FileOntoItself(t *testing.T) {
	ctx := context.Background()
	s, store := newMemSteward(t)
	writeFile(t, store, memRoot+"/f.txt", "keep me")

	err := s.Copy(ctx, "f.txt", "./f.txt", WithStream(true))
	requireCode(t, err, errors.CodeInvalidArgument)
	require.Equal(t, "keep me", readFile(t, store, memRoot+"/f.txt"))
}

func TestCopy_MissingSource(t *testing.T) {
	s, _ := newMemSteward(t)

	err := s.Copy(context.Background(), "nope", "dest")
	requireCode(t, err, errors.CodeNotFound)
}

func TestCopy_SourceOutsideRoot(t *testing.T) {
	ctx := context.Background()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "template.txt"), []byte("from outside"), 0o644))
	s := newLocalSteward(t)

	require.NoError(t, s.Copy(ctx, filepath.Join(outside, "template.txt"), "inside.txt"))

	data, err := os.ReadFile(filepath.Join(s.Root(), "inside.txt"))
	require.NoError(t, err)
	require.Equal(t, "from outside", string(data))
}

func TestCopy_Symlinks(t *testing.T) {
	ctx := context.Background()
	s := newLocalSteward(t)
	root := s.Root()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "real.txt"), []byte("real"), 0o644))
	if err := os.Symlink("real.txt", filepath.Join(root, "src", "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	t.Run("skipped inside directories", func(t *testing.T) {
		require.NoError(t, s.Copy(ctx, "src", "dest"))

		_, err := os.Lstat(filepath.Join(root, "dest", "real.txt"))
		require.NoError(t, err)
		_, err = os.Lstat(filepath.Join(root, "dest", "link.txt"))
		require.True(t, os.IsNotExist(err), "symlink should not be copied, got %v", err)
	})

	t.Run("rejected as source", func(t *testing.T) {
		err := s.Copy(ctx, "src/link.txt", "copied-link.txt")
		requireCode(t, err, errors.CodeOperationFailed)

		_, err = os.Lstat(filepath.Join(root, "copied-link.txt"))
		require.True(t, os.IsNotExist(err))
	})
}

func TestCopy_Local(t *testing.T) {
	ctx := context.Background()
	s := newLocalSteward(t)
	seedTree(t, s.Storage(), s.Root()+"/src")

	require.NoError(t, s.Copy(ctx, "src", "dest", WithStream(true)))
	require.Equal(t, snapshot(t, s.Storage(), s.Root()+"/src"), snapshot(t, s.Storage(), s.Root()+"/dest"))
}
