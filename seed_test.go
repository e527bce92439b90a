package steward

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/jmgilman/go/steward/errors"
	"github.com/stretchr/testify/require"
)

func templates() fstest.MapFS {
	return fstest.MapFS{
		"templates/README.md":       {Data: []byte("# project")},
		"templates/cmd/main.go":     {Data: []byte("package main")},
		"templates/config/.gitkeep": {Data: []byte{}},
		"templates/empty":           {Mode: fs.ModeDir | 0o755},
		"other/ignored.txt":         {Data: []byte("not part of the seed")},
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("copies subtree", func(t *testing.T) {
		s, store := newMemSteward(t)

		require.NoError(t, s.Seed(ctx, templates(), "templates", "project"))

		require.Equal(t, "# project", readFile(t, store, memRoot+"/project/README.md"))
		require.Equal(t, "package main", readFile(t, store, memRoot+"/project/cmd/main.go"))
		require.Equal(t, "", readFile(t, store, memRoot+"/project/config/.gitkeep"))

		info, err := store.Lstat(memRoot + "/project/empty")
		require.NoError(t, err)
		require.True(t, info.IsDir())

		ok, err := store.Exists(memRoot + "/project/other")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("whole filesystem into root", func(t *testing.T) {
		s, store := newMemSteward(t)

		require.NoError(t, s.Seed(ctx, templates(), ".", ""))

		require.Equal(t, "not part of the seed", readFile(t, store, memRoot+"/other/ignored.txt"))
		require.Equal(t, "# project", readFile(t, store, memRoot+"/templates/README.md"))
	})

	t.Run("respects cover", func(t *testing.T) {
		s, store := newMemSteward(t)
		writeFile(t, store, memRoot+"/project/README.md", "mine")

		err := s.Seed(ctx, templates(), "templates", "project", WithCover(false))
		requireCode(t, err, errors.CodeAlreadyExists)
		require.Equal(t, "mine", readFile(t, store, memRoot+"/project/README.md"))
	})

	t.Run("destination outside root", func(t *testing.T) {
		s, store := newMemSteward(t)

		err := s.Seed(ctx, templates(), "templates", "../escape")
		requireCode(t, err, errors.CodeJurisdiction)

		ok, err := store.Exists("/escape")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("missing source root", func(t *testing.T) {
		s, _ := newMemSteward(t)

		err := s.Seed(ctx, templates(), "nope", "project")
		requireCode(t, err, errors.CodeNotFound)
	})

	t.Run("invalid source root", func(t *testing.T) {
		s, _ := newMemSteward(t)

		err := s.Seed(ctx, templates(), "../templates", "project")
		requireCode(t, err, errors.CodeInvalidArgument)
	})
}
