package steward

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/jmgilman/go/steward/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("recursive creates parents", func(t *testing.T) {
		s, store := newMemSteward(t)

		require.NoError(t, s.CreateDirectory(ctx, "a/b/c"))

		info, err := store.Lstat(memRoot + "/a/b/c")
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("is idempotent", func(t *testing.T) {
		s, store := newMemSteward(t)

		require.NoError(t, s.CreateDirectory(ctx, "twice"))
		require.NoError(t, s.CreateDirectory(ctx, "twice"))

		infos, err := store.ReadDir(memRoot)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		require.Equal(t, "twice", infos[0].Name())
	})

	t.Run("non-recursive under root", func(t *testing.T) {
		s, _ := newMemSteward(t)

		require.NoError(t, s.CreateDirectory(ctx, "top", WithRecursive(false)))
	})

	t.Run("non-recursive with existing parent", func(t *testing.T) {
		s, store := newMemSteward(t)
		require.NoError(t, store.MkdirAll(memRoot+"/parent", 0o755))

		require.NoError(t, s.CreateDirectory(ctx, "parent/child", WithRecursive(false)))
	})

	t.Run("non-recursive with missing parent", func(t *testing.T) {
		s, store := newMemSteward(t)

		err := s.CreateDirectory(ctx, "missing/child", WithRecursive(false))
		requireCode(t, err, errors.CodeNotFound)

		ok, err := store.Exists(memRoot + "/missing")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("existing file", func(t *testing.T) {
		s, store := newMemSteward(t)
		writeFile(t, store, memRoot+"/file", "x")

		err := s.CreateDirectory(ctx, "file")
		requireCode(t, err, errors.CodeOperationFailed)
	})

	t.Run("root", func(t *testing.T) {
		s, _ := newMemSteward(t)

		require.NoError(t, s.CreateDirectory(ctx, "."))
	})

	t.Run("canceled context", func(t *testing.T) {
		s, store := newMemSteward(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := s.CreateDirectory(cctx, "never")
		requireCode(t, err, errors.CodeOperationFailed)
		require.ErrorIs(t, err, context.Canceled)

		ok, _ := store.Exists(memRoot + "/never")
		require.False(t, ok)
	})
}

func TestCreateFile(t *testing.T) {
	ctx := context.Background()

	t.Run("creates parents", func(t *testing.T) {
		s, store := newMemSteward(t)

		require.NoError(t, s.CreateFile(ctx, "deep/nested/file.txt", []byte("hello")))
		require.Equal(t, "hello", readFile(t, store, memRoot+"/deep/nested/file.txt"))
	})

	t.Run("overwrites by default", func(t *testing.T) {
		s, store := newMemSteward(t)
		writeFile(t, store, memRoot+"/f.txt", "original content")

		require.NoError(t, s.CreateFile(ctx, "f.txt", []byte("new")))
		require.Equal(t, "new", readFile(t, store, memRoot+"/f.txt"))
	})

	t.Run("overwrite guard", func(t *testing.T) {
		s, store := newMemSteward(t)
		writeFile(t, store, memRoot+"/f.txt", "original")

		err := s.CreateFile(ctx, "f.txt", []byte("replacement"), WithCover(false))
		requireCode(t, err, errors.CodeAlreadyExists)
		require.Equal(t, "original", readFile(t, store, memRoot+"/f.txt"))
	})

	t.Run("no cover on absent file", func(t *testing.T) {
		s, store := newMemSteward(t)

		require.NoError(t, s.CreateFile(ctx, "fresh.txt", []byte("x"), WithCover(false)))
		require.Equal(t, "x", readFile(t, store, memRoot+"/fresh.txt"))
	})

	t.Run("empty data", func(t *testing.T) {
		s, store := newMemSteward(t)

		require.NoError(t, s.CreateFile(ctx, "empty", nil))
		require.Equal(t, "", readFile(t, store, memRoot+"/empty"))
	})

	t.Run("directory target", func(t *testing.T) {
		s, store := newMemSteward(t)
		require.NoError(t, store.MkdirAll(memRoot+"/dir", 0o755))

		err := s.CreateFile(ctx, "dir", []byte("x"))
		requireCode(t, err, errors.CodeOperationFailed)
	})
}

func TestCreateFileFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("streams reader", func(t *testing.T) {
		s, store := newMemSteward(t)
		body := strings.Repeat("stream me ", 10000)

		require.NoError(t, s.CreateFileFrom(ctx, "out/streamed.txt", strings.NewReader(body)))
		require.Equal(t, body, readFile(t, store, memRoot+"/out/streamed.txt"))
	})

	t.Run("overwrite guard", func(t *testing.T) {
		s, store := newMemSteward(t)
		writeFile(t, store, memRoot+"/f.txt", "original")

		err := s.CreateFileFrom(ctx, "f.txt", strings.NewReader("x"), WithCover(false))
		requireCode(t, err, errors.CodeAlreadyExists)
		require.Equal(t, "original", readFile(t, store, memRoot+"/f.txt"))
	})

	t.Run("nil reader", func(t *testing.T) {
		s, _ := newMemSteward(t)

		err := s.CreateFileFrom(ctx, "f.txt", nil)
		requireCode(t, err, errors.CodeInvalidArgument)
	})

	t.Run("reader failure", func(t *testing.T) {
		s, _ := newMemSteward(t)
		r := io.MultiReader(strings.NewReader("partial"), errReader{})

		err := s.CreateFileFrom(ctx, "broken.txt", r)
		requireCode(t, err, errors.CodeOperationFailed)
		require.ErrorIs(t, err, errBrokenReader)
	})

	t.Run("canceled mid stream", func(t *testing.T) {
		s, _ := newMemSteward(t)
		cctx, cancel := context.WithCancel(ctx)
		r := &cancelingReader{cancel: cancel, data: []byte("abc")}

		err := s.CreateFileFrom(cctx, "canceled.txt", r)
		requireCode(t, err, errors.CodeOperationFailed)
		require.ErrorIs(t, err, context.Canceled)
	})
}

var errBrokenReader = errors.New(errors.CodeUnknown, "broken reader")

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errBrokenReader
}

// cancelingReader returns its data once and cancels the context afterwards.
type cancelingReader struct {
	cancel context.CancelFunc
	data   []byte
}

func (c *cancelingReader) Read(p []byte) (int, error) {
	n := copy(p, c.data)
	c.data = c.data[n:]
	c.cancel()
	if n == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	return n, nil
}
