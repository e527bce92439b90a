package steward

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/jmgilman/go/steward/errors"
	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, store := newMemSteward(t)
		writeFile(t, store, memRoot+"/big.txt", "payload")

		p := s.Start(ctx, Task{Op: OpCopy, SrcPath: "big.txt", DestPath: "copy.txt", Options: []OpOption{WithStream(true)}})
		require.NoError(t, p.Wait())
		require.Equal(t, "payload", readFile(t, store, memRoot+"/copy.txt"))

		select {
		case <-p.Done():
		default:
			t.Fatal("Done() not closed after Wait returned")
		}
		require.NoError(t, p.Err())
	})

	t.Run("failure", func(t *testing.T) {
		s, _ := newMemSteward(t)

		p := s.Start(ctx, Task{Op: OpRemove, Path: "ghost", Options: []OpOption{WithForce(false)}})
		err := p.Wait()
		requireCode(t, err, errors.CodeNotFound)
		require.Equal(t, err, p.Err())
		require.NotContains(t, err.Error(), "at tasks")
	})

	t.Run("invalid task", func(t *testing.T) {
		s, _ := newMemSteward(t)

		err := s.Start(ctx, Task{Op: OpRename, OldPath: "a"}).Wait()
		requireCode(t, err, errors.CodeInvalidArgument)
	})

	t.Run("err is nil while running", func(t *testing.T) {
		s, _ := newMemSteward(t)
		r, w := io.Pipe()

		p := s.Start(ctx, Task{Op: OpCreate, Path: "piped.txt", Kind: KindFile, Source: r})
		require.NoError(t, p.Err())

		_, err := w.Write([]byte("late bytes"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		select {
		case <-p.Done():
		case <-time.After(5 * time.Second):
			t.Fatal("task did not finish")
		}
		require.NoError(t, p.Err())
	})
}

func TestStartSequential(t *testing.T) {
	ctx := context.Background()
	s, store := newMemSteward(t)
	tasks := []Task{
		{Op: OpCreate, Path: "one", Kind: KindDirectory},
		{Op: OpCreate, Path: "one/two.txt", Kind: KindFile, Data: []byte("2")},
		{Op: OpRemove, Path: "missing", Options: []OpOption{WithForce(false)}},
		{Op: OpCreate, Path: "never", Kind: KindDirectory},
	}

	p := s.StartSequential(ctx, tasks)
	tasks[3].Path = "mutated-after-start"

	err := p.Wait()
	requireCode(t, err, errors.CodeNotFound)
	require.Contains(t, err.Error(), "(at tasks[2])")
	require.Equal(t, "2", readFile(t, store, memRoot+"/one/two.txt"))

	for _, p := range []string{"/never", "/mutated-after-start"} {
		ok, err := store.Exists(memRoot + p)
		require.NoError(t, err)
		require.False(t, ok)
	}
}
