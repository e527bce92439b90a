package steward

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmgilman/go/steward/errors"
)

// RunSequential executes tasks strictly in order, each to completion before
// the next starts. It stops at the first failing task; tasks after it never
// run and tasks before it are not undone.
//
// The returned error keeps the failing task's code and cause. Its message
// gains an "(at tasks[i])" suffix, and its context gains the "index" of the
// failing task and the "run_id" of the run.
//
// Example:
//
//	if err := s.RunSequential(ctx, tasks); err != nil {
//	    failedAt := errors.ToJSON(err).Context["index"]
//	    log.Printf("plan stopped at task %v: %v", failedAt, err)
//	}
func (s *Steward) RunSequential(ctx context.Context, tasks []Task) error {
	runID := uuid.NewString()
	logger := s.logger.With().Str("run_id", runID).Logger()
	logger.Debug().Int("tasks", len(tasks)).Msg("starting run")

	for i, task := range tasks {
		err := canceled(ctx)
		if err == nil {
			logger.Debug().Int("index", i).Stringer("op", task.Op).Msg("running task")
			err = s.execute(ctx, task)
		}
		if err != nil {
			logger.Debug().Int("index", i).Err(err).Msg("run stopped")
			return atIndex(err, i, runID)
		}
	}

	logger.Debug().Msg("run complete")
	return nil
}

// atIndex annotates a task failure with the task's position.
func atIndex(err error, index int, runID string) error {
	annotated := errors.WithContextMap(err, map[string]interface{}{
		"index":  index,
		"run_id": runID,
	})
	message := strings.TrimRight(strings.TrimSpace(annotated.Message()), ".!;:, ")
	return errors.WithMessage(annotated, fmt.Sprintf("%s (at tasks[%d])", message, index))
}
