package steward

import "context"

// Pending tracks an operation started with Start or StartSequential.
type Pending struct {
	done chan struct{}
	err  error
}

func (s *Steward) start(fn func() error) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.err = fn()
	}()
	return p
}

// Start runs a single task on its own goroutine.
//
// Example:
//
//	p := s.Start(ctx, steward.Task{Op: steward.OpCopy, SrcPath: "a", DestPath: "b", Options: []steward.OpOption{steward.WithStream(true)}})
//	// ... other work ...
//	if err := p.Wait(); err != nil {
//	    return err
//	}
func (s *Steward) Start(ctx context.Context, task Task) *Pending {
	return s.start(func() error {
		return s.execute(ctx, task)
	})
}

// StartSequential runs tasks with RunSequential on its own goroutine. The
// tasks still run one at a time, in order.
func (s *Steward) StartSequential(ctx context.Context, tasks []Task) *Pending {
	tasks = append([]Task(nil), tasks...)
	return s.start(func() error {
		return s.RunSequential(ctx, tasks)
	})
}

// Done returns a channel that is closed once the work has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the work has finished and returns its error.
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}

// Err returns the error of finished work. It returns nil while the work is
// still running.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}
