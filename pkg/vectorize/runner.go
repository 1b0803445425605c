package vectorize

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is the outcome of a submission replaced by a newer one.
var ErrSuperseded = errors.New("vectorize: superseded by a newer request")

// Outcome is the single value delivered for a Runner submission.
type Outcome struct {
	Result *Result
	Err    error
}

// Runner runs the pipeline off the caller's goroutine with at most one
// request of interest at a time: every Submit supersedes the previous one.
//
// The pipeline itself cannot be interrupted. A superseded or cancelled run
// keeps going in the background and its result is dropped.
type Runner struct {
	opts Options
	run  func(*Image, Options) (*Result, error)

	mu     sync.Mutex
	cancel context.CancelCauseFunc
}

// NewRunner returns a Runner that uses opts for every submission.
func NewRunner(opts Options) *Runner {
	return &Runner{
		opts: opts,
		run:  Vectorize,
	}
}

// Submit starts a run over a private copy of img, so the caller may reuse
// its buffer at once. The returned channel receives exactly one Outcome and
// is then closed. The Outcome carries ErrSuperseded if Submit is called again
// before the run finishes, or the context's error if ctx ends first.
func (r *Runner) Submit(ctx context.Context, img *Image) <-chan Outcome {
	out := make(chan Outcome, 1)
	if err := img.Validate(); err != nil {
		out <- Outcome{Err: err}
		close(out)
		return out
	}
	img = img.Clone()

	runCtx, cancel := context.WithCancelCause(ctx)
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel(ErrSuperseded)
	}
	r.cancel = cancel
	r.mu.Unlock()

	done := make(chan Outcome, 1)
	go func() {
		result, err := r.run(img, r.opts)
		done <- Outcome{Result: result, Err: err}
	}()

	go func() {
		defer close(out)
		defer cancel(nil)
		select {
		case <-runCtx.Done():
			out <- Outcome{Err: context.Cause(runCtx)}
		case o := <-done:
			if runCtx.Err() != nil {
				o = Outcome{Err: context.Cause(runCtx)}
			}
			out <- o
		}
	}()
	return out
}

// Stop abandons the in-flight submission, if any. Its Outcome carries
// context.Canceled.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel(context.Canceled)
		r.cancel = nil
	}
}
