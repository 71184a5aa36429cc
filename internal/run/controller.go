// Package run owns the automation run lifecycle: one worker at a time,
// cooperative stop, and the counters the status endpoint reads.
package run

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StateNotRunning    State = "not_running"
	StateRunning       State = "running"
	StateStopRequested State = "stop_requested"
)

var (
	ErrAlreadyRunning = errors.New("automation is already running")
	ErrNotRunning     = errors.New("automation is not running")
)

// Worker is one full run. It must watch ctx at its checkpoints and return
// when cancelled; onApplied bumps the run counter once per recorded attempt.
type Worker func(ctx context.Context, onApplied func())

type Status struct {
	State        State     `json:"state"`
	RunID        string    `json:"run_id,omitempty"`
	StartedAt    time.Time `json:"started_at,omitempty"`
	Duration     time.Duration
	Applications int64
}

type Controller struct {
	worker Worker
	grace  time.Duration

	mu        sync.Mutex
	state     State
	runID     string
	startedAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}

	count atomic.Int64
}

func NewController(worker Worker) *Controller {
	return &Controller{
		worker: worker,
		grace:  time.Second,
		state:  StateNotRunning,
	}
}

// Start launches the worker and returns immediately. It is the mutual
// exclusion gate: a second Start while any run is active fails.
func (c *Controller) Start() (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateNotRunning {
		return Status{}, ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.state = StateRunning
	c.runID = uuid.NewString()
	c.startedAt = time.Now()
	c.count.Store(0)
	c.cancel = cancel
	c.done = done

	go func() {
		defer close(done)
		c.worker(ctx, func() { c.count.Add(1) })

		c.mu.Lock()
		// Only reset if no newer run has superseded this one.
		if c.done == done {
			c.state = StateNotRunning
			c.cancel = nil
		}
		c.mu.Unlock()
		cancel()
	}()

	return c.statusLocked(), nil
}

// Stop requests cancellation and waits a short grace period for the worker
// to notice. The returned status is final either way; the join is
// best-effort, the worker may still be finishing its card.
func (c *Controller) Stop() (Status, error) {
	c.mu.Lock()
	if c.state == StateNotRunning {
		c.mu.Unlock()
		return Status{}, ErrNotRunning
	}
	c.state = StateStopRequested
	cancel := c.cancel
	done := c.done
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		select {
		case <-done:
		case <-time.After(c.grace):
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	st := Status{
		State:        StateNotRunning,
		RunID:        c.runID,
		StartedAt:    c.startedAt,
		Duration:     time.Since(c.startedAt),
		Applications: c.count.Load(),
	}
	c.state = StateNotRunning
	c.cancel = nil
	return st, nil
}

// Status is a pure read.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateRunning
}

// CountApplication bumps the counter from outside a run; only the simulate
// endpoint uses it.
func (c *Controller) CountApplication() {
	c.count.Add(1)
}

func (c *Controller) statusLocked() Status {
	st := Status{
		State:        c.state,
		Applications: c.count.Load(),
	}
	if c.state != StateNotRunning {
		st.RunID = c.runID
		st.StartedAt = c.startedAt
		st.Duration = time.Since(c.startedAt)
	}
	return st
}
