package task

import (
	"context"
	"sync"

	"github.com/eapache/queue"
)

// Executor collects forked work and replays it on demand, in FIFO order, on
// whichever goroutine calls Run. It decouples where a task is forked from
// where its work actually executes.
type Executor struct {
	mu   sync.Mutex
	jobs *queue.Queue
}

func NewExecutor() *Executor {
	return &Executor{jobs: queue.New()}
}

// Schedule enqueues one unit of work. It never runs the job itself.
func (e *Executor) Schedule(job func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.jobs.Add(job)
}

// Len reports how many jobs are waiting.
func (e *Executor) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.jobs.Length()
}

// Run drains the queue on the calling goroutine until it is empty. Jobs
// scheduled while draining, including by the jobs themselves, run in the
// same pass.
func (e *Executor) Run() {
	for {
		e.mu.Lock()
		if e.jobs.Length() == 0 {
			e.mu.Unlock()
			return
		}
		job := e.jobs.Remove().(func())
		e.mu.Unlock()

		job()
	}
}

// On rebinds a task to the executor: forking the returned task only queues
// the underlying fork, which then runs when the executor drains.
func On[A any](e *Executor, t Task[A]) Task[A] {
	return New(func(ctx context.Context, reject func(error), resolve func(A)) {
		e.Schedule(func() {
			t.fork(ctx, reject, resolve)
		})
	})
}
