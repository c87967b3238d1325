// Package task provides the deferred asynchronous effect container. A Task
// describes a computation that will eventually resolve with a value or
// reject with an error; nothing runs until a caller forks it. Composition
// stacks more behavior onto the description, and every fork replays the
// whole description from the start.
//
// Settlement is exactly-once per fork: a source that fires neither
// continuation leaves the fork pending, and one that fires twice panics
// with the offending fork id.
package task

import (
	"context"

	"github.com/gazm81/mostly-adequate-guide/effects/internal/settle"
)

// Fork is the shape of a task's work: it receives the two continuations and
// must eventually call exactly one of them, exactly once.
type Fork[A any] func(ctx context.Context, reject func(error), resolve func(A))

// Payload is an asynchronous operation in the conventional Go shape,
// returning a value or an error.
type Payload[A any] func(context.Context) (A, error)

// Task wraps a deferred computation. The zero Task holds no computation and
// must not be forked; tasks come from the package constructors.
type Task[A any] struct {
	fork Fork[A]
}

// New wraps a fork function into a task without running it.
func New[A any](fork Fork[A]) Task[A] {
	return Task[A]{fork: fork}
}

// Of lifts an already-computed value into a task that resolves immediately
// on fork.
func Of[A any](a A) Task[A] {
	return New(func(_ context.Context, _ func(error), resolve func(A)) {
		resolve(a)
	})
}

// Rejected builds a task that rejects immediately on fork.
func Rejected[A any](err error) Task[A] {
	return New(func(_ context.Context, reject func(error), _ func(A)) {
		reject(err)
	})
}

// From adapts a Payload into a task. The payload is not called here; each
// fork runs it again on its own goroutine, and a context already cancelled
// at fork time rejects without running it at all.
func From[A any](payload Payload[A]) Task[A] {
	return New(func(ctx context.Context, reject func(error), resolve func(A)) {
		ready := make(chan struct{})
		go func() {
			close(ready)

			select {
			case <-ctx.Done():
				reject(ctx.Err())
				return
			default:
			}

			res := settle.ResultOf(payload(ctx))
			if res.Err != nil {
				reject(res.Err)
				return
			}
			resolve(res.Value)
		}()
		<-ready
	})
}

// forkIDKey carries the settlement guard's fork id through one fork's
// context.
type forkIDKey struct{}

func withForkID(ctx context.Context, forkID string) context.Context {
	return context.WithValue(ctx, forkIDKey{}, forkID)
}

// forkIDFrom reads the fork id installed by Fork. Fork bodies only ever run
// downstream of a Fork or Run call, so the id is present whenever a fork
// executes.
func forkIDFrom(ctx context.Context) string {
	forkID, _ := ctx.Value(forkIDKey{}).(string)
	return forkID
}

// Fork starts one independent run of the task. Both continuations must be
// non-nil; forking installs the settlement guard, so a source that settles
// this fork twice panics. The guard's fork id rides the context for
// wrappers further down the composition to log.
func (t Task[A]) Fork(ctx context.Context, reject func(error), resolve func(A)) {
	once := settle.NewOnce(reject, resolve)
	t.fork(withForkID(ctx, once.ForkID()), once.Reject, once.Resolve)
}

// Run forks the task and blocks until it settles or the context is done,
// whichever comes first. A fork that outlives a cancelled context settles
// into a buffer and is dropped.
func (t Task[A]) Run(ctx context.Context) (A, error) {
	done := make(chan settle.Result[A], 1)
	t.Fork(ctx,
		func(err error) { done <- settle.Result[A]{Err: err} },
		func(value A) { done <- settle.Result[A]{Value: value} },
	)

	select {
	case res := <-done:
		return res.Value, res.Err
	case <-ctx.Done():
		var zero A
		return zero, ctx.Err()
	}
}
