package task

import (
	"context"
	"sync"
)

// Map stacks f on top of the task's eventual value. Rejections pass through
// untouched and f is never called for them.
func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return New(func(ctx context.Context, reject func(error), resolve func(B)) {
		t.fork(ctx, reject, func(value A) {
			resolve(f(value))
		})
	})
}

// MapRejected translates the rejection error, leaving resolutions untouched.
func MapRejected[A any](t Task[A], f func(error) error) Task[A] {
	return New(func(ctx context.Context, reject func(error), resolve func(A)) {
		t.fork(ctx, func(err error) {
			reject(f(err))
		}, resolve)
	})
}

// Chain sequences a dependent task: the second computation is chosen from
// the first one's value and forked only after the first resolves. A
// rejection anywhere settles the whole chain.
func Chain[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return New(func(ctx context.Context, reject func(error), resolve func(B)) {
		t.fork(ctx, reject, func(value A) {
			f(value).fork(ctx, reject, resolve)
		})
	})
}

// OrElse recovers from a rejection by forking the task f builds from the
// error. Resolutions pass through untouched.
func OrElse[A any](t Task[A], f func(error) Task[A]) Task[A] {
	return New(func(ctx context.Context, reject func(error), resolve func(A)) {
		t.fork(ctx, func(err error) {
			f(err).fork(ctx, reject, resolve)
		}, resolve)
	})
}

// Flatten collapses a nested task by one level: the inner task is forked
// once the outer one resolves with it.
func Flatten[A any](tt Task[Task[A]]) Task[A] {
	return New(func(ctx context.Context, reject func(error), resolve func(A)) {
		tt.fork(ctx, reject, func(inner Task[A]) {
			inner.fork(ctx, reject, resolve)
		})
	})
}

// Ap forks the function task and the argument task together and resolves
// with the application once both are in. The first rejection settles the
// result; the losing side's outcome is discarded.
func Ap[A, B any](tf Task[func(A) B], ta Task[A]) Task[B] {
	return New(func(ctx context.Context, reject func(error), resolve func(B)) {
		var (
			mu     sync.Mutex
			fn     func(A) B
			arg    A
			hasFn  bool
			hasArg bool
			failed bool
		)

		fail := func(err error) {
			mu.Lock()
			already := failed
			failed = true
			mu.Unlock()
			if !already {
				reject(err)
			}
		}

		tf.fork(ctx, fail, func(f func(A) B) {
			mu.Lock()
			fn, hasFn = f, true
			fire := hasArg && !failed
			a := arg
			mu.Unlock()
			if fire {
				resolve(f(a))
			}
		})

		ta.fork(ctx, fail, func(a A) {
			mu.Lock()
			arg, hasArg = a, true
			fire := hasFn && !failed
			f := fn
			mu.Unlock()
			if fire {
				resolve(f(a))
			}
		})
	})
}

// LiftA2 combines two independent tasks with a binary function, forking
// them together.
func LiftA2[A, B, C any](f func(A, B) C, ta Task[A], tb Task[B]) Task[C] {
	return Ap(Map(ta, func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}), tb)
}
