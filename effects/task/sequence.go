package task

import (
	"context"

	"github.com/gazm81/mostly-adequate-guide/shared/seq"
)

// Sequence inverts a slice of tasks into one task of a slice. Forking the
// result forks every element together; the collected values keep input
// order regardless of settlement order, and the first rejection settles the
// whole batch.
//
// The inversion is the applicative fold: start from a task holding an empty
// collection and Ap each element's value onto it. The seed allocates per
// fork, so re-forking the sequenced task never shares collection state with
// an earlier fork.
func Sequence[A any](tasks []Task[A]) Task[[]A] {
	acc := New(func(_ context.Context, _ func(error), resolve func([]A)) {
		resolve(make([]A, 0, len(tasks)))
	})
	for _, t := range tasks {
		acc = Ap(Map(acc, appendTo[A]), t)
	}
	return acc
}

func appendTo[A any](collected []A) func(A) []A {
	return func(value A) []A {
		return append(collected, value)
	}
}

// Traverse maps every element into a task and sequences the results. The
// tasks are built eagerly; their effects still wait for the fork.
func Traverse[A, B any](values []A, f func(A) Task[B]) Task[[]B] {
	return Sequence(seq.Map(values, f))
}
