// Package io provides a deferred synchronous computation container. An IO
// wraps a function instead of a value: building, mapping and composing IOs
// runs nothing, and the whole accumulated pipeline fires only when somebody
// calls Perform. That keeps side effects at the edge of a program while the
// middle stays pure composition.
package io

// IO holds a computation that produces an A when performed. The wrapped
// function must not be nil; the zero IO is not usable.
type IO[A any] struct {
	run func() A
}

// New wraps a computation without running it.
func New[A any](run func() A) IO[A] {
	return IO[A]{run: run}
}

// Of lifts an already-computed value into an IO that just returns it.
func Of[A any](a A) IO[A] {
	return IO[A]{run: func() A { return a }}
}

// Perform runs the deferred computation. This is the only place anything
// actually executes.
func (io IO[A]) Perform() A {
	return io.run()
}

// Map stacks f on top of the deferred computation. Nothing runs until
// Perform.
func Map[A, B any](io IO[A], f func(A) B) IO[B] {
	return New(func() B {
		return f(io.run())
	})
}

// Ap builds an IO that performs the function side first, then the argument
// side, and applies one to the other.
func Ap[A, B any](iof IO[func(A) B], ioa IO[A]) IO[B] {
	return New(func() B {
		f := iof.run()
		return f(ioa.run())
	})
}

// Chain sequences a dependent computation: when performed, the result of io
// picks the next IO to perform.
func Chain[A, B any](io IO[A], f func(A) IO[B]) IO[B] {
	return New(func() B {
		return f(io.run()).run()
	})
}

// Flatten collapses a nested IO by one level.
func Flatten[A any](ii IO[IO[A]]) IO[A] {
	return New(func() A {
		return ii.run().run()
	})
}

// LiftA2 combines two IOs with a binary function, performing them left to
// right.
func LiftA2[A, B, C any](f func(A, B) C, ioa IO[A], iob IO[B]) IO[C] {
	return New(func() C {
		return f(ioa.run(), iob.run())
	})
}

// Sequence inverts a slice of IOs into one IO that performs them in order
// and collects the results.
func Sequence[A any](ios []IO[A]) IO[[]A] {
	return New(func() []A {
		out := make([]A, len(ios))
		for n, io := range ios {
			out[n] = io.run()
		}
		return out
	})
}

// Traverse maps every element through f and sequences the resulting IOs.
func Traverse[A, B any](values []A, f func(A) IO[B]) IO[[]B] {
	return New(func() []B {
		out := make([]B, len(values))
		for n, v := range values {
			out[n] = f(v).run()
		}
		return out
	})
}
