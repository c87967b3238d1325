// Package either provides the disjoint-result effect container. An Either
// is exactly one of two cases: Left carries a failure description, Right
// carries a success value. Unlike maybe, the failure branch holds a payload,
// so a pipeline that goes wrong can say what went wrong.
//
// The container is right-biased: Map, Chain and friends act on the Right
// case and pass a Left through untouched, keeping the first failure.
package either

import "fmt"

// Either holds a Left failure or a Right success. The zero value is the
// Left of E's zero value.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left builds the failure case.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right builds the success case. The failure type does not appear in the
// arguments, so callers name it explicitly, as in Right[error](42).
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// Of lifts a plain value into the success case.
func Of[E, A any](a A) Either[E, A] {
	return Right[E](a)
}

// From adapts the Go (value, error) convention: a non-nil error becomes a
// Left, otherwise the value becomes a Right.
func From[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}

// IsLeft reports whether the Either holds a failure.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the Either holds a success.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the failure payload, comma-ok style.
func (e Either[E, A]) GetLeft() (E, bool) {
	return e.left, !e.isRight
}

// GetRight returns the success value, comma-ok style.
func (e Either[E, A]) GetRight() (A, bool) {
	return e.right, e.isRight
}

// GetOrElse returns the success value, or fallback when the Either is a
// Left.
func (e Either[E, A]) GetOrElse(fallback A) A {
	if !e.isRight {
		return fallback
	}
	return e.right
}

func (e Either[E, A]) String() string {
	if !e.isRight {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}

// Map applies f to a Right value. A Left passes through with its payload
// untouched and f is never called.
func Map[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return Right[E](f(e.right))
}

// MapLeft applies f to a Left payload, leaving a Right untouched. It is the
// tool for translating failure descriptions between layers.
func MapLeft[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// Ap applies a wrapped function to a wrapped value. When both sides are
// Left, the function side wins, so the first failure in reading order is
// the one that survives.
func Ap[E, A, B any](ef Either[E, func(A) B], ea Either[E, A]) Either[E, B] {
	if !ef.isRight {
		return Left[E, B](ef.left)
	}
	if !ea.isRight {
		return Left[E, B](ea.left)
	}
	return Right[E](ef.right(ea.right))
}

// Chain applies f to a Right value and returns the Either f built, so a
// step can itself fail with a payload.
func Chain[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return f(e.right)
}

// Flatten collapses a nested Either by one level, keeping the outer Left
// when there is one.
func Flatten[E, A any](ee Either[E, Either[E, A]]) Either[E, A] {
	if !ee.isRight {
		return Left[E, A](ee.left)
	}
	return ee.right
}

// Match folds both cases into a single result, forcing the caller to handle
// the failure branch explicitly.
func Match[E, A, B any](e Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	if !e.isRight {
		return onLeft(e.left)
	}
	return onRight(e.right)
}

// LiftA2 combines two Eithers with a binary function, keeping the first
// Left when either side failed.
func LiftA2[E, A, B, C any](f func(A, B) C, ea Either[E, A], eb Either[E, B]) Either[E, C] {
	return Ap(Map(ea, func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}), eb)
}

// Sequence inverts a slice of Eithers into an Either of a slice. The first
// Left becomes the result and later elements are not inspected.
func Sequence[E, A any](es []Either[E, A]) Either[E, []A] {
	out := make([]A, 0, len(es))
	for _, e := range es {
		if !e.isRight {
			return Left[E, []A](e.left)
		}
		out = append(out, e.right)
	}
	return Right[E](out)
}

// Traverse maps every element through f, collecting the Right values unless
// some element fails. The first Left stops the walk and becomes the result.
func Traverse[E, A, B any](values []A, f func(A) Either[E, B]) Either[E, []B] {
	out := make([]B, 0, len(values))
	for _, v := range values {
		e := f(v)
		if !e.isRight {
			return Left[E, []B](e.left)
		}
		out = append(out, e.right)
	}
	return Right[E](out)
}
