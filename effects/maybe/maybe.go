// Package maybe provides the optional-value effect container. A Maybe is
// either Just a value or Nothing, and every operation short-circuits on
// Nothing, so a pipeline can be written for the happy path while absence
// rides along silently until somebody asks.
package maybe

import "fmt"

// Maybe holds either a present value or nothing. The zero value is Nothing.
type Maybe[A any] struct {
	value   A
	present bool
}

// Of lifts a plain value into a present Maybe.
func Of[A any](a A) Maybe[A] {
	return Maybe[A]{value: a, present: true}
}

// None builds the absent Maybe.
func None[A any]() Maybe[A] {
	return Maybe[A]{}
}

// FromPtr adapts the pointer-as-optional convention: a nil pointer becomes
// Nothing, anything else becomes Just the pointed-to value.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return None[A]()
	}
	return Of(*p)
}

// IsJust reports whether a value is present.
func (m Maybe[A]) IsJust() bool {
	return m.present
}

// IsNothing reports whether the Maybe is absent.
func (m Maybe[A]) IsNothing() bool {
	return !m.present
}

// Get returns the value, comma-ok style.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.present
}

// GetOrElse returns the value when present, fallback otherwise.
func (m Maybe[A]) GetOrElse(fallback A) A {
	if !m.present {
		return fallback
	}
	return m.value
}

func (m Maybe[A]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// Map applies f to a present value. Nothing passes through and f is never
// called.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.present {
		return None[B]()
	}
	return Of(f(m.value))
}

// Ap applies a wrapped function to a wrapped value. Either side being
// Nothing makes the result Nothing and the function is never called.
func Ap[A, B any](mf Maybe[func(A) B], ma Maybe[A]) Maybe[B] {
	if !mf.present || !ma.present {
		return None[B]()
	}
	return Of(mf.value(ma.value))
}

// Chain applies f to a present value and returns the Maybe f built, so a
// step can itself decide to come up empty.
func Chain[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.present {
		return None[B]()
	}
	return f(m.value)
}

// Flatten collapses a nested Maybe by one level. Nothing at either depth
// flattens to Nothing.
func Flatten[A any](mm Maybe[Maybe[A]]) Maybe[A] {
	if !mm.present {
		return None[A]()
	}
	return mm.value
}

// Match folds both cases into a single result, forcing the caller to handle
// absence explicitly.
func Match[A, B any](m Maybe[A], onNothing func() B, onJust func(A) B) B {
	if !m.present {
		return onNothing()
	}
	return onJust(m.value)
}

// LiftA2 combines two Maybes with a binary function. Either side being
// Nothing makes the result Nothing.
func LiftA2[A, B, C any](f func(A, B) C, ma Maybe[A], mb Maybe[B]) Maybe[C] {
	return Ap(Map(ma, func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}), mb)
}

// Sequence inverts a slice of Maybes into a Maybe of a slice. The first
// Nothing makes the whole result Nothing and later elements are not
// inspected.
func Sequence[A any](ms []Maybe[A]) Maybe[[]A] {
	out := make([]A, 0, len(ms))
	for _, m := range ms {
		if !m.present {
			return None[[]A]()
		}
		out = append(out, m.value)
	}
	return Of(out)
}

// Traverse maps every element through f, collecting the results unless some
// element comes up Nothing. The first Nothing stops the walk.
func Traverse[A, B any](values []A, f func(A) Maybe[B]) Maybe[[]B] {
	out := make([]B, 0, len(values))
	for _, v := range values {
		m := f(v)
		if !m.present {
			return None[[]B]()
		}
		out = append(out, m.value)
	}
	return Of(out)
}
