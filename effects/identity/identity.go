// Package identity provides the plainest effect container: a value and
// nothing else. It exists so that code written against the container
// operations can run in a context with no effect at all, and it is the
// reference point for the laws the richer containers must also satisfy.
package identity

import "fmt"

// Identity wraps exactly one value. There is no empty state and no failure
// state; every Identity holds something.
type Identity[A any] struct {
	value A
}

// Of lifts a plain value into the container.
func Of[A any](a A) Identity[A] {
	return Identity[A]{value: a}
}

// Get returns the wrapped value.
func (i Identity[A]) Get() A {
	return i.value
}

func (i Identity[A]) String() string {
	return fmt.Sprintf("Identity(%v)", i.value)
}

// Map applies f to the wrapped value.
func Map[A, B any](i Identity[A], f func(A) B) Identity[B] {
	return Of(f(i.value))
}

// Ap applies a wrapped function to a wrapped value.
func Ap[A, B any](ff Identity[func(A) B], fa Identity[A]) Identity[B] {
	return Of(ff.value(fa.value))
}

// Chain applies f to the wrapped value and returns the container f built.
func Chain[A, B any](i Identity[A], f func(A) Identity[B]) Identity[B] {
	return f(i.value)
}

// Flatten collapses a nested Identity by one level.
func Flatten[A any](ii Identity[Identity[A]]) Identity[A] {
	return ii.value
}

// Sequence inverts a slice of Identities into an Identity of a slice,
// preserving order.
func Sequence[A any](is []Identity[A]) Identity[[]A] {
	out := make([]A, len(is))
	for n, i := range is {
		out[n] = i.value
	}
	return Of(out)
}

// Traverse maps every element through f and collects the results without an
// intermediate container slice.
func Traverse[A, B any](values []A, f func(A) Identity[B]) Identity[[]B] {
	out := make([]B, len(values))
	for n, v := range values {
		out[n] = f(v).value
	}
	return Of(out)
}
