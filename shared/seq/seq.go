// Package seq provides the container operations of the ordered-collection
// kind over native slices. Inputs are never mutated; results are fresh
// slices, and empty results are nil.
package seq

// Of wraps a single value into a one-element sequence.
func Of[T any](v T) []T {
	return []T{v}
}

// Map applies f to every element, preserving order.
func Map[A, B any](xs []A, f func(A) B) []B {
	if len(xs) == 0 {
		return nil
	}
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Ap applies every function in fs to every element of xs, in fs-major order.
// This is the cartesian combination of the sequence kind: the result holds
// len(fs)*len(xs) elements.
func Ap[A, B any](fs []func(A) B, xs []A) []B {
	if len(fs) == 0 || len(xs) == 0 {
		return nil
	}
	out := make([]B, 0, len(fs)*len(xs))
	for _, f := range fs {
		for _, x := range xs {
			out = append(out, f(x))
		}
	}
	return out
}

// Flatten collapses one level of nesting, concatenating the inner sequences
// in order.
func Flatten[T any](xss [][]T) []T {
	total := 0
	for _, xs := range xss {
		total += len(xs)
	}
	if total == 0 {
		return nil
	}
	out := make([]T, 0, total)
	for _, xs := range xss {
		out = append(out, xs...)
	}
	return out
}

// Chain maps f over xs and concatenates the results (concat-map).
func Chain[A, B any](xs []A, f func(A) []B) []B {
	var out []B
	for _, x := range xs {
		out = append(out, f(x)...)
	}
	return out
}

// Concat returns a fresh sequence holding the elements of a followed by the
// elements of b.
func Concat[T any](a, b []T) []T {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
