// Package pure provides function-level utilities for the plain Go functions
// that flow through the effect containers: composition, currying, and
// memoization. Everything here is value-in value-out; effects stay in the
// containers.
package pure

// Identity returns its argument unchanged.
func Identity[A any](a A) A {
	return a
}

// Constant builds a function that ignores its argument and always returns v.
func Constant[A, B any](v B) func(A) B {
	return func(A) B {
		return v
	}
}

// Compose chains two functions in mathematical order: the rightmost runs
// first, so Compose(f, g)(x) is f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 chains three functions in mathematical order.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Pipe chains same-type steps in reading order: the leftmost runs first.
func Pipe[A any](steps ...func(A) A) func(A) A {
	return func(a A) A {
		for _, step := range steps {
			a = step(a)
		}
		return a
	}
}

// Curry2 turns a two-argument function into a chain of one-argument ones,
// the shape Ap and LiftA2 want.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of one-argument ones.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 collapses a curried chain back into a two-argument function.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Flip swaps the argument order of a two-argument function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}
