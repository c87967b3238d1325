// Package settle enforces the settlement contract of forked computations:
// each fork ends in exactly one of resolve or reject, exactly once. The
// guard is shared by every code path that hands continuations to user code,
// so a misbehaving source fails loudly instead of silently double-firing.
package settle

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Result carries the outcome of a settled computation, value or error.
type Result[A any] struct {
	Value A
	Err   error
}

// ResultOf adapts a (value, error) return pair into a Result.
func ResultOf[A any](value A, err error) Result[A] {
	return Result[A]{Value: value, Err: err}
}

// Once guards a single fork. Whichever of Resolve or Reject fires first
// settles the fork; any later settlement attempt is a contract violation
// and panics, naming the fork so the offending source can be found.
type Once[A any] struct {
	forkID  string
	settled atomic.Uint32
	reject  func(error)
	resolve func(A)
}

// NewOnce wraps a continuation pair into a settlement guard. Forking with a
// nil continuation can never settle correctly, so it panics up front rather
// than at settlement time.
func NewOnce[A any](reject func(error), resolve func(A)) *Once[A] {
	if reject == nil || resolve == nil {
		panic("settle: fork needs both a reject and a resolve continuation")
	}
	return &Once[A]{
		forkID:  uuid.New().String(),
		reject:  reject,
		resolve: resolve,
	}
}

// ForkID identifies this fork in diagnostics.
func (o *Once[A]) ForkID() string {
	return o.forkID
}

// Resolve settles the fork successfully.
func (o *Once[A]) Resolve(value A) {
	o.claim("resolve")
	o.resolve(value)
}

// Reject settles the fork with a failure.
func (o *Once[A]) Reject(err error) {
	o.claim("reject")
	o.reject(err)
}

func (o *Once[A]) claim(op string) {
	if o.settled.Add(1) != 1 {
		panic(fmt.Sprintf("settle: %s on fork %s which is already settled", op, o.forkID))
	}
}
