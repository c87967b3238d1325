package io_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gazm81/mostly-adequate-guide/effects/io"
	"github.com/gazm81/mostly-adequate-guide/pure"
)

func TestNothingRunsBeforePerform(t *testing.T) {
	runs := 0
	deferred := io.New(func() int {
		runs++
		return 42
	})
	mapped := io.Map(deferred, func(x int) int { return x + 1 })

	assert.Zero(t, runs, "building and mapping must not execute the computation")
	assert.Equal(t, 43, mapped.Perform())
	assert.Equal(t, 1, runs)
}

func TestPerformRunsEachTime(t *testing.T) {
	runs := 0
	counting := io.New(func() int {
		runs++
		return runs
	})

	assert.Equal(t, 1, counting.Perform())
	assert.Equal(t, 2, counting.Perform())
}

func TestOf(t *testing.T) {
	assert.Equal(t, 42, io.Of(42).Perform())
}

func TestApPerformsFunctionSideFirst(t *testing.T) {
	var order []string
	iof := io.New(func() func(int) int {
		order = append(order, "fn")
		return func(x int) int { return x * 2 }
	})
	ioa := io.New(func() int {
		order = append(order, "arg")
		return 21
	})

	got := io.Ap(iof, ioa).Perform()

	assert.Equal(t, 42, got)
	assert.Equal(t, []string{"fn", "arg"}, order)
}

func TestChainDefersBothSteps(t *testing.T) {
	runs := 0
	chained := io.Chain(io.Of("41"), func(s string) io.IO[int] {
		return io.New(func() int {
			runs++
			n, _ := strconv.Atoi(s)
			return n + 1
		})
	})

	assert.Zero(t, runs)
	assert.Equal(t, 42, chained.Perform())
	assert.Equal(t, 1, runs)
}

func TestFlatten(t *testing.T) {
	nested := io.Of(io.Of("inner"))

	assert.Equal(t, "inner", io.Flatten(nested).Perform())
}

func TestLiftA2(t *testing.T) {
	got := io.LiftA2(func(a, b int) int { return a + b }, io.Of(40), io.Of(2))

	assert.Equal(t, 42, got.Perform())
}

// TestFunctorIdentity: Map(action, id) performs to what action performs to.
func TestFunctorIdentity(t *testing.T) {
	action := io.Of(7)

	assert.Equal(t, action.Perform(), io.Map(action, pure.Identity[int]).Perform())
}

// TestFunctorComposition: Map(action, compose(g, f)) performs to what
// Map(Map(action, f), g) performs to.
func TestFunctorComposition(t *testing.T) {
	f := strconv.Itoa
	g := func(s string) int { return len(s) }
	action := io.Of(1234)

	composed := io.Map(action, pure.Compose(g, f))
	stepped := io.Map(io.Map(action, f), g)
	assert.Equal(t, stepped.Perform(), composed.Perform())
}

func TestMonadLaws(t *testing.T) {
	f := func(x int) io.IO[string] { return io.Of(strconv.Itoa(x)) }
	g := func(s string) io.IO[int] { return io.Of(len(s)) }

	// Laws compare what performing yields, not the closures themselves.
	assert.Equal(t, f(42).Perform(), io.Chain(io.Of(42), f).Perform())

	m := io.Of(42)
	assert.Equal(t, m.Perform(), io.Chain(m, io.Of[int]).Perform())

	left := io.Chain(io.Chain(m, f), g)
	right := io.Chain(m, func(x int) io.IO[int] { return io.Chain(f(x), g) })
	assert.Equal(t, left.Perform(), right.Perform())
}

func TestSequencePerformsInOrder(t *testing.T) {
	var order []int
	step := func(n int) io.IO[int] {
		return io.New(func() int {
			order = append(order, n)
			return n * 10
		})
	}

	all := io.Sequence([]io.IO[int]{step(1), step(2), step(3)})

	assert.Empty(t, order, "sequencing must not perform anything")
	assert.Equal(t, []int{10, 20, 30}, all.Perform())
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestTraverse(t *testing.T) {
	got := io.Traverse([]string{"a", "bb"}, func(s string) io.IO[int] {
		return io.Of(len(s))
	})

	assert.Equal(t, []int{1, 2}, got.Perform())
}
