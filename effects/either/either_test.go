package either_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazm81/mostly-adequate-guide/effects/either"
	"github.com/gazm81/mostly-adequate-guide/pure"
)

type parseError struct {
	input string
}

func (e parseError) Error() string {
	return fmt.Sprintf("not a number: %q", e.input)
}

func parseInt(s string) either.Either[error, int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return either.Left[error, int](parseError{input: s})
	}
	return either.Right[error](n)
}

func TestRightAndLeft(t *testing.T) {
	r := either.Right[string](42)
	assert.True(t, r.IsRight())
	assert.False(t, r.IsLeft())

	v, ok := r.GetRight()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	l := either.Left[string, int]("bad")
	assert.True(t, l.IsLeft())

	e, ok := l.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "bad", e)

	_, ok = l.GetRight()
	assert.False(t, ok)
}

func TestFrom(t *testing.T) {
	ok := either.From(strconv.Atoi("42"))
	assert.Equal(t, either.Right[error](42), ok)

	bad := either.From(strconv.Atoi("x"))
	assert.True(t, bad.IsLeft())
}

func TestGetOrElse(t *testing.T) {
	assert.Equal(t, 42, either.Right[string](42).GetOrElse(0))
	assert.Equal(t, 0, either.Left[string, int]("bad").GetOrElse(0))
}

func TestMapOnRight(t *testing.T) {
	got := either.Map(either.Right[string](21), func(x int) int { return x * 2 })

	assert.Equal(t, either.Right[string](42), got)
}

func TestMapKeepsLeftUntouched(t *testing.T) {
	calls := 0
	got := either.Map(either.Left[string, int]("bad"), func(x int) int {
		calls++
		return x
	})

	e, ok := got.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "bad", e)
	assert.Zero(t, calls, "map must not call f on a Left")
}

func TestMapLeft(t *testing.T) {
	annotated := either.MapLeft(either.Left[string, int]("bad"), func(e string) string {
		return "while parsing: " + e
	})
	e, ok := annotated.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "while parsing: bad", e)

	untouched := either.MapLeft(either.Right[string](42), func(e string) string { return e + "!" })
	assert.Equal(t, either.Right[string](42), untouched)
}

func TestApFirstFailureWins(t *testing.T) {
	fnSide := either.Left[string, func(int) int]("fn failed")
	argSide := either.Left[string, int]("arg failed")

	got := either.Ap(fnSide, argSide)

	e, ok := got.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "fn failed", e)
}

func TestApBothRight(t *testing.T) {
	got := either.Ap(either.Right[string](strconv.Itoa), either.Right[string](7))

	assert.Equal(t, either.Right[string]("7"), got)
}

func TestChainCanFail(t *testing.T) {
	nonZero := func(x int) either.Either[string, int] {
		if x == 0 {
			return either.Left[string, int]("zero divisor")
		}
		return either.Right[string](84 / x)
	}

	assert.Equal(t, either.Right[string](42), either.Chain(either.Right[string](2), nonZero))

	failed := either.Chain(either.Right[string](0), nonZero)
	e, ok := failed.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "zero divisor", e)
}

func TestFlatten(t *testing.T) {
	nested := either.Right[string](either.Right[string](1))
	assert.Equal(t, either.Right[string](1), either.Flatten(nested))

	innerLeft := either.Right[string](either.Left[string, int]("inner"))
	e, ok := either.Flatten(innerLeft).GetLeft()
	require.True(t, ok)
	assert.Equal(t, "inner", e)

	outerLeft := either.Left[string, either.Either[string, int]]("outer")
	e, ok = either.Flatten(outerLeft).GetLeft()
	require.True(t, ok)
	assert.Equal(t, "outer", e)
}

func TestMatch(t *testing.T) {
	describe := func(e either.Either[string, int]) string {
		return either.Match(e,
			func(msg string) string { return "failed: " + msg },
			func(x int) string { return "got " + strconv.Itoa(x) },
		)
	}

	assert.Equal(t, "got 3", describe(either.Right[string](3)))
	assert.Equal(t, "failed: bad", describe(either.Left[string, int]("bad")))
}

func TestLiftA2(t *testing.T) {
	add := func(a, b int) int { return a + b }

	got := either.LiftA2(add, either.Right[string](40), either.Right[string](2))
	assert.Equal(t, either.Right[string](42), got)

	failed := either.LiftA2(add, either.Left[string, int]("nope"), either.Right[string](2))
	e, ok := failed.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "nope", e)
}

// TestFunctorIdentity: Map(e, id) == e.
func TestFunctorIdentity(t *testing.T) {
	for _, e := range []either.Either[string, int]{
		either.Right[string](7),
		either.Left[string, int]("bad"),
	} {
		assert.Equal(t, e, either.Map(e, pure.Identity[int]))
	}
}

// TestFunctorComposition: Map(e, compose(g, f)) == Map(Map(e, f), g).
func TestFunctorComposition(t *testing.T) {
	f := strconv.Itoa
	g := func(s string) int { return len(s) }

	for _, e := range []either.Either[string, int]{
		either.Right[string](1234),
		either.Left[string, int]("bad"),
	} {
		composed := either.Map(e, pure.Compose(g, f))
		stepped := either.Map(either.Map(e, f), g)
		assert.Equal(t, stepped, composed)
	}
}

func TestApplicativeLaws(t *testing.T) {
	// Identity: ap(of(id), v) == v.
	v := either.Right[string](7)
	got := either.Ap(either.Of[string](func(x int) int { return x }), v)
	assert.Equal(t, v, got)

	// Homomorphism: ap(of(f), of(x)) == of(f(x)).
	double := func(x int) int { return x * 2 }
	assert.Equal(t,
		either.Of[string](double(7)),
		either.Ap(either.Of[string](double), either.Of[string](7)),
	)
}

func TestMonadLaws(t *testing.T) {
	f := func(x int) either.Either[string, string] { return either.Right[string](strconv.Itoa(x)) }
	g := func(s string) either.Either[string, int] { return either.Right[string](len(s)) }

	// Left identity: chain(of(a), f) == f(a).
	assert.Equal(t, f(42), either.Chain(either.Of[string](42), f))

	// Right identity: chain(m, of) == m.
	m := either.Right[string](42)
	assert.Equal(t, m, either.Chain(m, either.Of[string, int]))

	// Associativity, on both a Right and a Left source.
	for _, src := range []either.Either[string, int]{
		either.Right[string](10),
		either.Left[string, int]("boom"),
	} {
		left := either.Chain(either.Chain(src, f), g)
		right := either.Chain(src, func(x int) either.Either[string, int] {
			return either.Chain(f(x), g)
		})
		assert.Equal(t, left, right)
	}
}

func TestSequenceKeepsFirstLeft(t *testing.T) {
	got := either.Sequence([]either.Either[string, int]{
		either.Right[string](1),
		either.Left[string, int]("first"),
		either.Left[string, int]("second"),
	})

	e, ok := got.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "first", e)
}

func TestTraverseParsesAll(t *testing.T) {
	got := either.Traverse([]string{"2", "3", "4"}, parseInt)

	v, ok := got.GetRight()
	require.True(t, ok)
	assert.Equal(t, []int{2, 3, 4}, v)
}

func TestTraverseFailsOnFirstBadInput(t *testing.T) {
	got := either.Traverse([]string{"2", "x", "4"}, parseInt)

	err, ok := got.GetLeft()
	require.True(t, ok)
	assert.Equal(t, parseError{input: "x"}, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Right(42)", either.Right[string](42).String())
	assert.Equal(t, "Left(bad)", either.Left[string, int]("bad").String())
}
