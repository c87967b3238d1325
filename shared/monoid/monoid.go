// Package monoid provides combinable value algebras: semigroups pair a
// domain with an associative Combine, monoids add a two-sided identity.
// The concrete types here wrap ordinary Go values so that folding code can
// stay generic over the algebra instead of switching on the payload.
package monoid

import (
	"cmp"

	"go.uber.org/multierr"

	"github.com/gazm81/mostly-adequate-guide/shared/kv"
	"github.com/gazm81/mostly-adequate-guide/shared/seq"
)

// Semigroup is a domain closed under an associative Combine. Combine must
// satisfy a.Combine(b).Combine(c) == a.Combine(b.Combine(c)) and returns a
// new value; receivers are never mutated.
type Semigroup[A any] interface {
	Combine(other A) A
}

// Monoid is a Semigroup with an identity element. Empty ignores its
// receiver, so calling it on the zero value is always valid, and the result
// is neutral on both sides of Combine.
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

// Number covers the built-in numeric types usable with Sum and Product.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum combines numbers by addition. The identity is zero.
type Sum[N Number] struct {
	Value N
}

func SumOf[N Number](v N) Sum[N] {
	return Sum[N]{Value: v}
}

func (a Sum[N]) Combine(b Sum[N]) Sum[N] {
	return Sum[N]{Value: a.Value + b.Value}
}

func (Sum[N]) Empty() Sum[N] {
	return Sum[N]{}
}

// Product combines numbers by multiplication. The identity is one.
type Product[N Number] struct {
	Value N
}

func ProductOf[N Number](v N) Product[N] {
	return Product[N]{Value: v}
}

func (a Product[N]) Combine(b Product[N]) Product[N] {
	return Product[N]{Value: a.Value * b.Value}
}

func (Product[N]) Empty() Product[N] {
	return Product[N]{Value: 1}
}

// Min keeps the smaller of the values seen so far. Ordered types have no
// universal top element, so the identity is a Min holding nothing yet; the
// first real value combined into it wins unconditionally.
type Min[O cmp.Ordered] struct {
	value O
	valid bool
}

func MinOf[O cmp.Ordered](v O) Min[O] {
	return Min[O]{value: v, valid: true}
}

func (a Min[O]) Combine(b Min[O]) Min[O] {
	switch {
	case !a.valid:
		return b
	case !b.valid:
		return a
	case b.value < a.value:
		return b
	default:
		return a
	}
}

func (Min[O]) Empty() Min[O] {
	return Min[O]{}
}

// Get returns the tracked minimum. The boolean is false when no value has
// been combined in yet.
func (a Min[O]) Get() (O, bool) {
	return a.value, a.valid
}

// Max keeps the larger of the values seen so far, with the same empty
// treatment as Min.
type Max[O cmp.Ordered] struct {
	value O
	valid bool
}

func MaxOf[O cmp.Ordered](v O) Max[O] {
	return Max[O]{value: v, valid: true}
}

func (a Max[O]) Combine(b Max[O]) Max[O] {
	switch {
	case !a.valid:
		return b
	case !b.valid:
		return a
	case b.value > a.value:
		return b
	default:
		return a
	}
}

func (Max[O]) Empty() Max[O] {
	return Max[O]{}
}

// Get returns the tracked maximum. The boolean is false when no value has
// been combined in yet.
func (a Max[O]) Get() (O, bool) {
	return a.value, a.valid
}

// Any combines booleans by logical or. The identity is false.
type Any struct {
	Value bool
}

func AnyOf(v bool) Any {
	return Any{Value: v}
}

func (a Any) Combine(b Any) Any {
	return Any{Value: a.Value || b.Value}
}

func (Any) Empty() Any {
	return Any{}
}

// All combines booleans by logical and. The identity is true.
type All struct {
	Value bool
}

func AllOf(v bool) All {
	return All{Value: v}
}

func (a All) Combine(b All) All {
	return All{Value: a.Value && b.Value}
}

func (All) Empty() All {
	return All{Value: true}
}

// Concat combines sequences by appending. The identity is the empty
// sequence. Combine copies, so held slices are never shared or mutated.
type Concat[T any] struct {
	Items []T
}

func ConcatOf[T any](items ...T) Concat[T] {
	return Concat[T]{Items: items}
}

func (a Concat[T]) Combine(b Concat[T]) Concat[T] {
	return Concat[T]{Items: seq.Concat(a.Items, b.Items)}
}

func (Concat[T]) Empty() Concat[T] {
	return Concat[T]{}
}

// Union combines keyed collections by right-biased union: on a key collision
// the entry combined in later wins. The identity is the empty mapping.
type Union[K comparable, V any] struct {
	Entries map[K]V
}

func UnionOf[K comparable, V any](entries map[K]V) Union[K, V] {
	return Union[K, V]{Entries: kv.Union(nil, entries)}
}

func (a Union[K, V]) Combine(b Union[K, V]) Union[K, V] {
	return Union[K, V]{Entries: kv.Union(a.Entries, b.Entries)}
}

func (Union[K, V]) Empty() Union[K, V] {
	return Union[K, V]{}
}

// Errors accumulates failures into a single multierror instead of keeping
// only the first one. The identity is the absence of an error, so folding a
// batch of nil errors stays nil.
type Errors struct {
	Err error
}

func ErrorsOf(err error) Errors {
	return Errors{Err: err}
}

func (a Errors) Combine(b Errors) Errors {
	return Errors{Err: multierr.Append(a.Err, b.Err)}
}

func (Errors) Empty() Errors {
	return Errors{}
}

// Fold combines values left to right, starting from the monoid identity.
// An empty input yields the identity itself.
func Fold[M Monoid[M]](values []M) M {
	var zero M
	acc := zero.Empty()
	for _, v := range values {
		acc = acc.Combine(v)
	}
	return acc
}

// FoldMap maps every element into the monoid and folds the results in one
// pass.
func FoldMap[A any, M Monoid[M]](values []A, f func(A) M) M {
	var zero M
	acc := zero.Empty()
	for _, v := range values {
		acc = acc.Combine(f(v))
	}
	return acc
}

// Reduce folds a bare semigroup, which has no identity to start from. The
// boolean is false when the input is empty and there is nothing to return.
func Reduce[S Semigroup[S]](values []S) (S, bool) {
	if len(values) == 0 {
		var zero S
		return zero, false
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = acc.Combine(v)
	}
	return acc, true
}
