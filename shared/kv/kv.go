// Package kv provides the container operations of the keyed-collection kind
// over native maps. Inputs are never mutated; results are fresh maps, and
// empty results are nil.
package kv

// Singleton builds a mapping holding exactly one entry.
func Singleton[K comparable, V any](key K, value V) map[K]V {
	return map[K]V{key: value}
}

// MapValues applies f to every value, leaving the key set unchanged.
func MapValues[K comparable, A, B any](m map[K]A, f func(A) B) map[K]B {
	if len(m) == 0 {
		return nil
	}
	out := make(map[K]B, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

// Ap applies the function stored under each key to the value stored under
// the same key. Keys present on only one side are dropped: the keyed kind
// combines pointwise, not by cartesian product.
func Ap[K comparable, A, B any](fs map[K]func(A) B, xs map[K]A) map[K]B {
	var out map[K]B
	for k, f := range fs {
		x, ok := xs[k]
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[K]B)
		}
		out[k] = f(x)
	}
	return out
}

// Union merges two mappings into a fresh one. On a key collision the entry
// from b wins.
func Union[K comparable, V any](a, b map[K]V) map[K]V {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make(map[K]V, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// UnionWith merges two mappings, resolving key collisions with combine,
// called as combine(left, right).
func UnionWith[K comparable, V any](a, b map[K]V, combine func(V, V) V) map[K]V {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make(map[K]V, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok {
			out[k] = combine(existing, v)
			continue
		}
		out[k] = v
	}
	return out
}
