package pure

import (
	"github.com/dgraph-io/ristretto/v2"
)

// RistrettoCache adapts a ristretto cache to the Cache contract, for
// memoizing functions whose key space is too large to keep in full. Entries
// carry unit cost, so MaxCost bounds the entry count.
type RistrettoCache[V any] struct {
	*ristretto.Cache[string, V]
}

var _ Cache[string] = (*RistrettoCache[string])(nil)

// NewRistrettoCache builds a cache sized for roughly maxEntries memoized
// results. A bound below one falls back to a single entry.
func NewRistrettoCache[V any](maxEntries int64) (*RistrettoCache[V], error) {
	if maxEntries < 1 {
		maxEntries = 1
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoCache[V]{Cache: cache}, nil
}

func (c *RistrettoCache[V]) Load(key string) (V, bool) {
	return c.Cache.Get(key)
}

// Store records the value. Admission is asynchronous; call Wait when a
// following Load must already see the entry.
func (c *RistrettoCache[V]) Store(key string, value V) {
	c.Cache.Set(key, value, 1)
}
