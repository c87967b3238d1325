package pure

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache is the storage contract behind Memoized. Implementations decide
// retention; Load reporting false simply means the computation runs again.
type Cache[V any] interface {
	Load(key string) (V, bool)
	Store(key string, value V)
}

// KeyFunc renders an argument into a stable cache key. Arguments that
// render equal are treated as the same call.
type KeyFunc[A any] func(A) string

// SprintKey keys by the fmt rendering of the argument. Good enough for
// values whose default formatting is injective, such as the built-ins.
func SprintKey[A any](a A) string {
	return fmt.Sprintf("%v", a)
}

// Memoized wraps fn with a cache lookup: a hit skips the computation, a
// miss computes and stores. fn must be pure, otherwise callers observe
// whichever run happened to fill the cache.
func Memoized[A, V any](cache Cache[V], key KeyFunc[A], fn func(A) V) func(A) V {
	return func(a A) V {
		k := key(a)
		if v, ok := cache.Load(k); ok {
			return v
		}
		v := fn(a)
		cache.Store(k, v)
		return v
	}
}

// MapCache is an in-process Cache over sharded maps. Keys spread across the
// shards by hash, so concurrent callers mostly take different locks. It
// never evicts; use the ristretto adapter when the key space is unbounded.
type MapCache[V any] struct {
	shards []mapShard[V]
}

type mapShard[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

var _ Cache[int] = (*MapCache[int])(nil)

// NewMapCache builds a cache with the given shard count. A count below one
// falls back to a single shard.
func NewMapCache[V any](shardCount int) *MapCache[V] {
	if shardCount < 1 {
		shardCount = 1
	}
	shards := make([]mapShard[V], shardCount)
	for i := range shards {
		shards[i].entries = make(map[string]V)
	}
	return &MapCache[V]{shards: shards}
}

func (c *MapCache[V]) shard(key string) *mapShard[V] {
	return &c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

func (c *MapCache[V]) Load(key string) (V, bool) {
	s := c.shard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (c *MapCache[V]) Store(key string, value V) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

// Len reports the number of cached entries across all shards.
func (c *MapCache[V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}
