// Package cache implements a get-or-compute cache with explicit
// invalidation. Zero values (false, 0, "") are cached like any other value;
// absence is tracked by the store, never by inspecting the value.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// ComputeError wraps a failure of the compute function. Nothing is stored
// for the key when it is returned.
type ComputeError struct {
	Key string
	Err error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("cache: compute %q: %v", e.Key, e.Err)
}

func (e *ComputeError) Unwrap() error { return e.Err }

// Options bounds the cache. Zero MaxEntries means unbounded, zero MaxAge
// means entries never expire on their own.
type Options struct {
	MaxEntries int
	MaxAge     time.Duration
}

// Stats are cumulative counters since construction.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Computes uint64
	Failures uint64
}

// ComputeFunc produces the value for a key on a miss.
type ComputeFunc[V any] func(ctx context.Context) (V, error)

// Cache is safe for concurrent use.
//
// Every key with a computation in flight has a generation that Invalidate
// and Refresh advance. A computation only stores its result if the
// generation it started under is still current, so a slow computation can
// never overwrite data published after an invalidation. Generations come
// from one cache-wide sequence and are forgotten once no computation for
// the key is running.
type Cache[V any] struct {
	store *expirable.LRU[string, V]
	group singleflight.Group

	mu   sync.Mutex
	seq  uint64
	keys map[string]*keyState

	hits     atomic.Uint64
	misses   atomic.Uint64
	computes atomic.Uint64
	failures atomic.Uint64
}

type keyState struct {
	gen  uint64
	refs int
}

type boxed[V any] struct{ v V }

// New creates an empty cache.
func New[V any](opts Options) *Cache[V] {
	size := opts.MaxEntries
	if size < 0 {
		size = 0
	}
	return &Cache[V]{
		store: expirable.NewLRU[string, V](size, nil, opts.MaxAge),
		keys:  make(map[string]*keyState),
	}
}

// Get returns the stored value without computing.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.store.Get(key)
}

// GetOrCompute returns the cached value for key, or runs fn once, stores its
// literal result and returns it. Concurrent misses on the same key share one
// call to fn. The shared call is not cancelled with any single caller; a
// caller whose ctx ends stops waiting and gets ctx.Err().
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, fn ComputeFunc[V]) (V, error) {
	if v, ok := c.store.Get(key); ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)

	gen := c.acquire(key)
	defer c.release(key)
	flight := key + "\x00" + strconv.FormatUint(gen, 10)
	shared := context.WithoutCancel(ctx)

	ch := c.group.DoChan(flight, func() (any, error) {
		c.acquire(key)
		defer c.release(key)

		if v, ok := c.store.Get(key); ok {
			return boxed[V]{v}, nil
		}
		v, err := fn(shared)
		if err != nil {
			c.failures.Add(1)
			return nil, &ComputeError{Key: key, Err: err}
		}
		c.computes.Add(1)
		c.storeIf(key, gen, v, false)
		return boxed[V]{v}, nil
	})

	var zero V
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(boxed[V]).v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Refresh recomputes key and replaces the stored value on success. On
// failure the previous value, if any, stays in place.
func (c *Cache[V]) Refresh(ctx context.Context, key string, fn ComputeFunc[V]) (V, error) {
	gen := c.acquire(key)
	defer c.release(key)

	v, err := fn(ctx)
	if err != nil {
		c.failures.Add(1)
		var zero V
		return zero, &ComputeError{Key: key, Err: err}
	}
	c.computes.Add(1)
	c.storeIf(key, gen, v, true)
	return v, nil
}

// Invalidate drops key unconditionally. The next GetOrCompute recomputes.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.keys[key]; ok {
		c.advance(st)
	}
	c.store.Remove(key)
}

// InvalidatePrefix drops every key starting with prefix.
func (c *Cache[V]) InvalidatePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, st := range c.keys {
		if strings.HasPrefix(key, prefix) {
			c.advance(st)
		}
	}
	for _, key := range c.store.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.store.Remove(key)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries.
func (c *Cache[V]) Len() int {
	return c.store.Len()
}

// Stats returns a snapshot of the counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Computes: c.computes.Load(),
		Failures: c.failures.Load(),
	}
}

// acquire registers a computation for key and returns the generation it
// runs under. Every acquire must be paired with a release.
func (c *Cache[V]) acquire(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.keys[key]
	if !ok {
		c.seq++
		st = &keyState{gen: c.seq}
		c.keys[key] = st
	}
	st.refs++
	return st.gen
}

func (c *Cache[V]) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.keys[key]
	if !ok {
		return
	}
	st.refs--
	if st.refs <= 0 {
		delete(c.keys, key)
	}
}

// advance must be called with mu held.
func (c *Cache[V]) advance(st *keyState) {
	c.seq++
	st.gen = c.seq
}

// tracked returns how many keys currently carry a generation.
func (c *Cache[V]) tracked() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

// storeIf publishes v when gen is still current. bump advances the
// generation so that older in-flight computations cannot overwrite v.
func (c *Cache[V]) storeIf(key string, gen uint64, v V, bump bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.keys[key]
	if !ok || st.gen != gen {
		return false
	}
	if bump {
		c.advance(st)
	}
	c.store.Add(key, v)
	return true
}
