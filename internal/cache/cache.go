// Package cache provides the bounded, time-limited memoization used in
// front of the file storage backend. All cache domains share one policy:
// entries expire 600 seconds after (re)population, at most 250 distinct
// keys are held, and on overflow the least-recently-populated entry is
// evicted. Reads never refresh an entry's age.
package cache

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultTTL is how long an entry is served after (re)population.
	DefaultTTL = 600 * time.Second

	// DefaultMaxEntries is the per-domain capacity.
	DefaultMaxEntries = 250
)

// registry tracks every cache so that a bulk external change (roster
// refresh, backup restore) can drop all domains at once.
var (
	registryMu sync.Mutex
	registry   []flusher
)

type flusher interface {
	Flush()
}

func register(c flusher) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, c)
}

// FlushAll drops every entry from every cache domain in the process.
func FlushAll() {
	registryMu.Lock()
	caches := make([]flusher, len(registry))
	copy(caches, registry)
	registryMu.Unlock()

	for _, c := range caches {
		c.Flush()
	}
}

type entry[V any] struct {
	key       string
	value     V
	populated time.Time
	elem      *list.Element
}

// Cache is a TTL + capacity bounded map keyed by file path. Eviction
// order is population order: Set moves a key to the back of the queue,
// Get does not touch it.
type Cache[V any] struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]*entry[V]
	order      *list.List // front = least recently populated
	now        func() time.Time
}

// New creates a cache with the shared default policy and registers it
// for FlushAll.
func New[V any]() *Cache[V] {
	return NewWithPolicy[V](DefaultTTL, DefaultMaxEntries)
}

// NewWithPolicy creates a cache with an explicit TTL and capacity.
func NewWithPolicy[V any](ttl time.Duration, maxEntries int) *Cache[V] {
	c := &Cache[V]{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]*entry[V]),
		order:      list.New(),
		now:        time.Now,
	}
	register(c)
	return c
}

// Get returns the cached value for key, or the zero value and false when
// the key is absent or its TTL has passed. Expired entries are removed.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().Sub(e.populated) >= c.ttl {
		c.remove(e)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores or repopulates the value for key. Repopulating counts as a
// fresh population for both TTL and eviction order.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.populated = c.now()
		c.order.MoveToBack(e.elem)
		return
	}

	e := &entry[V]{key: key, value: value, populated: c.now()}
	e.elem = c.order.PushBack(e)
	c.entries[key] = e

	for len(c.entries) > c.maxEntries {
		front := c.order.Front()
		if front == nil {
			break
		}
		c.remove(front.Value.(*entry[V]))
	}
}

// GetOrFill returns the cached value or populates it from fill. A nil-ish
// result from fill (ok == false) is not cached.
func (c *Cache[V]) GetOrFill(key string, fill func() (V, bool)) (V, bool) {
	if v, ok := c.Get(key); ok {
		return v, true
	}
	v, ok := fill()
	if ok {
		c.Set(key, v)
	}
	return v, ok
}

// Delete removes a single key, if present.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.remove(e)
	}
}

// Flush drops every entry.
func (c *Cache[V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry[V])
	c.order.Init()
}

// Len reports the number of live entries, expired ones included until
// they are touched or evicted.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[V]) remove(e *entry[V]) {
	c.order.Remove(e.elem)
	delete(c.entries, e.key)
}
