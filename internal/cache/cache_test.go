package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := NewWithPolicy[string](time.Minute, 10)

	c.Set("a", "1")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := NewWithPolicy[string](600*time.Second, 10)

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("a", "1")

	now = now.Add(599 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry must expire 600s after population")
	assert.Equal(t, 0, c.Len())
}

func TestRepopulationResetsTTL(t *testing.T) {
	c := NewWithPolicy[string](600*time.Second, 10)

	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("a", "1")
	now = now.Add(500 * time.Second)
	c.Set("a", "2")
	now = now.Add(500 * time.Second)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestCapacityEvictsLeastRecentlyPopulated(t *testing.T) {
	c := NewWithPolicy[int](time.Minute, DefaultMaxEntries)

	for i := 0; i < DefaultMaxEntries; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
	assert.Equal(t, DefaultMaxEntries, c.Len())

	// Reading must not refresh eviction order.
	_, ok := c.Get("key-0")
	assert.True(t, ok)

	c.Set("key-250", 250)
	assert.Equal(t, DefaultMaxEntries, c.Len())

	_, ok = c.Get("key-0")
	assert.False(t, ok, "oldest populated entry is evicted first")
	_, ok = c.Get("key-1")
	assert.True(t, ok)
	_, ok = c.Get("key-250")
	assert.True(t, ok)
}

func TestRepopulationMovesToBackOfEvictionQueue(t *testing.T) {
	c := NewWithPolicy[int](time.Minute, 3)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Set("a", 4) // repopulate, "b" is now the oldest
	c.Set("d", 5)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestGetOrFill(t *testing.T) {
	c := NewWithPolicy[string](time.Minute, 10)

	calls := 0
	fill := func() (string, bool) {
		calls++
		return "filled", true
	}

	v, ok := c.GetOrFill("a", fill)
	assert.True(t, ok)
	assert.Equal(t, "filled", v)

	v, ok = c.GetOrFill("a", fill)
	assert.True(t, ok)
	assert.Equal(t, "filled", v)
	assert.Equal(t, 1, calls, "second read is served from cache")
}

func TestGetOrFillDoesNotCacheFailures(t *testing.T) {
	c := NewWithPolicy[string](time.Minute, 10)

	calls := 0
	fill := func() (string, bool) {
		calls++
		return "", false
	}

	_, ok := c.GetOrFill("a", fill)
	assert.False(t, ok)
	_, ok = c.GetOrFill("a", fill)
	assert.False(t, ok)
	assert.Equal(t, 2, calls, "failed fills are re-attempted")
}

func TestFlushAll(t *testing.T) {
	a := NewWithPolicy[string](time.Minute, 10)
	b := NewWithPolicy[int](time.Minute, 10)

	a.Set("x", "1")
	b.Set("y", 2)

	FlushAll()

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestDelete(t *testing.T) {
	c := NewWithPolicy[string](time.Minute, 10)

	c.Set("a", "1")
	c.Delete("a")
	c.Delete("never-existed")

	_, ok := c.Get("a")
	assert.False(t, ok)
}
