package cache

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c := New(Config{Logger: zerolog.Nop()})
	t.Cleanup(c.Stop)
	return c
}

func TestCacheSetGet(t *testing.T) {
	c := newTestCache(t)

	c.Set("key", "value", time.Minute)

	v, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := newTestCache(t)

	c.Set("key", "value", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size(), "stale entry should be lazily evicted on read")
}

func TestCacheSetResetsTimestamp(t *testing.T) {
	c := newTestCache(t)

	c.Set("key", "old", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	c.Set("key", "new", time.Minute)

	v, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestCacheDefaultTTL(t *testing.T) {
	c := newTestCache(t)

	c.Set("key", "value", 0)

	stats := c.GetStats()
	assert.Equal(t, DefaultTTL, stats.AverageTTL)
}

func TestCacheTyped(t *testing.T) {
	c := newTestCache(t)

	c.Set("ints", []int{1, 2, 3}, time.Minute)

	got, ok := Typed[[]int](c, "ints")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, ok = Typed[string](c, "ints")
	assert.False(t, ok, "wrong type should be a miss")

	_, ok = Typed[[]int](c, "absent")
	assert.False(t, ok)
}

func TestCacheDelete(t *testing.T) {
	c := newTestCache(t)

	c.Set("key", "value", time.Minute)

	assert.True(t, c.Delete("key"))
	assert.False(t, c.Delete("key"))

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestCacheDeletePattern(t *testing.T) {
	c := newTestCache(t)

	c.Set("locations:beach", 1, time.Minute)
	c.Set("locations:valley", 2, time.Minute)
	c.Set("weather:35.16:129.16", 3, time.Minute)

	err := c.DeletePattern(`^locations:`)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Size())
	_, ok := c.Get("weather:35.16:129.16")
	assert.True(t, ok)
}

func TestCacheDeletePatternInvalidRegex(t *testing.T) {
	c := newTestCache(t)

	c.Set("key", "value", time.Minute)

	err := c.DeletePattern(`[`)
	require.Error(t, err)
	assert.Equal(t, 1, c.Size(), "entries must survive an invalid pattern")
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Clear()

	assert.Equal(t, 0, c.Size())
}

func TestCacheStats(t *testing.T) {
	c := newTestCache(t)

	assert.Equal(t, Stats{}, c.GetStats())

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, 3*time.Minute)

	stats := c.GetStats()
	assert.Equal(t, 2, stats.Size)
	require.NotNil(t, stats.OldestEntry)
	require.NotNil(t, stats.NewestEntry)
	assert.False(t, stats.NewestEntry.Before(*stats.OldestEntry))
	assert.Equal(t, 2*time.Minute, stats.AverageTTL)
}

func TestCacheSweepRemovesExpired(t *testing.T) {
	c := newTestCache(t)

	c.Set("stale", 1, time.Millisecond)
	c.Set("fresh", 2, time.Minute)
	time.Sleep(10 * time.Millisecond)

	c.removeExpired()

	assert.Equal(t, 1, c.Size())
	_, ok := c.Get("fresh")
	assert.True(t, ok)
}

func TestCacheStopIsIdempotent(t *testing.T) {
	c := New(Config{Logger: zerolog.Nop()})
	c.Stop()
	c.Stop()
}
