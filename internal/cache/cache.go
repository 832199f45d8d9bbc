// Package cache provides a process-local TTL cache used to memoize
// repository and derived results. Entries are lazily evicted on read and
// proactively removed by a background sweep. Absence is modeled as a miss,
// never as an error.
package cache

import (
	"regexp"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTTL is applied when Set is called with a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// DefaultSweepInterval is how often the background sweep removes expired
// entries. The sweep is hygiene only; Get is itself lazy-evicting.
const DefaultSweepInterval = 5 * time.Minute

type entry struct {
	data      any
	createdAt time.Time
	ttl       time.Duration
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// Config holds configuration for the cache.
type Config struct {
	// SweepInterval is how often expired entries are swept (default: 5 minutes).
	SweepInterval time.Duration

	// Logger for sweep diagnostics.
	Logger zerolog.Logger
}

// Cache is a key-value store with per-entry TTL.
type Cache struct {
	logger zerolog.Logger

	mu      sync.RWMutex
	entries map[string]*entry

	stop chan struct{}
	once sync.Once
}

// New creates a cache and starts its background sweeper.
func New(cfg Config) *Cache {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	c := &Cache{
		logger:  cfg.Logger,
		entries: make(map[string]*entry),
		stop:    make(chan struct{}),
	}

	go c.sweepLoop(interval)

	return c
}

// Get returns the cached value for key if present and fresh. A stale entry
// is removed and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if e.expired(time.Now()) {
		c.mu.Lock()
		// Re-check under write lock; a Set may have refreshed the entry.
		if cur, ok := c.entries[key]; ok && cur.expired(time.Now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.data, true
}

// Typed returns the cached value for key as T. A value of the wrong type is
// treated as a miss.
func Typed[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set inserts or overwrites the value for key, resetting its timestamp.
// A non-positive ttl falls back to DefaultTTL.
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{
		data:      data,
		createdAt: time.Now(),
		ttl:       ttl,
	}
}

// Delete removes the entry for key. Reports whether an entry was present.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

// DeletePattern removes all entries whose key matches the regular expression.
func (c *Cache) DeletePattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if re.MatchString(key) {
			delete(c.entries, key)
		}
	}
	return nil
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Size returns the number of entries, including any not yet swept.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats contains cache introspection data. Used for observability only.
type Stats struct {
	Size        int           `json:"size"`
	OldestEntry *time.Time    `json:"oldestEntry,omitempty"`
	NewestEntry *time.Time    `json:"newestEntry,omitempty"`
	AverageTTL  time.Duration `json:"averageTtl"`
}

// GetStats returns diagnostic statistics about the cache contents.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.entries) == 0 {
		return Stats{}
	}

	var oldest, newest time.Time
	var totalTTL time.Duration

	for _, e := range c.entries {
		if oldest.IsZero() || e.createdAt.Before(oldest) {
			oldest = e.createdAt
		}
		if e.createdAt.After(newest) {
			newest = e.createdAt
		}
		totalTTL += e.ttl
	}

	return Stats{
		Size:        len(c.entries),
		OldestEntry: &oldest,
		NewestEntry: &newest,
		AverageTTL:  totalTTL / time.Duration(len(c.entries)),
	}
}

// Stop halts the background sweeper. Entries remain readable; Get still
// lazily evicts.
func (c *Cache) Stop() {
	c.once.Do(func() {
		close(c.stop)
	})
}

func (c *Cache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) removeExpired() {
	now := time.Now()
	removed := 0

	c.mu.Lock()
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	if removed > 0 {
		c.logger.Debug().
			Int("removed_entries", removed).
			Msg("swept expired cache entries")
	}
}
