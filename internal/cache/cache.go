// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/raphaelratuczne/teste-outsera/internal/logging"
	"github.com/raphaelratuczne/teste-outsera/internal/metrics"
)

// DefaultCleanupInterval is how often Serve sweeps expired entries.
const DefaultCleanupInterval = time.Minute

// Entry is a cached response body with its expiration.
type Entry struct {
	Data      []byte
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache of encoded responses.
// A zero or negative TTL disables it: Get always misses and Set is a no-op.
type Cache struct {
	mu              sync.RWMutex
	entries         map[string]Entry
	ttl             time.Duration
	cleanupInterval time.Duration
	stats           Stats
	now             func() time.Time
}

// Stats tracks cache performance.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries live for ttl.
//
// Expired entries are dropped lazily on Get and in bulk by Serve, which
// runs under the supervisor tree.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries:         make(map[string]Entry),
		ttl:             ttl,
		cleanupInterval: DefaultCleanupInterval,
		now:             time.Now,
	}
}

// Enabled reports whether the cache stores anything.
func (c *Cache) Enabled() bool {
	return c.ttl > 0
}

// Get returns the entry for key if present and not expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordLookup(false)
		return nil, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, ok := c.entries[key]; ok && c.now().After(current.ExpiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
			c.updateSize()
		}
		c.mu.Unlock()
		c.recordLookup(false)
		return nil, false
	}

	c.recordLookup(true)
	return entry.Data, true
}

// Set stores data under key with the cache TTL.
func (c *Cache) Set(key string, data []byte) {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry{
		Data:      data,
		ExpiresAt: c.now().Add(c.ttl),
	}
	c.updateSize()
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Evictions += int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.updateSize()
}

// GetStats returns a snapshot of the cache statistics.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Serve sweeps expired entries until ctx is canceled.
// It implements suture.Service.
func (c *Cache) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	logger := logging.WithComponent("cache")
	logger.Debug().Dur("interval", c.cleanupInterval).Msg("Cache cleanup started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if evicted := c.cleanup(); evicted > 0 {
				logger.Debug().Int("evicted", evicted).Msg("Expired cache entries removed")
			}
		}
	}
}

// String returns the service name for supervisor logging.
func (c *Cache) String() string {
	return "cache-cleanup"
}

// cleanup removes all expired entries and returns how many were dropped.
func (c *Cache) cleanup() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}

	c.stats.Evictions += int64(evicted)
	c.stats.LastCleanup = now
	c.updateSize()
	return evicted
}

// updateSize must be called with c.mu held for writing.
func (c *Cache) updateSize() {
	c.stats.TotalKeys = int64(len(c.entries))
	metrics.CacheEntries.Set(float64(c.stats.TotalKeys))
}

func (c *Cache) recordLookup(hit bool) {
	c.mu.Lock()
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.mu.Unlock()
	metrics.RecordCacheLookup(hit)
}
