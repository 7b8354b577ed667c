// Package cache wraps ristretto with a string-keyed generic cache that
// reports its own hit statistics.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultTTL applies to entries stored with Set.
const DefaultTTL = 24 * time.Hour

// Cache is a bounded cache whose capacity is measured by a caller supplied
// cost function, e.g. the byte length of an encoded image.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	cost func(T) int64
}

// Stats is a snapshot of cache activity.
type Stats struct {
	Name     string  `json:"name"`
	Hits     uint64  `json:"hits"`
	Misses   uint64  `json:"misses"`
	HitRate  float64 `json:"hit_rate"`
	Items    int64   `json:"items"`
	CostUsed int64   `json:"cost_used"`
	Rejected uint64  `json:"sets_rejected"`
}

// New creates a cache holding at most maxCost worth of entries.
func New[T any](name string, maxCost int64, cost func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5, // ~10x the expected number of entries
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        cost,
		// Cost is the value size alone.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{impl: impl, name: name, cost: cost}, nil
}

func (c *Cache[T]) Name() string {
	return c.name
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value with DefaultTTL. Admission is probabilistic, so a false
// return only means the value was dropped.
func (c *Cache[T]) Set(key string, value T) bool {
	return c.SetWithTTL(key, value, DefaultTTL)
}

func (c *Cache[T]) SetWithTTL(key string, value T, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, c.cost(value), ttl)
}

func (c *Cache[T]) Delete(key string) {
	c.impl.Del(key)
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics
	s := Stats{
		Name:     c.name,
		Hits:     m.Hits(),
		Misses:   m.Misses(),
		Items:    int64(m.KeysAdded() - m.KeysEvicted()),
		CostUsed: int64(m.CostAdded() - m.CostEvicted()),
		Rejected: m.SetsRejected(),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}
