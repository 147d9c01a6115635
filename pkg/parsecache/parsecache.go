// Package parsecache memoizes duration parsing.
//
// Hot paths that parse the same small vocabulary of strings over and
// over, log ingestion and config reload loops among them, pay the parse
// cost once per distinct string. The cache is a bounded LRU and is safe
// for concurrent use. Only successful parses are stored; failures always
// come from a fresh parse.
package parsecache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/caldur/caldur-go/pkg/duration"
)

// DefaultSize bounds a cache built with NewDefault. Duration
// vocabularies in config and log streams rarely approach it.
const DefaultSize = 256

// Cache memoizes successful duration parses, keyed by the input string.
type Cache struct {
	entries *lru.Cache[string, duration.Duration]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// New creates a cache bounded to size entries. Size must be positive.
func New(size int) (*Cache, error) {
	entries, err := lru.New[string, duration.Duration](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// NewDefault creates a cache bounded to DefaultSize entries.
func NewDefault() *Cache {
	c, err := New(DefaultSize)
	if err != nil {
		// lru.New fails only for a non-positive size.
		panic(err)
	}
	return c
}

// Parse returns the duration for s, reusing an earlier successful parse
// of the same string when one is cached.
func (c *Cache) Parse(s string) (duration.Duration, error) {
	if d, ok := c.entries.Get(s); ok {
		c.hits.Add(1)
		return d, nil
	}
	c.misses.Add(1)

	d, err := duration.Parse(s)
	if err != nil {
		return duration.Duration{}, err
	}
	c.entries.Add(s, d)
	return d, nil
}

// Len returns the number of cached strings.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached entry. The hit and miss counters keep their
// values.
func (c *Cache) Purge() {
	c.entries.Purge()
}

// Stats returns the hit and miss counts since the cache was created.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
