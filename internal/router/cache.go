package router

import "sync/atomic"

// defaultCacheLimit bounds the match cache when no limit is
// configured.
const defaultCacheLimit = 1024

// matchCache memoizes the winning route per concrete observed path.
// It only skips the linear scan over the table; parameter bindings
// are recomputed by the caller on every hit.
//
// The entry map is immutable and replaced wholesale through an atomic
// pointer: lookups never lock, and concurrent inserts race benignly
// (last write wins, and the written value is deterministic for a
// given path under one table generation). When an insert would exceed
// the limit, the cache is cleared and rebuilt from the triggering
// entry alone. No per-entry bookkeeping, at the cost of a periodic
// cold burst.
type matchCache struct {
	limit   int
	entries atomic.Pointer[map[string]*Route]
}

func newMatchCache(limit int) *matchCache {
	if limit <= 0 {
		limit = defaultCacheLimit
	}
	c := &matchCache{limit: limit}
	empty := make(map[string]*Route)
	c.entries.Store(&empty)
	return c
}

func (c *matchCache) lookup(path string) (*Route, bool) {
	route, ok := (*c.entries.Load())[path]
	return route, ok
}

func (c *matchCache) insert(path string, route *Route) {
	current := *c.entries.Load()

	if _, exists := current[path]; !exists && len(current)+1 > c.limit {
		next := map[string]*Route{path: route}
		c.entries.Store(&next)
		getMatchCacheMetrics().evictions.Inc()
		getMatchCacheMetrics().size.Set(1)
		return
	}

	next := make(map[string]*Route, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[path] = route
	c.entries.Store(&next)
	getMatchCacheMetrics().size.Set(float64(len(next)))
}

func (c *matchCache) size() int {
	return len(*c.entries.Load())
}
