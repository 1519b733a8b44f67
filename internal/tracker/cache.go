package tracker

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// cachedSearch wraps a result with version metadata for cache invalidation
type cachedSearch struct {
	Version string
	Jobs    []domain.Job
}

// searchCache memoises job searches per state revision.
// Any mutation bumps the revision, so stale entries are never hit and simply age out.
type searchCache struct {
	lru *expirable.LRU[string, *cachedSearch]
}

func newSearchCache(size int, ttl time.Duration) *searchCache {
	return &searchCache{
		lru: expirable.NewLRU[string, *cachedSearch](size, nil, ttl),
	}
}

func searchKey(revision uint64, folded string) string {
	return strconv.FormatUint(revision, 10) + ":" + folded
}

// Get returns a copy of the cached result
func (c *searchCache) Get(revision uint64, folded string) ([]domain.Job, bool) {
	key := searchKey(revision, folded)
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != SearchCacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return append([]domain.Job{}, entry.Jobs...), true
}

func (c *searchCache) Set(revision uint64, folded string, jobs []domain.Job) {
	c.lru.Add(searchKey(revision, folded), &cachedSearch{
		Version: SearchCacheSchemaVersion,
		Jobs:    append([]domain.Job{}, jobs...),
	})
}

// Clear removes all entries from the cache.
func (c *searchCache) Clear() {
	c.lru.Purge()
}

// Len reports the number of live entries
func (c *searchCache) Len() int {
	return c.lru.Len()
}
