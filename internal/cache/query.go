package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/rsharda/medreview/internal/model"
)

// Searcher is the literature search contract the query cache wraps
type Searcher interface {
	Search(ctx context.Context, query string, maxResults, years int) ([]model.Article, error)
}

// QueryCache memoizes literature searches keyed by the exact
// (query, maxResults, years) tuple. Capacity is bounded with LRU eviction;
// there is no TTL since a query's answer does not change within the lifetime
// of the process in any way that matters here. Lookup-or-insert is atomic per
// key, so identical queries arriving concurrently produce one external call.
type QueryCache struct {
	backend Searcher
	entries *lru.Cache[string, []model.Article]
	group   singleflight.Group
}

// NewQueryCache wraps backend with a bounded LRU cache
func NewQueryCache(backend Searcher, capacity int) (*QueryCache, error) {
	if capacity <= 0 {
		capacity = 1000
	}
	entries, err := lru.New[string, []model.Article](capacity)
	if err != nil {
		return nil, fmt.Errorf("create query cache: %w", err)
	}
	return &QueryCache{backend: backend, entries: entries}, nil
}

// Search returns the cached article list for the key, or issues one backend
// search and caches the result. Articles are immutable once fetched; hits
// return the same slice as the original call.
func (c *QueryCache) Search(ctx context.Context, query string, maxResults, years int) ([]model.Article, error) {
	key := fmt.Sprintf("%s|%d|%d", query, maxResults, years)

	if articles, ok := c.entries.Get(key); ok {
		return articles, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent caller may have populated the cache while this call
		// waited its turn.
		if articles, ok := c.entries.Get(key); ok {
			return articles, nil
		}

		articles, err := c.backend.Search(ctx, query, maxResults, years)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, articles)
		return articles, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Article), nil
}

// Len returns the number of cached keys
func (c *QueryCache) Len() int {
	return c.entries.Len()
}
