package luq

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedParser memoizes Parse results keyed by the exact query string.
// The underlying Parser stays pure; caching is layered on top so the
// core's statelessness remains verifiable on its own. Results are
// immutable and may be shared between callers.
type CachedParser struct {
	parser *Parser
	cache  *lru.Cache[string, *QueryResult]
}

// NewCached creates a memoizing parser holding up to size results.
func NewCached(size int, opts ...Option) (*CachedParser, error) {
	cache, err := lru.New[string, *QueryResult](size)
	if err != nil {
		return nil, err
	}
	return &CachedParser{parser: New(opts...), cache: cache}, nil
}

// Parse returns the cached result for q, parsing on a miss. Failed
// parses are not cached.
func (c *CachedParser) Parse(q string) (*QueryResult, error) {
	if result, ok := c.cache.Get(q); ok {
		return result, nil
	}
	result, err := c.parser.Parse(q)
	if err != nil {
		return nil, err
	}
	c.cache.Add(q, result)
	return result, nil
}

// Len reports how many results are currently cached.
func (c *CachedParser) Len() int {
	return c.cache.Len()
}

// Purge drops every cached result.
func (c *CachedParser) Purge() {
	c.cache.Purge()
}
