package search

import (
	"crypto/sha256"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 1000

// cacheEntry pairs a response with its expiration time.
type cacheEntry struct {
	response  *Response
	expiresAt time.Time
}

// resultCache is a TTL-bound LRU over assembled responses. Responses are
// immutable once assembled, so entries are shared, not copied; only the
// CacheHit flag differs per return and lives on a shallow copy.
type resultCache struct {
	ttl   time.Duration
	mu    sync.RWMutex
	cache *lru.Cache[[32]byte, *cacheEntry]
}

func newResultCache(maxEntries int, ttl time.Duration) *resultCache {
	if maxEntries <= 0 {
		maxEntries = defaultCacheSize
	}
	cache, err := lru.New[[32]byte, *cacheEntry](maxEntries)
	if err != nil {
		// Only reachable with a non-positive size, which is guarded above.
		panic(err)
	}
	return &resultCache{ttl: ttl, cache: cache}
}

// cacheKey hashes the normalized query plus the caller's filter context.
// The limit is part of that context: the cached response is already
// truncated, so different limits must never share an entry. The
// knowledge base is static but reloadable, so entries must never
// outlive the TTL.
func cacheKey(query, userContext string, limit int) [32]byte {
	return sha256.Sum256([]byte(strings.ToLower(query) + "\x00" + userContext + "\x00" + strconv.Itoa(limit)))
}

func (c *resultCache) get(query, userContext string, limit int) (*Response, bool) {
	key := cacheKey(query, userContext, limit)
	now := time.Now()

	c.mu.RLock()
	entry, found := c.cache.Get(key)
	if !found {
		c.mu.RUnlock()
		return nil, false
	}
	if now.After(entry.expiresAt) {
		c.mu.RUnlock()
		c.mu.Lock()
		c.cache.Remove(key)
		c.mu.Unlock()
		return nil, false
	}
	c.mu.RUnlock()

	hit := *entry.response
	hit.CacheHit = true
	return &hit, true
}

func (c *resultCache) put(query, userContext string, limit int, resp *Response) {
	entry := &cacheEntry{
		response:  resp,
		expiresAt: time.Now().Add(c.ttl),
	}

	c.mu.Lock()
	c.cache.Add(cacheKey(query, userContext, limit), entry)
	c.mu.Unlock()
}
