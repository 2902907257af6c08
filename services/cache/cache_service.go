package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// QuoteCache keeps recently served quotes in process so repeat
// requests skip the Redis round trip. Entries expire after five
// minutes; the matrix loader flushes it wholesale on every reload.
type QuoteCache struct {
	c *gocache.Cache
}

func NewQuoteCache() *QuoteCache {
	return &QuoteCache{
		c: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func quoteKey(code string, sumInsured string, score int) string {
	return fmt.Sprintf("%s:%s:%d", code, sumInsured, score)
}

func (q *QuoteCache) Put(code string, sumInsured string, score int, premium string) {
	q.c.Set(quoteKey(code, sumInsured, score), premium, gocache.DefaultExpiration)
}

func (q *QuoteCache) Get(code string, sumInsured string, score int) (string, bool) {
	val, found := q.c.Get(quoteKey(code, sumInsured, score))
	if !found {
		return "", false
	}

	premium, ok := val.(string)
	if !ok {
		return "", false
	}

	return premium, true
}

func (q *QuoteCache) Flush() {
	q.c.Flush()
}
