package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutAndGet(t *testing.T) {
	q := NewQuoteCache()

	q.Put("1A", "100000", 2, "750")

	premium, ok := q.Get("1A", "100000", 2)
	assert.True(t, ok)
	assert.Equal(t, "750", premium)
}

func TestGetMiss(t *testing.T) {
	q := NewQuoteCache()

	_, ok := q.Get("1A", "100000", 2)
	assert.False(t, ok)

	q.Put("1A", "100000", 2, "750")

	// Same key fields, different band
	_, ok = q.Get("1A", "100000", 3)
	assert.False(t, ok)
}

func TestFlush(t *testing.T) {
	q := NewQuoteCache()

	q.Put("1A", "100000", 2, "750")
	q.Flush()

	_, ok := q.Get("1A", "100000", 2)
	assert.False(t, ok)
}
