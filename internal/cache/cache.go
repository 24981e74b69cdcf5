package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Memo is a bounded read-through cache. Once full it stops admitting new
// entries rather than evicting; callers fall through to fn. Safe for
// concurrent use.
type Memo[V any] struct {
	mu    sync.RWMutex
	max   int
	items map[string]V
}

func NewMemo[V any](max int) *Memo[V] {
	return &Memo[V]{
		max:   max,
		items: make(map[string]V, max),
	}
}

func (c *Memo[V]) GetOrCompute(key string, fn func() (V, error)) (V, error) {
	c.mu.RLock()
	if v, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.items[key]; ok {
		return v, nil
	}

	v, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	if len(c.items) < c.max {
		c.items[key] = v
	}

	return v, nil
}

func (c *Memo[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// SourceKey hashes an arbitrary source text into a stable cache key.
func SourceKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
