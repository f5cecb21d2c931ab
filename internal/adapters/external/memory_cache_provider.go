package external

import (
	"context"
	"sync"
	"time"

	"weathersvc.app/pkg/errors"
)

// MemoryCacheProvider is a process-local TTL store used in development and
// tests. Expired entries are dropped lazily when they are next touched.
type MemoryCacheProvider struct {
	mu    sync.RWMutex
	items map[string]memoryCacheItem
	now   func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		items: make(map[string]memoryCacheItem),
		now:   time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if err := requireKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewExternalAPIError("memory get cancelled", err)
	}

	item, ok := c.live(key)
	if !ok {
		return nil, errors.NewNotFoundError("cache miss")
	}

	value := make([]byte, len(item.data))
	copy(value, item.data)
	return value, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := requireEntry(key, value, ttl); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.NewExternalAPIError("memory set cancelled", err)
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.items[key] = memoryCacheItem{data: stored, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if err := requireKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if err := requireKey(key); err != nil {
		return false, err
	}
	_, ok := c.live(key)
	return ok, nil
}

// Ping always succeeds for the in-process store
func (c *MemoryCacheProvider) Ping(ctx context.Context) error {
	return nil
}

// live returns the entry for key unless it has expired, in which case it is evicted
func (c *MemoryCacheProvider) live(key string) (memoryCacheItem, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return memoryCacheItem{}, false
	}
	if c.now().Before(item.expiresAt) {
		return item, true
	}

	c.mu.Lock()
	if current, still := c.items[key]; still && !c.now().Before(current.expiresAt) {
		delete(c.items, key)
	}
	c.mu.Unlock()
	return memoryCacheItem{}, false
}
