package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathersvc.app/pkg/errors"
)

func TestMemoryCacheProvider_RoundTrip(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("value"), time.Minute))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	got[0] = 'X'
	again, _ := cache.Get(ctx, "k")
	assert.Equal(t, []byte("value"), again, "callers must not alias stored bytes")

	exists, err := cache.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, cache.Delete(ctx, "k"))
	_, err = cache.Get(ctx, "k")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMemoryCacheProvider_ExpiresLazily(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCacheProvider()
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	now = now.Add(time.Minute)

	assert.Len(t, cache.items, 1)
	_, err := cache.Get(ctx, "k")
	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, cache.items, "expired entry is evicted on access")

	require.NoError(t, cache.Set(ctx, "other", []byte("v"), time.Second))
	now = now.Add(2 * time.Second)
	exists, err := cache.Exists(ctx, "other")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCacheProvider_RejectsBadInput(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	_, err := cache.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", []byte("v"), 0)))
	assert.True(t, errors.IsValidationError(cache.Delete(ctx, "")))
}

func TestMemoryCacheProvider_CancelledContext(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cache.Get(ctx, "k")
	assert.True(t, errors.IsExternalAPIError(err))
	assert.True(t, errors.IsExternalAPIError(cache.Set(ctx, "k", []byte("v"), time.Minute)))
}

func TestMemoryCacheProvider_Ping(t *testing.T) {
	assert.NoError(t, NewMemoryCacheProvider().Ping(context.Background()))
}
