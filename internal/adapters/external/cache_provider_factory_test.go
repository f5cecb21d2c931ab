package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathersvc.app/internal/config"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()

	t.Run("NilConfig", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(nil)
		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("Memory", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCacheProvider{}, provider)
	})

	t.Run("Redis", func(t *testing.T) {
		_, redisCfg := setupMockRedis(t)
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisCfg})
		require.NoError(t, err)
		assert.IsType(t, &RedisCacheProviderAdapter{}, provider)
	})

	t.Run("RedisUnreachableReturnsNilInterface", func(t *testing.T) {
		mockRedis, redisCfg := setupMockRedis(t)
		mockRedis.Close()

		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisCfg})

		require.Error(t, err)
		assert.True(t, provider == nil)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeUnknown})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported cache type: unknown")
	})
}

func TestMemoryCacheProvider_Operations(t *testing.T) {
	var provider ports.CacheProvider = NewMemoryCacheProvider()
	ctx := context.Background()

	_, err := provider.Get(ctx, "weather:paris")
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, provider.Set(ctx, "weather:paris", []byte("payload"), time.Minute))

	value, err := provider.Get(ctx, "weather:paris")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)

	exists, err := provider.Exists(ctx, "weather:paris")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, provider.Delete(ctx, "weather:paris"))
	_, err = provider.Get(ctx, "weather:paris")
	assert.True(t, errors.IsNotFoundError(err))

	assert.NoError(t, provider.Ping(ctx))
}

func TestMemoryCacheProvider_Expiry(t *testing.T) {
	provider := NewMemoryCacheProvider()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "k", []byte("v"), 300*time.Second))

	now = now.Add(299 * time.Second)
	_, err := provider.Get(ctx, "k")
	assert.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = provider.Get(ctx, "k")
	assert.True(t, errors.IsNotFoundError(err))
	exists, err := provider.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCacheProvider_StoresCopies(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()
	value := []byte("abc")

	require.NoError(t, provider.Set(ctx, "k", value, time.Minute))
	value[0] = 'z'

	stored, err := provider.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(stored))
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	_, err := provider.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "", []byte("x"), time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", []byte("x"), -time.Second)))
	assert.True(t, errors.IsValidationError(provider.Delete(ctx, "")))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = provider.Get(cancelled, "k")
	assert.True(t, errors.IsExternalAPIError(err))
}
