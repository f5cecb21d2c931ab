package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"
	"weathersvc.app/internal/config"
	"weathersvc.app/pkg/errors"
)

const redisConnectTimeout = 5 * time.Second

// RedisCacheProviderAdapter is the CacheProvider backed by a shared Redis.
// A missing key is reported as NotFoundError, transport failures as
// ExternalAPIError naming the command.
type RedisCacheProviderAdapter struct {
	client *redis.Client
}

// NewRedisCacheProviderAdapter connects to Redis and fails fast when the
// server does not answer a PING
func NewRedisCacheProviderAdapter(cfg *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis at "+cfg.Addr, err)
	}

	return &RedisCacheProviderAdapter{client: client}, nil
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if err := requireKey(key); err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, key).Bytes()
	switch {
	case stderrors.Is(err, redis.Nil):
		return nil, errors.NewNotFoundError("cache miss")
	case err != nil:
		return nil, redisError("get", err)
	}
	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := requireEntry(key, value, ttl); err != nil {
		return err
	}
	return redisError("set", r.client.Set(ctx, key, value, ttl).Err())
}

// Delete removes key; deleting a missing key succeeds
func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if err := requireKey(key); err != nil {
		return err
	}
	return redisError("del", r.client.Del(ctx, key).Err())
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if err := requireKey(key); err != nil {
		return false, err
	}

	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, redisError("exists", err)
	}
	return count > 0, nil
}

func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	return redisError("ping", r.client.Ping(ctx).Err())
}

func (r *RedisCacheProviderAdapter) Close() error {
	return redisError("close", r.client.Close())
}

func redisError(command string, err error) error {
	if err == nil {
		return nil
	}
	return errors.NewExternalAPIError("redis "+command+" failed", err)
}

func requireKey(key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	return nil
}

func requireEntry(key string, value []byte, ttl time.Duration) error {
	if err := requireKey(key); err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}
