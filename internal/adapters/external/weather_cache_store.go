package external

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"

	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

const (
	weatherKeyPrefix  = "weather:"
	DefaultWeatherTTL = 300 * time.Second
)

// WeatherCacheStore bridges a generic CacheProvider to the weather-specific
// WeatherCache. Backend failures are returned as CacheError and never logged
// here; a payload that cannot be decoded is deleted and reported as a miss.
type WeatherCacheStore struct {
	cacheProvider ports.CacheProvider
	defaultTTL    atomic.Int64
}

// NewWeatherCacheStore creates a weather cache on top of a byte store
func NewWeatherCacheStore(cacheProvider ports.CacheProvider, defaultTTL time.Duration) (*WeatherCacheStore, error) {
	if cacheProvider == nil {
		return nil, errors.NewValidationError("cache provider is required")
	}

	store := &WeatherCacheStore{cacheProvider: cacheProvider}
	store.SetDefaultTTL(defaultTTL)
	return store, nil
}

// WeatherCacheKey returns the namespaced key for a city
func WeatherCacheKey(city string) string {
	return weatherKeyPrefix + strings.ToLower(strings.TrimSpace(city))
}

// Get returns the cached record for city. A miss is (nil, false, nil).
func (s *WeatherCacheStore) Get(ctx context.Context, city string) (*ports.WeatherData, bool, error) {
	key := WeatherCacheKey(city)

	data, err := s.cacheProvider.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, errors.NewCacheError(ports.CacheOpGet, key, err)
	}

	var weatherData ports.WeatherData
	if decodeErr := json.Unmarshal(data, &weatherData); decodeErr != nil || weatherData.Validate() != nil {
		if delErr := s.cacheProvider.Delete(ctx, key); delErr != nil {
			return nil, false, errors.NewCacheError(ports.CacheOpDelete, key, delErr)
		}
		return nil, false, nil
	}

	return &weatherData, true, nil
}

// Set stores the record for city. A non-positive ttl uses the default TTL.
func (s *WeatherCacheStore) Set(ctx context.Context, city string, weather *ports.WeatherData, ttl time.Duration) error {
	key := WeatherCacheKey(city)
	if weather == nil {
		return errors.NewCacheError(ports.CacheOpSet, key, errors.NewValidationError("weather data cannot be nil"))
	}

	data, err := json.Marshal(weather)
	if err != nil {
		return errors.NewCacheError(ports.CacheOpSet, key, err)
	}

	if ttl <= 0 {
		ttl = s.DefaultTTL()
	}

	if err := s.cacheProvider.Set(ctx, key, data, ttl); err != nil {
		return errors.NewCacheError(ports.CacheOpSet, key, err)
	}
	return nil
}

// Delete removes the record for city. Deleting an absent key succeeds.
func (s *WeatherCacheStore) Delete(ctx context.Context, city string) error {
	key := WeatherCacheKey(city)
	if err := s.cacheProvider.Delete(ctx, key); err != nil {
		return errors.NewCacheError(ports.CacheOpDelete, key, err)
	}
	return nil
}

// Exists reports whether a live record for city is stored
func (s *WeatherCacheStore) Exists(ctx context.Context, city string) (bool, error) {
	key := WeatherCacheKey(city)
	exists, err := s.cacheProvider.Exists(ctx, key)
	if err != nil {
		return false, errors.NewCacheError(ports.CacheOpExists, key, err)
	}
	return exists, nil
}

// SetDefaultTTL changes the TTL used by writes that do not pass one.
// Non-positive values restore the built-in default.
func (s *WeatherCacheStore) SetDefaultTTL(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultWeatherTTL
	}
	s.defaultTTL.Store(int64(ttl))
}

func (s *WeatherCacheStore) DefaultTTL() time.Duration {
	return time.Duration(s.defaultTTL.Load())
}
