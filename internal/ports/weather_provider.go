package ports

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AbsoluteZeroCelsius is the lowest temperature a record may carry
const AbsoluteZeroCelsius = -273.15

// WeatherData represents weather information
type WeatherData struct {
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Timestamp   time.Time `json:"timestamp"`
}

// Validate reports whether the record is usable: city and description present,
// temperature not below absolute zero, humidity within [0,100]
func (w *WeatherData) Validate() error {
	if w == nil {
		return fmt.Errorf("weather data is nil")
	}
	if strings.TrimSpace(w.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if strings.TrimSpace(w.Description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if w.Temperature < AbsoluteZeroCelsius {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if w.Humidity < 0 || w.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	return nil
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	Errors      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city string) (*WeatherData, error)
	GetProviderName() string
}

// WeatherProviderChain defines the contract for an ordered fallback chain of providers
type WeatherProviderChain interface {
	GetWeather(ctx context.Context, city string) (*WeatherData, error)
	GetProviderInfo() map[string]interface{}
}

// WeatherCache defines the contract for caching weather data keyed by city
type WeatherCache interface {
	Get(ctx context.Context, city string) (*WeatherData, bool, error)
	Set(ctx context.Context, city string, weather *WeatherData, ttl time.Duration) error
	Delete(ctx context.Context, city string) error
	Exists(ctx context.Context, city string) (bool, error)
	SetDefaultTTL(ttl time.Duration)
	DefaultTTL() time.Duration
}

// WeatherMetrics defines the contract for the metrics sink used by the resolution engine
type WeatherMetrics interface {
	RecordProviderRequest(provider, status string, duration time.Duration)
	RecordCacheOperation(operation, status string, duration time.Duration)
	RecordResolution(outcome string, duration time.Duration)
	GetCacheStats() CacheStats
}

// Metric label values shared by the engine and the metrics adapters
const (
	StatusSuccess   = "success"
	StatusFailure   = "failure"
	StatusExhausted = "exhausted"
	StatusHit       = "hit"
	StatusMiss      = "miss"
	StatusError     = "error"
	StatusOK        = "ok"

	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
	CacheOpExists = "exists"

	OutcomeCacheHit = "cache_hit"
	OutcomeProvider = "provider"
	OutcomeNotFound = "not_found"

	ChainProviderName = "chain"
)
