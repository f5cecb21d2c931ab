package weather

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
	"weathersvc.app/pkg/validation"
)

const (
	// CityNotFoundMessage is the only not-found text clients ever see
	CityNotFoundMessage = "City not found"

	defaultCacheTimeout = 500 * time.Millisecond
	batchConcurrency    = 8
)

// UseCase resolves a city name to a current weather record. It consults the
// cache first, falls back to the provider chain on a miss and writes fresh
// records back. Resolve never fails: a request ends in a record or not-found.
type UseCase struct {
	chain   ports.WeatherProviderChain
	cache   ports.WeatherCache
	logger  ports.Logger
	metrics ports.WeatherMetrics

	enableCache  bool
	cacheTimeout time.Duration
	coalesce     bool
	flights      singleflight.Group
}

type UseCaseDependencies struct {
	Chain   ports.WeatherProviderChain
	Cache   ports.WeatherCache
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.WeatherMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Chain == nil {
		return nil, errors.NewValidationError("provider chain is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	cfg := deps.Config.GetWeatherConfig()
	cacheTimeout := cfg.CacheTimeout
	if cacheTimeout <= 0 {
		cacheTimeout = defaultCacheTimeout
	}

	return &UseCase{
		chain:        deps.Chain,
		cache:        deps.Cache,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
		enableCache:  cfg.EnableCache,
		cacheTimeout: cacheTimeout,
		coalesce:     cfg.CoalesceRequests,
	}, nil
}

// GetWeather validates the request and resolves it. A city no provider knows
// yields a NotFoundError carrying CityNotFoundMessage.
func (uc *UseCase) GetWeather(ctx context.Context, request WeatherRequest) (*Weather, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}

	request.NormalizeCity()

	weather, found := uc.Resolve(ctx, request.City)
	if !found {
		return nil, errors.NewNotFoundError(CityNotFoundMessage)
	}
	return weather, nil
}

// GetWeatherBatch resolves every valid city independently and returns the
// records that were found, in input order. Entries GetWeather would reject
// are skipped.
func (uc *UseCase) GetWeatherBatch(ctx context.Context, cities []string) []*Weather {
	results := make([]*Weather, len(cities))

	g := new(errgroup.Group)
	g.SetLimit(batchConcurrency)
	for i, city := range cities {
		i, city := i, city
		if !validation.IsValidCity(city) {
			continue
		}
		city = strings.TrimSpace(city)
		g.Go(func() error {
			if weather, found := uc.Resolve(ctx, city); found {
				results[i] = weather
			}
			return nil
		})
	}
	_ = g.Wait()

	found := make([]*Weather, 0, len(results))
	for _, weather := range results {
		if weather != nil {
			found = append(found, weather)
		}
	}
	return found
}

// Resolve returns the current weather for city, or false when neither the
// cache nor any provider could produce a valid record.
func (uc *UseCase) Resolve(ctx context.Context, city string) (*Weather, bool) {
	start := time.Now()
	city = strings.TrimSpace(city)
	if city == "" {
		uc.metrics.RecordResolution(ports.OutcomeNotFound, time.Since(start))
		return nil, false
	}

	if uc.enableCache {
		if weather, hit := uc.lookupCache(ctx, city); hit {
			uc.metrics.RecordResolution(ports.OutcomeCacheHit, time.Since(start))
			return weather, true
		}
	}

	weather, found := uc.fetch(ctx, city)
	if !found {
		uc.metrics.RecordResolution(ports.OutcomeNotFound, time.Since(start))
		return nil, false
	}

	uc.metrics.RecordResolution(ports.OutcomeProvider, time.Since(start))
	return weather, true
}

func (uc *UseCase) lookupCache(ctx context.Context, city string) (*Weather, bool) {
	cacheCtx, cancel := context.WithTimeout(ctx, uc.cacheTimeout)
	defer cancel()

	start := time.Now()
	data, found, err := uc.cache.Get(cacheCtx, city)
	if err != nil {
		uc.metrics.RecordCacheOperation(ports.CacheOpGet, ports.StatusError, time.Since(start))
		uc.logger.Warn("Cache lookup failed, falling back to providers",
			ports.F("city", city),
			ports.F("error", err))
		return nil, false
	}
	if !found || data == nil {
		uc.metrics.RecordCacheOperation(ports.CacheOpGet, ports.StatusMiss, time.Since(start))
		return nil, false
	}

	weather := FromWeatherData(data)
	if err := weather.IsValid(); err != nil {
		uc.metrics.RecordCacheOperation(ports.CacheOpGet, ports.StatusMiss, time.Since(start))
		uc.logger.Warn("Ignoring invalid cached weather",
			ports.F("city", city),
			ports.F("error", err))
		return nil, false
	}

	uc.metrics.RecordCacheOperation(ports.CacheOpGet, ports.StatusHit, time.Since(start))
	uc.logger.Debug("Weather found in cache", ports.F("city", city))
	return weather, true
}

// fetch runs the provider chain, optionally sharing one traversal between
// concurrent callers asking for the same city.
func (uc *UseCase) fetch(ctx context.Context, city string) (*Weather, bool) {
	if !uc.coalesce {
		return uc.fetchAndStore(ctx, city)
	}

	// The shared traversal must outlive any single caller's cancellation.
	flightCtx := context.WithoutCancel(ctx)
	v, _, _ := uc.flights.Do(strings.ToLower(city), func() (interface{}, error) {
		weather, found := uc.fetchAndStore(flightCtx, city)
		if !found {
			return nil, nil
		}
		return weather, nil
	})

	weather, ok := v.(*Weather)
	if !ok || weather == nil {
		return nil, false
	}
	shared := *weather
	return &shared, true
}

func (uc *UseCase) fetchAndStore(ctx context.Context, city string) (*Weather, bool) {
	start := time.Now()
	data, err := uc.chain.GetWeather(ctx, city)
	if err != nil {
		if errors.IsChainExhaustedError(err) {
			uc.metrics.RecordProviderRequest(ports.ChainProviderName, ports.StatusExhausted, time.Since(start))
			uc.logger.Warn("All weather providers failed",
				ports.F("city", city),
				ports.F("error", err))
		} else {
			uc.metrics.RecordProviderRequest(ports.ChainProviderName, ports.StatusFailure, time.Since(start))
			uc.logger.Error("Unexpected provider chain error",
				ports.F("city", city),
				ports.F("error", err))
		}
		return nil, false
	}

	weather := FromWeatherData(data)
	if err := weather.IsValid(); err != nil {
		uc.metrics.RecordProviderRequest(ports.ChainProviderName, ports.StatusFailure, time.Since(start))
		uc.logger.Error("Provider chain returned invalid weather",
			ports.F("city", city),
			ports.F("error", err))
		return nil, false
	}

	if uc.enableCache {
		uc.store(ctx, city, weather)
	}

	uc.logger.Debug("Weather retrieved from providers",
		ports.F("city", city),
		ports.F("temperature", weather.Temperature))
	return weather, true
}

func (uc *UseCase) store(ctx context.Context, city string, weather *Weather) {
	cacheCtx, cancel := context.WithTimeout(ctx, uc.cacheTimeout)
	defer cancel()

	start := time.Now()
	if err := uc.cache.Set(cacheCtx, city, weather.ToWeatherData(), uc.cache.DefaultTTL()); err != nil {
		uc.metrics.RecordCacheOperation(ports.CacheOpSet, ports.StatusError, time.Since(start))
		uc.logger.Warn("Failed to cache weather data",
			ports.F("city", city),
			ports.F("error", err))
		return
	}
	uc.metrics.RecordCacheOperation(ports.CacheOpSet, ports.StatusOK, time.Since(start))
}

func (uc *UseCase) GetProviderInfo() map[string]interface{} {
	return uc.chain.GetProviderInfo()
}

func (uc *UseCase) GetCacheStats() ports.CacheStats {
	return uc.metrics.GetCacheStats()
}
