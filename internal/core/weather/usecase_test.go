package weather

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weathersvc.app/internal/mocks"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

type useCaseMocks struct {
	chain   *mocks.WeatherProviderChain
	cache   *mocks.WeatherCache
	config  *mocks.ConfigProvider
	logger  *mocks.Logger
	metrics *mocks.WeatherMetrics
}

func defaultWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache:     true,
		CacheTTL:        5 * time.Minute,
		CacheTimeout:    200 * time.Millisecond,
		ProviderTimeout: time.Second,
	}
}

func newTestUseCase(t *testing.T, cfg ports.WeatherConfig) (*UseCase, useCaseMocks) {
	t.Helper()

	m := useCaseMocks{
		chain:   mocks.NewWeatherProviderChain(t),
		cache:   mocks.NewWeatherCache(t),
		config:  mocks.NewConfigProvider(t),
		logger:  mocks.NewLogger(t),
		metrics: mocks.NewWeatherMetrics(t),
	}

	m.config.EXPECT().GetWeatherConfig().Return(cfg).Once()
	m.cache.EXPECT().DefaultTTL().Return(cfg.CacheTTL).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Chain:   m.chain,
		Cache:   m.cache,
		Config:  m.config,
		Logger:  m.logger,
		Metrics: m.metrics,
	})
	require.NoError(t, err)
	return uc, m
}

func sampleWeather(city string) *ports.WeatherData {
	return &ports.WeatherData{
		Temperature: 15.0,
		Humidity:    76,
		Description: "Partly cloudy",
		City:        city,
		Timestamp:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func exhausted(city string) error {
	return errors.NewChainExhaustedError(city,
		[]string{"weatherapi", "openweathermap"},
		[]error{
			errors.NewProviderFetchError("weatherapi", city, fmt.Errorf("status 400")),
			errors.NewProviderFetchError("openweathermap", city, fmt.Errorf("no geocoding results")),
		})
}

func TestUseCase_Constructor_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *UseCaseDependencies)
		errMsg string
	}{
		{"missing_chain", func(d *UseCaseDependencies) { d.Chain = nil }, "provider chain is required"},
		{"missing_cache", func(d *UseCaseDependencies) { d.Cache = nil }, "cache is required"},
		{"missing_config", func(d *UseCaseDependencies) { d.Config = nil }, "config is required"},
		{"missing_logger", func(d *UseCaseDependencies) { d.Logger = nil }, "logger is required"},
		{"missing_metrics", func(d *UseCaseDependencies) { d.Metrics = nil }, "metrics is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := UseCaseDependencies{
				Chain:   mocks.NewWeatherProviderChain(t),
				Cache:   mocks.NewWeatherCache(t),
				Config:  mocks.NewConfigProvider(t),
				Logger:  mocks.NewLogger(t),
				Metrics: mocks.NewWeatherMetrics(t),
			}
			tt.mutate(&deps)

			uc, err := NewUseCase(deps)

			assert.Nil(t, uc)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestUseCase_Resolve_CacheHit(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())
	cached := sampleWeather("London")

	m.cache.EXPECT().Get(mock.Anything, "London").Return(cached, true, nil).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusHit, mock.Anything).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeCacheHit, mock.Anything).Once()

	result, found := uc.Resolve(context.Background(), "London")

	require.True(t, found)
	assert.Equal(t, cached.Temperature, result.Temperature)
	assert.Equal(t, cached.Humidity, result.Humidity)
	assert.Equal(t, "London", result.City)
	m.chain.AssertNotCalled(t, "GetWeather", mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_CacheMissFetchesAndStores(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())
	fresh := sampleWeather("London")

	m.cache.EXPECT().Get(mock.Anything, "London").Return(nil, false, nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "London").Return(fresh, nil).Once()
	m.cache.EXPECT().Set(mock.Anything, "London", fresh, 5*time.Minute).Return(nil).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusMiss, mock.Anything).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpSet, ports.StatusOK, mock.Anything).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeProvider, mock.Anything).Once()

	result, found := uc.Resolve(context.Background(), "  London ")

	require.True(t, found)
	assert.Equal(t, fresh.Description, result.Description)
}

func TestUseCase_Resolve_StoresWithCurrentDefaultTTL(t *testing.T) {
	m := useCaseMocks{
		chain:   mocks.NewWeatherProviderChain(t),
		cache:   mocks.NewWeatherCache(t),
		config:  mocks.NewConfigProvider(t),
		logger:  mocks.NewLogger(t),
		metrics: mocks.NewWeatherMetrics(t),
	}
	m.config.EXPECT().GetWeatherConfig().Return(defaultWeatherConfig()).Once()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	uc, err := NewUseCase(UseCaseDependencies{
		Chain: m.chain, Cache: m.cache, Config: m.config, Logger: m.logger, Metrics: m.metrics,
	})
	require.NoError(t, err)

	fresh := sampleWeather("Oslo")
	m.cache.EXPECT().Get(mock.Anything, "Oslo").Return(nil, false, nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Oslo").Return(fresh, nil).Once()
	m.cache.EXPECT().DefaultTTL().Return(42 * time.Second).Once()
	m.cache.EXPECT().Set(mock.Anything, "Oslo", fresh, 42*time.Second).Return(nil).Once()
	m.metrics.EXPECT().RecordCacheOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeProvider, mock.Anything).Once()

	_, found := uc.Resolve(context.Background(), "Oslo")
	assert.True(t, found)
}

func TestUseCase_Resolve_CacheCallsCarryDeadline(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())

	m.cache.EXPECT().Get(mock.Anything, "Paris").
		RunAndReturn(func(ctx context.Context, _ string) (*ports.WeatherData, bool, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "cache get must run under a timeout")
			return sampleWeather("Paris"), true, nil
		}).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusHit, mock.Anything).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeCacheHit, mock.Anything).Once()

	_, found := uc.Resolve(context.Background(), "Paris")
	assert.True(t, found)
}

func TestUseCase_Resolve_CacheReadErrorFallsThrough(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())
	fresh := sampleWeather("Kyiv")

	m.cache.EXPECT().Get(mock.Anything, "Kyiv").
		Return(nil, false, errors.NewCacheError("get", "weather:kyiv", fmt.Errorf("connection refused"))).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Kyiv").Return(fresh, nil).Once()
	m.cache.EXPECT().Set(mock.Anything, "Kyiv", fresh, 5*time.Minute).
		Return(errors.NewCacheError("set", "weather:kyiv", fmt.Errorf("connection refused"))).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusError, mock.Anything).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpSet, ports.StatusError, mock.Anything).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeProvider, mock.Anything).Once()

	result, found := uc.Resolve(context.Background(), "Kyiv")

	require.True(t, found)
	assert.Equal(t, "Kyiv", result.City)
}

func TestUseCase_Resolve_ChainExhaustedIsNotFound(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())

	m.cache.EXPECT().Get(mock.Anything, "Nowhere123").Return(nil, false, nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Nowhere123").Return(nil, exhausted("Nowhere123")).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusMiss, mock.Anything).Once()
	m.metrics.EXPECT().RecordProviderRequest(ports.ChainProviderName, ports.StatusExhausted, mock.Anything).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeNotFound, mock.Anything).Once()

	result, found := uc.Resolve(context.Background(), "Nowhere123")

	assert.False(t, found)
	assert.Nil(t, result)
	m.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_UnexpectedChainErrorIsNotFound(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())

	m.cache.EXPECT().Get(mock.Anything, "Oslo").Return(nil, false, nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Oslo").Return(nil, fmt.Errorf("boom")).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusMiss, mock.Anything).Once()
	m.metrics.EXPECT().RecordProviderRequest(ports.ChainProviderName, ports.StatusFailure, mock.Anything).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeNotFound, mock.Anything).Once()

	_, found := uc.Resolve(context.Background(), "Oslo")
	assert.False(t, found)
}

func TestUseCase_Resolve_InvalidRecordIsNeverCachedOrReturned(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())
	invalid := sampleWeather("Mars")
	invalid.Humidity = 140

	m.cache.EXPECT().Get(mock.Anything, "Mars").Return(nil, false, nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Mars").Return(invalid, nil).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusMiss, mock.Anything).Once()
	m.metrics.EXPECT().RecordProviderRequest(ports.ChainProviderName, ports.StatusFailure, mock.Anything).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeNotFound, mock.Anything).Once()

	_, found := uc.Resolve(context.Background(), "Mars")

	assert.False(t, found)
	m.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_InvalidCachedRecordIsMiss(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())
	corrupt := sampleWeather("Rome")
	corrupt.Description = ""
	fresh := sampleWeather("Rome")

	m.cache.EXPECT().Get(mock.Anything, "Rome").Return(corrupt, true, nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Rome").Return(fresh, nil).Once()
	m.cache.EXPECT().Set(mock.Anything, "Rome", fresh, 5*time.Minute).Return(nil).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusMiss, mock.Anything).Once()
	m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpSet, ports.StatusOK, mock.Anything).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeProvider, mock.Anything).Once()

	result, found := uc.Resolve(context.Background(), "Rome")

	require.True(t, found)
	assert.Equal(t, fresh.Description, result.Description)
}

func TestUseCase_Resolve_CacheDisabled(t *testing.T) {
	cfg := defaultWeatherConfig()
	cfg.EnableCache = false
	uc, m := newTestUseCase(t, cfg)

	m.chain.EXPECT().GetWeather(mock.Anything, "Madrid").Return(sampleWeather("Madrid"), nil).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeProvider, mock.Anything).Once()

	_, found := uc.Resolve(context.Background(), "Madrid")

	assert.True(t, found)
	m.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	m.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_BlankCity(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())
	m.metrics.EXPECT().RecordResolution(ports.OutcomeNotFound, mock.Anything).Once()

	result, found := uc.Resolve(context.Background(), "   ")

	assert.False(t, found)
	assert.Nil(t, result)
}

func TestUseCase_GetWeather(t *testing.T) {
	t.Run("ValidationError", func(t *testing.T) {
		uc, _ := newTestUseCase(t, defaultWeatherConfig())

		result, err := uc.GetWeather(context.Background(), WeatherRequest{City: " "})

		assert.Nil(t, result)
		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.ValidationError, appErr.Type)
	})

	t.Run("NotFound", func(t *testing.T) {
		uc, m := newTestUseCase(t, defaultWeatherConfig())
		m.cache.EXPECT().Get(mock.Anything, "Atlantis").Return(nil, false, nil).Once()
		m.chain.EXPECT().GetWeather(mock.Anything, "Atlantis").Return(nil, exhausted("Atlantis")).Once()
		m.metrics.EXPECT().RecordCacheOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()
		m.metrics.EXPECT().RecordProviderRequest(mock.Anything, mock.Anything, mock.Anything).Maybe()
		m.metrics.EXPECT().RecordResolution(ports.OutcomeNotFound, mock.Anything).Once()

		result, err := uc.GetWeather(context.Background(), WeatherRequest{City: "Atlantis"})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), CityNotFoundMessage)
		assert.NotContains(t, err.Error(), "weatherapi")
	})

	t.Run("NormalizesCity", func(t *testing.T) {
		uc, m := newTestUseCase(t, defaultWeatherConfig())
		m.cache.EXPECT().Get(mock.Anything, "Lviv").Return(sampleWeather("Lviv"), true, nil).Once()
		m.metrics.EXPECT().RecordCacheOperation(ports.CacheOpGet, ports.StatusHit, mock.Anything).Once()
		m.metrics.EXPECT().RecordResolution(ports.OutcomeCacheHit, mock.Anything).Once()

		result, err := uc.GetWeather(context.Background(), WeatherRequest{City: "\tLviv  "})

		require.NoError(t, err)
		assert.Equal(t, "Lviv", result.City)
	})
}

func TestUseCase_GetWeatherBatch_PreservesOrderAndSkipsMissing(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())

	m.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil)
	m.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.chain.EXPECT().GetWeather(mock.Anything, "London").Return(sampleWeather("London"), nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Nowhere123").Return(nil, exhausted("Nowhere123")).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Paris").Return(sampleWeather("Paris"), nil).Once()
	m.metrics.EXPECT().RecordCacheOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordProviderRequest(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordResolution(mock.Anything, mock.Anything).Maybe()

	results := uc.GetWeatherBatch(context.Background(), []string{"London", "Nowhere123", " ", "Paris"})

	require.Len(t, results, 2)
	assert.Equal(t, "London", results[0].City)
	assert.Equal(t, "Paris", results[1].City)
}

func TestUseCase_GetWeatherBatch_SkipsInvalidCities(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())

	m.cache.EXPECT().Get(mock.Anything, "Prague").Return(nil, false, nil).Once()
	m.cache.EXPECT().Set(mock.Anything, "Prague", mock.Anything, mock.Anything).Return(nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Prague").Return(sampleWeather("Prague"), nil).Once()
	m.metrics.EXPECT().RecordCacheOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordResolution(mock.Anything, mock.Anything).Maybe()

	results := uc.GetWeatherBatch(context.Background(), []string{
		strings.Repeat("x", 101),
		"Pra\x00gue",
		"Prague",
		"\t",
	})

	require.Len(t, results, 1)
	assert.Equal(t, "Prague", results[0].City)
}

func TestUseCase_GetWeatherBatch_Empty(t *testing.T) {
	uc, _ := newTestUseCase(t, defaultWeatherConfig())

	results := uc.GetWeatherBatch(context.Background(), nil)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestUseCase_Resolve_CoalescesConcurrentMisses(t *testing.T) {
	cfg := defaultWeatherConfig()
	cfg.CoalesceRequests = true
	uc, m := newTestUseCase(t, cfg)

	var calls int32
	release := make(chan struct{})

	m.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false, nil)
	m.cache.EXPECT().Set(mock.Anything, "Tokyo", mock.Anything, 5*time.Minute).Return(nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Tokyo").
		RunAndReturn(func(ctx context.Context, city string) (*ports.WeatherData, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return sampleWeather(city), nil
		}).Once()
	m.metrics.EXPECT().RecordCacheOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeProvider, mock.Anything).Times(5)

	var wg sync.WaitGroup
	results := make([]*Weather, 5)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = uc.Resolve(context.Background(), "Tokyo")
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, "Tokyo", r.City)
	}
	assert.NotSame(t, results[0], results[1])
}

func TestUseCase_Resolve_CoalescedFlightSurvivesCallerCancel(t *testing.T) {
	cfg := defaultWeatherConfig()
	cfg.CoalesceRequests = true
	cfg.EnableCache = false
	uc, m := newTestUseCase(t, cfg)

	m.chain.EXPECT().GetWeather(mock.Anything, "Seoul").
		RunAndReturn(func(ctx context.Context, city string) (*ports.WeatherData, error) {
			time.Sleep(20 * time.Millisecond)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return sampleWeather(city), nil
		}).Once()
	m.metrics.EXPECT().RecordResolution(ports.OutcomeProvider, mock.Anything).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, found := uc.Resolve(ctx, "Seoul")

	require.True(t, found)
	assert.Equal(t, "Seoul", result.City)
}

func TestUseCase_ProviderInfoAndStats(t *testing.T) {
	uc, m := newTestUseCase(t, defaultWeatherConfig())
	info := map[string]interface{}{"total_providers": 2}
	stats := ports.CacheStats{Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75}

	m.chain.EXPECT().GetProviderInfo().Return(info).Once()
	m.metrics.EXPECT().GetCacheStats().Return(stats).Once()

	assert.Equal(t, info, uc.GetProviderInfo())
	assert.Equal(t, stats, uc.GetCacheStats())
}
