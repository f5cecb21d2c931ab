package api

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathersvc.app/internal/core/weather"
	"weathersvc.app/internal/mocks"
	"weathersvc.app/internal/ports"
)

type serverMocks struct {
	chain   *mocks.WeatherProviderChain
	cache   *mocks.WeatherCache
	metrics *mocks.WeatherMetrics
	health  *mocks.SystemHealthChecker
}

func newLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

// setupTestServer builds the HTTP adapter over a real weather use case whose
// ports are mocks
func setupTestServer(t *testing.T) (*HTTPServerAdapter, serverMocks, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := serverMocks{
		chain:   mocks.NewWeatherProviderChain(t),
		cache:   mocks.NewWeatherCache(t),
		metrics: mocks.NewWeatherMetrics(t),
		health:  mocks.NewSystemHealthChecker(t),
	}
	m.metrics.EXPECT().RecordProviderRequest(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordCacheOperation(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordResolution(mock.Anything, mock.Anything).Maybe()
	m.cache.EXPECT().DefaultTTL().Return(5 * time.Minute).Maybe()

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		EnableCache:  true,
		CacheTTL:     5 * time.Minute,
		CacheTimeout: 200 * time.Millisecond,
	}).Once()

	logger := newLoggerMock(t)
	useCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Chain:   m.chain,
		Cache:   m.cache,
		Config:  config,
		Logger:  logger,
		Metrics: m.metrics,
	})
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:         ServerConfig{Port: 8080},
		WeatherUseCase: useCase,
		Cache:          m.cache,
		HealthChecker:  m.health,
		Gatherer:       registry,
		CacheTimeout:   150 * time.Millisecond,
		Logger:         logger,
	})
	require.NoError(t, err)

	return server, m, registry
}

func londonWeather() *ports.WeatherData {
	return &ports.WeatherData{
		Temperature: 20.5,
		Humidity:    65,
		Description: "Partly cloudy",
		City:        "London",
		Timestamp:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}
