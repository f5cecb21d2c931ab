package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathersvc.app/pkg/errors"
)

func TestBuildProviders(t *testing.T) {
	t.Run("FollowsConfiguredOrder", func(t *testing.T) {
		providers, err := BuildProviders(ProviderFactoryConfig{
			WeatherAPIKey:  "a",
			OpenWeatherKey: "b",
			ProviderOrder:  []string{"openweathermap", "weatherapi"},
			Logger:         newLoggerMock(t),
		})

		require.NoError(t, err)
		require.Len(t, providers, 2)
		assert.Equal(t, "openweathermap", providers[0].GetProviderName())
		assert.Equal(t, "weatherapi", providers[1].GetProviderName())
		assert.IsType(t, &OpenWeatherMapProviderAdapter{}, providers[0])
	})

	t.Run("SkipsProvidersWithoutKey", func(t *testing.T) {
		providers, err := BuildProviders(ProviderFactoryConfig{
			OpenWeatherKey: "b",
			ProviderOrder:  []string{"weatherapi", "openweathermap"},
			Logger:         newLoggerMock(t),
		})

		require.NoError(t, err)
		require.Len(t, providers, 1)
		assert.Equal(t, "openweathermap", providers[0].GetProviderName())
	})

	t.Run("AppliesDecorators", func(t *testing.T) {
		providers, err := BuildProviders(ProviderFactoryConfig{
			WeatherAPIKey:   "a",
			ProviderOrder:   []string{"weatherapi"},
			BreakerEnabled:  true,
			BreakerFailures: 3,
			BreakerTimeout:  time.Second,
			Logger:          newLoggerMock(t),
			RequestLogger:   newLoggerMock(t),
		})

		require.NoError(t, err)
		require.Len(t, providers, 1)
		logged, ok := providers[0].(*WeatherProviderLoggingDecorator)
		require.True(t, ok)
		assert.IsType(t, &CircuitBreakerProvider{}, logged.provider)
		assert.Equal(t, "weatherapi", providers[0].GetProviderName())
	})

	t.Run("NothingConfigured", func(t *testing.T) {
		_, err := BuildProviders(ProviderFactoryConfig{
			ProviderOrder: []string{"weatherapi"},
			Logger:        newLoggerMock(t),
		})

		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		_, err := BuildProviders(ProviderFactoryConfig{
			WeatherAPIKey: "a",
			ProviderOrder: []string{"accuweather"},
			Logger:        newLoggerMock(t),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown weather provider: accuweather")
	})
}
