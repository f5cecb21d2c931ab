package external

import (
	"time"

	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

// ProviderFactoryConfig holds everything needed to build the ordered provider list
type ProviderFactoryConfig struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	OpenWeatherKey    string
	OpenWeatherURL    string
	OpenWeatherGeoURL string
	ProviderOrder     []string

	BreakerEnabled  bool
	BreakerFailures uint32
	BreakerTimeout  time.Duration

	Client HTTPClient
	Logger ports.Logger
	// RequestLogger receives per-request provider logs; nil disables them
	RequestLogger ports.Logger
}

// BuildProviders creates the configured providers in WEATHER_PROVIDER_ORDER,
// skipping providers without an API key
func BuildProviders(config ProviderFactoryConfig) ([]ports.WeatherProvider, error) {
	if config.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	providers := make([]ports.WeatherProvider, 0, len(config.ProviderOrder))
	for _, name := range config.ProviderOrder {
		provider, err := createProvider(name, config)
		if err != nil {
			return nil, err
		}
		if provider == nil {
			config.Logger.Warn("Skipping weather provider without API key", ports.F("provider", name))
			continue
		}

		if config.BreakerEnabled {
			provider = NewCircuitBreakerProvider(provider, CircuitBreakerConfig{
				ConsecutiveFailures: config.BreakerFailures,
				OpenTimeout:         config.BreakerTimeout,
			}, config.Logger)
		}
		if config.RequestLogger != nil {
			provider = NewWeatherProviderLoggingDecorator(provider, config.RequestLogger)
		}

		config.Logger.Debug("Created weather provider", ports.F("provider", name))
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, errors.NewConfigurationError("no weather providers configured", nil)
	}
	return providers, nil
}

func createProvider(name string, config ProviderFactoryConfig) (ports.WeatherProvider, error) {
	switch name {
	case WeatherAPIProviderName:
		if config.WeatherAPIKey == "" {
			return nil, nil
		}
		return NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
			APIKey:  config.WeatherAPIKey,
			BaseURL: config.WeatherAPIBaseURL,
			Client:  config.Client,
			Logger:  config.Logger,
		}), nil
	case OpenWeatherMapProviderName:
		if config.OpenWeatherKey == "" {
			return nil, nil
		}
		return NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
			APIKey:  config.OpenWeatherKey,
			BaseURL: config.OpenWeatherURL,
			GeoURL:  config.OpenWeatherGeoURL,
			Client:  config.Client,
			Logger:  config.Logger,
		}), nil
	default:
		return nil, errors.NewConfigurationError("unknown weather provider: "+name, nil)
	}
}
