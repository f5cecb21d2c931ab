package external

import (
	"context"
	"time"

	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

const defaultProviderTimeout = 5 * time.Second

// ProviderChainAdapter tries weather providers strictly in their configured
// order and returns the first valid record. A failing provider is logged and
// skipped; nothing is retried.
type ProviderChainAdapter struct {
	providers []ports.WeatherProvider
	timeout   time.Duration
	logger    ports.Logger
	metrics   ports.WeatherMetrics
}

// ProviderChainParams holds parameters for creating the provider chain
type ProviderChainParams struct {
	Providers []ports.WeatherProvider
	Timeout   time.Duration
	Logger    ports.Logger
	Metrics   ports.WeatherMetrics
}

// NewProviderChainAdapter creates a chain over an already ordered provider list
func NewProviderChainAdapter(params ProviderChainParams) (*ProviderChainAdapter, error) {
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if params.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	for i, provider := range params.Providers {
		if provider == nil {
			return nil, errors.NewValidationError("provider chain contains a nil provider")
		}
		for _, earlier := range params.Providers[:i] {
			if earlier.GetProviderName() == provider.GetProviderName() {
				return nil, errors.NewValidationError("duplicate provider in chain: " + provider.GetProviderName())
			}
		}
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	providers := make([]ports.WeatherProvider, len(params.Providers))
	copy(providers, params.Providers)

	return &ProviderChainAdapter{
		providers: providers,
		timeout:   timeout,
		logger:    params.Logger,
		metrics:   params.Metrics,
	}, nil
}

// GetWeather returns the first valid record, or a ChainExhaustedError naming
// every provider that was attempted.
func (c *ProviderChainAdapter) GetWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	attempts := make([]string, 0, len(c.providers))
	causes := make([]error, 0, len(c.providers))

	for i, provider := range c.providers {
		providerName := provider.GetProviderName()
		attempts = append(attempts, providerName)

		c.logger.Debug("Trying weather provider",
			ports.F("provider", providerName),
			ports.F("attempt", i+1),
			ports.F("city", city))

		start := time.Now()
		weather, err := c.fetch(ctx, provider, city)
		duration := time.Since(start)

		if err == nil {
			c.metrics.RecordProviderRequest(providerName, ports.StatusSuccess, duration)
			c.logger.Debug("Weather provider succeeded",
				ports.F("provider", providerName),
				ports.F("city", city),
				ports.F("duration_ms", duration.Milliseconds()))
			return weather, nil
		}

		c.metrics.RecordProviderRequest(providerName, ports.StatusFailure, duration)
		causes = append(causes, err)
		c.logger.Warn("Weather provider failed, trying next",
			ports.F("provider", providerName),
			ports.F("city", city),
			ports.F("error", err.Error()))
	}

	return nil, errors.NewChainExhaustedError(city, attempts, causes)
}

func (c *ProviderChainAdapter) fetch(ctx context.Context, provider ports.WeatherProvider, city string) (*ports.WeatherData, error) {
	providerCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	providerName := provider.GetProviderName()
	weather, err := provider.GetCurrentWeather(providerCtx, city)
	if err != nil {
		if errors.IsProviderFetchError(err) {
			return nil, err
		}
		return nil, errors.NewProviderFetchError(providerName, city, err)
	}
	if err := weather.Validate(); err != nil {
		return nil, errors.NewProviderFetchError(providerName, city,
			errors.NewExternalAPIError("invalid weather record", err))
	}
	return weather, nil
}

// GetProviderInfo returns information about configured providers
func (c *ProviderChainAdapter) GetProviderInfo() map[string]interface{} {
	providerNames := make([]string, len(c.providers))
	for i, provider := range c.providers {
		providerNames[i] = provider.GetProviderName()
	}

	return map[string]interface{}{
		"total_providers":  len(c.providers),
		"provider_order":   providerNames,
		"chain_enabled":    true,
		"fallback_enabled": len(c.providers) > 1,
		"timeout_ms":       c.timeout.Milliseconds(),
	}
}
