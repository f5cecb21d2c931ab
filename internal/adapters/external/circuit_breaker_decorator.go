package external

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

// CircuitBreakerConfig configures the breaker placed in front of one provider
type CircuitBreakerConfig struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	Interval            time.Duration
}

// CircuitBreakerProvider stops calling a provider after repeated failures and
// fails fast until the breaker half-opens again. Unknown-city answers do not
// count as failures.
type CircuitBreakerProvider struct {
	provider ports.WeatherProvider
	cb       *gobreaker.CircuitBreaker
	logger   ports.Logger
}

// NewCircuitBreakerProvider wraps provider with a gobreaker circuit breaker
func NewCircuitBreakerProvider(provider ports.WeatherProvider, cfg CircuitBreakerConfig, logger ports.Logger) *CircuitBreakerProvider {
	failures := cfg.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}

	d := &CircuitBreakerProvider{
		provider: provider,
		logger:   logger,
	}

	d.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        provider.GetProviderName(),
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsNotFoundError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			d.logger.Warn("Provider circuit breaker state changed",
				ports.F("provider", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})

	return d
}

// GetCurrentWeather calls the wrapped provider through the breaker
func (d *CircuitBreakerProvider) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	result, err := d.cb.Execute(func() (interface{}, error) {
		return d.provider.GetCurrentWeather(ctx, city)
	})
	if err != nil {
		if errors.IsProviderFetchError(err) {
			return nil, err
		}
		return nil, errors.NewProviderFetchError(d.provider.GetProviderName(), city,
			errors.NewExternalAPIError("provider unavailable", err))
	}

	weather, ok := result.(*ports.WeatherData)
	if !ok || weather == nil {
		return nil, errors.NewProviderFetchError(d.provider.GetProviderName(), city,
			errors.NewExternalAPIError("provider returned unexpected result", nil))
	}
	return weather, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *CircuitBreakerProvider) GetProviderName() string {
	return d.provider.GetProviderName()
}

// State reports the current breaker state
func (d *CircuitBreakerProvider) State() string {
	return d.cb.State().String()
}
