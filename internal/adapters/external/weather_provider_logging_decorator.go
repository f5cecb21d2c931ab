package external

import (
	"context"
	"time"

	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

// Provider log events
const (
	eventRequest  = "request"
	eventResponse = "response"
	eventNotFound = "not_found"
	eventError    = "error"
)

// WeatherProviderLoggingDecorator records every upstream call in the provider
// request log. Unknown locations are warnings, every other failure an error.
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
	now      func() time.Time
}

func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) *WeatherProviderLoggingDecorator {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	d.logger.Debug("Weather provider request started", d.fields(city, eventRequest)...)

	start := d.now()
	weatherData, err := d.provider.GetCurrentWeather(ctx, city)
	elapsed := ports.F("duration_ms", d.now().Sub(start).Milliseconds())

	switch {
	case err == nil && weatherData == nil:
		d.logger.Error("Weather provider returned no data", append(d.fields(city, eventError), elapsed)...)
		return nil, nil
	case err == nil:
		d.logger.Info("Weather provider request completed", append(d.fields(city, eventResponse),
			elapsed,
			ports.F("temperature", weatherData.Temperature),
			ports.F("humidity", weatherData.Humidity),
			ports.F("description", weatherData.Description))...)
		return weatherData, nil
	case errors.IsNotFoundError(err):
		d.logger.Warn("Weather provider does not know location", append(d.fields(city, eventNotFound),
			elapsed, ports.F("error", err.Error()))...)
	default:
		d.logger.Error("Weather provider request failed", append(d.fields(city, eventError),
			elapsed, ports.F("error", err.Error()))...)
	}
	return nil, err
}

// GetProviderName returns the identity of the wrapped provider unchanged
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

func (d *WeatherProviderLoggingDecorator) fields(city, event string) []ports.Field {
	return []ports.Field{
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("city", city),
		ports.F("event", event),
	}
}
