package weather

import (
	"fmt"
	"strings"
	"time"

	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/validation"
)

// Weather represents weather information for a specific location
type Weather struct {
	Temperature float64
	Humidity    int
	Description string
	City        string
	Timestamp   time.Time
}

// WeatherRequest represents a request for weather information
type WeatherRequest struct {
	City string
}

// IsValid validates weather data
func (w *Weather) IsValid() error {
	return w.ToWeatherData().Validate()
}

// IsValid validates weather request
func (wr *WeatherRequest) IsValid() error {
	if strings.TrimSpace(wr.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if !validation.IsValidCity(wr.City) {
		return fmt.Errorf("city must be at most %d characters without control characters", validation.MaxCityLength)
	}
	return nil
}

// NormalizeCity normalizes city name for consistent processing
func (wr *WeatherRequest) NormalizeCity() {
	wr.City = strings.TrimSpace(wr.City)
}

// ToWeatherData converts the entity into the record shared with adapters
func (w *Weather) ToWeatherData() *ports.WeatherData {
	return &ports.WeatherData{
		Temperature: w.Temperature,
		Humidity:    w.Humidity,
		Description: w.Description,
		City:        w.City,
		Timestamp:   w.Timestamp,
	}
}

// FromWeatherData builds the entity from an adapter record
func FromWeatherData(data *ports.WeatherData) *Weather {
	return &Weather{
		Temperature: data.Temperature,
		Humidity:    data.Humidity,
		Description: data.Description,
		City:        data.City,
		Timestamp:   data.Timestamp,
	}
}

// String returns a string representation of the weather
func (w *Weather) String() string {
	return fmt.Sprintf("%s: %.1f°C, %d%% humidity, %s",
		w.City, w.Temperature, w.Humidity, w.Description)
}
