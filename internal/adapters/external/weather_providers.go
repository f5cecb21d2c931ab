// Package external provides adapters for external services
// These adapters implement ports for weather providers, caches, email services, etc.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

// Provider identities as they appear in logs, metrics and WEATHER_PROVIDER_ORDER
const (
	WeatherAPIProviderName     = "weatherapi"
	OpenWeatherMapProviderName = "openweathermap"

	defaultHTTPTimeout = 10 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherAPIProviderAdapter implements WeatherProvider port for WeatherAPI.com
type WeatherAPIProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider
type WeatherAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// WeatherAPIResponse represents the response from WeatherAPI.com
type WeatherAPIResponse struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) *WeatherAPIProviderAdapter {
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &WeatherAPIProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves weather data from WeatherAPI.com
func (p *WeatherAPIProviderAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewProviderFetchError(WeatherAPIProviderName, city, errors.NewValidationError("city cannot be empty"))
	}

	query := url.Values{}
	query.Set("key", p.apiKey)
	query.Set("q", city)
	endpoint := p.baseURL + "/current.json?" + query.Encode()

	var apiResp WeatherAPIResponse
	if err := getJSON(ctx, p.client, p.logger, endpoint, &apiResp); err != nil {
		return nil, errors.NewProviderFetchError(WeatherAPIProviderName, city, err)
	}

	return &ports.WeatherData{
		Temperature: apiResp.Current.TempC,
		Humidity:    apiResp.Current.Humidity,
		Description: apiResp.Current.Condition.Text,
		City:        city,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return WeatherAPIProviderName
}

// getJSON issues a GET bound to ctx and decodes a 200 body into out.
// 400 and 404 answers mean the upstream does not know the location.
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build request", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close provider response body", ports.F("error", closeErr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		return errors.NewNotFoundError(fmt.Sprintf("location not found (status %d)", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return errors.NewExternalAPIError(fmt.Sprintf("upstream returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode response", err)
	}
	return nil
}
