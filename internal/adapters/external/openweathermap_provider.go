package external

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap.
// It geocodes the city first and then asks for current weather at the coordinates.
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	geoURL  string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	GeoURL  string
	Client  HTTPClient
	Logger  ports.Logger
}

// OpenWeatherMapGeoResult is one entry of the direct geocoding response
type OpenWeatherMapGeoResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

// OpenWeatherMapResponse represents the response from OpenWeatherMap API
type OpenWeatherMapResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}
	geoURL := params.GeoURL
	if geoURL == "" {
		geoURL = "https://api.openweathermap.org/geo/1.0"
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		geoURL:  strings.TrimRight(geoURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves weather data from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewProviderFetchError(OpenWeatherMapProviderName, city, errors.NewValidationError("city cannot be empty"))
	}

	location, err := p.geocode(ctx, city)
	if err != nil {
		return nil, errors.NewProviderFetchError(OpenWeatherMapProviderName, city, err)
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(location.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(location.Lon, 'f', -1, 64))
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")

	var apiResp OpenWeatherMapResponse
	if err := getJSON(ctx, p.client, p.logger, p.baseURL+"/weather?"+query.Encode(), &apiResp); err != nil {
		return nil, errors.NewProviderFetchError(OpenWeatherMapProviderName, city, err)
	}

	if len(apiResp.Weather) == 0 {
		return nil, errors.NewProviderFetchError(OpenWeatherMapProviderName, city,
			errors.NewExternalAPIError("response carries no weather conditions", nil))
	}

	return &ports.WeatherData{
		Temperature: apiResp.Main.Temp,
		Humidity:    apiResp.Main.Humidity,
		Description: apiResp.Weather[0].Description,
		City:        city,
		Timestamp:   time.Now().UTC(),
	}, nil
}

func (p *OpenWeatherMapProviderAdapter) geocode(ctx context.Context, city string) (*OpenWeatherMapGeoResult, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("limit", "1")
	query.Set("appid", p.apiKey)

	var results []OpenWeatherMapGeoResult
	if err := getJSON(ctx, p.client, p.logger, p.geoURL+"/direct?"+query.Encode(), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.NewNotFoundError("no geocoding results")
	}
	return &results[0], nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return OpenWeatherMapProviderName
}
