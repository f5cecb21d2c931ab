package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathersvc.app/pkg/errors"
)

func newOpenWeatherMapServer(t *testing.T, geoBody string, weatherStatus int, weatherBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geoBody))
	})
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "51.5073", r.URL.Query().Get("lat"))
		assert.Equal(t, "-0.1276", r.URL.Query().Get("lon"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(weatherStatus)
		_, _ = w.Write([]byte(weatherBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestOpenWeatherMapProvider(t *testing.T, server *httptest.Server) *OpenWeatherMapProviderAdapter {
	return NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL + "/data/2.5",
		GeoURL:  server.URL + "/geo/1.0",
		Logger:  newLoggerMock(t),
	})
}

func TestOpenWeatherMapProvider_GetCurrentWeather_Success(t *testing.T) {
	server := newOpenWeatherMapServer(t,
		`[{"name":"London","lat":51.5073,"lon":-0.1276,"country":"GB"}]`,
		http.StatusOK,
		`{"main":{"temp":15.5,"humidity":78},"weather":[{"description":"light rain"}]}`)

	provider := newTestOpenWeatherMapProvider(t, server)

	weather, err := provider.GetCurrentWeather(context.Background(), "London")

	require.NoError(t, err)
	assert.Equal(t, 15.5, weather.Temperature)
	assert.Equal(t, 78, weather.Humidity)
	assert.Equal(t, "light rain", weather.Description)
	assert.Equal(t, "London", weather.City)
	assert.Equal(t, OpenWeatherMapProviderName, provider.GetProviderName())
}

func TestOpenWeatherMapProvider_GetCurrentWeather_NoGeocodingResults(t *testing.T) {
	server := newOpenWeatherMapServer(t, `[]`, http.StatusOK, `{}`)
	provider := newTestOpenWeatherMapProvider(t, server)

	weather, err := provider.GetCurrentWeather(context.Background(), "Nowhere123")

	assert.Nil(t, weather)
	require.Error(t, err)
	assert.True(t, errors.IsProviderFetchError(err))
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "no geocoding results")
}

func TestOpenWeatherMapProvider_GetCurrentWeather_WeatherFailures(t *testing.T) {
	geo := `[{"name":"London","lat":51.5073,"lon":-0.1276}]`

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"Unauthorized", http.StatusUnauthorized, `{"cod":401}`},
		{"ServerError", http.StatusBadGateway, ``},
		{"NoConditions", http.StatusOK, `{"main":{"temp":1,"humidity":2},"weather":[]}`},
		{"MalformedBody", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newOpenWeatherMapServer(t, geo, tt.status, tt.body)
			provider := newTestOpenWeatherMapProvider(t, server)

			weather, err := provider.GetCurrentWeather(context.Background(), "London")

			assert.Nil(t, weather)
			var fetchErr *errors.ProviderFetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, OpenWeatherMapProviderName, fetchErr.Provider)
			assert.False(t, errors.IsNotFoundError(err))
		})
	}
}

func TestOpenWeatherMapProvider_DefaultURLs(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "k", Logger: newLoggerMock(t)})

	assert.Equal(t, "https://api.openweathermap.org/data/2.5", provider.baseURL)
	assert.Equal(t, "https://api.openweathermap.org/geo/1.0", provider.geoURL)
}
