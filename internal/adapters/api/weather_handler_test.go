package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathersvc.app/pkg/errors"
)

func doRequest(s *HTTPServerAdapter, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.GetRouter().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Error
}

func TestWeatherHandler_GetWeather_FromProviders(t *testing.T) {
	server, m, _ := setupTestServer(t)

	m.cache.EXPECT().Get(mock.Anything, "London").Return(nil, false, nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "London").Return(londonWeather(), nil).Once()
	m.cache.EXPECT().Set(mock.Anything, "London", mock.Anything, mock.Anything).Return(nil).Once()

	w := doRequest(server, http.MethodGet, "/api/v1/weather?city=London")

	require.Equal(t, http.StatusOK, w.Code)
	var response WeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, WeatherResponse{Temperature: 20.5, Humidity: 65, Description: "Partly cloudy", City: "London"}, response)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestWeatherHandler_GetWeather_FromCache(t *testing.T) {
	server, m, _ := setupTestServer(t)

	m.cache.EXPECT().Get(mock.Anything, "London").Return(londonWeather(), true, nil).Once()

	w := doRequest(server, http.MethodGet, "/api/v1/weather?city=%20London%20")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"temperature":20.5,"humidity":65,"description":"Partly cloudy","city":"London"}`, w.Body.String())
}

func TestWeatherHandler_GetWeather_InvalidRequest(t *testing.T) {
	server, _, _ := setupTestServer(t)

	for _, target := range []string{"/api/v1/weather", "/api/v1/weather?city=", "/api/v1/weather?city=%20%20"} {
		w := doRequest(server, http.MethodGet, target)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, MessageInvalidRequest, decodeError(t, w), target)
	}
}

func TestWeatherHandler_GetWeather_CityNotFound(t *testing.T) {
	server, m, _ := setupTestServer(t)

	m.cache.EXPECT().Get(mock.Anything, "Atlantis").Return(nil, false, nil).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "Atlantis").Return(nil,
		errors.NewChainExhaustedError("Atlantis", []string{"weatherapi"},
			[]error{errors.NewProviderFetchError("weatherapi", "Atlantis", errors.NewNotFoundError("no matching location"))})).Once()

	w := doRequest(server, http.MethodGet, "/api/v1/weather?city=Atlantis")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "City not found", decodeError(t, w))
	assert.NotContains(t, w.Body.String(), "weatherapi")
}

func TestWeatherHandler_GetWeather_CacheDownStillServes(t *testing.T) {
	server, m, _ := setupTestServer(t)

	cacheErr := errors.NewCacheError("get", "weather:london", fmt.Errorf("connection refused"))
	m.cache.EXPECT().Get(mock.Anything, "London").Return(nil, false, cacheErr).Once()
	m.chain.EXPECT().GetWeather(mock.Anything, "London").Return(londonWeather(), nil).Once()
	m.cache.EXPECT().Set(mock.Anything, "London", mock.Anything, mock.Anything).
		Return(errors.NewCacheError("set", "weather:london", fmt.Errorf("connection refused"))).Once()

	w := doRequest(server, http.MethodGet, "/api/v1/weather?city=London")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWeatherHandler_RequestIDPropagation(t *testing.T) {
	server, _, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
}
