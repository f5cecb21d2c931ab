package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathersvc.app/internal/core/weather"
	"weathersvc.app/pkg/errors"
)

// WeatherResponse represents the HTTP response for weather data
type WeatherResponse struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	City        string  `json:"city"`
}

// getWeather handles GET /api/v1/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	request := weather.WeatherRequest{City: c.Query("city")}
	if err := request.IsValid(); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return
	}

	result, err := s.weatherUseCase.GetWeather(c.Request.Context(), request)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{
		Temperature: result.Temperature,
		Humidity:    result.Humidity,
		Description: result.Description,
		City:        result.City,
	})
}
