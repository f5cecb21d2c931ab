package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weathersvc.app/internal/core/weather"
	"weathersvc.app/internal/ports"
	errorspkg "weathersvc.app/pkg/errors"
)

// Client-facing error texts. Internal causes are logged, never returned.
const (
	MessageInvalidRequest   = "Invalid request"
	MessageServiceError     = "Weather service error"
	MessageCacheUnavailable = "Cache unavailable"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors to a status code and a fixed message
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, message := http.StatusInternalServerError, MessageServiceError

	var appErr *errorspkg.AppError
	switch {
	case errorspkg.IsCacheError(err):
		statusCode, message = http.StatusServiceUnavailable, MessageCacheUnavailable
	case errors.As(err, &appErr):
		switch appErr.Type {
		case errorspkg.ValidationError:
			statusCode, message = http.StatusBadRequest, MessageInvalidRequest
		case errorspkg.NotFoundError:
			statusCode, message = http.StatusNotFound, weather.CityNotFoundMessage
		}
	}

	if statusCode >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			ports.F("request_id", c.GetString(requestIDKey)),
			ports.F("path", c.FullPath()),
			ports.F("error", err))
	}

	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}
