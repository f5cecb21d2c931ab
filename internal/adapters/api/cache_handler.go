package api

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

// InvalidateCacheRequest is the body of POST /api/v1/weather/cache/invalidate
type InvalidateCacheRequest struct {
	City string `json:"city" form:"city" binding:"required,notblank,max=100"`
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators adds the custom binding tags to gin's validator
func registerValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		validatorsErr = v.RegisterValidation("notblank", validators.NotBlank)
	})
	return validatorsErr
}

// invalidateCache handles POST /api/v1/weather/cache/invalidate. Deleting a
// city that is not cached still succeeds.
func (s *HTTPServerAdapter) invalidateCache(c *gin.Context) {
	var request InvalidateCacheRequest
	if err := c.ShouldBind(&request); err != nil {
		s.logger.Debug("Invalid cache invalidation request",
			ports.F("request_id", c.GetString(requestIDKey)),
			ports.F("error", err))
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	city := strings.TrimSpace(request.City)
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cacheTimeout)
	defer cancel()

	if err := s.cache.Delete(ctx, city); err != nil {
		s.handleError(c, err)
		return
	}

	s.logger.Info("Weather cache entry invalidated",
		ports.F("request_id", c.GetString(requestIDKey)),
		ports.F("city", city))
	c.JSON(http.StatusOK, SuccessResponse{Message: "Cache entry invalidated for " + city})
}
