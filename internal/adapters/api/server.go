// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weathersvc.app/internal/core/notification"
	"weathersvc.app/internal/core/weather"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

const defaultCacheTimeout = 500 * time.Millisecond

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	server         *http.Server
	weatherUseCase WeatherUseCase
	cache          ports.WeatherCache
	healthChecker  ports.SystemHealthChecker
	gatherer       prometheus.Gatherer
	cacheTimeout   time.Duration
	notifications  NotificationReporter
	logger         ports.Logger
}

// WeatherUseCase is what the HTTP adapter needs from the resolution engine
type WeatherUseCase interface {
	GetWeather(ctx context.Context, request weather.WeatherRequest) (*weather.Weather, error)
	GetProviderInfo() map[string]interface{}
	GetCacheStats() ports.CacheStats
}

// NotificationReporter exposes the scheduler fan-out counters
type NotificationReporter interface {
	GetNotificationStats(ctx context.Context) (notification.NotificationStats, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	WeatherUseCase WeatherUseCase
	Cache          ports.WeatherCache
	HealthChecker  ports.SystemHealthChecker
	Gatherer       prometheus.Gatherer
	// CacheTimeout bounds direct cache calls such as invalidation
	CacheTimeout time.Duration
	// Notifications is optional; nil when the scheduler is disabled
	Notifications NotificationReporter
	Logger        ports.Logger
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.Cache == nil {
		return errors.NewValidationError("weather cache is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Gatherer == nil {
		return errors.NewValidationError("metrics gatherer is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	s := &HTTPServerAdapter{
		router:         gin.New(),
		weatherUseCase: opts.WeatherUseCase,
		cache:          opts.Cache,
		healthChecker:  opts.HealthChecker,
		gatherer:       opts.Gatherer,
		cacheTimeout:   orDefault(opts.CacheTimeout, defaultCacheTimeout),
		notifications:  opts.Notifications,
		logger:         opts.Logger,
	}

	s.router.Use(gin.Recovery(), requestID(), requestLogger(s.logger))
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Config.Port),
		Handler:      s.router,
		ReadTimeout:  orDefault(opts.Config.ReadTimeout, 30*time.Second),
		WriteTimeout: orDefault(opts.Config.WriteTimeout, 30*time.Second),
		IdleTimeout:  orDefault(opts.Config.IdleTimeout, 60*time.Second),
	}

	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/weather", s.getWeather)
		v1.POST("/weather/cache/invalidate", s.invalidateCache)
		v1.GET("/health", s.getHealth)
		v1.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// Serve accepts connections on an existing listener
func (s *HTTPServerAdapter) Serve(listener net.Listener) error {
	if err := s.server.Serve(listener); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
