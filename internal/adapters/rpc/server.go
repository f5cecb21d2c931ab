// Package rpc exposes the weather resolution engine over gRPC
package rpc

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"sort"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"weathersvc.app/internal/core/weather"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
	"weathersvc.app/pkg/weatherpb"
)

const (
	// ServiceName is the fully qualified gRPC service name
	ServiceName = "weather.v1.WeatherService"

	maxBatchSize = 50
)

// WeatherUseCase is what the gRPC adapter needs from the resolution engine
type WeatherUseCase interface {
	GetWeather(ctx context.Context, request weather.WeatherRequest) (*weather.Weather, error)
	GetWeatherBatch(ctx context.Context, cities []string) []*weather.Weather
}

// ServerOptions represents options for creating the gRPC server
type ServerOptions struct {
	WeatherUseCase WeatherUseCase
	HealthChecker  ports.SystemHealthChecker
	Logger         ports.Logger
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// GRPCServerAdapter implements weatherpb.WeatherServiceServer
type GRPCServerAdapter struct {
	weatherpb.UnimplementedWeatherServiceServer

	weatherUseCase WeatherUseCase
	healthChecker  ports.SystemHealthChecker
	logger         ports.Logger
	server         *grpc.Server
}

// NewGRPCServerAdapter creates the adapter and registers it on a new grpc.Server
func NewGRPCServerAdapter(opts ServerOptions) (*GRPCServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	s := &GRPCServerAdapter{
		weatherUseCase: opts.WeatherUseCase,
		healthChecker:  opts.HealthChecker,
		logger:         opts.Logger,
	}

	s.server = grpc.NewServer(grpc.ChainUnaryInterceptor(
		recoveryInterceptor(opts.Logger),
		requestIDInterceptor(),
		loggingInterceptor(opts.Logger),
	))
	weatherpb.RegisterWeatherServiceServer(s.server, s)

	return s, nil
}

// Serve accepts connections on an existing listener
func (s *GRPCServerAdapter) Serve(listener net.Listener) error {
	if err := s.server.Serve(listener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server error: %w", err)
	}
	return nil
}

// Shutdown drains in-flight calls, forcing a stop when ctx expires
func (s *GRPCServerAdapter) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
	}
}

// GetWeather resolves one city. Unknown cities are reported in the envelope,
// not as a status code.
func (s *GRPCServerAdapter) GetWeather(ctx context.Context, req *weatherpb.WeatherRequest) (*weatherpb.WeatherResponse, error) {
	city := strings.TrimSpace(req.GetCity())
	if city == "" {
		return nil, status.Error(codes.InvalidArgument, "city is required")
	}

	result, err := s.weatherUseCase.GetWeather(ctx, weather.WeatherRequest{City: city})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &weatherpb.WeatherResponse{
				Success:      false,
				ErrorMessage: weather.CityNotFoundMessage,
			}, nil
		}
		return nil, s.toStatus(ctx, err)
	}

	return &weatherpb.WeatherResponse{
		Success: true,
		Data:    toProto(result),
	}, nil
}

// GetWeatherBatch resolves every city independently and returns the ones
// that were found. Partial results are a success.
func (s *GRPCServerAdapter) GetWeatherBatch(ctx context.Context, req *weatherpb.WeatherBatchRequest) (*weatherpb.WeatherBatchResponse, error) {
	cities := req.GetCities()
	if len(cities) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one city is required")
	}
	if len(cities) > maxBatchSize {
		return nil, status.Errorf(codes.InvalidArgument, "at most %d cities per batch", maxBatchSize)
	}

	results := s.weatherUseCase.GetWeatherBatch(ctx, cities)

	data := make([]*weatherpb.WeatherData, 0, len(results))
	for _, result := range results {
		data = append(data, toProto(result))
	}

	return &weatherpb.WeatherBatchResponse{
		Success:        true,
		Data:           data,
		RequestedCount: int32(len(cities)),
	}, nil
}

// HealthCheck reports aggregate component health. An empty service name means
// the whole server.
func (s *GRPCServerAdapter) HealthCheck(ctx context.Context, req *weatherpb.HealthCheckRequest) (*weatherpb.HealthCheckResponse, error) {
	if service := req.GetService(); service != "" && service != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", service)
	}

	var unhealthy []string
	for name, component := range s.healthChecker.CheckAll(ctx) {
		if component.Status != ports.HealthStatusHealthy {
			unhealthy = append(unhealthy, name)
		}
	}

	if len(unhealthy) > 0 {
		sort.Strings(unhealthy)
		return &weatherpb.HealthCheckResponse{
			Status:  ports.HealthStatusUnhealthy,
			Message: "unhealthy components: " + strings.Join(unhealthy, ", "),
		}, nil
	}

	return &weatherpb.HealthCheckResponse{
		Status:  ports.HealthStatusHealthy,
		Message: "all components healthy",
	}, nil
}

// toStatus maps use case errors to gRPC status errors. Internal causes are
// logged and replaced by a generic message.
func (s *GRPCServerAdapter) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.IsValidationError(err):
		return status.Error(codes.InvalidArgument, "invalid request")
	default:
		s.logger.Error("gRPC request failed",
			ports.F("request_id", requestIDFromContext(ctx)),
			ports.F("error", err))
		return status.Error(codes.Internal, "weather service error")
	}
}

func toProto(w *weather.Weather) *weatherpb.WeatherData {
	var timestamp int64
	if !w.Timestamp.IsZero() {
		timestamp = w.Timestamp.Unix()
	}
	return &weatherpb.WeatherData{
		Temperature: w.Temperature,
		Humidity:    int32(w.Humidity),
		Description: w.Description,
		City:        w.City,
		Timestamp:   timestamp,
	}
}
