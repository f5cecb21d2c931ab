package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"weathersvc.app/internal/adapters/api"
	"weathersvc.app/internal/adapters/rpc"
	"weathersvc.app/internal/config"
	"weathersvc.app/internal/core/notification"
	"weathersvc.app/internal/core/weather"
	"weathersvc.app/internal/ports"
)

// serveStopTimeout bounds the drain Serve performs when it stops the servers on its own
const serveStopTimeout = 10 * time.Second

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase      *weather.UseCase
	notificationUseCase *notification.UseCase

	// Adapters
	httpServer *api.HTTPServerAdapter
	grpcServer *rpc.GRPCServerAdapter

	// Infrastructure
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewApplication loads configuration from the environment and wires the
// production adapters
func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application over an existing container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Chain:   a.ports.WeatherChain,
		Cache:   a.ports.WeatherCache,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.WeatherMetrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	if a.config.Notifications.Enabled {
		notificationUseCase, err := notification.NewUseCase(notification.UseCaseDependencies{
			SubscriptionSource: a.ports.SubscriptionSource,
			EmailProvider:      a.ports.EmailProvider,
			Resolver:           a.weatherUseCase,
			Logger:             a.ports.Logger,
		})
		if err != nil {
			return fmt.Errorf("create notification use case: %w", err)
		}
		a.notificationUseCase = notificationUseCase
	}

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	server := a.ports.ConfigProvider.GetServerConfig()

	var notifications api.NotificationReporter
	if a.notificationUseCase != nil {
		notifications = a.notificationUseCase
	}

	httpServer, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:         server.Port,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		WeatherUseCase: a.weatherUseCase,
		Cache:          a.ports.WeatherCache,
		HealthChecker:  a.deps.HealthChecker(),
		Gatherer:       a.deps.Registry(),
		CacheTimeout:   a.ports.ConfigProvider.GetWeatherConfig().CacheTimeout,
		Notifications:  notifications,
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpServer = httpServer

	grpcServer, err := rpc.NewGRPCServerAdapter(rpc.ServerOptions{
		WeatherUseCase: a.weatherUseCase,
		HealthChecker:  a.deps.HealthChecker(),
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create gRPC adapter: %w", err)
	}
	a.grpcServer = grpcServer

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start listens on the configured ports and serves until Shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	server := a.ports.ConfigProvider.GetServerConfig()

	httpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", server.Port))
	if err != nil {
		return fmt.Errorf("listen on HTTP port %d: %w", server.Port, err)
	}
	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%d", server.GRPCPort))
	if err != nil {
		_ = httpListener.Close()
		return fmt.Errorf("listen on gRPC port %d: %w", server.GRPCPort, err)
	}

	return a.Serve(ctx, httpListener, grpcListener)
}

// Serve runs both transports and the notification scheduler on the given
// listeners. It returns once Shutdown completes, ctx is cancelled, or any
// server fails; a failure stops the remaining servers and the scheduler.
func (a *Application) Serve(ctx context.Context, httpListener, grpcListener net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting HTTP server", "addr", httpListener.Addr().String())
		return a.httpServer.Serve(httpListener)
	})
	g.Go(func() error {
		slog.Info("Starting gRPC server", "addr", grpcListener.Addr().String())
		return a.grpcServer.Serve(grpcListener)
	})
	if a.notificationUseCase != nil && a.ports.ConfigProvider.GetSchedulerConfig().Enabled {
		g.Go(func() error {
			a.startScheduler(gctx)
			return nil
		})
	}
	g.Go(func() error {
		select {
		case <-a.stopChan:
			// Shutdown drains the servers itself
			return nil
		case <-gctx.Done():
		}

		slog.Info("Stopping servers", "reason", context.Cause(gctx))
		a.stopOnce.Do(func() { close(a.stopChan) })

		stopCtx, cancel := context.WithTimeout(context.Background(), serveStopTimeout)
		defer cancel()
		if err := a.httpServer.Shutdown(stopCtx); err != nil {
			slog.Error("Error stopping HTTP server", "error", err)
		}
		a.grpcServer.Shutdown(stopCtx)
		return nil
	})

	return g.Wait()
}

func (a *Application) startScheduler(ctx context.Context) {
	slog.Info("Starting notification scheduler...")

	intervals := a.ports.ConfigProvider.GetSchedulerConfig()
	hourlyTicker := time.NewTicker(intervals.Hourly)
	dailyTicker := time.NewTicker(intervals.Daily)

	defer hourlyTicker.Stop()
	defer dailyTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Scheduler stopped")
			return
		case <-hourlyTicker.C:
			a.runNotifications(ctx, notification.FrequencyHourly)
		case <-dailyTicker.C:
			a.runNotifications(ctx, notification.FrequencyDaily)
		}
	}
}

func (a *Application) runNotifications(ctx context.Context, frequency notification.Frequency) {
	result, err := a.notificationUseCase.SendWeatherUpdates(ctx, frequency)
	if err != nil {
		slog.Error("Error sending weather notifications",
			"frequency", frequency.String(),
			"failed", result.Failed,
			"error", err)
	}
}

// Shutdown stops the scheduler, drains both servers and releases resources
func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.grpcServer.Shutdown(ctx)

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpServer.GetRouter()
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// GetNotificationUseCase returns the notification use case, nil when notifications are disabled
func (a *Application) GetNotificationUseCase() *notification.UseCase {
	return a.notificationUseCase
}
