package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"weathersvc.app/internal/adapters/database"
	"weathersvc.app/internal/adapters/external"
	"weathersvc.app/internal/adapters/infrastructure"
	"weathersvc.app/internal/config"
	"weathersvc.app/internal/ports"
)

const (
	serviceName        = "weathersvc"
	healthCheckTimeout = 2 * time.Second
)

// DependencyOptions lets callers replace the outer edges of the container.
// Zero values select the production adapters.
type DependencyOptions struct {
	// LogWriter receives the JSON application log; defaults to stdout
	LogWriter io.Writer
	// HTTPClient is used by every weather provider
	HTTPClient external.HTTPClient
	// Registry receives the prometheus collectors; defaults to a new registry
	Registry *prometheus.Registry
	// Database replaces the postgres connection opened for notifications
	Database *gorm.DB
	// EmailProvider replaces the SMTP mailer
	EmailProvider ports.EmailProvider
}

// DependencyContainer owns every driven adapter and the resources they hold
type DependencyContainer struct {
	config   *config.Config
	options  DependencyOptions
	registry *prometheus.Registry

	logger        *infrastructure.SlogLoggerAdapter
	fileLogger    *infrastructure.FileLoggerAdapter
	cacheProvider ports.CacheProvider
	db            *gorm.DB
	ownsDB        bool
	healthChecker *infrastructure.SystemHealthChecker
	ports         *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &DependencyContainer{
		config:   cfg,
		options:  opts,
		registry: opts.Registry,
	}
	if container.registry == nil {
		container.registry = prometheus.NewRegistry()
		container.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logWriter := c.options.LogWriter
	if logWriter == nil {
		logWriter = os.Stdout
	}
	c.logger = infrastructure.NewSlogLoggerAdapter(infrastructure.NewJSONLogger(logWriter, c.config.LogLevel)).
		With(ports.F("service", serviceName))

	var requestLogger ports.Logger
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, provider request logs disabled", "error", err)
		} else {
			c.fileLogger = fileLogger
			requestLogger = fileLogger
			slog.Info("Weather provider logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	metrics := infrastructure.NewPrometheusMetrics(c.registry)

	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cacheProvider = cacheProvider
	slog.Info("Cache provider initialized", "type", c.config.Cache.Type.String())

	weatherCache, err := external.NewWeatherCacheStore(cacheProvider, c.config.Weather.CacheTTL())
	if err != nil {
		return fmt.Errorf("create weather cache: %w", err)
	}

	providers, err := external.BuildProviders(external.ProviderFactoryConfig{
		WeatherAPIKey:     c.config.Weather.APIKey,
		WeatherAPIBaseURL: c.config.Weather.BaseURL,
		OpenWeatherKey:    c.config.Weather.OpenWeatherMapKey,
		OpenWeatherURL:    c.config.Weather.OpenWeatherMapBaseURL,
		OpenWeatherGeoURL: c.config.Weather.OpenWeatherMapGeoURL,
		ProviderOrder:     c.config.Weather.ProviderOrder,
		BreakerEnabled:    c.config.Weather.Breaker.Enabled,
		BreakerFailures:   uint32(c.config.Weather.Breaker.ConsecutiveFailures),
		BreakerTimeout:    time.Duration(c.config.Weather.Breaker.OpenSeconds) * time.Second,
		Client:            c.options.HTTPClient,
		Logger:            c.logger,
		RequestLogger:     requestLogger,
	})
	if err != nil {
		return fmt.Errorf("build weather providers: %w", err)
	}

	chain, err := external.NewProviderChainAdapter(external.ProviderChainParams{
		Providers: providers,
		Timeout:   c.config.Weather.ProviderTimeout(),
		Logger:    c.logger,
		Metrics:   metrics,
	})
	if err != nil {
		return fmt.Errorf("create provider chain: %w", err)
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	checkers := map[string]ports.HealthChecker{
		"cache":     infrastructure.NewCacheHealthChecker(cacheProvider, c.config.Cache.Type.String(), healthCheckTimeout),
		"providers": infrastructure.NewProviderChainHealthChecker(chain),
	}

	c.ports = &ports.ApplicationPorts{
		WeatherChain:   chain,
		WeatherCache:   weatherCache,
		WeatherMetrics: metrics,
		ConfigProvider: configProvider,
		Logger:         c.logger,
	}

	if c.config.Notifications.Enabled {
		if err := c.initializeNotificationPorts(checkers); err != nil {
			return err
		}
	}

	c.healthChecker = infrastructure.NewSystemHealthChecker(checkers)

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) initializeNotificationPorts(checkers map[string]ports.HealthChecker) error {
	db := c.options.Database
	if db == nil {
		slog.Info("Initializing database connection...")
		opened, err := gorm.Open(postgres.Open(c.config.Notifications.Database.GetDSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		db = opened
		c.ownsDB = true
		slog.Info("Database connection established successfully")
	}
	c.db = db
	checkers["database"] = infrastructure.NewDatabaseHealthChecker(db)

	emailProvider := c.options.EmailProvider
	if emailProvider == nil {
		emailConfig := c.config.Notifications.Email
		smtpProvider := external.NewSMTPEmailProviderAdapter(external.EmailProviderConfig{
			Host:     emailConfig.SMTPHost,
			Port:     emailConfig.SMTPPort,
			Username: emailConfig.SMTPUsername,
			Password: emailConfig.SMTPPassword,
			FromName: emailConfig.FromName,
			FromAddr: emailConfig.FromAddress,
		})
		if err := smtpProvider.ValidateConfiguration(); err != nil {
			return fmt.Errorf("configure SMTP mailer: %w", err)
		}
		emailProvider = smtpProvider
		checkers["email"] = infrastructure.NewSMTPHealthChecker(c.ports.ConfigProvider.GetEmailConfig(), healthCheckTimeout)
	}

	c.ports.SubscriptionSource = database.NewSubscriptionSourceAdapter(db)
	c.ports.EmailProvider = emailProvider
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// HealthChecker aggregates the component checks registered for this config
func (c *DependencyContainer) HealthChecker() *infrastructure.SystemHealthChecker {
	return c.healthChecker
}

// Registry is the prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cleanup releases the cache connection, the provider log file and an owned database
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if closer, ok := c.cacheProvider.(io.Closer); ok {
		keep(closer.Close())
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
	}
	if c.db != nil && c.ownsDB {
		if sqlDB, err := c.db.DB(); err == nil {
			keep(sqlDB.Close())
		}
	}
	return firstErr
}
