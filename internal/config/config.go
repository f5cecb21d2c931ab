package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weathersvc.app/pkg/errors"
	"weathersvc.app/pkg/validation"
)

const (
	maxRedisDB             = 15
	maxCacheTTLSeconds     = 86400
	maxProviderTimeoutSecs = 60
	maxDailyInterval       = 10080
	maxHourlyInterval      = 1440
	maxPortNumber          = 65535
)

// Provider identities accepted in WEATHER_PROVIDER_ORDER
const (
	ProviderWeatherAPI     = "weatherapi"
	ProviderOpenWeatherMap = "openweathermap"
)

// Config represents the application configuration structure
type Config struct {
	Server        ServerConfig       `split_words:"true"`
	Weather       WeatherConfig      `split_words:"true"`
	Cache         CacheConfig        `split_words:"true"`
	Notifications NotificationConfig `split_words:"true"`
	LogLevel      string             `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port     int `envconfig:"SERVER_PORT" default:"8080"`
	GRPCPort int `envconfig:"GRPC_PORT" default:"9090"`
}

type WeatherConfig struct {
	APIKey                 string   `envconfig:"WEATHER_API_KEY"`
	BaseURL                string   `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	OpenWeatherMapKey      string   `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL  string   `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	OpenWeatherMapGeoURL   string   `envconfig:"OPENWEATHERMAP_GEO_BASE_URL" default:"https://api.openweathermap.org/geo/1.0"`
	ProviderOrder          []string `envconfig:"WEATHER_PROVIDER_ORDER" default:"weatherapi,openweathermap"`
	ProviderTimeoutSeconds int      `envconfig:"WEATHER_PROVIDER_TIMEOUT_SECONDS" default:"5"`
	EnableCache            bool     `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	CacheTTLSeconds        int      `envconfig:"WEATHER_CACHE_TTL_SECONDS" default:"300"`
	CoalesceRequests       bool     `envconfig:"WEATHER_COALESCE_REQUESTS" default:"false"`
	EnableLogging          bool     `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath            string   `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
	Breaker                BreakerConfig
}

// BreakerConfig configures the per-provider circuit breaker
type BreakerConfig struct {
	Enabled             bool `envconfig:"WEATHER_BREAKER_ENABLED" default:"true"`
	ConsecutiveFailures int  `envconfig:"WEATHER_BREAKER_FAILURES" default:"5"`
	OpenSeconds         int  `envconfig:"WEATHER_BREAKER_OPEN_SECONDS" default:"30"`
}

// ProviderTimeout returns the per-call provider deadline
func (w WeatherConfig) ProviderTimeout() time.Duration {
	return time.Duration(w.ProviderTimeoutSeconds) * time.Second
}

// CacheTTL returns the default cache entry lifetime
func (w WeatherConfig) CacheTTL() time.Duration {
	return time.Duration(w.CacheTTLSeconds) * time.Second
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type               CacheType   `envconfig:"CACHE_TYPE" default:"redis"`
	OperationTimeoutMS int         `envconfig:"CACHE_OPERATION_TIMEOUT_MS" default:"500"`
	Redis              RedisConfig `split_words:"true"`
}

// OperationTimeout returns the deadline applied to every cache call
func (c CacheConfig) OperationTimeout() time.Duration {
	return time.Duration(c.OperationTimeoutMS) * time.Millisecond
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// NotificationConfig controls the scheduled weather fan-out to subscribers
type NotificationConfig struct {
	Enabled   bool            `envconfig:"NOTIFICATIONS_ENABLED" default:"false"`
	Database  DatabaseConfig  `split_words:"true"`
	Email     EmailConfig     `split_words:"true"`
	Scheduler SchedulerConfig `split_words:"true"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherapi"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type EmailConfig struct {
	SMTPHost     string `envconfig:"EMAIL_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"EMAIL_SMTP_USERNAME"`
	SMTPPassword string `envconfig:"EMAIL_SMTP_PASSWORD"`
	FromName     string `envconfig:"EMAIL_FROM_NAME" default:"Weather Service"`
	FromAddress  string `envconfig:"EMAIL_FROM_ADDRESS" default:"no-reply@weathersvc.app"`
}

type SchedulerConfig struct {
	HourlyInterval int `envconfig:"HOURLY_INTERVAL" default:"60"`
	DailyInterval  int `envconfig:"DAILY_INTERVAL" default:"1440"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Notifications.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.GRPCPort < 1 || s.GRPCPort > maxPortNumber {
		return errors.NewConfigurationError("GRPC_PORT must be between 1 and 65535", nil)
	}
	if s.Port == s.GRPCPort {
		return errors.NewConfigurationError("SERVER_PORT and GRPC_PORT must differ", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" && w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("at least one weather provider API key must be configured", nil)
	}

	if w.APIKey != "" {
		if err := validateURL("WEATHER_API_BASE_URL", w.BaseURL); err != nil {
			return err
		}
	}
	if w.OpenWeatherMapKey != "" {
		if err := validateURL("OPENWEATHERMAP_API_BASE_URL", w.OpenWeatherMapBaseURL); err != nil {
			return err
		}
		if err := validateURL("OPENWEATHERMAP_GEO_BASE_URL", w.OpenWeatherMapGeoURL); err != nil {
			return err
		}
	}

	if w.CacheTTLSeconds < 1 || w.CacheTTLSeconds > maxCacheTTLSeconds {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_SECONDS must be between 1 and 86400 seconds", nil)
	}
	if w.ProviderTimeoutSeconds < 1 || w.ProviderTimeoutSeconds > maxProviderTimeoutSecs {
		return errors.NewConfigurationError("WEATHER_PROVIDER_TIMEOUT_SECONDS must be between 1 and 60 seconds", nil)
	}

	validProviders := map[string]bool{
		ProviderWeatherAPI:     true,
		ProviderOpenWeatherMap: true,
	}

	seen := make(map[string]bool, len(w.ProviderOrder))
	for _, provider := range w.ProviderOrder {
		if !validProviders[provider] {
			return errors.NewConfigurationError(fmt.Sprintf("invalid weather provider in order: %s", provider), nil)
		}
		if seen[provider] {
			return errors.NewConfigurationError(fmt.Sprintf("duplicate weather provider in order: %s", provider), nil)
		}
		seen[provider] = true
	}

	return w.Breaker.Validate()
}

func (b *BreakerConfig) Validate() error {
	if !b.Enabled {
		return nil
	}
	if b.ConsecutiveFailures < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_FAILURES must be at least 1", nil)
	}
	if b.OpenSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.OperationTimeoutMS < 1 {
		return errors.NewConfigurationError("CACHE_OPERATION_TIMEOUT_MS must be at least 1 millisecond", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (n *NotificationConfig) Validate() error {
	if !n.Enabled {
		return nil
	}
	if err := n.Database.Validate(); err != nil {
		return err
	}
	if err := n.Email.Validate(); err != nil {
		return err
	}
	return n.Scheduler.Validate()
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (e *EmailConfig) Validate() error {
	if e.SMTPHost == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
	}
	if e.SMTPPort < 1 || e.SMTPPort > maxPortNumber {
		return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
	}
	if (e.SMTPUsername == "") != (e.SMTPPassword == "") {
		return errors.NewConfigurationError("EMAIL_SMTP_USERNAME and EMAIL_SMTP_PASSWORD must both be provided or both be empty", nil)
	}
	if !validation.IsValidEmail(e.FromAddress) {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS must be a valid email address", nil)
	}
	return nil
}

func (s *SchedulerConfig) Validate() error {
	if s.HourlyInterval < 1 || s.HourlyInterval > maxHourlyInterval {
		return errors.NewConfigurationError("HOURLY_INTERVAL must be between 1 and 1440 minutes", nil)
	}
	if s.DailyInterval < 1 || s.DailyInterval > maxDailyInterval {
		return errors.NewConfigurationError("DAILY_INTERVAL must be between 1 and 10080 minutes", nil)
	}
	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
