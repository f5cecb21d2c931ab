package ports

import (
	"time"
)

// WeatherConfig represents weather resolution configuration
type WeatherConfig struct {
	EnableCache      bool
	CacheTTL         time.Duration
	CacheTimeout     time.Duration
	ProviderTimeout  time.Duration
	CoalesceRequests bool
	ProviderOrder    []string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port     int
	GRPCPort int
}

// EmailConfig represents email configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromAddress  string
}

// SchedulerConfig holds the notification tick periods. Enabled is false when
// the process runs without the notification collaborators.
type SchedulerConfig struct {
	Enabled bool
	Hourly  time.Duration
	Daily   time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetEmailConfig() EmailConfig
	GetSchedulerConfig() SchedulerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is one structured log attribute
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for Field{Key: key, Value: value}
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
