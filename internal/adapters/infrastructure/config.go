package infrastructure

import (
	"time"

	"weathersvc.app/internal/config"
	"weathersvc.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns the resolution engine settings
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	order := make([]string, len(c.config.Weather.ProviderOrder))
	copy(order, c.config.Weather.ProviderOrder)

	return ports.WeatherConfig{
		EnableCache:      c.config.Weather.EnableCache,
		CacheTTL:         c.config.Weather.CacheTTL(),
		CacheTimeout:     c.config.Cache.OperationTimeout(),
		ProviderTimeout:  c.config.Weather.ProviderTimeout(),
		CoalesceRequests: c.config.Weather.CoalesceRequests,
		ProviderOrder:    order,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:     c.config.Server.Port,
		GRPCPort: c.config.Server.GRPCPort,
	}
}

func (c *ConfigProviderAdapter) GetEmailConfig() ports.EmailConfig {
	email := c.config.Notifications.Email
	return ports.EmailConfig{
		SMTPHost:     email.SMTPHost,
		SMTPPort:     email.SMTPPort,
		SMTPUsername: email.SMTPUsername,
		SMTPPassword: email.SMTPPassword,
		FromName:     email.FromName,
		FromAddress:  email.FromAddress,
	}
}

// GetSchedulerConfig converts the minute intervals from the environment
func (c *ConfigProviderAdapter) GetSchedulerConfig() ports.SchedulerConfig {
	scheduler := c.config.Notifications.Scheduler
	return ports.SchedulerConfig{
		Enabled: c.config.Notifications.Enabled,
		Hourly:  time.Duration(scheduler.HourlyInterval) * time.Minute,
		Daily:   time.Duration(scheduler.DailyInterval) * time.Minute,
	}
}
