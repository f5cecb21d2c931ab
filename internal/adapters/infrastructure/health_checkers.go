package infrastructure

import (
	"context"
	"net"
	"strconv"
	"time"

	"weathersvc.app/internal/ports"
)

const defaultHealthTimeout = 2 * time.Second

// CacheHealthChecker pings the cache backend
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
	timeout   time.Duration
}

// NewCacheHealthChecker creates a cache health checker; timeout <= 0 means 2s
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string, timeout time.Duration) *CacheHealthChecker {
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}
	return &CacheHealthChecker{cache: cache, cacheType: cacheType, timeout: timeout}
}

// Check pings the cache within the checker timeout
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    ports.HealthStatusHealthy,
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.cache == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if err := c.cache.Ping(ctx); err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
		return status
	}
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	return status
}

// ProviderChainHealthChecker reports the configured provider chain. It does
// not call upstream APIs, so it never spends provider quota.
type ProviderChainHealthChecker struct {
	chain ports.WeatherProviderChain
}

func NewProviderChainHealthChecker(chain ports.WeatherProviderChain) *ProviderChainHealthChecker {
	return &ProviderChainHealthChecker{chain: chain}
}

// Check reports healthy when at least one provider is configured
func (p *ProviderChainHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "providers",
		Status:    ports.HealthStatusHealthy,
	}

	if p.chain == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "weather provider chain is not available"
		return status
	}

	info := p.chain.GetProviderInfo()
	status.Details = info
	if total, ok := info["total_providers"].(int); !ok || total == 0 {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "no weather providers configured"
	}
	return status
}

// SMTPHealthChecker verifies that the SMTP relay accepts TCP connections
type SMTPHealthChecker struct {
	config  ports.EmailConfig
	timeout time.Duration
}

// NewSMTPHealthChecker creates an SMTP health checker; timeout <= 0 means 2s
func NewSMTPHealthChecker(config ports.EmailConfig, timeout time.Duration) *SMTPHealthChecker {
	if timeout <= 0 {
		timeout = defaultHealthTimeout
	}
	return &SMTPHealthChecker{config: config, timeout: timeout}
}

// Check dials the relay and closes the connection immediately
func (s *SMTPHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	addr := net.JoinHostPort(s.config.SMTPHost, strconv.Itoa(s.config.SMTPPort))
	status := ports.HealthStatus{
		Component: "smtp",
		Status:    ports.HealthStatusHealthy,
		Details:   map[string]interface{}{"address": addr},
	}

	if s.config.SMTPHost == "" {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "SMTP host is not configured"
		return status
	}

	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
		return status
	}
	_ = conn.Close()
	return status
}
