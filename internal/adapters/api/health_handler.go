package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weathersvc.app/internal/ports"
)

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/v1/health. Any unhealthy component turns the
// response into a 503.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: ports.HealthStatusHealthy, Components: components}
	statusCode := http.StatusOK
	for _, status := range components {
		if status.Status != ports.HealthStatusHealthy {
			response.Status = ports.HealthStatusUnhealthy
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(statusCode, response)
}

// getMetrics handles GET /api/v1/metrics with a JSON summary of the engine
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	stats := s.weatherUseCase.GetCacheStats()

	body := gin.H{
		"providers": s.weatherUseCase.GetProviderInfo(),
		"cache": gin.H{
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"errors":    stats.Errors,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		},
	}

	if s.notifications != nil {
		body["notifications"] = s.notificationSummary(c)
	}

	c.JSON(http.StatusOK, body)
}

func (s *HTTPServerAdapter) notificationSummary(c *gin.Context) gin.H {
	stats, err := s.notifications.GetNotificationStats(c.Request.Context())
	if err != nil {
		s.logger.Warn("Failed to read notification stats", ports.F("error", err))
		return gin.H{"error": "unavailable"}
	}

	summary := gin.H{
		"confirmed_subscriptions": stats.ConfirmedSubscriptions,
	}
	if !stats.LastRunAt.IsZero() {
		summary["last_run"] = gin.H{
			"at":          stats.LastRunAt,
			"frequency":   stats.LastRun.Frequency.String(),
			"total":       stats.LastRun.Total,
			"sent":        stats.LastRun.Sent,
			"skipped":     stats.LastRun.Skipped,
			"failed":      stats.LastRun.Failed,
			"duration_ms": stats.LastRun.Duration.Milliseconds(),
		}
	}
	return summary
}
