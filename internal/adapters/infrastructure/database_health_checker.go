package infrastructure

import (
	"context"

	"gorm.io/gorm"
	"weathersvc.app/internal/ports"
)

// DatabaseHealthChecker pings the subscription database
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

// Check verifies database connectivity and reports pool usage
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Status:    ports.HealthStatusUnhealthy,
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Status = ports.HealthStatusHealthy
	status.Details["dialect"] = d.db.Dialector.Name()
	status.Details["open_connections"] = stats.OpenConnections
	status.Details["in_use"] = stats.InUse
	return status
}
