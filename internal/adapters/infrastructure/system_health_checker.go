package infrastructure

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"weathersvc.app/internal/ports"
)

// SystemHealthChecker runs every registered component check concurrently
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// NewSystemHealthChecker creates an aggregate checker. Nil checkers are ignored
// so optional components can be passed unconditionally.
func NewSystemHealthChecker(checkers map[string]ports.HealthChecker) *SystemHealthChecker {
	registered := make(map[string]ports.HealthChecker, len(checkers))
	for name, checker := range checkers {
		if checker != nil {
			registered[name] = checker
		}
	}
	return &SystemHealthChecker{checkers: registered}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	var (
		mu      sync.Mutex
		results = make(map[string]ports.HealthStatus, len(s.checkers))
	)

	g, gctx := errgroup.WithContext(ctx)
	for name, checker := range s.checkers {
		name, checker := name, checker
		g.Go(func() error {
			status := checker.Check(gctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// IsHealthy reports whether every status in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != ports.HealthStatusHealthy {
			return false
		}
	}
	return true
}
