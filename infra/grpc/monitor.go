package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type PoolStatsProvider interface {
	GetPoolStats() map[string]any
}

// Monitor keeps the health status of service (and of the server as a whole)
// in line with database reachability.
type Monitor struct {
	health   *health.Server
	db       Pinger
	service  string
	interval time.Duration
	timeout  time.Duration
}

func NewMonitor(healthServer *health.Server, db Pinger, service string, interval time.Duration) *Monitor {
	return &Monitor{
		health:   healthServer,
		db:       db,
		service:  service,
		interval: interval,
		timeout:  2 * time.Second,
	}
}

// Run checks immediately and then on every tick until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.Check(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *Monitor) Check(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := m.db.Ping(pingCtx); err != nil {
		zap.L().Warn("Database ping failed", zap.Error(err))
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	m.health.SetServingStatus("", status)
	m.health.SetServingStatus(m.service, status)

	if stats, ok := m.db.(PoolStatsProvider); ok {
		zap.L().Debug("Database pool stats", zap.Any("stats", stats.GetPoolStats()))
	}

	return status
}
