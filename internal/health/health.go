// Package health publishes dependency status through the gRPC health service.
package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

// Checker periodically runs checks and reports them on a health server. Each
// check is published under its own service name; the empty service name is
// SERVING only while every check passes.
type Checker struct {
	server   *health.Server
	interval time.Duration
	timeout  time.Duration

	mu     sync.Mutex
	checks map[string]Check
}

// NewChecker creates a Checker publishing to server.
func NewChecker(server *health.Server, interval time.Duration) *Checker {
	return &Checker{
		server:   server,
		interval: interval,
		timeout:  interval / 2,
		checks:   make(map[string]Check),
	}
}

// Add registers a check under name.
func (c *Checker) Add(name string, check Check) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Run probes immediately and then every interval until ctx is done. On exit
// every service is marked NOT_SERVING.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Probe(ctx)
		}
	}
}

// Probe runs every check once and updates the published statuses.
func (c *Checker) Probe(ctx context.Context) {
	c.mu.Lock()
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	checks := make(map[string]Check, len(c.checks))
	for k, v := range c.checks {
		checks[k] = v
	}
	c.mu.Unlock()
	sort.Strings(names)

	overall := grpc_health_v1.HealthCheckResponse_SERVING
	for _, name := range names {
		status := grpc_health_v1.HealthCheckResponse_SERVING

		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := checks[name](checkCtx)
		cancel()

		if err != nil {
			logger.Log.Warnw("health check failed", "service", name, "error", err)
			status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
			overall = grpc_health_v1.HealthCheckResponse_NOT_SERVING
		}
		c.server.SetServingStatus(name, status)
	}
	c.server.SetServingStatus("", overall)
}
