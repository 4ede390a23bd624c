package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func status(t *testing.T, srv *health.Server, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := srv.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.Status
}

func TestChecker_Probe(t *testing.T) {
	srv := health.NewServer()
	checker := NewChecker(srv, time.Second)

	var dbDown atomic.Bool
	dbDown.Store(true)

	checker.Add("postgres", func(context.Context) error {
		if dbDown.Load() {
			return errors.New("connection refused")
		}
		return nil
	})
	checker.Add("redis", func(context.Context) error { return nil })

	checker.Probe(context.Background())
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, srv, "postgres"))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, srv, "redis"))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, srv, ""))

	dbDown.Store(false)
	checker.Probe(context.Background())
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, srv, "postgres"))
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, srv, ""))
}

func TestChecker_Run(t *testing.T) {
	srv := health.NewServer()
	checker := NewChecker(srv, 10*time.Millisecond)

	var calls atomic.Int32
	checker.Add("postgres", func(context.Context) error {
		calls.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		checker.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, srv, "postgres"))
}
