package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"gateway/internal/infra/metrics"
	mockUsecase "gateway/internal/mocks/usecase"
	"gateway/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSweeper(t *testing.T, interval time.Duration) (*sweeper, *mockUsecase.MockRetentionUsecase, *prometheus.Registry) {
	retention := mockUsecase.NewMockRetentionUsecase(t)
	registry := metrics.NewRegistry()
	recorder := metrics.NewRecorder(metrics.NewCollector(registry))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newSweeper(interval, retention, recorder, logger), retention, registry
}

func scrape(t *testing.T, registry *prometheus.Registry) string {
	t.Helper()

	rec := httptest.NewRecorder()
	metrics.Handler(registry).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	return rec.Body.String()
}

func TestSweeper_Disabled(t *testing.T) {
	srv, _, _ := createTestSweeper(t, 0)

	err := srv.Serve(context.Background())

	require.NoError(t, err)
	require.NoError(t, srv.stop(context.Background()))
}

func TestSweeper_SweepsAtStartAndStops(t *testing.T) {
	srv, retention, registry := createTestSweeper(t, time.Hour)
	swept := make(chan struct{}, 1)

	retention.EXPECT().Sweep(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.SweepResult, error) {
			swept <- struct{}{}

			return &usecase.SweepResult{ExpiredRefreshTokens: 4, PrunedProviderTokens: 2}, nil
		}).
		Once()

	served := make(chan error, 1)
	go func() { served <- srv.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not run at start")
	}

	require.Eventually(t, func() bool {
		srv.mu.Lock()
		defer srv.mu.Unlock()

		return srv.cancel != nil
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, srv.stop(context.Background()))
	require.NoError(t, <-served)

	body := scrape(t, registry)
	assert.Contains(t, body, `gateway_retention_sweeps_total{outcome="success"} 1`)
	assert.Contains(t, body, `gateway_retention_deleted_records_total{kind="refresh_token"} 4`)
	assert.Contains(t, body, `gateway_retention_deleted_records_total{kind="provider_token_record"} 2`)
}

func TestSweeper_KeepsRunningAfterFailure(t *testing.T) {
	srv, retention, registry := createTestSweeper(t, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 16)
	retention.EXPECT().Sweep(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.SweepResult, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return nil, errors.New("connection refused")
		})

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatal("sweeper stopped ticking after a failure")
		}
	}

	cancel()
	require.NoError(t, <-served)
	assert.Contains(t, scrape(t, registry), `gateway_retention_sweeps_total{outcome="error"}`)
}
