// Package worker runs the background retention sweeper as a delivery.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gateway/config"
	"gateway/internal/delivery"
	"gateway/internal/domain/lifecycle"
	"gateway/internal/infra/metrics"
	"gateway/internal/usecase"

	"go.uber.org/fx"
)

type sweeper struct {
	interval  time.Duration
	retention usecase.RetentionUsecase
	recorder  metrics.Recorder
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ServerParams holds dependencies for the sweeper
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Recorder    metrics.Recorder
	RetentionUC usecase.RetentionUsecase
}

// NewServer creates the retention sweeper delivery
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := newSweeper(params.Cfg.Retention.SweepInterval, params.RetentionUC, params.Recorder, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newSweeper(interval time.Duration, retention usecase.RetentionUsecase, recorder metrics.Recorder, logger *slog.Logger) *sweeper {
	return &sweeper{
		interval:  interval,
		retention: retention,
		recorder:  recorder,
		logger:    logger.With(slog.String("delivery", "retention_sweeper")),
		done:      make(chan struct{}),
	}
}

// Serve sweeps once at start and then on every tick until ctx is done or the app stops.
func (s *sweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.interval <= 0 {
		s.logger.Info("Retention sweeper disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	s.logger.Info("Starting retention sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	result, err := s.retention.Sweep(ctx)

	var expired, pruned int64
	if result != nil {
		expired = result.ExpiredRefreshTokens
		pruned = result.PrunedProviderTokens
	}
	s.recorder.RecordSweep(expired, pruned, err)

	if err != nil {
		s.logger.ErrorContext(ctx, "Retention sweep failed", slog.Any("error", err))

		return
	}

	s.logger.DebugContext(ctx, "Retention sweep finished",
		slog.Int64("expired_refresh_tokens", expired),
		slog.Int64("pruned_provider_tokens", pruned),
	)
}

// stop cancels the running loop and waits for the in-flight sweep to return.
func (s *sweeper) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	waitCtx, waitCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer waitCancel()

	select {
	case <-s.done:
	case <-waitCtx.Done():
		s.logger.Warn("Retention sweeper did not stop in time")
	}

	return nil
}
