package impl

import (
	"context"
	"log/slog"
	"time"

	"gateway/config"
	"gateway/internal/domain/repository"
	"gateway/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retentionService implements the RetentionUsecase interface.
type retentionService struct {
	refreshTokenRepo  repository.RefreshTokenRepository
	providerTokenRepo repository.ProviderTokenRepository
	keepPerIdentity   int
	logger            *slog.Logger
	now               func() time.Time
}

// RetentionServiceParams holds dependencies for RetentionService, injected by Fx.
type RetentionServiceParams struct {
	fx.In

	RefreshTokenRepo  repository.RefreshTokenRepository
	ProviderTokenRepo repository.ProviderTokenRepository
	Config            *config.Config
	Logger            *slog.Logger
}

// NewRetentionService is the constructor for retentionService.
func NewRetentionService(params RetentionServiceParams) usecase.RetentionUsecase {
	keep := 0
	if params.Config != nil && params.Config.Retention != nil {
		keep = params.Config.Retention.ProviderTokensPerIdentity
	}

	return &retentionService{
		refreshTokenRepo:  params.RefreshTokenRepo,
		providerTokenRepo: params.ProviderTokenRepo,
		keepPerIdentity:   keep,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// Sweep deletes expired refresh tokens and prunes provider token records beyond the per-identity limit.
// Both deletes are idempotent, so concurrent sweeps from several instances are harmless.
func (srv *retentionService) Sweep(ctx context.Context) (*usecase.SweepResult, error) {
	result := &usecase.SweepResult{}

	expired, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete expired refresh tokens")
	}
	result.ExpiredRefreshTokens = expired

	if srv.keepPerIdentity > 0 {
		pruned, err := srv.providerTokenRepo.PruneKeepLatest(ctx, srv.keepPerIdentity)
		if err != nil {
			return result, errors.Wrap(err, "failed to prune provider token records")
		}
		result.PrunedProviderTokens = pruned
	}

	srv.logger.DebugContext(ctx, "Retention sweep finished",
		slog.Int64("expired_refresh_tokens", result.ExpiredRefreshTokens),
		slog.Int64("pruned_provider_tokens", result.PrunedProviderTokens),
	)

	return result, nil
}
