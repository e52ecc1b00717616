package impl

import (
	"context"
	"testing"
	"time"

	mockRepo "gateway/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRetentionService(t *testing.T, keep int) (*retentionService, *mockRepo.MockRefreshTokenRepository, *mockRepo.MockProviderTokenRepository, time.Time) {
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	providerTokenRepo := mockRepo.NewMockProviderTokenRepository(t)

	cfg := newTestConfig()
	cfg.Retention.ProviderTokensPerIdentity = keep

	srv := NewRetentionService(RetentionServiceParams{
		RefreshTokenRepo:  refreshTokenRepo,
		ProviderTokenRepo: providerTokenRepo,
		Config:            cfg,
		Logger:            newDiscardLogger(),
	}).(*retentionService)

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	return srv, refreshTokenRepo, providerTokenRepo, now
}

func TestRetentionService_Sweep(t *testing.T) {
	srv, refreshRepo, providerRepo, now := createTestRetentionService(t, 5)
	ctx := context.Background()

	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, now).Return(3, nil)
	providerRepo.EXPECT().PruneKeepLatest(ctx, 5).Return(7, nil)

	result, err := srv.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.ExpiredRefreshTokens)
	assert.Equal(t, int64(7), result.PrunedProviderTokens)
}

func TestRetentionService_Sweep_PruningDisabled(t *testing.T) {
	srv, refreshRepo, _, now := createTestRetentionService(t, 0)
	ctx := context.Background()

	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, now).Return(0, nil)

	result, err := srv.Sweep(ctx)

	require.NoError(t, err)
	assert.Zero(t, result.PrunedProviderTokens)
}

func TestRetentionService_Sweep_Error(t *testing.T) {
	srv, refreshRepo, _, now := createTestRetentionService(t, 5)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	refreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, now).Return(0, dbErr)

	result, err := srv.Sweep(ctx)

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, dbErr))
}
