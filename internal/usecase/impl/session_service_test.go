package impl

import (
	"context"
	"testing"
	"time"

	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/repository"
	mockRepo "gateway/internal/mocks/repository"
	mockSvc "gateway/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service          *sessionService
	txManager        *mockRepo.MockTransactionManager
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	tokenService     *mockSvc.MockTokenService
	now              time.Time
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewSessionService(SessionServiceParams{
		TxManager:        txManager,
		RefreshTokenRepo: refreshTokenRepo,
		TokenService:     tokenService,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	}).(*sessionService)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	return sessionServiceFixtures{
		service:          srv,
		txManager:        txManager,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
		now:              now,
	}
}

// onExecute runs fn against a fresh repository factory mock and returns whatever the transaction body returns.
func (f sessionServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func TestSessionService_IssueSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().IssueAccessToken(userID, time.Hour).Return("access.jwt", nil)
	fx.tokenService.EXPECT().NewRefreshToken().Return("raw-refresh", "hashed-refresh", nil)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID &&
				token.TokenHash == "hashed-refresh" &&
				token.ExpiresAt.Equal(fx.now.Add(30*24*time.Hour))
		})).
		Return(nil)

	pair, err := fx.service.IssueSession(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "access.jwt", pair.AccessToken)
	assert.Equal(t, "raw-refresh", pair.RefreshToken)
}

func TestSessionService_IssueSession_BadTTL(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().IssueAccessToken(userID, time.Hour).Return("", domainerrors.ErrConfig)

	pair, err := fx.service.IssueSession(ctx, userID)

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrConfig))
}

func TestSessionService_IssueRefreshToken_StorageError(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert refresh token")

	fx.tokenService.EXPECT().NewRefreshToken().Return("raw", "hash", nil)
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(dbErr)

	raw, err := fx.service.IssueRefreshToken(ctx, userID)

	assert.Empty(t, raw)
	assert.True(t, errors.Is(err, dbErr))
}

func TestSessionService_Rotate_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	consumed := &entity.RefreshToken{ID: uuid.New(), UserID: userID, TokenHash: "old-hash"}

	fx.tokenService.EXPECT().HashToken("old-raw").Return("old-hash")
	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)

		refreshRepo.EXPECT().ConsumeRefreshToken(ctx, "old-hash", fx.now).Return(consumed, nil)
		fx.tokenService.EXPECT().IssueAccessToken(userID, time.Hour).Return("new.jwt", nil)
		fx.tokenService.EXPECT().NewRefreshToken().Return("new-raw", "new-hash", nil)
		refreshRepo.EXPECT().
			CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
				return token.UserID == userID && token.TokenHash == "new-hash"
			})).
			Return(nil)
	})

	pair, err := fx.service.Rotate(ctx, "old-raw")

	require.NoError(t, err)
	assert.Equal(t, "new.jwt", pair.AccessToken)
	assert.Equal(t, "new-raw", pair.RefreshToken)
	assert.NotEqual(t, "old-raw", pair.RefreshToken)
}

func TestSessionService_Rotate_UnknownOrExpired(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)

		refreshRepo.EXPECT().ConsumeRefreshToken(ctx, "stale-hash", fx.now).Return(nil, repository.ErrRefreshTokenNotFound)
	})

	pair, err := fx.service.Rotate(ctx, "stale")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestSessionService_Rotate_EmptyToken(t *testing.T) {
	fx := createTestSessionService(t)

	pair, err := fx.service.Rotate(context.Background(), "")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestSessionService_Rotate_StorageErrorIsNotInvalidToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	dbErr := errors.New("deadlock detected")

	fx.tokenService.EXPECT().HashToken("raw").Return("hash")
	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)

		refreshRepo.EXPECT().ConsumeRefreshToken(ctx, "hash", fx.now).Return(nil, dbErr)
	})

	_, err := fx.service.Rotate(ctx, "raw")

	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestSessionService_Revoke(t *testing.T) {
	t.Run("deletes by hash", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().HashToken("raw").Return("hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash").Return(nil)

		assert.NoError(t, fx.service.Revoke(ctx, "raw"))
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		fx := createTestSessionService(t)

		assert.NoError(t, fx.service.Revoke(context.Background(), ""))
	})

	t.Run("storage error is reported", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()
		dbErr := errors.New("connection refused")

		fx.tokenService.EXPECT().HashToken("raw").Return("hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash").Return(dbErr)

		assert.True(t, errors.Is(fx.service.Revoke(ctx, "raw"), dbErr))
	})
}

func TestSessionService_RevokeAll(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	assert.NoError(t, fx.service.RevokeAll(ctx, userID))
}

func TestSessionService_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestSessionService(t)
		userID := uuid.New()

		fx.tokenService.EXPECT().VerifyAccessToken("good").Return(userID, nil)

		got, err := fx.service.Authenticate(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("missing token", func(t *testing.T) {
		fx := createTestSessionService(t)

		_, err := fx.service.Authenticate(context.Background(), "")

		var authErr *domainerrors.AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, domainerrors.AuthReasonMissing, authErr.Reason)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestSessionService(t)

		fx.tokenService.EXPECT().VerifyAccessToken("old").
			Return(uuid.Nil, domainerrors.NewAuthError(domainerrors.AuthReasonExpired, nil))

		_, err := fx.service.Authenticate(context.Background(), "old")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
