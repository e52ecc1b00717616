package impl

import (
	"context"
	"log/slog"
	"time"

	"gateway/config"
	deliverycontext "gateway/internal/delivery/context"
	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/repository"
	"gateway/internal/domain/service"
	"gateway/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager        repository.TransactionManager
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	accessTTL        time.Duration
	refreshTTL       time.Duration
	logger           *slog.Logger
	now              func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:        params.TxManager,
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		accessTTL:        params.Config.Auth.AccessTokenTTL,
		refreshTTL:       params.Config.Auth.RefreshTokenTTL,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueSession signs an access token and persists a fresh refresh token for the user.
func (srv *sessionService) IssueSession(ctx context.Context, userID uuid.UUID) (*usecase.TokenPair, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(userID, srv.accessTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.IssueRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Issued session", slog.Any("user_id", userID))

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// IssueRefreshToken stores the hash of a new refresh token and returns the raw value.
func (srv *sessionService) IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	raw, err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, userID, srv.now())
	if err != nil {
		srv.log(ctx).Error("Failed to issue refresh token", slog.Any("user_id", userID), slog.Any("error", err))

		return "", err
	}

	return raw, nil
}

func (srv *sessionService) storeRefreshToken(ctx context.Context, repo repository.RefreshTokenRepository, userID uuid.UUID, now time.Time) (string, error) {
	raw, hash, err := srv.tokenService.NewRefreshToken()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate refresh token")
	}

	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: now.Add(srv.refreshTTL),
	}
	if err := repo.CreateRefreshToken(ctx, token); err != nil {
		return "", errors.Wrap(err, "failed to store refresh token")
	}

	return raw, nil
}

// Rotate consumes the presented refresh token and issues its successor in one transaction.
// Unknown, expired and already redeemed tokens are rejected alike.
func (srv *sessionService) Rotate(ctx context.Context, presented string) (*usecase.TokenPair, error) {
	if presented == "" {
		return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("refresh token is empty")
	}

	hash := srv.tokenService.HashToken(presented)
	now := srv.now()

	var pair *usecase.TokenPair
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		consumed, err := refreshRepo.ConsumeRefreshToken(ctx, hash, now)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrInvalidRefreshToken.WrapMessage("refresh token is unknown or expired")
		}
		if err != nil {
			return errors.Wrap(err, "failed to consume refresh token")
		}

		accessToken, err := srv.tokenService.IssueAccessToken(consumed.UserID, srv.accessTTL)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}

		refreshToken, err := srv.storeRefreshToken(ctx, refreshRepo, consumed.UserID, now)
		if err != nil {
			return err
		}

		pair = &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidRefreshToken) {
			srv.log(ctx).Info("Rejected refresh token")
		} else {
			srv.log(ctx).Error("Failed to rotate refresh token", slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	return pair, nil
}

// Revoke deletes the presented refresh token. Unknown and empty tokens are not errors.
func (srv *sessionService) Revoke(ctx context.Context, presented string) error {
	if presented == "" {
		return nil
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(presented)); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// RevokeAll deletes every refresh token of the user.
func (srv *sessionService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Revoking all sessions", slog.Any("user_id", userID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to revoke all sessions")
	}

	return nil
}

// Authenticate verifies an access token and returns its subject.
func (srv *sessionService) Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error) {
	if accessToken == "" {
		return uuid.Nil, domainerrors.NewAuthError(domainerrors.AuthReasonMissing, nil)
	}

	userID, err := srv.tokenService.VerifyAccessToken(accessToken)
	if err != nil {
		var authErr *domainerrors.AuthError
		if errors.As(err, &authErr) {
			srv.log(ctx).Debug("Rejected access token", slog.String("reason", authErr.Reason))
		}

		return uuid.Nil, err
	}

	return userID, nil
}
