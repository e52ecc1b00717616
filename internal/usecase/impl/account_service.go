package impl

import (
	"context"
	"log/slog"

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

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo          repository.UserRepository
	identityRepo      repository.IdentityRepository
	providerTokenRepo repository.ProviderTokenRepository
	vault             service.TokenVault
	provider          entity.ProviderType
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	IdentityRepo      repository.IdentityRepository
	ProviderTokenRepo repository.ProviderTokenRepository
	Vault             service.TokenVault
	OAuthClient       service.OAuthClient
	Logger            *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:          params.UserRepo,
		identityRepo:      params.IdentityRepo,
		providerTokenRepo: params.ProviderTokenRepo,
		vault:             params.Vault,
		provider:          params.OAuthClient.Provider(),
		logger:            params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe returns the signed-in user.
func (srv *accountService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user of a valid access token no longer exists")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListIdentities returns the external identities linked to the user.
func (srv *accountService) ListIdentities(ctx context.Context, userID uuid.UUID) ([]*entity.Identity, error) {
	identities, err := srv.identityRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list identities", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list identities")
	}

	return identities, nil
}

// GetProviderAccessToken decrypts the newest provider access token stored for the user's most recent identity.
func (srv *accountService) GetProviderAccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	identities, err := srv.identityRepo.ListByUserID(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to list identities")
	}

	var identity *entity.Identity
	for _, candidate := range identities {
		if candidate.Provider == srv.provider {
			identity = candidate
		}
	}
	if identity == nil {
		return "", domainerrors.ErrProviderTokenNotFound.WrapMessage("user has no identity at the provider")
	}

	record, err := srv.providerTokenRepo.FindLatestByIdentityID(ctx, identity.ID)
	if errors.Is(err, repository.ErrProviderTokenNotFound) {
		return "", domainerrors.ErrProviderTokenNotFound.WrapMessage("identity has no stored provider tokens")
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find provider token record")
	}

	plaintext, err := srv.vault.Decrypt(record.EncAccess, record.NonceAccess)
	if err != nil {
		srv.log(ctx).Error("Provider token record failed integrity check",
			slog.Any("record_id", record.ID),
			slog.Any("identity_id", identity.ID),
			slog.Any("error", err),
		)

		return "", errors.Wrap(err, "failed to decrypt provider access token")
	}

	return string(plaintext), nil
}
