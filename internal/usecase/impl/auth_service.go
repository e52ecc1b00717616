package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
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

const stateBytes = 16

// authService implements the AuthUsecase interface.
type authService struct {
	oauthClient       service.OAuthClient
	resolver          usecase.IdentityResolver
	sessions          usecase.SessionUsecase
	vault             service.TokenVault
	providerTokenRepo repository.ProviderTokenRepository
	logger            *slog.Logger
	random            io.Reader
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	OAuthClient       service.OAuthClient
	Resolver          usecase.IdentityResolver
	Sessions          usecase.SessionUsecase
	Vault             service.TokenVault
	ProviderTokenRepo repository.ProviderTokenRepository
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		oauthClient:       params.OAuthClient,
		resolver:          params.Resolver,
		sessions:          params.Sessions,
		vault:             params.Vault,
		providerTokenRepo: params.ProviderTokenRepo,
		logger:            params.Logger,
		random:            rand.Reader,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLogin generates a fresh state and the provider authorization URL embedding it.
func (srv *authService) BeginLogin(ctx context.Context) (*usecase.LoginRedirect, error) {
	buf := make([]byte, stateBytes)
	if _, err := io.ReadFull(srv.random, buf); err != nil {
		srv.log(ctx).Error("Failed to generate login state", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate login state")
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	return &usecase.LoginRedirect{
		URL:   srv.oauthClient.AuthURL(state),
		State: state,
	}, nil
}

// CompleteLogin turns an authorization code into a gateway session.
func (srv *authService) CompleteLogin(ctx context.Context, code string) (*usecase.TokenPair, error) {
	if code == "" {
		return nil, domainerrors.ErrMissingCode.WrapMessage("callback carried no code")
	}

	provider := srv.oauthClient.Provider()

	tokens, err := srv.oauthClient.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Authorization code exchange failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	profile, err := srv.oauthClient.FetchProfile(ctx, tokens.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Profile fetch failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch provider profile")
	}

	resolved, err := srv.resolver.ResolveAndLink(ctx, profile)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve identity", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	if err := srv.storeProviderTokens(ctx, resolved.IdentityID, tokens); err != nil {
		srv.log(ctx).Error("Failed to store provider tokens", slog.Any("identity_id", resolved.IdentityID), slog.Any("error", err))

		return nil, err
	}

	pair, err := srv.sessions.IssueSession(ctx, resolved.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("Login completed",
		slog.String("provider", provider.String()),
		slog.Any("user_id", resolved.UserID),
		slog.Bool("user_created", resolved.UserCreated),
	)

	return pair, nil
}

// storeProviderTokens appends an encrypted snapshot of the provider tokens to the identity.
func (srv *authService) storeProviderTokens(ctx context.Context, identityID uuid.UUID, tokens *service.ProviderTokens) error {
	encAccess, nonceAccess, err := srv.vault.Encrypt([]byte(tokens.AccessToken))
	if err != nil {
		return errors.Wrap(err, "failed to encrypt provider access token")
	}

	record := &entity.ProviderTokenRecord{
		IdentityID:  identityID,
		EncAccess:   encAccess,
		NonceAccess: nonceAccess,
	}

	if tokens.RefreshToken != nil && *tokens.RefreshToken != "" {
		record.EncRefresh, record.NonceRefresh, err = srv.vault.Encrypt([]byte(*tokens.RefreshToken))
		if err != nil {
			return errors.Wrap(err, "failed to encrypt provider refresh token")
		}
	}

	if err := srv.providerTokenRepo.Create(ctx, record); err != nil {
		return errors.Wrap(err, "failed to store provider token record")
	}

	return nil
}
