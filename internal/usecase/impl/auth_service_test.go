package impl

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/service"
	mockRepo "gateway/internal/mocks/repository"
	mockSvc "gateway/internal/mocks/service"
	mockUsecase "gateway/internal/mocks/usecase"
	"gateway/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service           *authService
	oauthClient       *mockSvc.MockOAuthClient
	resolver          *mockUsecase.MockIdentityResolver
	sessions          *mockUsecase.MockSessionUsecase
	vault             *mockSvc.MockTokenVault
	providerTokenRepo *mockRepo.MockProviderTokenRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	oauthClient := mockSvc.NewMockOAuthClient(t)
	resolver := mockUsecase.NewMockIdentityResolver(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	vault := mockSvc.NewMockTokenVault(t)
	providerTokenRepo := mockRepo.NewMockProviderTokenRepository(t)

	srv := NewAuthService(AuthServiceParams{
		OAuthClient:       oauthClient,
		Resolver:          resolver,
		Sessions:          sessions,
		Vault:             vault,
		ProviderTokenRepo: providerTokenRepo,
		Logger:            newDiscardLogger(),
	}).(*authService)

	return authServiceFixtures{
		service:           srv,
		oauthClient:       oauthClient,
		resolver:          resolver,
		sessions:          sessions,
		vault:             vault,
		providerTokenRepo: providerTokenRepo,
	}
}

func TestAuthService_BeginLogin(t *testing.T) {
	fx := createTestAuthService(t)
	fx.service.random = bytes.NewReader(bytes.Repeat([]byte{0xAB}, stateBytes))

	wantState := base64.RawURLEncoding.EncodeToString(bytes.Repeat([]byte{0xAB}, stateBytes))
	fx.oauthClient.EXPECT().AuthURL(wantState).Return("https://auth.example/authorize?state=" + wantState)

	redirect, err := fx.service.BeginLogin(context.Background())

	require.NoError(t, err)
	assert.Equal(t, wantState, redirect.State)
	assert.Contains(t, redirect.URL, wantState)
}

func TestAuthService_BeginLogin_FreshStateEachTime(t *testing.T) {
	fx := createTestAuthService(t)
	fx.oauthClient.EXPECT().AuthURL(mock.AnythingOfType("string")).Return("https://auth.example/authorize")

	first, err := fx.service.BeginLogin(context.Background())
	require.NoError(t, err)
	second, err := fx.service.BeginLogin(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.State, second.State)
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := &service.Profile{ExternalID: "ext", Email: strPtr("a@b.c"), SecondaryID: strPtr("U1")}
	resolved := &usecase.ResolvedIdentity{UserID: uuid.New(), IdentityID: uuid.New(), UserCreated: true}
	pair := &usecase.TokenPair{AccessToken: "jwt", RefreshToken: "refresh"}

	fx.oauthClient.EXPECT().Provider().Return(entity.ProviderHackClub)
	fx.oauthClient.EXPECT().ExchangeCode(ctx, "CODE").
		Return(&service.ProviderTokens{AccessToken: "upstream-access", RefreshToken: strPtr("upstream-refresh")}, nil)
	fx.oauthClient.EXPECT().FetchProfile(ctx, "upstream-access").Return(profile, nil)
	fx.resolver.EXPECT().ResolveAndLink(ctx, profile).Return(resolved, nil)
	fx.vault.EXPECT().Encrypt([]byte("upstream-access")).Return([]byte("enc-a"), []byte("nonce-a"), nil)
	fx.vault.EXPECT().Encrypt([]byte("upstream-refresh")).Return([]byte("enc-r"), []byte("nonce-r"), nil)
	fx.providerTokenRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.ProviderTokenRecord) bool {
			return record.IdentityID == resolved.IdentityID &&
				string(record.EncAccess) == "enc-a" &&
				string(record.EncRefresh) == "enc-r" &&
				string(record.NonceRefresh) == "nonce-r"
		})).
		Return(nil)
	fx.sessions.EXPECT().IssueSession(ctx, resolved.UserID).Return(pair, nil)

	got, err := fx.service.CompleteLogin(ctx, "CODE")

	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func TestAuthService_CompleteLogin_NoProviderRefreshToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := &service.Profile{ExternalID: "ext", Email: strPtr("a@b.c"), SecondaryID: strPtr("U1")}
	resolved := &usecase.ResolvedIdentity{UserID: uuid.New(), IdentityID: uuid.New()}

	fx.oauthClient.EXPECT().Provider().Return(entity.ProviderHackClub)
	fx.oauthClient.EXPECT().ExchangeCode(ctx, "CODE").Return(&service.ProviderTokens{AccessToken: "upstream-access"}, nil)
	fx.oauthClient.EXPECT().FetchProfile(ctx, "upstream-access").Return(profile, nil)
	fx.resolver.EXPECT().ResolveAndLink(ctx, profile).Return(resolved, nil)
	fx.vault.EXPECT().Encrypt([]byte("upstream-access")).Return([]byte("enc-a"), []byte("nonce-a"), nil)
	fx.providerTokenRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.ProviderTokenRecord) bool {
			return !record.HasRefresh()
		})).
		Return(nil)
	fx.sessions.EXPECT().IssueSession(ctx, resolved.UserID).Return(&usecase.TokenPair{}, nil)

	_, err := fx.service.CompleteLogin(ctx, "CODE")

	require.NoError(t, err)
}

func TestAuthService_CompleteLogin_MissingCode(t *testing.T) {
	fx := createTestAuthService(t)

	pair, err := fx.service.CompleteLogin(context.Background(), "")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCode))
}

func TestAuthService_CompleteLogin_ExchangeFailed(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.oauthClient.EXPECT().Provider().Return(entity.ProviderHackClub)
	fx.oauthClient.EXPECT().ExchangeCode(ctx, "BAD").
		Return(nil, domainerrors.ErrExchangeFailed.WrapMessage("400 invalid_grant"))

	pair, err := fx.service.CompleteLogin(ctx, "BAD")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrExchangeFailed))
}

func TestAuthService_CompleteLogin_ProfileFetchFailed(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.oauthClient.EXPECT().Provider().Return(entity.ProviderHackClub)
	fx.oauthClient.EXPECT().ExchangeCode(ctx, "CODE").Return(&service.ProviderTokens{AccessToken: "at"}, nil)
	fx.oauthClient.EXPECT().FetchProfile(ctx, "at").
		Return(nil, &domainerrors.ProfileFetchError{Status: 503, Body: "unavailable"})

	_, err := fx.service.CompleteLogin(ctx, "CODE")

	var fetchErr *domainerrors.ProfileFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 503, fetchErr.Status)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileFetchFailed))
}

func TestAuthService_CompleteLogin_IncompleteProfileIssuesNoSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := &service.Profile{ExternalID: "ext"}
	fx.oauthClient.EXPECT().Provider().Return(entity.ProviderHackClub)
	fx.oauthClient.EXPECT().ExchangeCode(ctx, "CODE").Return(&service.ProviderTokens{AccessToken: "at"}, nil)
	fx.oauthClient.EXPECT().FetchProfile(ctx, "at").Return(profile, nil)
	fx.resolver.EXPECT().ResolveAndLink(ctx, profile).
		Return(nil, domainerrors.ErrIncompleteProfile.WrapMessage("no email"))

	_, err := fx.service.CompleteLogin(ctx, "CODE")

	assert.True(t, errors.Is(err, domainerrors.ErrIncompleteProfile))
}
