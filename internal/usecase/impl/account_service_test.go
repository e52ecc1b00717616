package impl

import (
	"context"
	"testing"

	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/repository"
	mockRepo "gateway/internal/mocks/repository"
	mockSvc "gateway/internal/mocks/service"
	"gateway/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service           usecase.AccountUsecase
	userRepo          *mockRepo.MockUserRepository
	identityRepo      *mockRepo.MockIdentityRepository
	providerTokenRepo *mockRepo.MockProviderTokenRepository
	vault             *mockSvc.MockTokenVault
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	providerTokenRepo := mockRepo.NewMockProviderTokenRepository(t)
	vault := mockSvc.NewMockTokenVault(t)
	oauthClient := mockSvc.NewMockOAuthClient(t)
	oauthClient.EXPECT().Provider().Return(entity.ProviderHackClub)

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			UserRepo:          userRepo,
			IdentityRepo:      identityRepo,
			ProviderTokenRepo: providerTokenRepo,
			Vault:             vault,
			OAuthClient:       oauthClient,
			Logger:            newDiscardLogger(),
		}),
		userRepo:          userRepo,
		identityRepo:      identityRepo,
		providerTokenRepo: providerTokenRepo,
		vault:             vault,
	}
}

func TestAccountService_GetMe(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "a@b.c"}

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		got, err := fx.service.GetMe(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetMe(ctx, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestAccountService_ListIdentities(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	identities := []*entity.Identity{{ID: uuid.New(), UserID: userID, Provider: entity.ProviderHackClub}}

	fx.identityRepo.EXPECT().ListByUserID(ctx, userID).Return(identities, nil)

	got, err := fx.service.ListIdentities(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, identities, got)
}

func TestAccountService_GetProviderAccessToken(t *testing.T) {
	t.Run("decrypts the newest record of the latest identity", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()
		older := &entity.Identity{ID: uuid.New(), UserID: userID, Provider: entity.ProviderHackClub}
		newer := &entity.Identity{ID: uuid.New(), UserID: userID, Provider: entity.ProviderHackClub}
		record := &entity.ProviderTokenRecord{ID: uuid.New(), IdentityID: newer.ID, EncAccess: []byte("ct"), NonceAccess: []byte("nonce")}

		fx.identityRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Identity{older, newer}, nil)
		fx.providerTokenRepo.EXPECT().FindLatestByIdentityID(ctx, newer.ID).Return(record, nil)
		fx.vault.EXPECT().Decrypt([]byte("ct"), []byte("nonce")).Return([]byte("upstream-access"), nil)

		token, err := fx.service.GetProviderAccessToken(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "upstream-access", token)
	})

	t.Run("no identity", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.identityRepo.EXPECT().ListByUserID(ctx, userID).Return(nil, nil)

		_, err := fx.service.GetProviderAccessToken(ctx, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrProviderTokenNotFound))
	})

	t.Run("no record", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()
		identity := &entity.Identity{ID: uuid.New(), UserID: userID, Provider: entity.ProviderHackClub}

		fx.identityRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Identity{identity}, nil)
		fx.providerTokenRepo.EXPECT().FindLatestByIdentityID(ctx, identity.ID).Return(nil, repository.ErrProviderTokenNotFound)

		_, err := fx.service.GetProviderAccessToken(ctx, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrProviderTokenNotFound))
	})

	t.Run("tampered record", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		userID := uuid.New()
		identity := &entity.Identity{ID: uuid.New(), UserID: userID, Provider: entity.ProviderHackClub}
		record := &entity.ProviderTokenRecord{ID: uuid.New(), IdentityID: identity.ID, EncAccess: []byte("x"), NonceAccess: []byte("y")}

		fx.identityRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Identity{identity}, nil)
		fx.providerTokenRepo.EXPECT().FindLatestByIdentityID(ctx, identity.ID).Return(record, nil)
		fx.vault.EXPECT().Decrypt([]byte("x"), []byte("y")).Return(nil, domainerrors.ErrDecryptionFailed)

		token, err := fx.service.GetProviderAccessToken(ctx, userID)

		assert.Empty(t, token)
		assert.True(t, errors.Is(err, domainerrors.ErrDecryptionFailed))
	})
}
