package usecase

import (
	"context"

	"gateway/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase serves read-only views of the signed-in account.
type AccountUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ListIdentities(ctx context.Context, userID uuid.UUID) ([]*entity.Identity, error)

	// GetProviderAccessToken decrypts the newest vaulted provider access token of the user.
	GetProviderAccessToken(ctx context.Context, userID uuid.UUID) (string, error)
}
