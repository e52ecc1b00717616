package repository

import (
	"context"
	"errors"

	"gateway/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdentityNotFound is returned when no identity matches the lookup.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository persists the links between provider accounts and local users.
type IdentityRepository interface {
	// FindByProviderAndExternalID retrieves the identity for a provider account.
	FindByProviderAndExternalID(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.Identity, error)

	// FindOrCreate returns the identity for (identity.Provider, identity.ExternalID), inserting identity if none exists.
	// An existing identity is returned unchanged, including its owning user.
	FindOrCreate(ctx context.Context, identity *entity.Identity) (result *entity.Identity, created bool, err error)

	// ListByUserID returns every identity linked to the user, oldest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Identity, error)
}
