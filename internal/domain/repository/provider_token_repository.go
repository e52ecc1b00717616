package repository

import (
	"context"
	"errors"

	"gateway/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProviderTokenNotFound is returned when an identity has no vaulted provider tokens.
var ErrProviderTokenNotFound = errors.New("provider token record not found")

// ProviderTokenRepository stores encrypted provider token snapshots. Records are append-only.
type ProviderTokenRepository interface {
	// Create appends a new record.
	Create(ctx context.Context, record *entity.ProviderTokenRecord) error

	// FindLatestByIdentityID returns the newest record for the identity.
	FindLatestByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.ProviderTokenRecord, error)

	// PruneKeepLatest deletes all but the newest keep records of every identity and returns the number removed.
	PruneKeepLatest(ctx context.Context, keep int) (int64, error)
}
