package postgres

import (
	"context"

	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/repository"
	"gateway/internal/infra/persistence/model"
	"gateway/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identityRepository implements repository.IdentityRepository using GORM.
type identityRepository struct {
	q *query.Query
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{
		q: query.Use(db),
	}
}

// FindByProviderAndExternalID retrieves the identity for a provider account.
func (repo *identityRepository) FindByProviderAndExternalID(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.Identity, error) {
	identityM, err := repo.q.IdentityModel.WithContext(ctx).
		Where(
			repo.q.IdentityModel.Provider.Eq(string(provider)),
			repo.q.IdentityModel.ExternalID.Eq(externalID),
		).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity")
	}

	return toIdentityDomain(identityM), nil
}

// FindOrCreate selects by (provider, external_id), otherwise inserts with ON CONFLICT DO NOTHING and re-selects.
func (repo *identityRepository) FindOrCreate(ctx context.Context, identity *entity.Identity) (*entity.Identity, bool, error) {
	existing, err := repo.FindByProviderAndExternalID(ctx, identity.Provider, identity.ExternalID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, false, err
	}

	identityM := fromIdentityDomain(identity)
	// Create on the underlying DB reports RowsAffected, which tells a conflict apart from an insert.
	result := repo.q.IdentityModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "external_id"}},
			DoNothing: true,
		}).
		UnderlyingDB().
		Create(identityM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, constraintDetail(result.Error, "failed to create identity"))
	}

	if result.RowsAffected == 1 {
		return toIdentityDomain(identityM), true, nil
	}

	winner, err := repo.FindByProviderAndExternalID(ctx, identity.Provider, identity.ExternalID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to re-select identity after insert conflict")
	}

	return winner, false, nil
}

// ListByUserID returns every identity linked to the user, oldest first.
func (repo *identityRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Identity, error) {
	identityMs, err := repo.q.IdentityModel.WithContext(ctx).
		Where(repo.q.IdentityModel.UserID.Eq(userID)).
		Order(repo.q.IdentityModel.CreatedAt.Asc(), repo.q.IdentityModel.ID.Asc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list identities")
	}

	identities := make([]*entity.Identity, 0, len(identityMs))
	for _, identityM := range identityMs {
		identities = append(identities, toIdentityDomain(identityM))
	}

	return identities, nil
}

func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:          data.ID,
		UserID:      data.UserID,
		Provider:    entity.ProviderType(data.Provider),
		ExternalID:  data.ExternalID,
		SecondaryID: data.SecondaryID,
		CreatedAt:   data.CreatedAt,
	}
}

func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Provider:    string(data.Provider),
		ExternalID:  data.ExternalID,
		SecondaryID: data.SecondaryID,
	}
}
