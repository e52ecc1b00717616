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
)

// pruneProviderTokensSQL removes every record ranked below the newest N of its identity.
const pruneProviderTokensSQL = `
DELETE FROM provider_token_records
WHERE id IN (
	SELECT id FROM (
		SELECT id, row_number() OVER (PARTITION BY identity_id ORDER BY created_at DESC, id DESC) AS rn
		FROM provider_token_records
	) ranked
	WHERE ranked.rn > ?
)`

// providerTokenRepository implements repository.ProviderTokenRepository using GORM.
type providerTokenRepository struct {
	q *query.Query
}

// NewProviderTokenRepository is the constructor for providerTokenRepository.
func NewProviderTokenRepository(db *gorm.DB) repository.ProviderTokenRepository {
	return &providerTokenRepository{
		q: query.Use(db),
	}
}

// Create appends a new encrypted record.
func (repo *providerTokenRepository) Create(ctx context.Context, record *entity.ProviderTokenRecord) error {
	recordM := fromProviderTokenDomain(record)
	if err := repo.q.ProviderTokenRecordModel.WithContext(ctx).Create(recordM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, constraintDetail(err, "failed to store provider token record"))
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindLatestByIdentityID returns the newest record for the identity.
func (repo *providerTokenRepository) FindLatestByIdentityID(ctx context.Context, identityID uuid.UUID) (*entity.ProviderTokenRecord, error) {
	recordM, err := repo.q.ProviderTokenRecordModel.WithContext(ctx).
		Where(repo.q.ProviderTokenRecordModel.IdentityID.Eq(identityID)).
		Order(repo.q.ProviderTokenRecordModel.CreatedAt.Desc(), repo.q.ProviderTokenRecordModel.ID.Desc()).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find provider token record")
	}

	return toProviderTokenDomain(recordM), nil
}

// PruneKeepLatest deletes all but the newest keep records of every identity.
func (repo *providerTokenRepository) PruneKeepLatest(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		return 0, errors.Errorf("keep must be at least 1, got %d", keep)
	}

	result := repo.q.ProviderTokenRecordModel.WithContext(ctx).UnderlyingDB().Exec(pruneProviderTokensSQL, keep)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to prune provider token records")
	}

	return result.RowsAffected, nil
}

func toProviderTokenDomain(data *model.ProviderTokenRecordModel) *entity.ProviderTokenRecord {
	if data == nil {
		return nil
	}

	return &entity.ProviderTokenRecord{
		ID:           data.ID,
		IdentityID:   data.IdentityID,
		EncAccess:    data.EncAccess,
		NonceAccess:  data.NonceAccess,
		EncRefresh:   data.EncRefresh,
		NonceRefresh: data.NonceRefresh,
		CreatedAt:    data.CreatedAt,
	}
}

func fromProviderTokenDomain(data *entity.ProviderTokenRecord) *model.ProviderTokenRecordModel {
	if data == nil {
		return nil
	}

	return &model.ProviderTokenRecordModel{
		ID:           data.ID,
		IdentityID:   data.IdentityID,
		EncAccess:    data.EncAccess,
		NonceAccess:  data.NonceAccess,
		EncRefresh:   data.EncRefresh,
		NonceRefresh: data.NonceRefresh,
	}
}
