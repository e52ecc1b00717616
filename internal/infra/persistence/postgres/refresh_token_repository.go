package postgres

import (
	"context"
	"time"

	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/repository"
	"gateway/internal/infra/persistence/model"
	"gateway/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	q *query.Query
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{
		q: query.Use(db),
	}
}

// CreateRefreshToken persists a new refresh token, representing a user session.
func (repo *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.q.RefreshTokenModel.WithContext(ctx).Create(tokenM); err != nil {
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, constraintDetail(err, "failed to create refresh token"))
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// ConsumeRefreshToken runs DELETE ... WHERE token_hash = ? AND expires_at > ? RETURNING *.
// The row lock taken by DELETE makes a concurrent redemption of the same hash delete nothing.
// The delete runs on the underlying DB since gen's Delete discards RETURNING rows.
func (repo *refreshTokenRepository) ConsumeRefreshToken(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error) {
	var deleted []model.RefreshTokenModel
	result := repo.q.RefreshTokenModel.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where(
			repo.q.RefreshTokenModel.TokenHash.Eq(tokenHash),
			repo.q.RefreshTokenModel.ExpiresAt.Gt(now),
		).
		UnderlyingDB().
		Delete(&deleted)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume refresh token")
	}

	if len(deleted) == 0 {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return toRefreshTokenDomain(&deleted[0]), nil
}

// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
func (repo *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	_, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(repo.q.RefreshTokenModel.TokenHash.Eq(tokenHash)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh token")
	}

	return nil
}

// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
func (repo *refreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(repo.q.RefreshTokenModel.UserID.Eq(userID)).
		Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user refresh tokens")
	}

	return nil
}

// DeleteExpiredRefreshTokens removes all expired refresh tokens from the database.
func (repo *refreshTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	result, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(repo.q.RefreshTokenModel.ExpiresAt.Lte(now)).
		Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete expired refresh tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}
