// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Email.Eq(email)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// FindOrCreateByEmail selects by email, otherwise inserts with ON CONFLICT (email) DO NOTHING
// and re-selects, so racing first logins all observe the single winning row.
func (repo *userRepository) FindOrCreateByEmail(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, err
	}

	userM := fromUserDomain(user)
	// Create on the underlying DB reports RowsAffected, which tells a conflict apart from an insert.
	result := repo.q.UserModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		UnderlyingDB().
		Create(userM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, constraintDetail(result.Error, "failed to create user"))
	}

	if result.RowsAffected == 1 {
		return toUserDomain(userM), true, nil
	}

	// Another caller inserted the same email between our select and insert.
	winner, err := repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to re-select user after insert conflict")
	}

	return winner, false, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:          data.ID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
	}
}
