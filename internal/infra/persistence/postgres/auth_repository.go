package postgres

import (
	"context"

	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the repository.AuthRepository interface using GORM.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new instance of authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication persists a new login method for a user.
func (r *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authModel := toAuthModel(auth)
	if err := r.db.WithContext(ctx).Create(authModel).Error; err != nil {
		return errors.Wrap(err, "failed to create authentication")
	}

	auth.ID = authModel.ID

	return nil
}

// FindAuthentication retrieves the record for a provider and provider-side user ID.
func (r *authRepository) FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	var authModel model.AuthenticationModel
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&authModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthEntity(&authModel), nil
}

// FindAuthenticationsByUserID retrieves all login methods for a user.
func (r *authRepository) FindAuthenticationsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Authentication, error) {
	var authModels []model.AuthenticationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&authModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find authentications by user id")
	}

	auths := make([]*entity.Authentication, 0, len(authModels))
	for i := range authModels {
		auths = append(auths, toAuthEntity(&authModels[i]))
	}

	return auths, nil
}

// --- Mapper functions ---

func toAuthModel(auth *entity.Authentication) *model.AuthenticationModel {
	return &model.AuthenticationModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       auth.Provider,
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
		CreatedAt:      auth.CreatedAt,
	}
}

func toAuthEntity(authModel *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:             authModel.ID,
		UserID:         authModel.UserID,
		Provider:       authModel.Provider,
		ProviderUserID: authModel.ProviderUserID,
		PasswordHash:   authModel.PasswordHash,
		CreatedAt:      authModel.CreatedAt,
	}
}
