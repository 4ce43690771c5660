package postgres

import (
	"context"
	"time"

	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new user account.
func (r *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userModel.ID

	return nil
}

// FindUserByID retrieves a user by its unique ID, profile included.
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserEntity(&userModel), nil
}

// FindUserByEmail retrieves a user by email, profile included.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ? AND deleted_at IS NULL", email).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserEntity(&userModel), nil
}

// EnsureProfile creates the user's profile row if it does not exist yet.
func (r *userRepository) EnsureProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileModel := &model.UserProfileModel{
		UserID:              profile.UserID,
		HomeWarehouseNumber: profile.HomeWarehouseNumber,
		MarketingOptIn:      profile.MarketingOptIn,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(profileModel).Error
	if err != nil {
		return errors.Wrap(err, "failed to ensure user profile")
	}

	return nil
}

// MarkEmailVerified records that the user confirmed the verification email.
func (r *userRepository) MarkEmailVerified(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", userID).
		Updates(map[string]any{
			"email_verified": true,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark email verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeleteUser soft-deletes a user account.
func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper functions ---

func toUserModel(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func toUserEntity(userModel *model.UserModel) *entity.User {
	user := &entity.User{
		ID:            userModel.ID,
		Email:         userModel.Email,
		Name:          userModel.Name,
		EmailVerified: userModel.EmailVerified,
		CreatedAt:     userModel.CreatedAt,
		UpdatedAt:     userModel.UpdatedAt,
	}
	if userModel.Profile != nil {
		user.Profile = &entity.UserProfile{
			UserID:              userModel.Profile.UserID,
			HomeWarehouseNumber: userModel.Profile.HomeWarehouseNumber,
			MarketingOptIn:      userModel.Profile.MarketingOptIn,
			UpdatedAt:           userModel.Profile.UpdatedAt,
		}
	}

	return user
}
