package postgres

import (
	"context"

	"padpro/internal/domain/entity"
	"padpro/internal/domain/repository"
	"padpro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new instance of subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// UpsertSubscription creates or refreshes the record for (user, provider).
// Providers retry webhook deliveries, so the write must be idempotent.
func (r *subscriptionRepository) UpsertSubscription(ctx context.Context, sub *entity.BillingSubscription) error {
	subModel := toSubscriptionModel(sub)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"provider_ref", "plan", "status", "current_period_end", "updated_at",
			}),
		}).
		Create(subModel).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert subscription")
	}

	sub.ID = subModel.ID

	return nil
}

// FindSubscriptionByUser retrieves the newest subscription record for a user.
func (r *subscriptionRepository) FindSubscriptionByUser(ctx context.Context, userID uuid.UUID) (*entity.BillingSubscription, error) {
	var subModel model.BillingSubscriptionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&subModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user")
	}

	return toSubscriptionEntity(&subModel), nil
}

// --- Mapper functions ---

func toSubscriptionModel(sub *entity.BillingSubscription) *model.BillingSubscriptionModel {
	return &model.BillingSubscriptionModel{
		ID:               sub.ID,
		UserID:           sub.UserID,
		Provider:         sub.Provider,
		ProviderRef:      sub.ProviderRef,
		Plan:             sub.Plan,
		Status:           sub.Status,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
		CreatedAt:        sub.CreatedAt,
		UpdatedAt:        sub.UpdatedAt,
	}
}

func toSubscriptionEntity(subModel *model.BillingSubscriptionModel) *entity.BillingSubscription {
	return &entity.BillingSubscription{
		ID:               subModel.ID,
		UserID:           subModel.UserID,
		Provider:         subModel.Provider,
		ProviderRef:      subModel.ProviderRef,
		Plan:             subModel.Plan,
		Status:           subModel.Status,
		CurrentPeriodEnd: subModel.CurrentPeriodEnd,
		CreatedAt:        subModel.CreatedAt,
		UpdatedAt:        subModel.UpdatedAt,
	}
}
