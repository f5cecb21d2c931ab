package database

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"weathersvc.app/internal/ports"
	"weathersvc.app/pkg/errors"
)

// SubscriptionModel maps the subscriptions table owned by the subscription
// service. This service only reads it.
type SubscriptionModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"index;not null"`
	City      string `gorm:"not null"`
	Frequency string `gorm:"not null"`
	Confirmed bool   `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// SubscriptionSourceAdapter implements the SubscriptionSource port using GORM
type SubscriptionSourceAdapter struct {
	db *gorm.DB
}

func NewSubscriptionSourceAdapter(db *gorm.DB) *SubscriptionSourceAdapter {
	return &SubscriptionSourceAdapter{db: db}
}

// GetConfirmedByFrequency returns confirmed, non-deleted subscriptions for
// frequency ordered by id
func (r *SubscriptionSourceAdapter) GetConfirmedByFrequency(ctx context.Context, frequency string) ([]*ports.SubscriptionData, error) {
	frequency = strings.ToLower(strings.TrimSpace(frequency))
	if frequency == "" {
		return nil, errors.NewValidationError("frequency cannot be empty")
	}

	var models []SubscriptionModel
	result := r.db.WithContext(ctx).
		Where("frequency = ? AND confirmed = ?", frequency, true).
		Order("id").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to get confirmed subscriptions", result.Error)
	}

	subscriptions := make([]*ports.SubscriptionData, len(models))
	for i := range models {
		subscriptions[i] = modelToData(&models[i])
	}
	return subscriptions, nil
}

// CountConfirmed counts all confirmed subscriptions
func (r *SubscriptionSourceAdapter) CountConfirmed(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&SubscriptionModel{}).Where("confirmed = ?", true).Count(&count)
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to count confirmed subscriptions", result.Error)
	}
	return count, nil
}

func modelToData(model *SubscriptionModel) *ports.SubscriptionData {
	return &ports.SubscriptionData{
		ID:        model.ID,
		Email:     model.Email,
		City:      model.City,
		Frequency: model.Frequency,
		Confirmed: model.Confirmed,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
