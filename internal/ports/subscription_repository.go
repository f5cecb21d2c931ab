package ports

import (
	"context"
	"time"
)

// SubscriptionData represents a subscription row owned by the subscription service
type SubscriptionData struct {
	ID        uint
	Email     string
	City      string
	Frequency string
	Confirmed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubscriptionSource defines the read-only contract the notification fan-out needs
type SubscriptionSource interface {
	GetConfirmedByFrequency(ctx context.Context, frequency string) ([]*SubscriptionData, error)
	CountConfirmed(ctx context.Context) (int64, error)
}
