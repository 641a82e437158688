package ports

import (
	"context"
	"time"

	"quotient/contexts/marketplace/notification-service/domain/entities"
	"quotient/internal/shared/events"
)

type LiveEvent = events.Event

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification entities.Notification) error
	GetNotification(ctx context.Context, notificationID string) (entities.Notification, error)
	UpdateNotification(ctx context.Context, notification entities.Notification) error
	ListByUser(ctx context.Context, userID string) ([]entities.Notification, error)
}

// SenderProfile is the resolved public summary embedded in live payloads.
type SenderProfile struct {
	UserID    string
	FullName  string
	AvatarURL string
}

type Directory interface {
	GetSenderProfile(ctx context.Context, userID string) (SenderProfile, error)
}

// LivePublisher pushes an event to any live connection the recipient holds.
// Implementations must be non-blocking best effort.
type LivePublisher interface {
	Publish(ctx context.Context, userID string, event LiveEvent) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
