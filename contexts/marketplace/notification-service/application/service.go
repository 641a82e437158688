package application

import (
	"context"
	"log/slog"
	"strings"

	"quotient/contexts/marketplace/notification-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/notification-service/domain/errors"
	"quotient/contexts/marketplace/notification-service/ports"
)

const liveEventName = "newNotification"

type Service struct {
	Notifications ports.NotificationRepository
	Directory     ports.Directory
	Live          ports.LivePublisher
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

type DispatchInput struct {
	UserID     string
	Type       string
	Message    string
	FromUserID string
}

// Dispatch persists a notification and pushes it to the recipient's live
// channel. The persisted record is authoritative; live delivery is best effort
// and never fails the call.
func (s Service) Dispatch(ctx context.Context, input DispatchInput) (entities.Notification, error) {
	logger := ResolveLogger(s.Logger)
	if strings.TrimSpace(input.UserID) == "" || strings.TrimSpace(input.Type) == "" || strings.TrimSpace(input.Message) == "" {
		return entities.Notification{}, domainerrors.ErrInvalidDispatchInput
	}

	now := s.Clock.Now().UTC()
	notificationID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Notification{}, err
	}

	notification := entities.Notification{
		NotificationID: notificationID,
		UserID:         strings.TrimSpace(input.UserID),
		Type:           strings.TrimSpace(input.Type),
		Message:        strings.TrimSpace(input.Message),
		FromUserID:     strings.TrimSpace(input.FromUserID),
		Read:           false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Notifications.CreateNotification(ctx, notification); err != nil {
		return entities.Notification{}, err
	}

	s.pushLive(ctx, notification)

	logger.Info("notification dispatched",
		"event", "notification_dispatched",
		"module", "marketplace/notification-service",
		"layer", "application",
		"notification_id", notification.NotificationID,
		"user_id", notification.UserID,
		"type", notification.Type,
	)
	return notification, nil
}

func (s Service) ListForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	return s.Notifications.ListByUser(ctx, strings.TrimSpace(userID))
}

func (s Service) MarkRead(ctx context.Context, userID string, notificationID string) (entities.Notification, error) {
	notification, err := s.Notifications.GetNotification(ctx, strings.TrimSpace(notificationID))
	if err != nil {
		return entities.Notification{}, err
	}
	if notification.UserID != strings.TrimSpace(userID) {
		return entities.Notification{}, domainerrors.ErrNotificationForbidden
	}
	if notification.Read {
		return notification, nil
	}

	notification.Read = true
	notification.UpdatedAt = s.Clock.Now().UTC()
	if err := s.Notifications.UpdateNotification(ctx, notification); err != nil {
		return entities.Notification{}, err
	}
	return notification, nil
}

// pushLive assembles the live view payload and publishes it. Failures are
// logged and swallowed: the recipient reads the persisted record on next poll.
func (s Service) pushLive(ctx context.Context, notification entities.Notification) {
	logger := ResolveLogger(s.Logger)
	if s.Live == nil {
		return
	}

	var sender map[string]any
	if notification.FromUserID != "" && s.Directory != nil {
		if profile, err := s.Directory.GetSenderProfile(ctx, notification.FromUserID); err == nil {
			sender = map[string]any{
				"user_id":    profile.UserID,
				"full_name":  profile.FullName,
				"avatar_url": profile.AvatarURL,
			}
		}
	}

	eventID, err := s.IDGen.NewID(ctx)
	if err != nil {
		logger.Warn("live push skipped",
			"event", "notification_live_push_failed",
			"module", "marketplace/notification-service",
			"layer", "application",
			"notification_id", notification.NotificationID,
			"error", err.Error(),
		)
		return
	}

	event := ports.LiveEvent{
		EventID:       eventID,
		Name:          liveEventName,
		UserID:        notification.UserID,
		OccurredAtUTC: notification.CreatedAt,
		Payload: map[string]any{
			"notification": map[string]any{
				"notification_id": notification.NotificationID,
				"user_id":         notification.UserID,
				"type":            notification.Type,
				"message":         notification.Message,
				"from_user":       sender,
				"is_read":         notification.Read,
				"created_at":      notification.CreatedAt,
				"updated_at":      notification.UpdatedAt,
			},
		},
	}
	if err := s.Live.Publish(ctx, notification.UserID, event); err != nil {
		logger.Warn("live push failed",
			"event", "notification_live_push_failed",
			"module", "marketplace/notification-service",
			"layer", "application",
			"notification_id", notification.NotificationID,
			"user_id", notification.UserID,
			"error", err.Error(),
		)
	}
}
