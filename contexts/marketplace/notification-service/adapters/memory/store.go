package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quotient/contexts/marketplace/notification-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/notification-service/domain/errors"
)

type Store struct {
	mu            sync.RWMutex
	notifications map[string]entities.Notification
}

func NewStore() *Store {
	return &Store{notifications: make(map[string]entities.Notification)}
}

func (s *Store) CreateNotification(_ context.Context, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notifications[notification.NotificationID]; exists {
		return domainerrors.ErrInvalidDispatchInput
	}
	s.notifications[notification.NotificationID] = notification
	return nil
}

func (s *Store) GetNotification(_ context.Context, notificationID string) (entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.notifications[strings.TrimSpace(notificationID)]
	if !exists {
		return entities.Notification{}, domainerrors.ErrNotificationNotFound
	}
	return item, nil
}

func (s *Store) UpdateNotification(_ context.Context, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notifications[notification.NotificationID]; !exists {
		return domainerrors.ErrNotificationNotFound
	}
	s.notifications[notification.NotificationID] = notification
	return nil
}

func (s *Store) ListByUser(_ context.Context, userID string) ([]entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Notification, 0)
	for _, item := range s.notifications {
		if item.UserID == strings.TrimSpace(userID) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
