package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quotient/contexts/identity-access/directory-service/domain/entities"
	domainerrors "quotient/contexts/identity-access/directory-service/domain/errors"
)

type Store struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

func NewStore(seed []entities.User) *Store {
	users := make(map[string]entities.User, len(seed))
	for _, item := range seed {
		users[item.UserID] = item
	}
	return &Store{users: users}
}

func (s *Store) CreateUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.UserID]; exists {
		return domainerrors.ErrInvalidUserInput
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) GetUser(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.users[strings.TrimSpace(userID)]
	if !exists {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return item, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.users {
		if item.Username == strings.TrimSpace(username) {
			return item, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) ListUsersByIDs(_ context.Context, userIDs []string) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.User, 0, len(userIDs))
	for _, id := range userIDs {
		if item, exists := s.users[id]; exists {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
