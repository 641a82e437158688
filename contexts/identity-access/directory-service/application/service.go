package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"quotient/contexts/identity-access/directory-service/domain/entities"
	domainerrors "quotient/contexts/identity-access/directory-service/domain/errors"
	"quotient/contexts/identity-access/directory-service/ports"
)

type Service struct {
	Users  ports.UserRepository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type RegisterUserInput struct {
	Role      string
	FullName  string
	Email     string
	Username  string
	AvatarURL string
}

func (s Service) RegisterUser(ctx context.Context, input RegisterUserInput) (entities.User, error) {
	logger := ResolveLogger(s.Logger)

	now := s.Clock.Now().UTC()
	userID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		UserID:    userID,
		Role:      entities.Role(strings.TrimSpace(strings.ToLower(input.Role))),
		FullName:  strings.TrimSpace(input.FullName),
		Email:     strings.TrimSpace(input.Email),
		Username:  strings.TrimSpace(input.Username),
		AvatarURL: strings.TrimSpace(input.AvatarURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !entities.IsSupportedRole(user.Role) {
		return entities.User{}, domainerrors.ErrInvalidRole
	}
	if !user.ValidateBasics() {
		return entities.User{}, domainerrors.ErrInvalidUserInput
	}

	if _, err := s.Users.GetUserByUsername(ctx, user.Username); err == nil {
		return entities.User{}, domainerrors.ErrUsernameTaken
	} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return entities.User{}, err
	}

	if err := s.Users.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	logger.Info("user registered",
		"event", "user_registered",
		"module", "identity-access/directory-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)
	return user, nil
}

func (s Service) GetUser(ctx context.Context, userID string) (entities.User, error) {
	return s.Users.GetUser(ctx, strings.TrimSpace(userID))
}

func (s Service) GetUserByUsername(ctx context.Context, username string) (entities.User, error) {
	return s.Users.GetUserByUsername(ctx, strings.TrimSpace(username))
}

func (s Service) ResolveProfile(ctx context.Context, userID string) (entities.PublicProfile, error) {
	user, err := s.Users.GetUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return entities.PublicProfile{}, err
	}
	return user.PublicProfile(), nil
}

// ResolveProfiles resolves a batch of user ids. Unknown ids are skipped so list
// queries stay usable when a party record is gone.
func (s Service) ResolveProfiles(ctx context.Context, userIDs []string) (map[string]entities.PublicProfile, error) {
	unique := make([]string, 0, len(userIDs))
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	users, err := s.Users.ListUsersByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	profiles := make(map[string]entities.PublicProfile, len(users))
	for _, user := range users {
		profiles[user.UserID] = user.PublicProfile()
	}
	return profiles, nil
}
