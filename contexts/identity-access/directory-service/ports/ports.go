package ports

import (
	"context"
	"time"

	"quotient/contexts/identity-access/directory-service/domain/entities"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user entities.User) error
	GetUser(ctx context.Context, userID string) (entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (entities.User, error)
	ListUsersByIDs(ctx context.Context, userIDs []string) ([]entities.User, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
