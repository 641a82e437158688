package ports

import (
	"context"
	"time"

	"quotient/contexts/marketplace/quote-service/domain/entities"
)

type QuoteFilter struct {
	CreatorID   string
	RequesterID string
}

type QuoteRepository interface {
	CreateQuote(ctx context.Context, quote entities.QuoteRequest) error
	UpdateQuote(ctx context.Context, quote entities.QuoteRequest) error
	GetQuote(ctx context.Context, requestID string) (entities.QuoteRequest, error)
	ListQuotes(ctx context.Context, filter QuoteFilter) ([]entities.QuoteRequest, error)
}

// PublicProfile is the counterparty summary resolved through the directory.
type PublicProfile struct {
	UserID    string
	FullName  string
	Username  string
	Email     string
	AvatarURL string
}

type Directory interface {
	GetProfile(ctx context.Context, userID string) (PublicProfile, error)
	GetProfileByUsername(ctx context.Context, username string) (PublicProfile, error)
	ResolveProfiles(ctx context.Context, userIDs []string) (map[string]PublicProfile, error)
}

type NotifyInput struct {
	UserID     string
	Type       string
	Message    string
	FromUserID string
}

// Notifier dispatches a notification to the counterparty. Callers treat
// failures as best effort: a failed dispatch never rolls back a persisted
// status change.
type Notifier interface {
	Dispatch(ctx context.Context, input NotifyInput) error
}

type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
