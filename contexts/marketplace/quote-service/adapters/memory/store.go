package memory

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quotient/contexts/marketplace/quote-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	"quotient/contexts/marketplace/quote-service/ports"
)

type Store struct {
	mu sync.RWMutex

	quotes      map[string]entities.QuoteRequest
	idempotency map[string]ports.IdempotencyRecord
}

func NewStore(seed []entities.QuoteRequest) *Store {
	quotes := make(map[string]entities.QuoteRequest, len(seed))
	for _, item := range seed {
		quotes[item.RequestID] = item
	}
	return &Store{
		quotes:      quotes,
		idempotency: make(map[string]ports.IdempotencyRecord),
	}
}

func (s *Store) CreateQuote(_ context.Context, quote entities.QuoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.quotes[quote.RequestID]; exists {
		return domainerrors.ErrQuoteAlreadyExists
	}
	s.quotes[quote.RequestID] = quote
	return nil
}

func (s *Store) UpdateQuote(_ context.Context, quote entities.QuoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.quotes[quote.RequestID]; !exists {
		return domainerrors.ErrQuoteNotFound
	}
	s.quotes[quote.RequestID] = quote
	return nil
}

func (s *Store) GetQuote(_ context.Context, requestID string) (entities.QuoteRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.quotes[strings.TrimSpace(requestID)]
	if !exists {
		return entities.QuoteRequest{}, domainerrors.ErrQuoteNotFound
	}
	return item, nil
}

func (s *Store) ListQuotes(_ context.Context, filter ports.QuoteFilter) ([]entities.QuoteRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.QuoteRequest, 0, len(s.quotes))
	for _, quote := range s.quotes {
		if strings.TrimSpace(filter.CreatorID) != "" && quote.CreatorID != strings.TrimSpace(filter.CreatorID) {
			continue
		}
		if strings.TrimSpace(filter.RequesterID) != "" && quote.RequesterID != strings.TrimSpace(filter.RequesterID) {
			continue
		}
		items = append(items, quote)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetRecord(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.idempotency[key]
	if !exists {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.After(now) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, exists := s.idempotency[record.Key]; exists {
		if existing.RequestHash != record.RequestHash || !bytes.Equal(existing.ResponsePayload, record.ResponsePayload) {
			return domainerrors.ErrIdempotencyKeyConflict
		}
	}
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
