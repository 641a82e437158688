package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"quotient/contexts/marketplace/quote-service/ports"
)

const keyPrefix = "quote:idem:"

// IdempotencyStore keeps creation idempotency records in Redis, letting the
// key TTL handle expiry instead of the caller-supplied clock.
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

type storedRecord struct {
	RequestHash     string `json:"request_hash"`
	ResponsePayload []byte `json:"response_payload"`
}

func (s *IdempotencyStore) GetRecord(ctx context.Context, key string, _ time.Time) (ports.IdempotencyRecord, bool, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}

	var stored storedRecord
	if err := json.Unmarshal(raw, &stored); err != nil {
		return ports.IdempotencyRecord{}, false, err
	}
	return ports.IdempotencyRecord{
		Key:             key,
		RequestHash:     stored.RequestHash,
		ResponsePayload: stored.ResponsePayload,
	}, true, nil
}

func (s *IdempotencyStore) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	raw, err := json.Marshal(storedRecord{
		RequestHash:     record.RequestHash,
		ResponsePayload: record.ResponsePayload,
	})
	if err != nil {
		return err
	}

	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, keyPrefix+record.Key, raw, ttl).Err()
}
