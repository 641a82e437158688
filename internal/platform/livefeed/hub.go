package livefeed

import (
	"context"
	"log/slog"
	"sync"

	"quotient/internal/shared/events"
)

// Hub is the per-user live delivery channel registry.
// Delivery is best effort: recipients without a subscription are skipped and
// slow subscribers drop events rather than block the publisher.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string][]chan events.Event
	logger      *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string][]chan events.Event),
		logger:      logger,
	}
}

// Publish sends while holding the read lock so a subscriber channel can
// never be closed mid-send: closeSubscriber takes the write lock.
func (h *Hub) Publish(ctx context.Context, userID string, event events.Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subs := h.subscribers[userID]
	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub <- event:
		default:
			if h.logger != nil {
				h.logger.Warn("dropping event for slow subscriber",
					"event", "livefeed_publish_drop",
					"module", "internal/platform/livefeed",
					"layer", "platform",
					"user_id", userID,
					"event_id", event.EventID,
				)
			}
		}
	}

	if h.logger != nil && len(subs) > 0 {
		h.logger.Info("live event published",
			"event", "livefeed_publish",
			"module", "internal/platform/livefeed",
			"layer", "platform",
			"user_id", userID,
			"event_id", event.EventID,
			"event_name", event.Name,
		)
	}
	return nil
}

// Subscribe registers a live channel for userID. The channel is removed and
// closed when ctx is cancelled.
func (h *Hub) Subscribe(ctx context.Context, userID string) <-chan events.Event {
	ch := make(chan events.Event, 128)

	h.mu.Lock()
	h.subscribers[userID] = append(h.subscribers[userID], ch)
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.closeSubscriber(userID, ch)
	}()
	return ch
}

// HasSubscriber reports whether userID currently holds a live connection.
func (h *Hub) HasSubscriber(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID]) > 0
}

// closeSubscriber removes target and closes it under the write lock, which
// excludes in-flight Publish sends holding the read lock.
func (h *Hub) closeSubscriber(userID string, target chan events.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	items := h.subscribers[userID]
	filtered := make([]chan events.Event, 0, len(items))
	for _, item := range items {
		if item != target {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		delete(h.subscribers, userID)
	} else {
		h.subscribers[userID] = filtered
	}
	close(target)
}
