package commands

import (
	"context"
	"errors"
	"testing"

	"quotient/contexts/marketplace/quote-service/adapters/memory"
	"quotient/contexts/marketplace/quote-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	"quotient/contexts/marketplace/quote-service/domain/services"
)

func newReviewUseCase(store *memory.Store, notifier *recordingNotifier) ReviewQuoteUseCase {
	return ReviewQuoteUseCase{
		Quotes:   store,
		Notifier: notifier,
		Clock:    store,
	}
}

func TestAcceptPendingQuote(t *testing.T) {
	store := memory.NewStore([]entities.QuoteRequest{seededQuote(entities.QuoteStatusPending)})
	notifier := &recordingNotifier{}
	uc := newReviewUseCase(store, notifier)

	if err := uc.Accept(context.Background(), ReviewQuoteCommand{RequestID: "req-1", Actor: creatorActor}); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	quote, _ := store.GetQuote(context.Background(), "req-1")
	if quote.Status != entities.QuoteStatusAccepted {
		t.Fatalf("expected accepted, got %s", quote.Status)
	}
	if len(notifier.inputs) != 1 || notifier.inputs[0].Type != NotificationTypeQuoteAccepted {
		t.Fatalf("unexpected notifications: %+v", notifier.inputs)
	}
}

func TestRejectPendingQuote(t *testing.T) {
	store := memory.NewStore([]entities.QuoteRequest{seededQuote(entities.QuoteStatusPending)})
	notifier := &recordingNotifier{}
	uc := newReviewUseCase(store, notifier)

	if err := uc.Reject(context.Background(), ReviewQuoteCommand{RequestID: "req-1", Actor: creatorActor}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	quote, _ := store.GetQuote(context.Background(), "req-1")
	if quote.Status != entities.QuoteStatusRejected {
		t.Fatalf("expected rejected, got %s", quote.Status)
	}
	if len(notifier.inputs) != 1 || notifier.inputs[0].UserID != "brand-1" {
		t.Fatalf("requester not notified: %+v", notifier.inputs)
	}
}

func TestReviewIsCreatorOnly(t *testing.T) {
	store := memory.NewStore([]entities.QuoteRequest{seededQuote(entities.QuoteStatusPending)})
	uc := newReviewUseCase(store, &recordingNotifier{})

	err := uc.Accept(context.Background(), ReviewQuoteCommand{
		RequestID: "req-1",
		Actor:     services.Actor{UserID: "admin-1", Role: services.RoleAdmin},
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for admin, got %v", err)
	}

	err = uc.Reject(context.Background(), ReviewQuoteCommand{
		RequestID: "req-1",
		Actor:     services.Actor{UserID: "brand-1", Role: services.RoleBrand},
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for requester, got %v", err)
	}
}

func TestReviewTwiceConflicts(t *testing.T) {
	store := memory.NewStore([]entities.QuoteRequest{seededQuote(entities.QuoteStatusPending)})
	uc := newReviewUseCase(store, &recordingNotifier{})

	if err := uc.Accept(context.Background(), ReviewQuoteCommand{RequestID: "req-1", Actor: creatorActor}); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}
	err := uc.Reject(context.Background(), ReviewQuoteCommand{RequestID: "req-1", Actor: creatorActor})
	if !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid transition after accept, got %v", err)
	}
}
