package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotient/contexts/marketplace/quote-service/adapters/memory"
	"quotient/contexts/marketplace/quote-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	"quotient/contexts/marketplace/quote-service/domain/services"
	"quotient/contexts/marketplace/quote-service/ports"
)

type fakeDirectory struct {
	profiles map[string]ports.PublicProfile
}

func (f fakeDirectory) GetProfile(_ context.Context, userID string) (ports.PublicProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return ports.PublicProfile{}, domainerrors.ErrUserNotFound
	}
	return profile, nil
}

func (f fakeDirectory) GetProfileByUsername(_ context.Context, username string) (ports.PublicProfile, error) {
	for _, profile := range f.profiles {
		if profile.Username == username {
			return profile, nil
		}
	}
	return ports.PublicProfile{}, domainerrors.ErrUserNotFound
}

func (f fakeDirectory) ResolveProfiles(_ context.Context, userIDs []string) (map[string]ports.PublicProfile, error) {
	result := make(map[string]ports.PublicProfile, len(userIDs))
	for _, id := range userIDs {
		if profile, ok := f.profiles[id]; ok {
			result[id] = profile
		}
	}
	return result, nil
}

type recordingNotifier struct {
	inputs []ports.NotifyInput
	err    error
}

func (n *recordingNotifier) Dispatch(_ context.Context, input ports.NotifyInput) error {
	if n.err != nil {
		return n.err
	}
	n.inputs = append(n.inputs, input)
	return nil
}

func testDirectory() fakeDirectory {
	return fakeDirectory{profiles: map[string]ports.PublicProfile{
		"brand-1":   {UserID: "brand-1", FullName: "Acme Inc", Username: "acme"},
		"creator-1": {UserID: "creator-1", FullName: "Jane Doe", Username: "jane"},
	}}
}

func newCreateUseCase(store *memory.Store, directory fakeDirectory, notifier *recordingNotifier) CreateQuoteUseCase {
	return CreateQuoteUseCase{
		Quotes:         store,
		Directory:      directory,
		Notifier:       notifier,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    store,
		IdempotencyTTL: 24 * time.Hour,
	}
}

func validCreateCommand() CreateQuoteCommand {
	return CreateQuoteCommand{
		Actor:              services.Actor{UserID: "brand-1", Username: "acme", Role: services.RoleBrand},
		IdempotencyKey:     "create-1",
		CreatorID:          "creator-1",
		PromotionType:      "sponsored_post",
		CampaignObjective:  "brand awareness",
		PlatformPreference: []string{"instagram"},
		ContentFormat:      []string{"reel"},
		ContentGuidelines:  "keep it upbeat",
		Timeline:           &entities.Timeline{StartDate: "2026-09-01", EndDate: "2026-09-30"},
		Budget:             &entities.Budget{Min: 500, Max: 1500, Currency: "USD"},
	}
}

func TestCreateQuoteStartsPendingAndNotifiesCreator(t *testing.T) {
	store := memory.NewStore(nil)
	notifier := &recordingNotifier{}
	uc := newCreateUseCase(store, testDirectory(), notifier)

	result, err := uc.Execute(context.Background(), validCreateCommand())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.Quote.Status != entities.QuoteStatusPending {
		t.Fatalf("expected pending status, got %s", result.Quote.Status)
	}
	if result.Quote.RequesterID != "brand-1" || result.Quote.CreatorID != "creator-1" {
		t.Fatalf("unexpected parties: %s -> %s", result.Quote.RequesterID, result.Quote.CreatorID)
	}
	if result.Quote.RequestID == "" {
		t.Fatal("expected a generated request id")
	}

	persisted, err := store.GetQuote(context.Background(), result.Quote.RequestID)
	if err != nil {
		t.Fatalf("quote not persisted: %v", err)
	}
	if persisted.Status != entities.QuoteStatusPending {
		t.Fatalf("persisted status = %s", persisted.Status)
	}

	if len(notifier.inputs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.inputs))
	}
	sent := notifier.inputs[0]
	if sent.UserID != "creator-1" || sent.FromUserID != "brand-1" {
		t.Fatalf("notification routed wrong: %+v", sent)
	}
	if sent.Type != NotificationTypeQuoteRequest {
		t.Fatalf("unexpected notification type %s", sent.Type)
	}
}

func TestCreateQuoteIsBrandOnly(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCreateUseCase(store, testDirectory(), &recordingNotifier{})

	cmd := validCreateCommand()
	cmd.Actor = services.Actor{UserID: "creator-1", Role: services.RoleCreator}
	if _, err := uc.Execute(context.Background(), cmd); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCreateQuoteReportsMissingFields(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCreateUseCase(store, testDirectory(), &recordingNotifier{})

	cmd := validCreateCommand()
	cmd.PromotionType = ""
	cmd.Budget = nil
	result, err := uc.Execute(context.Background(), cmd)
	if !errors.Is(err, domainerrors.ErrMissingRequiredFields) {
		t.Fatalf("expected missing fields error, got %v", err)
	}
	if len(result.Missing) != 2 {
		t.Fatalf("expected 2 fields reported, got %v", result.Missing)
	}
	if result.Missing[0] != "promotion_type" || result.Missing[1] != "budget" {
		t.Fatalf("unexpected missing fields: %v", result.Missing)
	}
}

func TestCreateQuoteRequiresIdempotencyKey(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCreateUseCase(store, testDirectory(), &recordingNotifier{})

	cmd := validCreateCommand()
	cmd.IdempotencyKey = "  "
	if _, err := uc.Execute(context.Background(), cmd); !errors.Is(err, domainerrors.ErrIdempotencyKeyRequired) {
		t.Fatalf("expected idempotency key required, got %v", err)
	}
}

func TestCreateQuotePrivateEventNeedsCompleteDetails(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCreateUseCase(store, testDirectory(), &recordingNotifier{})

	cmd := validCreateCommand()
	cmd.IsPrivateEvent = true
	if _, err := uc.Execute(context.Background(), cmd); !errors.Is(err, domainerrors.ErrIncompleteEventDetails) {
		t.Fatalf("expected incomplete event details, got %v", err)
	}

	cmd.EventDetails = &entities.EventDetails{
		EventName:          "Launch Party",
		EventType:          "product_launch",
		EventDate:          "2026-10-01",
		EventLocation:      "Berlin",
		ExpectedAttendance: 100,
		EventDescription:   "Evening launch event",
	}
	result, err := uc.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("create with complete details failed: %v", err)
	}
	if result.Quote.EventDetails == nil || result.Quote.EventDetails.EventName != "Launch Party" {
		t.Fatalf("event details not carried: %+v", result.Quote.EventDetails)
	}
}

func TestCreateQuoteUnknownCreator(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCreateUseCase(store, testDirectory(), &recordingNotifier{})

	cmd := validCreateCommand()
	cmd.CreatorID = "creator-missing"
	if _, err := uc.Execute(context.Background(), cmd); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestCreateQuoteIdempotentReplay(t *testing.T) {
	store := memory.NewStore(nil)
	notifier := &recordingNotifier{}
	uc := newCreateUseCase(store, testDirectory(), notifier)

	first, err := uc.Execute(context.Background(), validCreateCommand())
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := uc.Execute(context.Background(), validCreateCommand())
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !second.Replayed {
		t.Fatal("expected replayed result")
	}
	if first.Quote.RequestID != second.Quote.RequestID {
		t.Fatalf("replay returned a different quote: %s vs %s", first.Quote.RequestID, second.Quote.RequestID)
	}
	if len(notifier.inputs) != 1 {
		t.Fatalf("replay must not notify again, got %d dispatches", len(notifier.inputs))
	}

	quotes, err := store.ListQuotes(context.Background(), ports.QuoteFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected a single persisted quote, got %d", len(quotes))
	}
}

func TestCreateQuoteIdempotencyConflict(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCreateUseCase(store, testDirectory(), &recordingNotifier{})

	if _, err := uc.Execute(context.Background(), validCreateCommand()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	cmd := validCreateCommand()
	cmd.CampaignObjective = "a different objective"
	if _, err := uc.Execute(context.Background(), cmd); !errors.Is(err, domainerrors.ErrIdempotencyKeyConflict) {
		t.Fatalf("expected idempotency conflict, got %v", err)
	}
}

func TestCreateQuoteSurvivesNotifierFailure(t *testing.T) {
	store := memory.NewStore(nil)
	notifier := &recordingNotifier{err: errors.New("notification channel down")}
	uc := newCreateUseCase(store, testDirectory(), notifier)

	result, err := uc.Execute(context.Background(), validCreateCommand())
	if err != nil {
		t.Fatalf("create must not fail on notifier error: %v", err)
	}
	if _, err := store.GetQuote(context.Background(), result.Quote.RequestID); err != nil {
		t.Fatalf("quote not persisted: %v", err)
	}
}

type putFailingIdempotency struct {
	*memory.Store
}

func (p putFailingIdempotency) PutRecord(context.Context, ports.IdempotencyRecord) error {
	return errors.New("record store unavailable")
}

func TestCreateQuoteSurvivesIdempotencyStoreFailure(t *testing.T) {
	store := memory.NewStore(nil)
	notifier := &recordingNotifier{}
	uc := newCreateUseCase(store, testDirectory(), notifier)
	uc.Idempotency = putFailingIdempotency{Store: store}

	result, err := uc.Execute(context.Background(), validCreateCommand())
	if err != nil {
		t.Fatalf("create must not fail on idempotency store error: %v", err)
	}
	if _, err := store.GetQuote(context.Background(), result.Quote.RequestID); err != nil {
		t.Fatalf("quote not persisted: %v", err)
	}
	if len(notifier.inputs) != 1 {
		t.Fatalf("expected the creator notification, got %d", len(notifier.inputs))
	}
}
