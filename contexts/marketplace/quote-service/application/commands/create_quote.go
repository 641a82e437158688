package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "quotient/contexts/marketplace/quote-service/application"
	"quotient/contexts/marketplace/quote-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	"quotient/contexts/marketplace/quote-service/domain/services"
	"quotient/contexts/marketplace/quote-service/ports"
)

type CreateQuoteCommand struct {
	Actor              services.Actor
	IdempotencyKey     string
	CreatorID          string
	PromotionType      string
	CampaignObjective  string
	PlatformPreference []string
	ContentFormat      []string
	ContentGuidelines  string
	Attachments        []string
	AudienceTargeting  *entities.AudienceTargeting
	Timeline           *entities.Timeline
	Budget             *entities.Budget
	AdditionalNotes    string
	IsPrivateEvent     bool
	EventDetails       *entities.EventDetails
}

type CreateQuoteUseCase struct {
	Quotes         ports.QuoteRepository
	Directory      ports.Directory
	Notifier       ports.Notifier
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

type CreateQuoteResult struct {
	Quote    entities.QuoteRequest
	Missing  []string
	Replayed bool
}

func (uc CreateQuoteUseCase) Execute(ctx context.Context, cmd CreateQuoteCommand) (CreateQuoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if !services.CanCreate(cmd.Actor) {
		return CreateQuoteResult{}, domainerrors.ErrForbidden
	}
	if strings.TrimSpace(cmd.IdempotencyKey) == "" {
		return CreateQuoteResult{}, domainerrors.ErrIdempotencyKeyRequired
	}

	missing := entities.MissingRequiredFields(
		cmd.CreatorID,
		cmd.PromotionType,
		cmd.CampaignObjective,
		cmd.ContentGuidelines,
		cmd.Timeline,
		cmd.Budget,
	)
	if len(missing) > 0 {
		return CreateQuoteResult{Missing: missing}, fmt.Errorf("%w: %s", domainerrors.ErrMissingRequiredFields, strings.Join(missing, ", "))
	}
	if cmd.IsPrivateEvent && (cmd.EventDetails == nil || !cmd.EventDetails.Complete()) {
		return CreateQuoteResult{}, domainerrors.ErrIncompleteEventDetails
	}

	now := uc.Clock.Now().UTC()
	requestHash := hashCreateQuoteCommand(cmd)
	if record, found, err := uc.Idempotency.GetRecord(ctx, cmd.IdempotencyKey, now); err != nil {
		return CreateQuoteResult{}, err
	} else if found {
		if record.RequestHash != requestHash {
			return CreateQuoteResult{}, domainerrors.ErrIdempotencyKeyConflict
		}
		var quote entities.QuoteRequest
		if err := json.Unmarshal(record.ResponsePayload, &quote); err != nil {
			return CreateQuoteResult{}, err
		}
		return CreateQuoteResult{Quote: quote, Replayed: true}, nil
	}

	creator, err := uc.Directory.GetProfile(ctx, strings.TrimSpace(cmd.CreatorID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return CreateQuoteResult{}, domainerrors.ErrUserNotFound
		}
		return CreateQuoteResult{}, err
	}

	requester, err := uc.Directory.GetProfile(ctx, cmd.Actor.UserID)
	if err != nil {
		return CreateQuoteResult{}, err
	}

	requestID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return CreateQuoteResult{}, err
	}

	quote := entities.QuoteRequest{
		RequestID:          requestID,
		RequesterID:        cmd.Actor.UserID,
		CreatorID:          creator.UserID,
		PromotionType:      strings.TrimSpace(cmd.PromotionType),
		CampaignObjective:  strings.TrimSpace(cmd.CampaignObjective),
		PlatformPreference: copyOrEmpty(cmd.PlatformPreference),
		ContentFormat:      copyOrEmpty(cmd.ContentFormat),
		ContentGuidelines:  strings.TrimSpace(cmd.ContentGuidelines),
		Attachments:        copyOrEmpty(cmd.Attachments),
		Timeline:           *cmd.Timeline,
		Budget:             *cmd.Budget,
		AdditionalNotes:    strings.TrimSpace(cmd.AdditionalNotes),
		IsPrivateEvent:     cmd.IsPrivateEvent,
		Status:             entities.QuoteStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if cmd.AudienceTargeting != nil {
		quote.AudienceTargeting = *cmd.AudienceTargeting
	}
	if cmd.IsPrivateEvent {
		details := *cmd.EventDetails
		quote.EventDetails = &details
	}

	if err := uc.Quotes.CreateQuote(ctx, quote); err != nil {
		return CreateQuoteResult{}, err
	}

	// The quote is already persisted; a failed idempotency record only costs
	// replay protection for this key, so it must not fail the request.
	if serialized, err := json.Marshal(quote); err == nil {
		if err := uc.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
			Key:             cmd.IdempotencyKey,
			RequestHash:     requestHash,
			ResponsePayload: serialized,
			ExpiresAt:       now.Add(uc.IdempotencyTTL),
		}); err != nil {
			logger.Warn("idempotency record not stored",
				"event", "quote_idempotency_store_failed",
				"module", "marketplace/quote-service",
				"layer", "application",
				"request_id", quote.RequestID,
				"error", err,
			)
		}
	}

	requesterName := requester.FullName
	if requesterName == "" {
		requesterName = requester.Username
	}
	dispatchBestEffort(ctx, uc.Notifier, logger, ports.NotifyInput{
		UserID:     quote.CreatorID,
		Type:       NotificationTypeQuoteRequest,
		Message:    fmt.Sprintf("%s sent you a new quote request", requesterName),
		FromUserID: quote.RequesterID,
	})

	logger.Info("quote request created",
		"event", "quote_request_created",
		"module", "marketplace/quote-service",
		"layer", "application",
		"request_id", quote.RequestID,
		"requester_id", quote.RequesterID,
		"creator_id", quote.CreatorID,
	)
	return CreateQuoteResult{Quote: quote}, nil
}

func hashCreateQuoteCommand(cmd CreateQuoteCommand) string {
	payload := map[string]any{
		"requester_id":        cmd.Actor.UserID,
		"creator_id":          strings.TrimSpace(cmd.CreatorID),
		"promotion_type":      strings.TrimSpace(cmd.PromotionType),
		"campaign_objective":  strings.TrimSpace(cmd.CampaignObjective),
		"platform_preference": copyOrEmpty(cmd.PlatformPreference),
		"content_format":      copyOrEmpty(cmd.ContentFormat),
		"content_guidelines":  strings.TrimSpace(cmd.ContentGuidelines),
		"attachments":         copyOrEmpty(cmd.Attachments),
		"additional_notes":    strings.TrimSpace(cmd.AdditionalNotes),
		"is_private_event":    cmd.IsPrivateEvent,
	}
	if cmd.Timeline != nil {
		payload["timeline"] = *cmd.Timeline
	}
	if cmd.Budget != nil {
		payload["budget"] = *cmd.Budget
	}
	if cmd.AudienceTargeting != nil {
		payload["audience_targeting"] = *cmd.AudienceTargeting
	}
	if cmd.EventDetails != nil {
		payload["event_details"] = *cmd.EventDetails
	}
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func copyOrEmpty(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	return append([]string(nil), items...)
}
