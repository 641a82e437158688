package commands

import (
	"context"
	"log/slog"
	"strings"

	application "quotient/contexts/marketplace/quote-service/application"
	"quotient/contexts/marketplace/quote-service/domain/entities"
	domainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	"quotient/contexts/marketplace/quote-service/domain/services"
	"quotient/contexts/marketplace/quote-service/ports"
)

type ReviewQuoteCommand struct {
	RequestID string
	Actor     services.Actor
}

// ReviewQuoteUseCase serves the dedicated accept/reject operations. Unlike the
// generic status update it carries no response text and is creator-only.
type ReviewQuoteUseCase struct {
	Quotes   ports.QuoteRepository
	Notifier ports.Notifier
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (uc ReviewQuoteUseCase) Accept(ctx context.Context, cmd ReviewQuoteCommand) error {
	return uc.review(ctx, cmd, entities.QuoteStatusAccepted)
}

func (uc ReviewQuoteUseCase) Reject(ctx context.Context, cmd ReviewQuoteCommand) error {
	return uc.review(ctx, cmd, entities.QuoteStatusRejected)
}

func (uc ReviewQuoteUseCase) review(ctx context.Context, cmd ReviewQuoteCommand, to entities.QuoteStatus) error {
	logger := application.ResolveLogger(uc.Logger)

	quote, err := uc.Quotes.GetQuote(ctx, strings.TrimSpace(cmd.RequestID))
	if err != nil {
		return err
	}
	if !services.CanReview(cmd.Actor, quote) {
		return domainerrors.ErrForbidden
	}
	if !entities.CanTransition(quote.Status, to) {
		return domainerrors.ErrInvalidStateTransition
	}

	from := quote.Status
	quote.Status = to
	quote.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Quotes.UpdateQuote(ctx, quote); err != nil {
		return err
	}

	notificationType, message := statusNotification(to)
	dispatchBestEffort(ctx, uc.Notifier, logger, ports.NotifyInput{
		UserID:     quote.RequesterID,
		Type:       notificationType,
		Message:    message,
		FromUserID: quote.CreatorID,
	})

	logger.Info("quote reviewed",
		"event", "quote_reviewed",
		"module", "marketplace/quote-service",
		"layer", "application",
		"request_id", quote.RequestID,
		"from_status", string(from),
		"to_status", string(to),
	)
	return nil
}
