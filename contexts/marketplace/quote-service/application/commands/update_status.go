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

type UpdateStatusCommand struct {
	RequestID string
	Actor     services.Actor
	Status    string
	Response  string
}

type UpdateStatusUseCase struct {
	Quotes   ports.QuoteRepository
	Notifier ports.Notifier
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (uc UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (entities.QuoteRequest, error) {
	logger := application.ResolveLogger(uc.Logger)

	newStatus := entities.QuoteStatus(strings.TrimSpace(cmd.Status))
	if !entities.IsSupportedStatusUpdate(newStatus) {
		return entities.QuoteRequest{}, domainerrors.ErrInvalidStatusValue
	}

	quote, err := uc.Quotes.GetQuote(ctx, strings.TrimSpace(cmd.RequestID))
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if !services.CanUpdateStatus(cmd.Actor, quote) {
		return entities.QuoteRequest{}, domainerrors.ErrForbidden
	}
	if !entities.CanTransition(quote.Status, newStatus) {
		return entities.QuoteRequest{}, domainerrors.ErrInvalidStateTransition
	}

	from := quote.Status
	quote.Status = newStatus
	if strings.TrimSpace(cmd.Response) != "" {
		quote.Response = strings.TrimSpace(cmd.Response)
	}
	quote.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Quotes.UpdateQuote(ctx, quote); err != nil {
		return entities.QuoteRequest{}, err
	}

	notificationType, message := statusNotification(newStatus)
	dispatchBestEffort(ctx, uc.Notifier, logger, ports.NotifyInput{
		UserID:     quote.RequesterID,
		Type:       notificationType,
		Message:    message,
		FromUserID: quote.CreatorID,
	})

	logger.Info("quote status changed",
		"event", "quote_status_changed",
		"module", "marketplace/quote-service",
		"layer", "application",
		"request_id", quote.RequestID,
		"from_status", string(from),
		"to_status", string(newStatus),
	)
	return quote, nil
}
