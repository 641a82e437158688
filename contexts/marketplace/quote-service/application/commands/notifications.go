package commands

import (
	"context"
	"fmt"
	"log/slog"

	"quotient/contexts/marketplace/quote-service/domain/entities"
	"quotient/contexts/marketplace/quote-service/ports"
)

const (
	NotificationTypeQuoteRequest   = "quote_request"
	NotificationTypeQuoteAccepted  = "quote_accepted"
	NotificationTypeQuoteRejected  = "quote_rejected"
	NotificationTypeQuoteCompleted = "quote_completed"
	NotificationTypeQuoteStatus    = "quote_status"
)

// statusNotification maps a transition target to the counterparty-facing
// notification type and message. The fallback branch covers status values that
// slip past the gate; it should not be reachable.
func statusNotification(status entities.QuoteStatus) (string, string) {
	switch status {
	case entities.QuoteStatusAccepted:
		return NotificationTypeQuoteAccepted, "Your quote request has been accepted"
	case entities.QuoteStatusRejected:
		return NotificationTypeQuoteRejected, "Your quote request has been rejected"
	case entities.QuoteStatusCompleted:
		return NotificationTypeQuoteCompleted, "Your quote request has been completed"
	default:
		return NotificationTypeQuoteStatus, fmt.Sprintf("Your quote request status updated to %s", status)
	}
}

// dispatchBestEffort sends a notification and logs failures instead of
// propagating them: the persisted quote mutation is the authoritative effect.
func dispatchBestEffort(ctx context.Context, notifier ports.Notifier, logger *slog.Logger, input ports.NotifyInput) {
	if notifier == nil {
		return
	}
	if err := notifier.Dispatch(ctx, input); err != nil && logger != nil {
		logger.Warn("notification dispatch failed",
			"event", "quote_notification_failed",
			"module", "marketplace/quote-service",
			"layer", "application",
			"user_id", input.UserID,
			"type", input.Type,
			"error", err.Error(),
		)
	}
}
