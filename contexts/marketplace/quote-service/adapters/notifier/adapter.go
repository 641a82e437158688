package notifieradapter

import (
	"context"

	notificationapp "quotient/contexts/marketplace/notification-service/application"
	"quotient/contexts/marketplace/quote-service/ports"
)

// Adapter bridges the notification dispatcher into the quote Notifier port.
type Adapter struct {
	Notifications notificationapp.Service
}

func (a Adapter) Dispatch(ctx context.Context, input ports.NotifyInput) error {
	_, err := a.Notifications.Dispatch(ctx, notificationapp.DispatchInput{
		UserID:     input.UserID,
		Type:       input.Type,
		Message:    input.Message,
		FromUserID: input.FromUserID,
	})
	return err
}
