package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"quotient/contexts/marketplace/notification-service/application"
	"quotient/contexts/marketplace/notification-service/domain/entities"
	httptransport "quotient/contexts/marketplace/notification-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListNotificationsHandler(ctx context.Context, userID string) (httptransport.ListNotificationsResponse, error) {
	items, err := h.Service.ListForUser(ctx, userID)
	if err != nil {
		return httptransport.ListNotificationsResponse{}, err
	}
	result := make([]httptransport.NotificationDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapNotification(item))
	}
	return httptransport.ListNotificationsResponse{
		Success: true,
		Data:    result,
	}, nil
}

func (h Handler) MarkReadHandler(ctx context.Context, userID string, notificationID string) (httptransport.MarkReadResponse, error) {
	item, err := h.Service.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return httptransport.MarkReadResponse{}, err
	}
	return httptransport.MarkReadResponse{
		Message: "Notification marked as read",
		Data:    mapNotification(item),
	}, nil
}

func mapNotification(item entities.Notification) httptransport.NotificationDTO {
	return httptransport.NotificationDTO{
		NotificationID: item.NotificationID,
		UserID:         item.UserID,
		Type:           item.Type,
		Message:        item.Message,
		FromUserID:     item.FromUserID,
		IsRead:         item.Read,
		CreatedAt:      item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      item.UpdatedAt.Format(time.RFC3339),
	}
}
