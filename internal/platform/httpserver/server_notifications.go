package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	notificationerrors "quotient/contexts/marketplace/notification-service/domain/errors"
	notificationhttp "quotient/contexts/marketplace/notification-service/transport/http"
)

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.notifications.Handler.ListNotificationsHandler(r.Context(), actor.UserID)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.notifications.Handler.MarkReadHandler(r.Context(), actor.UserID, r.PathValue("notification_id"))
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleNotificationStream serves the caller's live notification feed as
// Server-Sent Events. The subscription lives for as long as the request
// context does.
func (s *Server) handleNotificationStream(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}
	if s.live == nil {
		writeNotificationError(w, http.StatusServiceUnavailable, "live_delivery_disabled", "live delivery is not enabled")
		return
	}

	flusher, canFlush := w.(http.Flusher)
	if !canFlush {
		writeNotificationError(w, http.StatusInternalServerError, "streaming_unsupported", "response writer does not support streaming")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	s.logger.Info("notification stream opened",
		"event", "notification_stream_opened",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"user_id", actor.UserID,
	)

	feed := s.live.Subscribe(r.Context(), actor.UserID)
	for event := range feed {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)
		flusher.Flush()
	}

	s.logger.Info("notification stream closed",
		"event", "notification_stream_closed",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"user_id", actor.UserID,
	)
}

func writeNotificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notificationerrors.ErrNotificationNotFound):
		writeNotificationError(w, http.StatusNotFound, "notification_not_found", err.Error())
	case errors.Is(err, notificationerrors.ErrNotificationForbidden):
		writeNotificationError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, notificationerrors.ErrInvalidDispatchInput):
		writeNotificationError(w, http.StatusBadRequest, "invalid_notification", err.Error())
	default:
		writeNotificationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeNotificationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, notificationhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
