package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	directoryservice "quotient/contexts/identity-access/directory-service"
	directoryerrors "quotient/contexts/identity-access/directory-service/domain/errors"
	notificationservice "quotient/contexts/marketplace/notification-service"
	quoteservice "quotient/contexts/marketplace/quote-service"
	"quotient/contexts/marketplace/quote-service/domain/services"
	quotehttp "quotient/contexts/marketplace/quote-service/transport/http"
	"quotient/internal/platform/livefeed"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "quotient/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	quotes        quoteservice.Module
	notifications notificationservice.Module
	directory     directoryservice.Module
	live          *livefeed.Hub
}

func New(
	quotes quoteservice.Module,
	notifications notificationservice.Module,
	directory directoryservice.Module,
	live *livefeed.Hub,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		quotes:        quotes,
		notifications: notifications,
		directory:     directory,
		live:          live,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /custom-quotes", s.handleCreateQuote)
	s.mux.HandleFunc("GET /custom-quotes/creator", s.handleCreatorInbox)
	s.mux.HandleFunc("GET /custom-quotes/creator/{creator_id}", s.handleListForCreator)
	s.mux.HandleFunc("GET /custom-quotes/brand/{brand_id}", s.handleListForBrand)
	s.mux.HandleFunc("GET /custom-quotes/brand-username/{username}", s.handleListForBrandUsername)
	s.mux.HandleFunc("GET /custom-quotes/admin/all", s.handleAdminListQuotes)
	s.mux.HandleFunc("GET /custom-quotes/{request_id}", s.handleGetQuote)
	s.mux.HandleFunc("PATCH /custom-quotes/{request_id}/status", s.handleUpdateQuoteStatus)
	s.mux.HandleFunc("POST /custom-quotes/{request_id}/accept", s.handleAcceptQuote)
	s.mux.HandleFunc("POST /custom-quotes/{request_id}/reject", s.handleRejectQuote)

	s.mux.HandleFunc("GET /notifications", s.handleListNotifications)
	s.mux.HandleFunc("POST /notifications/{notification_id}/read", s.handleMarkNotificationRead)
	s.mux.HandleFunc("GET /notifications/stream", s.handleNotificationStream)

	s.mux.HandleFunc("POST /users", s.handleRegisterUser)
	s.mux.HandleFunc("GET /users/{user_id}", s.handleGetUser)
	s.mux.HandleFunc("GET /users/by-username/{username}", s.handleGetUserByUsername)
}

// resolveActor authenticates the caller from the X-User-Id header against the
// user directory. The boolean is false when a response was already written.
func (s *Server) resolveActor(w http.ResponseWriter, r *http.Request) (services.Actor, bool) {
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeQuoteError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return services.Actor{}, false
	}

	user, err := s.directory.Service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrUserNotFound) {
			writeQuoteError(w, http.StatusForbidden, "unknown_user", "caller is not a registered user")
			return services.Actor{}, false
		}
		writeQuoteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return services.Actor{}, false
	}

	return services.Actor{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     services.Role(user.Role),
	}, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeQuoteError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, quotehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
