package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	quotedomainerrors "quotient/contexts/marketplace/quote-service/domain/errors"
	quotehttp "quotient/contexts/marketplace/quote-service/transport/http"
)

func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req quotehttp.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeQuoteError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.quotes.Handler.CreateQuoteHandler(
		r.Context(),
		actor,
		r.Header.Get("Idempotency-Key"),
		req,
	)
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCreatorInbox(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.quotes.Handler.CreatorInboxHandler(r.Context(), actor)
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListForCreator(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.quotes.Handler.ListForCreatorHandler(r.Context(), actor, r.PathValue("creator_id"))
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListForBrand(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.quotes.Handler.ListForBrandHandler(r.Context(), actor, r.PathValue("brand_id"))
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListForBrandUsername(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.quotes.Handler.ListForBrandUsernameHandler(r.Context(), actor, r.PathValue("username"))
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdminListQuotes(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.quotes.Handler.AdminListHandler(r.Context(), actor)
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.quotes.Handler.GetQuoteHandler(r.Context(), actor, r.PathValue("request_id"))
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	var req quotehttp.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeQuoteError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.quotes.Handler.UpdateStatusHandler(r.Context(), actor, r.PathValue("request_id"), req)
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAcceptQuote(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.quotes.Handler.AcceptQuoteHandler(r.Context(), actor, r.PathValue("request_id"))
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectQuote(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.resolveActor(w, r)
	if !ok {
		return
	}

	resp, err := s.quotes.Handler.RejectQuoteHandler(r.Context(), actor, r.PathValue("request_id"))
	if err != nil {
		writeQuoteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeQuoteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quotedomainerrors.ErrMissingRequiredFields):
		writeQuoteError(w, http.StatusBadRequest, "missing_required_fields", err.Error())
	case errors.Is(err, quotedomainerrors.ErrIncompleteEventDetails):
		writeQuoteError(w, http.StatusBadRequest, "incomplete_event_details", err.Error())
	case errors.Is(err, quotedomainerrors.ErrInvalidStatusValue):
		writeQuoteError(w, http.StatusBadRequest, "invalid_status_value", err.Error())
	case errors.Is(err, quotedomainerrors.ErrIdempotencyKeyRequired):
		writeQuoteError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, quotedomainerrors.ErrQuoteNotFound):
		writeQuoteError(w, http.StatusNotFound, "quote_not_found", err.Error())
	case errors.Is(err, quotedomainerrors.ErrUserNotFound):
		writeQuoteError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, quotedomainerrors.ErrForbidden):
		writeQuoteError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, quotedomainerrors.ErrInvalidStateTransition):
		writeQuoteError(w, http.StatusConflict, "invalid_status_transition", err.Error())
	case errors.Is(err, quotedomainerrors.ErrQuoteAlreadyExists),
		errors.Is(err, quotedomainerrors.ErrIdempotencyKeyConflict):
		writeQuoteError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeQuoteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
