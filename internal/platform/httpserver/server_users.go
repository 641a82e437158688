package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	directoryerrors "quotient/contexts/identity-access/directory-service/domain/errors"
	directoryhttp "quotient/contexts/identity-access/directory-service/transport/http"
)

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.directory.Handler.RegisterUserHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.GetUserHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUserByUsername(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.GetUserByUsernameHandler(r.Context(), r.PathValue("username"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDirectoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directoryerrors.ErrUserNotFound):
		writeDirectoryError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, directoryerrors.ErrInvalidRole),
		errors.Is(err, directoryerrors.ErrInvalidUserInput):
		writeDirectoryError(w, http.StatusBadRequest, "invalid_user_input", err.Error())
	case errors.Is(err, directoryerrors.ErrUsernameTaken):
		writeDirectoryError(w, http.StatusConflict, "username_taken", err.Error())
	default:
		writeDirectoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDirectoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, directoryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
