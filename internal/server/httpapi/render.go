package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/go-playground/validator/v10"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			s.logger.Error(context.Background(), "encoding response", "err", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses and renders the shared
// {"error": "..."} body. Internal details never leak past the 500 boundary.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr validator.ValidationErrors

	switch {
	case errors.As(err, &verr), errors.Is(err, common.ErrValidation):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
	case errors.Is(err, common.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, common.ErrAlreadyExists):
		s.writeJSON(w, http.StatusConflict, errorBody{Error: "already exists"})
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		s.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrValidation
	}
	return nil
}
