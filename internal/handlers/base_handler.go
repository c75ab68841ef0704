package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/skillsphere/backend/internal/services"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps a service error onto the HTTP response.
// Validation failures carry per-field messages, everything unexpected is a 500.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		h.RespondJSON(w, http.StatusBadRequest, map[string]any{"errors": validationErr.Fields})
		return
	}

	var stateErr *services.StateConflictError
	if errors.As(err, &stateErr) {
		h.RespondError(w, http.StatusConflict, stateErr.Message)
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		h.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.Logger.Error("unexpected service error", zap.Error(err))
	h.RespondError(w, http.StatusInternalServerError, "internal server error")
}
