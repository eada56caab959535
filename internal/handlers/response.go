package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/models"
	"github.com/sbilibin2017/yokva-landing/internal/services"
)

// Client-facing failure messages.
const (
	MsgStoreNotConfigured     = "Waitlist database is not configured"
	MsgTurnstileNotConfigured = "Turnstile secret is not configured"
	MsgInvalidEmail           = "Invalid email"
	MsgSecurityCheckMissing   = "Security check missing"
	MsgSecurityCheckFailed    = "Security check failed"
	MsgInternalError          = "Internal server error"
	MsgMethodNotAllowed       = "Method not allowed"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeWaitlistError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.WaitlistResponse{
		OK:      false,
		Message: message,
		Data:    models.EmptyWaitlistData(),
	})
}

// statusForError maps service errors onto the response envelope.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrStoreNotConfigured):
		return http.StatusInternalServerError, MsgStoreNotConfigured
	case errors.Is(err, services.ErrTurnstileNotConfigured):
		return http.StatusInternalServerError, MsgTurnstileNotConfigured
	case errors.Is(err, services.ErrInvalidEmail):
		return http.StatusBadRequest, MsgInvalidEmail
	case errors.Is(err, services.ErrSecurityCheckMissing):
		return http.StatusBadRequest, MsgSecurityCheckMissing
	case errors.Is(err, services.ErrSecurityCheckFailed):
		return http.StatusBadRequest, MsgSecurityCheckFailed
	default:
		return http.StatusInternalServerError, MsgInternalError
	}
}
