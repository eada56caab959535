package handlers

//go:generate mockgen -source=waitlist.go -destination=waitlist_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/models"
)

// maxJoinBodyBytes caps the POST body read from the client.
const maxJoinBodyBytes = 16 << 10

// WaitlistStater defines the read side the GET handler needs.
type WaitlistStater interface {
	State(ctx context.Context) (models.WaitlistData, error)
}

// WaitlistJoiner defines the write side the POST handler needs.
type WaitlistJoiner interface {
	Join(ctx context.Context, email, token, remoteIP string) (models.WaitlistData, error)
}

// NewGetWaitlistHandler returns an HTTP handler for reading the waitlist.
// @Summary Get waitlist
// @Description Returns the number of signups and the 80 most recent emails, oldest first
// @Tags waitlist
// @Produce json
// @Success 200 {object} models.WaitlistResponse "Current waitlist"
// @Failure 500 {object} models.WaitlistResponse "Store not configured / internal error"
// @Router /api/waitlist [get]
func NewGetWaitlistHandler(svc WaitlistStater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.State(r.Context())
		if err != nil {
			status, msg := statusForError(err)
			writeWaitlistError(w, status, msg)
			return
		}

		writeJSON(w, http.StatusOK, models.WaitlistResponse{OK: true, Data: data})
	}
}

// NewJoinWaitlistHandler returns an HTTP handler for joining the waitlist.
// clientIPHeader names the trusted proxy header carrying the caller address.
// @Summary Join waitlist
// @Description Verifies the Turnstile token, stores the email once and returns the waitlist. Joining twice is not an error.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param waitlistRequest body models.WaitlistRequest true "Signup request"
// @Success 200 {object} models.WaitlistResponse "Current waitlist"
// @Failure 400 {object} models.WaitlistResponse "Invalid email / security check missing or failed"
// @Failure 500 {object} models.WaitlistResponse "Misconfiguration / internal error"
// @Router /api/waitlist [post]
func NewJoinWaitlistHandler(svc WaitlistJoiner, clientIPHeader string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := decodeJoinRequest(r)

		var remoteIP string
		if clientIPHeader != "" {
			remoteIP = strings.TrimSpace(r.Header.Get(clientIPHeader))
		}

		data, err := svc.Join(r.Context(), req.Email, req.TurnstileToken, remoteIP)
		if err != nil {
			status, msg := statusForError(err)
			if status >= http.StatusInternalServerError {
				logger.Log.Errorw("waitlist join failed", "error", err)
			}
			writeWaitlistError(w, status, msg)
			return
		}

		writeJSON(w, http.StatusOK, models.WaitlistResponse{OK: true, Data: data})
	}
}

// NewWaitlistMethodNotAllowedHandler answers unsupported methods with the
// waitlist envelope.
func NewWaitlistMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, POST")
		writeWaitlistError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	}
}

// decodeJoinRequest reads the body; anything unparseable yields empty fields.
func decodeJoinRequest(r *http.Request) models.WaitlistRequest {
	var req models.WaitlistRequest
	if r.Body == nil {
		return req
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxJoinBodyBytes))
	if err != nil || len(body) == 0 {
		return req
	}
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Log.Debugw("malformed waitlist request body", "error", err)
		return models.WaitlistRequest{}
	}
	return req
}
