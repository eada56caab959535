package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/models"
)

// DefaultTurnstileVerifyURL is Cloudflare's siteverify endpoint.
const DefaultTurnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// TurnstileFacade verifies Cloudflare Turnstile tokens over HTTP.
type TurnstileFacade struct {
	client    *http.Client
	verifyURL string
}

// NewTurnstileFacade creates a facade posting to verifyURL with client.
// Empty verifyURL falls back to DefaultTurnstileVerifyURL.
func NewTurnstileFacade(client *http.Client, verifyURL string) *TurnstileFacade {
	if client == nil {
		client = http.DefaultClient
	}
	if verifyURL == "" {
		verifyURL = DefaultTurnstileVerifyURL
	}
	return &TurnstileFacade{client: client, verifyURL: verifyURL}
}

type turnstileResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify performs one siteverify call. Transport errors, non-2xx statuses
// and unreadable bodies yield VerdictUnreachable.
func (f *TurnstileFacade) Verify(ctx context.Context, secret, token, remoteIP string) models.Verdict {
	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		logger.Log.Errorw("failed to build turnstile request", "error", err)
		return models.VerdictUnreachable
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("turnstile request failed", "error", err)
		return models.VerdictUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("turnstile returned non-success status", "status", resp.StatusCode)
		return models.VerdictUnreachable
	}

	var body turnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode turnstile response", "error", err)
		return models.VerdictUnreachable
	}

	if !body.Success {
		logger.Log.Infow("turnstile rejected token", "error_codes", body.ErrorCodes)
		return models.VerdictFail
	}
	return models.VerdictPass
}
