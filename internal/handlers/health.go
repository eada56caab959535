package handlers

import "net/http"

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler returns a liveness handler. It does not touch the store
// so an unconfigured database never fails the probe.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
