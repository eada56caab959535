package models

// WaitlistRequest represents the JSON body for joining the waitlist
// swagger:model WaitlistRequest
type WaitlistRequest struct {
	// Email to register
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// Cloudflare Turnstile token issued to the browser
	// example: 0.AbCdEf
	TurnstileToken string `json:"turnstileToken,omitempty"`
}

// WaitlistData is the public view of the waitlist
// swagger:model WaitlistData
type WaitlistData struct {
	// Total number of signups
	// example: 42
	Count int `json:"count"`

	// Most recent signups (at most 80), oldest first
	Emails []string `json:"emails"`
}

// WaitlistResponse is the envelope shared by every waitlist response
// swagger:model WaitlistResponse
type WaitlistResponse struct {
	// Whether the operation succeeded
	// example: true
	OK bool `json:"ok"`

	// Human readable failure reason
	// example: Invalid email
	Message string `json:"message,omitempty"`

	// Current waitlist view, zero valued on failure
	Data WaitlistData `json:"data"`
}

// EmptyWaitlistData returns the zero view used by failure responses.
// Emails is an empty slice so it encodes as [] rather than null.
func EmptyWaitlistData() WaitlistData {
	return WaitlistData{Count: 0, Emails: []string{}}
}
