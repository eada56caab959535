package models

import "time"

// WelcomeEmail is the outbound message handed to the notification queue
// after a new signup.
type WelcomeEmail struct {
	MessageID   string    `json:"message_id"`   // Unique id of the queued message
	Email       string    `json:"email"`        // Recipient, already normalized
	RequestedAt time.Time `json:"requested_at"` // When the signup was accepted
}
