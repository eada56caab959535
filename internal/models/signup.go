package models

import "time"

// SignupDB represents a waitlist row in the database
type SignupDB struct {
	ID        int64     `json:"id" db:"id"`                 // Store-assigned ordering identifier
	Email     string    `json:"email" db:"email"`           // Normalized (trimmed, lower-cased) email, unique
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Insert timestamp assigned by the store
}
