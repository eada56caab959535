// Package notifications hands welcome emails off the request path.
//
// A Dispatcher accepts a freshly registered address and returns quickly:
// either a detached goroutine delivers the email in-process, or a message
// is published to an outbound queue (Kafka or Redis) that the mailer worker
// consumes. Delivery failures are logged, never returned to the signup.
package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/yokva-landing/internal/facades"
	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/models"
)

// Queue backends selectable through configuration.
const (
	QueueInline = "inline"
	QueueKafka  = "kafka"
	QueueRedis  = "redis"
)

// Sender delivers the welcome email to one recipient.
type Sender interface {
	SendWelcome(ctx context.Context, to string) error
}

// Dispatcher hands a new signup's welcome email off the request path.
// Close releases the backend and waits for in-flight work.
type Dispatcher interface {
	Dispatch(ctx context.Context, email string) error
	Close() error
}

// NewMessage builds the queued representation of a welcome email.
func NewMessage(email string) models.WelcomeEmail {
	return models.WelcomeEmail{
		MessageID:   uuid.NewString(),
		Email:       email,
		RequestedAt: time.Now().UTC(),
	}
}

// Deliver sends msg and logs the outcome. A missing mailer key is a
// warning; anything else is an error.
func Deliver(ctx context.Context, sender Sender, msg models.WelcomeEmail) error {
	err := sender.SendWelcome(ctx, msg.Email)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, facades.ErrMailerNotConfigured):
		logger.Log.Warnw("mailer is not configured; skipping welcome email",
			"message_id", msg.MessageID, "email", msg.Email)
	default:
		logger.Log.Errorw("failed to deliver welcome email",
			"message_id", msg.MessageID, "email", msg.Email, "error", err)
	}
	return err
}
