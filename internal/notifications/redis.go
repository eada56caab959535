package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/models"
)

// DefaultRedisQueueKey is the list holding pending welcome emails.
const DefaultRedisQueueKey = "waitlist:welcome_emails"

// RedisDispatcher pushes welcome emails onto a Redis list.
type RedisDispatcher struct {
	client redis.Cmdable
	key    string
}

// NewRedisDispatcher creates a dispatcher; an empty key selects DefaultRedisQueueKey.
func NewRedisDispatcher(client redis.Cmdable, key string) *RedisDispatcher {
	if key == "" {
		key = DefaultRedisQueueKey
	}
	return &RedisDispatcher{client: client, key: key}
}

// Dispatch enqueues one message at the head of the list.
func (d *RedisDispatcher) Dispatch(ctx context.Context, email string) error {
	msg := NewMessage(email)

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode welcome email: %w", err)
	}

	length, err := d.client.LPush(ctx, d.key, value).Result()

	logger.Log.Infow("enqueue welcome email",
		"key", d.key,
		"message_id", msg.MessageID,
		"result", length,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("enqueue welcome email: %w", err)
	}
	return nil
}

// Close is a no-op; the client is owned by the caller.
func (d *RedisDispatcher) Close() error {
	return nil
}

// RedisConsumer pops welcome emails from the tail of a Redis list.
type RedisConsumer struct {
	client  redis.Cmdable
	key     string
	sender  Sender
	timeout time.Duration
}

// NewRedisConsumer creates a consumer blocking up to pollTimeout per pop.
func NewRedisConsumer(client redis.Cmdable, key string, sender Sender, pollTimeout time.Duration) *RedisConsumer {
	if key == "" {
		key = DefaultRedisQueueKey
	}
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Second
	}
	return &RedisConsumer{client: client, key: key, sender: sender, timeout: pollTimeout}
}

// Run consumes until ctx is done.
func (c *RedisConsumer) Run(ctx context.Context) error {
	for {
		ok, err := c.ProcessOne(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if !ok && ctx.Err() != nil {
			return nil
		}
	}
}

// ProcessOne waits for a single message and delivers it. It reports false
// when the poll timed out with an empty queue.
func (c *RedisConsumer) ProcessOne(ctx context.Context) (bool, error) {
	res, err := c.client.BRPop(ctx, c.timeout, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("pop welcome email: %w", err)
	}

	// BRPOP replies with [key, value]
	var msg models.WelcomeEmail
	if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
		logger.Log.Errorw("dropping malformed welcome email message", "key", c.key, "error", err)
		return true, nil
	}

	_ = Deliver(ctx, c.sender, msg)
	return true, nil
}
