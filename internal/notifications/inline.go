package notifications

import (
	"context"
	"sync"
	"time"
)

// InlineDispatcher delivers each welcome email in its own detached
// goroutine, bounded by timeout and independent of the request context.
type InlineDispatcher struct {
	sender  Sender
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewInlineDispatcher creates a dispatcher delivering through sender.
func NewInlineDispatcher(sender Sender, timeout time.Duration) *InlineDispatcher {
	return &InlineDispatcher{sender: sender, timeout: timeout}
}

// Dispatch starts delivery and returns immediately.
func (d *InlineDispatcher) Dispatch(ctx context.Context, email string) error {
	msg := NewMessage(email)
	detached := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()

		_ = Deliver(ctx, d.sender, msg)
	}()
	return nil
}

// Close waits for in-flight deliveries.
func (d *InlineDispatcher) Close() error {
	d.wg.Wait()
	return nil
}
