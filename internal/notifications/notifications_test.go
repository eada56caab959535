package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sbilibin2017/yokva-landing/internal/facades"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake sender ---
type fakeSender struct {
	mu     sync.Mutex
	sent   []string
	ctxErr []error
	err    error
	delay  time.Duration
}

func (f *fakeSender) SendWelcome(ctx context.Context, to string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	f.ctxErr = append(f.ctxErr, ctx.Err())
	return f.err
}

func (f *fakeSender) Sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

// --- Tests ---
func TestNewMessage(t *testing.T) {
	a := NewMessage("a@b.com")
	b := NewMessage("a@b.com")

	assert.Equal(t, "a@b.com", a.Email)
	assert.NotEmpty(t, a.MessageID)
	assert.NotEqual(t, a.MessageID, b.MessageID)
	assert.WithinDuration(t, time.Now().UTC(), a.RequestedAt, time.Minute)
}

func TestDeliver(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "sent"},
		{name: "mailer not configured", err: facades.ErrMailerNotConfigured, wantErr: facades.ErrMailerNotConfigured},
		{name: "transport error", err: errors.New("dial tcp: timeout"), wantErr: errors.New("dial tcp: timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{err: tt.err}
			err := Deliver(context.Background(), sender, NewMessage("a@b.com"))
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, []string{"a@b.com"}, sender.Sent())
		})
	}
}

func TestInlineDispatcher_DeliversDetached(t *testing.T) {
	sender := &fakeSender{delay: 20 * time.Millisecond}
	d := NewInlineDispatcher(sender, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.Dispatch(ctx, "a@b.com"))
	// the request finishing must not abort delivery
	cancel()

	require.NoError(t, d.Close())
	assert.Equal(t, []string{"a@b.com"}, sender.Sent())
	assert.NoError(t, sender.ctxErr[0])
}

func TestInlineDispatcher_SwallowsSenderError(t *testing.T) {
	sender := &fakeSender{err: errors.New("resend down")}
	d := NewInlineDispatcher(sender, time.Second)

	assert.NoError(t, d.Dispatch(context.Background(), "a@b.com"))
	assert.NoError(t, d.Close())
	assert.Len(t, sender.Sent(), 1)
}

func TestInlineDispatcher_ManyConcurrent(t *testing.T) {
	sender := &fakeSender{}
	d := NewInlineDispatcher(sender, time.Second)

	for i := 0; i < 20; i++ {
		require.NoError(t, d.Dispatch(context.Background(), "a@b.com"))
	}
	require.NoError(t, d.Close())
	assert.Len(t, sender.Sent(), 20)
}

func TestDispatchersImplementDispatcher(t *testing.T) {
	var _ Dispatcher = (*InlineDispatcher)(nil)
	var _ Dispatcher = (*KafkaDispatcher)(nil)
	var _ Dispatcher = (*RedisDispatcher)(nil)
}
