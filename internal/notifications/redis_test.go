package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/yokva-landing/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisQueue(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	const key = "test:welcome_emails"
	dispatcher := NewRedisDispatcher(rdb, key)
	sender := &fakeSender{}
	consumer := NewRedisConsumer(rdb, key, sender, time.Second)

	t.Run("Dispatch enqueues JSON message", func(t *testing.T) {
		require.NoError(t, dispatcher.Dispatch(ctx, "a@b.com"))

		raw, err := rdb.LIndex(ctx, key, 0).Result()
		require.NoError(t, err)

		var msg models.WelcomeEmail
		require.NoError(t, json.Unmarshal([]byte(raw), &msg))
		assert.Equal(t, "a@b.com", msg.Email)
	})

	t.Run("ProcessOne delivers in FIFO order", func(t *testing.T) {
		require.NoError(t, dispatcher.Dispatch(ctx, "c@d.com"))

		ok, err := consumer.ProcessOne(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = consumer.ProcessOne(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Equal(t, []string{"a@b.com", "c@d.com"}, sender.Sent())
	})

	t.Run("ProcessOne on empty queue times out", func(t *testing.T) {
		ok, err := consumer.ProcessOne(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Malformed message is dropped", func(t *testing.T) {
		require.NoError(t, rdb.LPush(ctx, key, "not json").Err())

		ok, err := consumer.ProcessOne(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Len(t, sender.Sent(), 2)
	})

	t.Run("Run stops on cancel", func(t *testing.T) {
		runCtx, cancel := context.WithTimeout(ctx, 1500*time.Millisecond)
		defer cancel()
		assert.NoError(t, consumer.Run(runCtx))
	})
}

func TestNewRedisDispatcher_DefaultKey(t *testing.T) {
	d := NewRedisDispatcher(nil, "")
	assert.Equal(t, DefaultRedisQueueKey, d.key)

	c := NewRedisConsumer(nil, "", nil, 0)
	assert.Equal(t, DefaultRedisQueueKey, c.key)
	assert.Equal(t, 5*time.Second, c.timeout)
}
