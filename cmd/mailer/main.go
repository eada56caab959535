package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/yokva-landing/internal/config"
	"github.com/sbilibin2017/yokva-landing/internal/facades"
	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/notifications"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// ErrInlineQueue is returned when the worker is started without an outbound queue.
var ErrInlineQueue = errors.New("mailer worker requires NOTIFY_QUEUE=kafka or NOTIFY_QUEUE=redis")

func main() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)

	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*c)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("mailer stopped with error: %v", err)
	}
}

// consumer is a queue backend draining welcome emails.
type consumer interface {
	Run(ctx context.Context) error
}

// newConsumer builds the consumer for cfg.NotifyQueue. The returned cleanup
// releases the backend connection.
func newConsumer(ctx context.Context, cfg config.Config, sender notifications.Sender) (consumer, func(), error) {
	switch cfg.NotifyQueue {
	case notifications.QueueKafka:
		reader := notifications.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID)
		c := notifications.NewKafkaConsumer(reader, sender)
		logger.Log.Infow("consuming welcome emails from kafka",
			"brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic, "group", cfg.KafkaGroupID)
		return c, func() { _ = c.Close() }, nil

	case notifications.QueueRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		logger.Log.Infow("consuming welcome emails from redis", "addr", cfg.RedisAddr(), "key", cfg.RedisQueueKey)
		return notifications.NewRedisConsumer(rdb, cfg.RedisQueueKey, sender, 0), func() { rdb.Close() }, nil

	default:
		return nil, nil, ErrInlineQueue
	}
}

// run consumes the outbound queue until a shutdown signal arrives.
func run(ctx context.Context, cfg config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()

	if cfg.ResendAPIKey == "" {
		logger.Log.Warn("RESEND_API_KEY is empty; queued welcome emails will be skipped")
	}

	timeout := time.Duration(cfg.MailTimeoutSecond) * time.Second
	sender := facades.NewResendFacade(&http.Client{Timeout: timeout}, cfg.ResendAPIKey, cfg.ResendFrom, cfg.ResendReplyTo)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	c, cleanup, err := newConsumer(ctx, cfg, sender)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Log.Info("mailer worker started")
	if err := c.Run(ctx); err != nil {
		return err
	}
	logger.Log.Info("mailer worker stopped")
	return nil
}
