// Package config loads service settings from a dotenv file and the process
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting of the landing server and the mailer worker.
type Config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogEncoding string

	// DatabaseDSN empty means the waitlist store is not configured.
	DatabaseDriver       string
	DatabaseDSN          string
	DatabaseMaxOpenConns int
	DatabaseMaxIdleConns int

	TurnstileSecretKey string
	TurnstileVerifyURL string
	ClientIPHeader     string

	ResendAPIKey      string
	ResendFrom        string
	ResendReplyTo     string
	MailTimeoutSecond int

	NotifyQueue  string
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	RedisQueueKey string

	PostHogProxyHost string
	StaticDir        string
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// RedisAddr returns the Redis host:port pair.
func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads path (a missing file is not an error) and then the
// environment, falling back to defaults for unset keys.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getInt := func(key, defaultValue string) (int, error) {
		raw := getEnv(key, defaultValue)
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid integer %q", key, raw)
		}
		return n, nil
	}

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")

	// Database config
	cfg.DatabaseDriver = getEnv("DATABASE_DRIVER", "pgx")
	cfg.DatabaseDSN = strings.TrimSpace(getEnv("DATABASE_DSN", ""))
	if cfg.DatabaseMaxOpenConns, err = getInt("DATABASE_MAX_OPEN_CONNS", "16"); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseMaxIdleConns, err = getInt("DATABASE_MAX_IDLE_CONNS", "8"); err != nil {
		return Config{}, err
	}

	// Bot check config
	cfg.TurnstileSecretKey = getEnv("TURNSTILE_SECRET_KEY", "")
	cfg.TurnstileVerifyURL = getEnv("TURNSTILE_VERIFY_URL", "")
	cfg.ClientIPHeader = getEnv("CLIENT_IP_HEADER", "CF-Connecting-IP")

	// Mail config
	cfg.ResendAPIKey = getEnv("RESEND_API_KEY", "")
	cfg.ResendFrom = getEnv("RESEND_FROM", "")
	cfg.ResendReplyTo = getEnv("RESEND_REPLY_TO", "")
	if cfg.MailTimeoutSecond, err = getInt("MAIL_TIMEOUT_SECOND", "10"); err != nil {
		return Config{}, err
	}

	// Notification queue config
	cfg.NotifyQueue = strings.ToLower(getEnv("NOTIFY_QUEUE", "inline"))
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", "localhost:9092"))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "waitlist.welcome-emails")
	cfg.KafkaGroupID = getEnv("KAFKA_GROUP_ID", "waitlist-mailer")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return Config{}, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisQueueKey = getEnv("REDIS_QUEUE_KEY", "waitlist:welcome_emails")

	// Edge config
	cfg.PostHogProxyHost = getEnv("POSTHOG_PROXY_HOST", "")
	cfg.StaticDir = getEnv("STATIC_DIR", "")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DatabaseDriver {
	case "pgx", "sqlite":
	default:
		return fmt.Errorf("DATABASE_DRIVER: unsupported driver %q", c.DatabaseDriver)
	}
	switch c.NotifyQueue {
	case "inline", "kafka", "redis":
	default:
		return fmt.Errorf("NOTIFY_QUEUE: unsupported queue %q", c.NotifyQueue)
	}
	if c.MailTimeoutSecond <= 0 {
		return fmt.Errorf("MAIL_TIMEOUT_SECOND: must be positive, got %d", c.MailTimeoutSecond)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
