package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "APP_LOG_ENCODING",
	"DATABASE_DRIVER", "DATABASE_DSN", "DATABASE_MAX_OPEN_CONNS", "DATABASE_MAX_IDLE_CONNS",
	"TURNSTILE_SECRET_KEY", "TURNSTILE_VERIFY_URL", "CLIENT_IP_HEADER",
	"RESEND_API_KEY", "RESEND_FROM", "RESEND_REPLY_TO", "MAIL_TIMEOUT_SECOND",
	"NOTIFY_QUEUE", "KAFKA_BROKERS", "KAFKA_TOPIC", "KAFKA_GROUP_ID",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_QUEUE_KEY",
	"POSTHOG_PROXY_HOST", "STATIC_DIR",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogEncoding)

	assert.Equal(t, "pgx", cfg.DatabaseDriver)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Equal(t, 16, cfg.DatabaseMaxOpenConns)
	assert.Equal(t, 8, cfg.DatabaseMaxIdleConns)

	assert.Empty(t, cfg.TurnstileSecretKey)
	assert.Empty(t, cfg.TurnstileVerifyURL)
	assert.Equal(t, "CF-Connecting-IP", cfg.ClientIPHeader)

	assert.Empty(t, cfg.ResendAPIKey)
	assert.Equal(t, 10, cfg.MailTimeoutSecond)

	assert.Equal(t, "inline", cfg.NotifyQueue)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "waitlist.welcome-emails", cfg.KafkaTopic)
	assert.Equal(t, "waitlist-mailer", cfg.KafkaGroupID)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "waitlist:welcome_emails", cfg.RedisQueueKey)

	assert.Empty(t, cfg.PostHogProxyHost)
	assert.Empty(t, cfg.StaticDir)
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	content := `APP_HOST=0.0.0.0
APP_PORT=9090
APP_LOG_ENCODING=console
DATABASE_DRIVER=sqlite
DATABASE_DSN=file:waitlist.db
TURNSTILE_SECRET_KEY=secret
NOTIFY_QUEUE=Kafka
KAFKA_BROKERS=k1:9092, k2:9092 ,
POSTHOG_PROXY_HOST=https://eu.i.posthog.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range configKeys {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "console", cfg.LogEncoding)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "file:waitlist.db", cfg.DatabaseDSN)
	assert.Equal(t, "secret", cfg.TurnstileSecretKey)
	assert.Equal(t, "kafka", cfg.NotifyQueue)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "https://eu.i.posthog.com", cfg.PostHogProxyHost)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9090\n"), 0o600))
	t.Setenv("APP_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "max open conns", key: "DATABASE_MAX_OPEN_CONNS", value: "many"},
		{name: "max idle conns", key: "DATABASE_MAX_IDLE_CONNS", value: "x"},
		{name: "mail timeout", key: "MAIL_TIMEOUT_SECOND", value: "soon"},
		{name: "mail timeout not positive", key: "MAIL_TIMEOUT_SECOND", value: "0"},
		{name: "redis port", key: "REDIS_PORT", value: "abc"},
		{name: "redis db", key: "REDIS_DB", value: "abc"},
		{name: "driver", key: "DATABASE_DRIVER", value: "mysql"},
		{name: "queue", key: "NOTIFY_QUEUE", value: "sqs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
