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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "modernc.org/sqlite"

	_ "github.com/sbilibin2017/yokva-landing/docs"
	"github.com/sbilibin2017/yokva-landing/internal/config"
	"github.com/sbilibin2017/yokva-landing/internal/facades"
	"github.com/sbilibin2017/yokva-landing/internal/handlers"
	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/middlewares"
	"github.com/sbilibin2017/yokva-landing/internal/migrations"
	"github.com/sbilibin2017/yokva-landing/internal/notifications"
	"github.com/sbilibin2017/yokva-landing/internal/proxy"
	"github.com/sbilibin2017/yokva-landing/internal/repositories"
	"github.com/sbilibin2017/yokva-landing/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	turnstileTimeout = 10 * time.Second
	shutdownTimeout  = 10 * time.Second
)

// @title yokva-landing API
// @version 1.0.0
// @description Waitlist signup service for the Yokva landing page
// @BasePath /
// @schemes http https
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// waitlistService is what the waitlist routes need from the service layer.
type waitlistService interface {
	handlers.WaitlistStater
	handlers.WaitlistJoiner
}

// newRouter wires every HTTP route. analytics may be nil to disable /ph.
func newRouter(svc waitlistService, analytics http.Handler, clientIPHeader, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/waitlist", func(r chi.Router) {
		r.Get("/", handlers.NewGetWaitlistHandler(svc))
		r.Post("/", handlers.NewJoinWaitlistHandler(svc, clientIPHeader))
		r.MethodNotAllowed(handlers.NewWaitlistMethodNotAllowedHandler())
	})

	if analytics != nil {
		r.Handle(proxy.Prefix, analytics)
		r.Handle(proxy.Prefix+"/*", analytics)
	}

	r.Get("/healthz", handlers.NewHealthHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}

// openStore connects to the waitlist database and applies migrations.
// It returns nil when no DSN is configured.
func openStore(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	if cfg.DatabaseDSN == "" {
		logger.Log.Warn("DATABASE_DSN is empty; waitlist endpoints will report a configuration error")
		return nil, nil
	}

	db, err := sqlx.ConnectContext(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DatabaseDriver, err)
	}
	db.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)

	if err := migrations.Up(ctx, db.DB, cfg.DatabaseDriver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// newDispatcher selects the welcome-email backend. The returned cleanup
// closes any client the dispatcher depends on.
func newDispatcher(ctx context.Context, cfg config.Config, sender notifications.Sender) (notifications.Dispatcher, func(), error) {
	switch cfg.NotifyQueue {
	case notifications.QueueKafka:
		writer := notifications.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		logger.Log.Infow("welcome emails published to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
		return notifications.NewKafkaDispatcher(writer), func() {}, nil

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
		logger.Log.Infow("welcome emails queued in redis", "addr", cfg.RedisAddr(), "key", cfg.RedisQueueKey)
		return notifications.NewRedisDispatcher(rdb, cfg.RedisQueueKey), func() { rdb.Close() }, nil

	default:
		timeout := time.Duration(cfg.MailTimeoutSecond) * time.Second
		return notifications.NewInlineDispatcher(sender, timeout), func() {}, nil
	}
}

// run initializes the logger, store, collaborators, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	// A nil interface, not a typed nil pointer, marks the store as absent.
	var (
		reader services.SignupReader
		writer services.SignupWriter
	)
	if db != nil {
		defer db.Close()
		reader = repositories.NewSignupReadRepository(db)
		writer = repositories.NewSignupWriteRepository(db)
	}

	mailTimeout := time.Duration(cfg.MailTimeoutSecond) * time.Second
	mailer := facades.NewResendFacade(&http.Client{Timeout: mailTimeout}, cfg.ResendAPIKey, cfg.ResendFrom, cfg.ResendReplyTo)

	dispatcher, closeBackend, err := newDispatcher(ctx, cfg, mailer)
	if err != nil {
		return err
	}
	defer closeBackend()

	turnstile := facades.NewTurnstileFacade(&http.Client{Timeout: turnstileTimeout}, cfg.TurnstileVerifyURL)
	if cfg.TurnstileSecretKey == "" {
		logger.Log.Warn("TURNSTILE_SECRET_KEY is empty; signups will be rejected")
	}

	svc := services.NewWaitlistService(reader, writer, turnstile, dispatcher, cfg.TurnstileSecretKey)

	analytics, err := proxy.NewAnalyticsProxy(cfg.PostHogProxyHost, nil)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(svc, analytics, cfg.ClientIPHeader, cfg.StaticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		_ = dispatcher.Close()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	if err := dispatcher.Close(); err != nil {
		logger.Log.Errorw("notification dispatcher close error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
