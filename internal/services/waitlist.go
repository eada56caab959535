package services

//go:generate mockgen -source=waitlist.go -destination=waitlist_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/yokva-landing/internal/logger"
	"github.com/sbilibin2017/yokva-landing/internal/models"
	"github.com/sbilibin2017/yokva-landing/internal/validation"
	"golang.org/x/sync/errgroup"
)

// Configuration errors: a required collaborator is absent.
var (
	ErrStoreNotConfigured     = errors.New("waitlist store is not configured")
	ErrTurnstileNotConfigured = errors.New("turnstile secret is not configured")
)

// Validation errors: the client must correct the input and resubmit.
var (
	ErrInvalidEmail         = errors.New("invalid email")
	ErrSecurityCheckMissing = errors.New("security check missing")
	ErrSecurityCheckFailed  = errors.New("security check failed")
)

// SignupReader defines read-only operations for waitlist signups.
type SignupReader interface {
	Count(ctx context.Context) (int, error)
	ListRecent(ctx context.Context) ([]string, error)
}

// SignupWriter defines write operations for waitlist signups.
type SignupWriter interface {
	InsertIfAbsent(ctx context.Context, email string) (bool, error)
}

// BotChecker verifies a client challenge token.
type BotChecker interface {
	Verify(ctx context.Context, secret, token, remoteIP string) models.Verdict
}

// NotificationDispatcher hands a welcome email off the request path.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, email string) error
}

// WaitlistService implements reading and joining the waitlist.
// A nil reader or writer means the store is not configured.
type WaitlistService struct {
	reader          SignupReader
	writer          SignupWriter
	checker         BotChecker
	dispatcher      NotificationDispatcher
	turnstileSecret string
}

// NewWaitlistService creates a new WaitlistService instance.
func NewWaitlistService(
	reader SignupReader,
	writer SignupWriter,
	checker BotChecker,
	dispatcher NotificationDispatcher,
	turnstileSecret string,
) *WaitlistService {
	return &WaitlistService{
		reader:          reader,
		writer:          writer,
		checker:         checker,
		dispatcher:      dispatcher,
		turnstileSecret: strings.TrimSpace(turnstileSecret),
	}
}

// State returns the signup count and the recent-signups window.
func (svc *WaitlistService) State(ctx context.Context) (models.WaitlistData, error) {
	if svc.reader == nil {
		return models.EmptyWaitlistData(), ErrStoreNotConfigured
	}

	var (
		count  int
		emails []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = svc.reader.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		emails, err = svc.reader.ListRecent(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to read waitlist", "error", err)
		return models.EmptyWaitlistData(), fmt.Errorf("read waitlist: %w", err)
	}

	if emails == nil {
		emails = []string{}
	}
	return models.WaitlistData{Count: count, Emails: emails}, nil
}

// Join registers email after the bot check and returns the fresh state.
// Re-joining an existing address succeeds without changing the state.
func (svc *WaitlistService) Join(ctx context.Context, email, token, remoteIP string) (models.WaitlistData, error) {
	if svc.reader == nil || svc.writer == nil {
		return models.EmptyWaitlistData(), ErrStoreNotConfigured
	}

	email = validation.NormalizeEmail(email)
	if !validation.IsEmail(email) {
		return models.EmptyWaitlistData(), ErrInvalidEmail
	}

	if svc.turnstileSecret == "" {
		logger.Log.Errorw("rejecting signup: turnstile secret is not configured")
		return models.EmptyWaitlistData(), ErrTurnstileNotConfigured
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return models.EmptyWaitlistData(), ErrSecurityCheckMissing
	}

	verdict := models.VerdictUnreachable
	if svc.checker != nil {
		verdict = svc.checker.Verify(ctx, svc.turnstileSecret, token, remoteIP)
	}
	if verdict != models.VerdictPass {
		// unreachable verifier fails closed
		logger.Log.Warnw("security check did not pass", "verdict", verdict.String(), "remote_ip", remoteIP)
		return models.EmptyWaitlistData(), ErrSecurityCheckFailed
	}

	created, err := svc.writer.InsertIfAbsent(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to save signup", "error", err)
		return models.EmptyWaitlistData(), fmt.Errorf("save signup: %w", err)
	}

	if created && svc.dispatcher != nil {
		if err := svc.dispatcher.Dispatch(ctx, email); err != nil {
			logger.Log.Errorw("failed to dispatch welcome email", "email", email, "error", err)
		}
	}

	return svc.State(ctx)
}
