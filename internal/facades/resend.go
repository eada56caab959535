package facades

import (
	"context"
	"errors"
	"net/http"

	"github.com/resend/resend-go/v2"
	"github.com/sbilibin2017/yokva-landing/internal/logger"
)

// Defaults for the welcome email envelope.
const (
	DefaultResendFrom    = "Roman from Yokva <ceo@yokva.com>"
	DefaultResendReplyTo = "ceo@yokva.com"

	WelcomeSubject = "You are on the Yokva waitlist"
	WelcomeText    = `Hey, Roman here. I'm the founder of Yokva.

You're on the waitlist for our private beta. I'm building this because I saw how much money landlords lose just because listing photos look dark and messy.

Quick question:
What's the hardest part about getting good photos for your listings right now?

Just reply to this email. I read every message.

Best,
Roman
Founder, Yokva`
)

// ErrMailerNotConfigured is returned when no Resend API key is set.
var ErrMailerNotConfigured = errors.New("RESEND_API_KEY is not configured")

// resendEmails is the subset of resend.EmailsSvc used here.
type resendEmails interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendFacade sends the welcome email through the Resend API.
type ResendFacade struct {
	emails  resendEmails
	from    string
	replyTo string
}

// NewResendFacade creates a facade. An empty apiKey yields a facade whose
// SendWelcome always returns ErrMailerNotConfigured.
func NewResendFacade(httpClient *http.Client, apiKey, from, replyTo string) *ResendFacade {
	var emails resendEmails
	if apiKey != "" {
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		emails = resend.NewCustomClient(httpClient, apiKey).Emails
	}
	return newResendFacade(emails, from, replyTo)
}

func newResendFacade(emails resendEmails, from, replyTo string) *ResendFacade {
	if from == "" {
		from = DefaultResendFrom
	}
	if replyTo == "" {
		replyTo = DefaultResendReplyTo
	}
	return &ResendFacade{emails: emails, from: from, replyTo: replyTo}
}

// SendWelcome sends the fixed welcome message to a single recipient.
func (f *ResendFacade) SendWelcome(ctx context.Context, to string) error {
	if f.emails == nil {
		return ErrMailerNotConfigured
	}

	sent, err := f.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    f.from,
		To:      []string{to},
		Subject: WelcomeSubject,
		ReplyTo: f.replyTo,
		Text:    WelcomeText,
	})
	if err != nil {
		logger.Log.Errorw("resend api failed", "to", to, "error", err)
		return err
	}

	var id string
	if sent != nil {
		id = sent.Id
	}
	logger.Log.Infow("welcome email sent", "to", to, "id", id)
	return nil
}
