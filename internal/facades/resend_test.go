package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake Resend emails service ---
type fakeResendEmails struct {
	got  *resend.SendEmailRequest
	resp *resend.SendEmailResponse
	err  error
}

func (f *fakeResendEmails) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = params
	return f.resp, f.err
}

// --- Tests ---
func TestResendFacade_SendWelcome(t *testing.T) {
	emails := &fakeResendEmails{resp: &resend.SendEmailResponse{Id: "msg_1"}}
	facade := newResendFacade(emails, "", "")

	err := facade.SendWelcome(context.Background(), "a@b.com")
	require.NoError(t, err)

	require.NotNil(t, emails.got)
	assert.Equal(t, DefaultResendFrom, emails.got.From)
	assert.Equal(t, DefaultResendReplyTo, emails.got.ReplyTo)
	assert.Equal(t, []string{"a@b.com"}, emails.got.To)
	assert.Equal(t, WelcomeSubject, emails.got.Subject)
	assert.Equal(t, WelcomeText, emails.got.Text)
}

func TestResendFacade_CustomEnvelope(t *testing.T) {
	emails := &fakeResendEmails{}
	facade := newResendFacade(emails, "Team <team@example.com>", "help@example.com")

	require.NoError(t, facade.SendWelcome(context.Background(), "a@b.com"))
	assert.Equal(t, "Team <team@example.com>", emails.got.From)
	assert.Equal(t, "help@example.com", emails.got.ReplyTo)
}

func TestResendFacade_SendError(t *testing.T) {
	emails := &fakeResendEmails{err: errors.New("422 validation_error")}
	facade := newResendFacade(emails, "", "")

	err := facade.SendWelcome(context.Background(), "a@b.com")
	assert.EqualError(t, err, "422 validation_error")
}

func TestResendFacade_NotConfigured(t *testing.T) {
	facade := NewResendFacade(nil, "", "", "")

	err := facade.SendWelcome(context.Background(), "a@b.com")
	assert.ErrorIs(t, err, ErrMailerNotConfigured)
}

func TestNewResendFacade_WithKey(t *testing.T) {
	facade := NewResendFacade(nil, "re_test", "", "")
	assert.NotNil(t, facade.emails)
	assert.Equal(t, DefaultResendFrom, facade.from)
}
