package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrsvp/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestTemplateRenderer_RSVPConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.RSVPConfirmationEmailData{
		Email:         "ana@example.com",
		Name:          "Ana <b>",
		Attending:     true,
		NumOfGuests:   2,
		NumOfChildren: 1,
		UpdateLink:    "https://rsvp.example.com/rsvp/token/abc",
		EventName:     "Summer Party",
		EventDate:     "2026-07-01",
		Deadline:      "2026-06-15",
	}

	subject, html, text, err := r.Render("rsvp_confirmation", data)
	require.NoError(t, err)
	assert.Equal(t, "Your RSVP for Summer Party", subject)
	assert.Contains(t, text, "https://rsvp.example.com/rsvp/token/abc")
	assert.Contains(t, text, "2 guest(s) and 1 child(ren)")
	assert.Contains(t, html, `href="https://rsvp.example.com/rsvp/token/abc"`)
	assert.Contains(t, html, "Ana &lt;b&gt;")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing", nil)
	require.Error(t, err)
}

func TestSESMailer_Send(t *testing.T) {
	tests := []struct {
		name       string
		fromName   string
		sesErr     error
		wantSource string
		wantErr    bool
	}{
		{"with from name", "Party Crew", nil, "Party Crew <rsvp@example.com>", false},
		{"address only", "", nil, "rsvp@example.com", false},
		{"ses error", "", errors.New("throttled"), "rsvp@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSES{err: tt.sesErr}
			m := newSESMailer(client, "rsvp@example.com", tt.fromName, testLogger)

			err := m.Send(context.Background(), "guest@example.com", "Hello", "<p>hi</p>", "hi")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, client.input)
			assert.Equal(t, tt.wantSource, aws.ToString(client.input.Source))
			assert.Equal(t, []string{"guest@example.com"}, client.input.Destination.ToAddresses)
			assert.Equal(t, "Hello", aws.ToString(client.input.Message.Subject.Data))
			assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
			assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))
		})
	}
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger)
	require.NoError(t, err)
	require.IsType(t, &noopMailer{}, m)
	require.NoError(t, m.Send(context.Background(), "a@b.co", "s", "", ""))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, testLogger)
	require.NoError(t, err)
	require.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses", FromAddress: "rsvp@example.com"}, testLogger)
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{
		Provider:    "ses",
		FromAddress: "rsvp@example.com",
		SES:         SESConfig{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"},
	}, testLogger)
	require.NoError(t, err)
	require.IsType(t, &sesMailer{}, m)
}
