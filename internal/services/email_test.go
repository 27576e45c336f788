package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrsvp/internal/domain"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return m.err
}

type fakeRenderer struct {
	name string
	data any
	err  error
}

func (r *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	r.name, r.data = name, data
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendRSVPConfirmation(t *testing.T) {
	data := &domain.RSVPConfirmationEmailData{Email: "ana@example.com", Name: "Ana", UpdateLink: "https://x/rsvp/token/t"}

	tests := []struct {
		name      string
		mailErr   error
		renderErr error
		data      *domain.RSVPConfirmationEmailData
		wantErr   string
	}{
		{name: "sent", data: data},
		{name: "nil data", data: nil, wantErr: "nil"},
		{name: "render fails", data: data, renderErr: errors.New("no template"), wantErr: "render"},
		{name: "send fails", data: data, mailErr: errors.New("throttled"), wantErr: "send"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{err: tt.mailErr}
			renderer := &fakeRenderer{err: tt.renderErr}
			svc := NewEmailService(mailer, renderer, testLogger)

			err := svc.SendRSVPConfirmation(context.Background(), tt.data)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "rsvp_confirmation", renderer.name)
			assert.Same(t, data, renderer.data)
			assert.Equal(t, "ana@example.com", mailer.to)
			assert.Equal(t, "subject", mailer.subject)
			assert.Equal(t, "<p>html</p>", mailer.html)
			assert.Equal(t, "text", mailer.text)
		})
	}
}
