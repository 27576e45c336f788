package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RSVPConfirmationEmailData holds data for the email sent after an RSVP is submitted.
type RSVPConfirmationEmailData struct {
	Email         string
	Name          string
	Attending     bool
	NumOfGuests   int
	NumOfChildren int
	UpdateLink    string
	EventName     string
	EventDate     string
	EventLocation string
	Deadline      string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRSVPConfirmation(ctx context.Context, data *RSVPConfirmationEmailData) error
}
