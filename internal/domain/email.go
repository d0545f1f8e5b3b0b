package domain

import (
	"context"
	"time"
)

// Mailer sends a single email. Implementations may use SES or a no-op sink.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// ParticipantConfirmationData carries the fields rendered into the
// registration confirmation email.
type ParticipantConfirmationData struct {
	Email      string
	Name       string
	EventTitle string
	Location   string
	StartDate  time.Time
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// EmailService defines the transactional emails the application sends.
type EmailService interface {
	SendParticipantConfirmation(ctx context.Context, data *ParticipantConfirmationData) error
}
