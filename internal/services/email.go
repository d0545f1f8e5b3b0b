package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventdesk/internal/domain"
)

const confirmationTemplate = "registration_confirmation"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

func (s *emailService) SendParticipantConfirmation(_ context.Context, data *domain.ParticipantConfirmationData) error {
	subject, html, text, err := s.renderer.Render(confirmationTemplate, data)
	if err != nil {
		s.logger.Error("failed to render confirmation email", "error", err, "email", data.Email)
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		s.logger.Error("failed to send confirmation email", "error", err, "email", data.Email)
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	s.logger.Info("confirmation email sent", "email", data.Email, "event", data.EventTitle)
	return nil
}
