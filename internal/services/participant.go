package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventdesk/internal/domain"
)

type participantService struct {
	participantRepo domain.ParticipantRepository
	eventRepo       domain.EventRepository
	userRepo        domain.UserRepository
	emailService    domain.EmailService
	contextTimeout  time.Duration
}

func NewParticipantService(
	participantRepo domain.ParticipantRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.ParticipantService {
	return &participantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		emailService:    emailService,
		contextTimeout:  timeout,
	}
}

func (s *participantService) Register(ctx context.Context, callerID int64, participant *domain.Participant) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(participant.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	email := strings.TrimSpace(strings.ToLower(participant.Email))
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, participant.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: event not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	participant.Name = strings.TrimSpace(participant.Name)
	participant.Email = email
	participant.UserID = &callerID
	now := time.Now()
	if participant.RegistrationDate.IsZero() {
		participant.RegistrationDate = now
	}
	participant.PaymentStatus = false
	participant.CreatedAt = now
	participant.UpdatedAt = now

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}

	// The registration is already committed; the confirmation email is best
	// effort and its failure is logged inside the email service.
	_ = s.emailService.SendParticipantConfirmation(ctx, &domain.ParticipantConfirmationData{
		Email:      participant.Email,
		Name:       participant.Name,
		EventTitle: event.Title,
		Location:   event.Location,
		StartDate:  event.StartDate,
	})

	return nil
}

func (s *participantService) ListEventParticipants(ctx context.Context, eventID, callerID int64) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: event not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	allowed, err := canManageEvent(ctx, s.userRepo, event, callerID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	participants, err := s.participantRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}
