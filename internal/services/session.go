package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventdesk/internal/domain"
)

type sessionService struct {
	sessionRepo    domain.SessionRepository
	eventRepo      domain.EventRepository
	speakerRepo    domain.SpeakerRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

func NewSessionService(
	sessionRepo domain.SessionRepository,
	eventRepo domain.EventRepository,
	speakerRepo domain.SpeakerRepository,
	userRepo domain.UserRepository,
	timeout time.Duration,
) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		eventRepo:      eventRepo,
		speakerRepo:    speakerRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, callerID int64, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Both referenced rows must exist before the ownership check runs, so a
	// missing event or speaker reads as 404 rather than 403.
	event, err := s.eventRepo.GetByID(ctx, session.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: event not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to get event: %w", err)
	}
	if _, err := s.speakerRepo.GetByID(ctx, session.SpeakerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: speaker not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to get speaker: %w", err)
	}

	allowed, err := canManageEvent(ctx, s.userRepo, event, callerID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if strings.TrimSpace(session.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if session.EndTime.Before(session.StartTime) {
		return fmt.Errorf("%w: end_time must not be before start_time", domain.ErrInvalidInput)
	}

	session.Title = strings.TrimSpace(session.Title)
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *sessionService) ListEventSessions(ctx context.Context, eventID int64) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: event not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	sessions, err := s.sessionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
