package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"eventdesk/internal/domain"
)

const (
	minSpeakerNameLen = 2
	maxSpeakerNameLen = 100
)

type speakerService struct {
	speakerRepo    domain.SpeakerRepository
	contextTimeout time.Duration
}

func NewSpeakerService(speakerRepo domain.SpeakerRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{speakerRepo: speakerRepo, contextTimeout: timeout}
}

func (s *speakerService) CreateSpeaker(ctx context.Context, speaker *domain.Speaker) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name := strings.TrimSpace(speaker.Name)
	if n := utf8.RuneCountInString(name); n < minSpeakerNameLen || n > maxSpeakerNameLen {
		return fmt.Errorf("%w: name must be between %d and %d characters", domain.ErrInvalidInput, minSpeakerNameLen, maxSpeakerNameLen)
	}
	speaker.Name = name

	now := time.Now()
	speaker.CreatedAt = now
	speaker.UpdatedAt = now

	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return fmt.Errorf("failed to create speaker: %w", err)
	}
	return nil
}

func (s *speakerService) GetSpeaker(ctx context.Context, id int64) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speaker, err := s.speakerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get speaker: %w", err)
	}
	return speaker, nil
}

func (s *speakerService) ListSpeakers(ctx context.Context, params domain.PaginationParams) ([]*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speakers, err := s.speakerRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list speakers: %w", err)
	}
	return speakers, nil
}
