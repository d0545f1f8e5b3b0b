package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventdesk/internal/domain"
)

type budgetService struct {
	budgetRepo     domain.BudgetRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

func NewBudgetService(
	budgetRepo domain.BudgetRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	timeout time.Duration,
) domain.BudgetService {
	return &budgetService{
		budgetRepo:     budgetRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

func (s *budgetService) CreateBudgetItem(ctx context.Context, callerID int64, item *domain.BudgetItem) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, item.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: event not found", domain.ErrNotFound)
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	allowed, err := canManageEvent(ctx, s.userRepo, event, callerID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if item.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}

	item.Name = strings.TrimSpace(item.Name)
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.budgetRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("failed to create budget item: %w", err)
	}
	return nil
}

func (s *budgetService) ListEventBudget(ctx context.Context, eventID, callerID int64) ([]*domain.BudgetItem, error) {
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

	items, err := s.budgetRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	return items, nil
}
