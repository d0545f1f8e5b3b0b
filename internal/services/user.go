package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventdesk/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
}

// NewUserService creates a UserService for profile reads and partial updates.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher) domain.UserService {
	return &userService{userRepo: userRepo, hasher: hasher}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, patch domain.UserPatch, password *string) (*domain.User, error) {
	if patch.Username != nil {
		trimmed := strings.TrimSpace(*patch.Username)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
		}
		patch.Username = &trimmed
	}
	if patch.Email != nil {
		normalized := strings.TrimSpace(strings.ToLower(*patch.Email))
		if !emailRegexp.MatchString(normalized) {
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
		}
		patch.Email = &normalized
	}

	var hashPtr, saltPtr *string
	if password != nil {
		if err := validatePassword(*password); err != nil {
			return nil, err
		}
		salt, err := s.hasher.GenerateSalt()
		if err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
		hash, err := s.hasher.Hash(salt, *password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashPtr, saltPtr = &hash, &salt
	}

	user, err := s.userRepo.Update(ctx, id, patch, hashPtr, saltPtr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) ||
			errors.Is(err, domain.ErrDuplicateEmail) ||
			errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
