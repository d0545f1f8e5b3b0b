package services

import (
	"context"
	"errors"
	"fmt"

	"eventdesk/internal/domain"
)

// canManageEvent reports whether the caller may mutate the event: either the
// organizer who created it or an admin account.
func canManageEvent(ctx context.Context, userRepo domain.UserRepository, event *domain.Event, callerID int64) (bool, error) {
	if event.OrganizerID == callerID {
		return true, nil
	}
	caller, err := userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get caller: %w", err)
	}
	return caller.IsAdmin, nil
}
