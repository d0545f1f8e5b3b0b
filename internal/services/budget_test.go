package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
)

func TestBudgetService_CreateBudgetItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		callerID int64
		item     *domain.BudgetItem
		wantErr  error
	}{
		{
			name:     "organizer records an expense",
			callerID: 1,
			item:     &domain.BudgetItem{Name: "Venue", Amount: 2500, Category: "venue", IsExpense: true, EventID: 1},
		},
		{
			name:     "admin records an income item",
			callerID: 3,
			item:     &domain.BudgetItem{Name: "Sponsorship", Amount: 10000, Category: "sponsor", IsExpense: false, EventID: 1},
		},
		{
			name:     "non-organizer is forbidden",
			callerID: 2,
			item:     &domain.BudgetItem{Name: "Venue", Amount: 2500, EventID: 1},
			wantErr:  domain.ErrForbidden,
		},
		{
			name:     "missing event",
			callerID: 1,
			item:     &domain.BudgetItem{Name: "Venue", Amount: 2500, EventID: 99},
			wantErr:  domain.ErrNotFound,
		},
		{
			name:     "zero amount",
			callerID: 1,
			item:     &domain.BudgetItem{Name: "Venue", Amount: 0, EventID: 1},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "negative amount",
			callerID: 1,
			item:     &domain.BudgetItem{Name: "Venue", Amount: -5, EventID: 1},
			wantErr:  domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo, userRepo, _ := seedEventFixture(t)
			budgetRepo := newFakeBudgetRepo()
			svc := NewBudgetService(budgetRepo, eventRepo, userRepo, testTimeout)

			err := svc.CreateBudgetItem(ctx, tt.callerID, tt.item)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, budgetRepo.items)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, tt.item.ID)
		})
	}
}

func TestBudgetService_ListEventBudget(t *testing.T) {
	ctx := context.Background()
	eventRepo, userRepo, event := seedEventFixture(t)
	budgetRepo := newFakeBudgetRepo()
	svc := NewBudgetService(budgetRepo, eventRepo, userRepo, testTimeout)

	require.NoError(t, svc.CreateBudgetItem(ctx, 1, &domain.BudgetItem{Name: "Venue", Amount: 2500, IsExpense: true, EventID: event.ID}))
	require.NoError(t, svc.CreateBudgetItem(ctx, 1, &domain.BudgetItem{Name: "Tickets", Amount: 8000, EventID: event.ID}))

	t.Run("organizer sees all items", func(t *testing.T) {
		items, err := svc.ListEventBudget(ctx, event.ID, 1)
		require.NoError(t, err)
		require.Len(t, items, 2)
	})

	t.Run("admin sees all items", func(t *testing.T) {
		items, err := svc.ListEventBudget(ctx, event.ID, 3)
		require.NoError(t, err)
		require.Len(t, items, 2)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := svc.ListEventBudget(ctx, event.ID, 2)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := svc.ListEventBudget(ctx, 99, 1)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
