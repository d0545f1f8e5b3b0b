package domain

import (
	"context"
	"time"
)

// BudgetItem represents a single income or expense line attached to an event.
// swagger:model BudgetItem
type BudgetItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	IsExpense bool      `json:"is_expense"`
	EventID   int64     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBudgetItem returns a new BudgetItem with the given fields. ID is set by
// the repository on create.
func NewBudgetItem(name, category string, amount float64, isExpense bool, eventID int64, createdAt, updatedAt time.Time) *BudgetItem {
	return &BudgetItem{
		Name:      name,
		Amount:    amount,
		Category:  category,
		IsExpense: isExpense,
		EventID:   eventID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BudgetRepository defines the interface for budget item storage
type BudgetRepository interface {
	Create(ctx context.Context, item *BudgetItem) error
	ListByEventID(ctx context.Context, eventID int64) ([]*BudgetItem, error)
}

// BudgetService defines the business logic for budget items. All operations
// are restricted to the event's organizer or an admin.
type BudgetService interface {
	CreateBudgetItem(ctx context.Context, callerID int64, item *BudgetItem) error
	ListEventBudget(ctx context.Context, eventID, callerID int64) ([]*BudgetItem, error)
}
