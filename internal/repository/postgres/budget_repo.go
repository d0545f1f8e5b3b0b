package postgres

import (
	"context"
	"database/sql"

	"eventdesk/internal/domain"
)

type budgetRepository struct {
	DB *sql.DB
}

func NewBudgetRepository(db *sql.DB) domain.BudgetRepository {
	return &budgetRepository{DB: db}
}

func (r *budgetRepository) Create(ctx context.Context, b *domain.BudgetItem) error {
	query := `
		INSERT INTO budget_items (name, amount, category, is_expense, event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		b.Name, b.Amount, b.Category, b.IsExpense, b.EventID, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
}

func (r *budgetRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.BudgetItem, error) {
	query := `
		SELECT id, name, amount, category, is_expense, event_id, created_at, updated_at
		FROM budget_items
		WHERE event_id = $1
		ORDER BY id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*domain.BudgetItem, 0)
	for rows.Next() {
		b := &domain.BudgetItem{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Amount, &b.Category, &b.IsExpense, &b.EventID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
