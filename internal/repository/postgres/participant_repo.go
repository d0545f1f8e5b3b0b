package postgres

import (
	"context"
	"database/sql"

	"eventdesk/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (name, email, registration_date, payment_status, event_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var userID sql.NullInt64
	if p.UserID != nil {
		userID = sql.NullInt64{Int64: *p.UserID, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query,
		p.Name, p.Email, p.RegistrationDate, p.PaymentStatus, p.EventID, userID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *participantRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Participant, error) {
	query := `
		SELECT id, name, email, registration_date, payment_status, event_id, user_id, created_at, updated_at
		FROM participants
		WHERE event_id = $1
		ORDER BY registration_date ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		var userID sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.RegistrationDate, &p.PaymentStatus, &p.EventID, &userID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			p.UserID = &userID.Int64
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}
