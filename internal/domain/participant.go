package domain

import (
	"context"
	"time"
)

// Participant represents a person registered for an event. UserID links the
// registering account when the registration was made while logged in.
// swagger:model Participant
type Participant struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
	PaymentStatus    bool      `json:"payment_status"`
	EventID          int64     `json:"event_id"`
	UserID           *int64    `json:"user_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewParticipant returns a new Participant with the given fields. ID and
// RegistrationDate default handling are done by the service/repository.
func NewParticipant(name, email string, eventID int64, userID *int64, registrationDate time.Time, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		Name:             name,
		Email:            email,
		EventID:          eventID,
		UserID:           userID,
		RegistrationDate: registrationDate,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

// ParticipantRepository defines the interface for participant storage
type ParticipantRepository interface {
	Create(ctx context.Context, participant *Participant) error
	ListByEventID(ctx context.Context, eventID int64) ([]*Participant, error)
}

// ParticipantService defines the business logic for event registrations.
type ParticipantService interface {
	Register(ctx context.Context, callerID int64, participant *Participant) error
	ListEventParticipants(ctx context.Context, eventID, callerID int64) ([]*Participant, error)
}
