package domain

import (
	"context"
	"time"
)

// Session represents a conference session or talk held under an event and
// given by a speaker.
// swagger:model Session
type Session struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	EventID     int64     `json:"event_id"`
	SpeakerID   int64     `json:"speaker_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSession returns a new Session with the given fields. ID is set by the
// repository on create.
func NewSession(title, description string, startTime, endTime time.Time, eventID, speakerID int64, createdAt, updatedAt time.Time) *Session {
	return &Session{
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		EventID:     eventID,
		SpeakerID:   speakerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id int64) (*Session, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*Session, error)
}

// SessionService defines the business logic for sessions. Creating a session
// requires the event and speaker to exist and the caller to be the event's
// organizer or an admin.
type SessionService interface {
	CreateSession(ctx context.Context, callerID int64, session *Session) error
	ListEventSessions(ctx context.Context, eventID int64) ([]*Session, error)
}
