package domain

import (
	"context"
	"time"
)

// Event represents a conference event. The organizer is the user who created
// it and never changes afterwards.
// swagger:model Event
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	OrganizerID int64     `json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the
// repository on create.
func NewEvent(title, description, location string, startDate, endDate time.Time, organizerID int64, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    location,
		OrganizerID: organizerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventPatch holds the optional fields of an event update. Nil fields are
// left untouched; organizer_id is not patchable.
type EventPatch struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    *string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, error)
	Update(ctx context.Context, id int64, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventService defines the business logic for events, including the
// organizer/admin authorization rules on mutation.
type EventService interface {
	CreateEvent(ctx context.Context, organizerID int64, event *Event) error
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	UpdateEvent(ctx context.Context, eventID, callerID int64, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, callerID int64) error
}
