package domain

import (
	"context"
	"time"
)

// Speaker represents a speaker that sessions can reference. Speakers are not
// owned by any user.
// swagger:model Speaker
type Speaker struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	ContactInfo string    `json:"contact_info"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker with the given fields. ID is set by the
// repository on create.
func NewSpeaker(name, bio, contactInfo string, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		Name:        name,
		Bio:         bio,
		ContactInfo: contactInfo,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// SpeakerRepository defines the interface for speaker storage
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id int64) (*Speaker, error)
	List(ctx context.Context, params PaginationParams) ([]*Speaker, error)
}

// SpeakerService defines the business logic for speakers.
type SpeakerService interface {
	CreateSpeaker(ctx context.Context, speaker *Speaker) error
	GetSpeaker(ctx context.Context, id int64) (*Speaker, error)
	ListSpeakers(ctx context.Context, params PaginationParams) ([]*Speaker, error)
}
