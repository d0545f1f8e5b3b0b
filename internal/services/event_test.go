package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
)

const testTimeout = 5 * time.Second

func seedEventFixture(t *testing.T) (*fakeEventRepo, *fakeUserRepo, *domain.Event) {
	t.Helper()
	userRepo := newFakeUserRepo()
	userRepo.add(&domain.User{Username: "organizer", Email: "organizer@example.com"})
	userRepo.add(&domain.User{Username: "other", Email: "other@example.com"})
	userRepo.add(&domain.User{Username: "admin", Email: "admin@example.com", IsAdmin: true})

	eventRepo := newFakeEventRepo()
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	event := eventRepo.add(&domain.Event{
		Title:       "GopherCon",
		StartDate:   start,
		EndDate:     start.Add(8 * time.Hour),
		Location:    "Berlin",
		OrganizerID: 1,
	})
	return eventRepo, userRepo, event
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		wantErr error
	}{
		{
			name:  "success",
			event: &domain.Event{Title: "GopherCon", StartDate: start, EndDate: start.Add(time.Hour)},
		},
		{
			name:  "start equal to end is allowed",
			event: &domain.Event{Title: "Kickoff", StartDate: start, EndDate: start},
		},
		{
			name:    "end before start",
			event:   &domain.Event{Title: "GopherCon", StartDate: start, EndDate: start.Add(-time.Minute)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "title too short",
			event:   &domain.Event{Title: "ab", StartDate: start, EndDate: start.Add(time.Hour)},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(newFakeEventRepo(), newFakeUserRepo(), testTimeout)
			err := svc.CreateEvent(ctx, 1, tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, tt.event.ID)
			require.Equal(t, int64(1), tt.event.OrganizerID)
		})
	}
}

func TestEventService_UpdateEvent_Authorization(t *testing.T) {
	ctx := context.Background()
	title := "GopherCon EU"

	tests := []struct {
		name     string
		eventID  int64
		callerID int64
		wantErr  error
	}{
		{name: "organizer may update", eventID: 1, callerID: 1},
		{name: "admin may update", eventID: 1, callerID: 3},
		{name: "other user is forbidden", eventID: 1, callerID: 2, wantErr: domain.ErrForbidden},
		{name: "missing event reads as not found even for strangers", eventID: 99, callerID: 2, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo, userRepo, _ := seedEventFixture(t)
			svc := NewEventService(eventRepo, userRepo, testTimeout)
			updated, err := svc.UpdateEvent(ctx, tt.eventID, tt.callerID, domain.EventPatch{Title: &title})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, title, updated.Title)
		})
	}
}

func TestEventService_UpdateEvent_MergedDateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("new end before stored start is rejected", func(t *testing.T) {
		eventRepo, userRepo, event := seedEventFixture(t)
		svc := NewEventService(eventRepo, userRepo, testTimeout)
		badEnd := event.StartDate.Add(-time.Hour)
		_, err := svc.UpdateEvent(ctx, event.ID, 1, domain.EventPatch{EndDate: &badEnd})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("new start after stored end is rejected", func(t *testing.T) {
		eventRepo, userRepo, event := seedEventFixture(t)
		svc := NewEventService(eventRepo, userRepo, testTimeout)
		badStart := event.EndDate.Add(time.Hour)
		_, err := svc.UpdateEvent(ctx, event.ID, 1, domain.EventPatch{StartDate: &badStart})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("moving both dates together is allowed", func(t *testing.T) {
		eventRepo, userRepo, event := seedEventFixture(t)
		svc := NewEventService(eventRepo, userRepo, testTimeout)
		newStart := event.EndDate.Add(24 * time.Hour)
		newEnd := newStart.Add(8 * time.Hour)
		updated, err := svc.UpdateEvent(ctx, event.ID, 1, domain.EventPatch{StartDate: &newStart, EndDate: &newEnd})
		require.NoError(t, err)
		require.Equal(t, newStart, updated.StartDate)
		require.Equal(t, newEnd, updated.EndDate)
	})

	t.Run("untouched fields survive a partial update", func(t *testing.T) {
		eventRepo, userRepo, event := seedEventFixture(t)
		svc := NewEventService(eventRepo, userRepo, testTimeout)
		location := "Munich"
		updated, err := svc.UpdateEvent(ctx, event.ID, 1, domain.EventPatch{Location: &location})
		require.NoError(t, err)
		require.Equal(t, "GopherCon", updated.Title)
		require.Equal(t, location, updated.Location)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		eventID  int64
		callerID int64
		wantErr  error
	}{
		{name: "organizer may delete", eventID: 1, callerID: 1},
		{name: "admin may delete", eventID: 1, callerID: 3},
		{name: "other user is forbidden", eventID: 1, callerID: 2, wantErr: domain.ErrForbidden},
		{name: "missing event", eventID: 99, callerID: 1, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo, userRepo, _ := seedEventFixture(t)
			svc := NewEventService(eventRepo, userRepo, testTimeout)
			err := svc.DeleteEvent(ctx, tt.eventID, tt.callerID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			_, err = eventRepo.GetByID(ctx, tt.eventID)
			require.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestEventService_ListEvents_Pagination(t *testing.T) {
	ctx := context.Background()
	eventRepo := newFakeEventRepo()
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		eventRepo.add(&domain.Event{Title: "Event", StartDate: start, EndDate: start, OrganizerID: 1})
	}
	svc := NewEventService(eventRepo, newFakeUserRepo(), testTimeout)

	events, err := svc.ListEvents(ctx, domain.PaginationParams{Offset: 3, Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
}
