package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// fakeParticipantService implements domain.ParticipantService for handler tests.
type fakeParticipantService struct {
	registerErr error
	listed      []*domain.Participant
	listErr     error

	lastCallerID int64
}

func (f *fakeParticipantService) Register(_ context.Context, callerID int64, p *domain.Participant) error {
	f.lastCallerID = callerID
	if f.registerErr != nil {
		return f.registerErr
	}
	p.ID = 1
	return nil
}

func (f *fakeParticipantService) ListEventParticipants(_ context.Context, eventID, callerID int64) ([]*domain.Participant, error) {
	f.lastCallerID = callerID
	return f.listed, f.listErr
}

func TestParticipantController_Register(t *testing.T) {
	t.Run("success links the caller", func(t *testing.T) {
		svc := &fakeParticipantService{}
		c := NewParticipantController(testLogger, svc)
		body, _ := json.Marshal(map[string]any{"name": "Bob", "email": "bob@example.com", "event_id": 1})
		rec := httptest.NewRecorder()
		c.Register(rec, authedRequest(http.MethodPost, "/participants", body, 7))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(7), svc.lastCallerID)

		var resp struct {
			Data domain.Participant `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.NotNil(t, resp.Data.UserID)
		assert.Equal(t, int64(7), *resp.Data.UserID)
	})

	t.Run("unknown event", func(t *testing.T) {
		c := NewParticipantController(testLogger, &fakeParticipantService{registerErr: domain.ErrNotFound})
		body, _ := json.Marshal(map[string]any{"name": "Bob", "email": "bob@example.com", "event_id": 99})
		rec := httptest.NewRecorder()
		c.Register(rec, authedRequest(http.MethodPost, "/participants", body, 7))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		c := NewParticipantController(testLogger, &fakeParticipantService{})
		body, _ := json.Marshal(map[string]any{"name": "Bob", "email": "not-an-email", "event_id": 1})
		rec := httptest.NewRecorder()
		c.Register(rec, authedRequest(http.MethodPost, "/participants", body, 7))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestParticipantController_ListEventParticipants(t *testing.T) {
	t.Run("forbidden for non-organizer", func(t *testing.T) {
		c := NewParticipantController(testLogger, &fakeParticipantService{listErr: domain.ErrForbidden})
		req := authedRequest(http.MethodGet, "/events/1/participants", nil, 2)
		req.SetPathValue("eventID", "1")
		rec := httptest.NewRecorder()
		c.ListEventParticipants(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeAPIResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeForbidden, resp.Error.Code)
	})

	t.Run("missing event wins over authorization", func(t *testing.T) {
		c := NewParticipantController(testLogger, &fakeParticipantService{listErr: domain.ErrNotFound})
		req := authedRequest(http.MethodGet, "/events/99/participants", nil, 2)
		req.SetPathValue("eventID", "99")
		rec := httptest.NewRecorder()
		c.ListEventParticipants(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("organizer gets empty array", func(t *testing.T) {
		c := NewParticipantController(testLogger, &fakeParticipantService{})
		req := authedRequest(http.MethodGet, "/events/1/participants", nil, 1)
		req.SetPathValue("eventID", "1")
		rec := httptest.NewRecorder()
		c.ListEventParticipants(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})
}
