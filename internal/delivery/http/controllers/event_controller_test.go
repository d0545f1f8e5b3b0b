package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/domain"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr error
	listed    []*domain.Event
	listErr   error
	got       *domain.Event
	getErr    error
	updated   *domain.Event
	updateErr error
	deleteErr error

	lastPagination domain.PaginationParams
	lastCallerID   int64
}

func (f *fakeEventService) CreateEvent(_ context.Context, organizerID int64, event *domain.Event) error {
	f.lastCallerID = organizerID
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = 1
	return nil
}

func (f *fakeEventService) ListEvents(_ context.Context, params domain.PaginationParams) ([]*domain.Event, error) {
	f.lastPagination = params
	return f.listed, f.listErr
}

func (f *fakeEventService) GetEvent(_ context.Context, eventID int64) (*domain.Event, error) {
	return f.got, f.getErr
}

func (f *fakeEventService) UpdateEvent(_ context.Context, eventID, callerID int64, patch domain.EventPatch) (*domain.Event, error) {
	f.lastCallerID = callerID
	return f.updated, f.updateErr
}

func (f *fakeEventService) DeleteEvent(_ context.Context, eventID, callerID int64) error {
	f.lastCallerID = callerID
	return f.deleteErr
}

func authedRequest(method, path string, body []byte, userID int64) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req.WithContext(middleware.SetUserID(req.Context(), userID))
}

func TestEventController_CreateEvent(t *testing.T) {
	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)
		body, _ := json.Marshal(map[string]any{
			"title":      "GopherCon",
			"location":   "Berlin",
			"start_date": start,
			"end_date":   end,
		})
		rec := httptest.NewRecorder()
		c.CreateEvent(rec, authedRequest(http.MethodPost, "/events", body, 42))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(42), svc.lastCallerID)

		var resp struct {
			Data domain.Event `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(1), resp.Data.ID)
		assert.Equal(t, "GopherCon", resp.Data.Title)
		assert.Equal(t, int64(42), resp.Data.OrganizerID)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		body, _ := json.Marshal(map[string]any{
			"title":      "GopherCon",
			"start_date": end,
			"end_date":   start,
		})
		rec := httptest.NewRecorder()
		c.CreateEvent(rec, authedRequest(http.MethodPost, "/events", body, 42))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeAPIResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Message, "end_date")
	})

	t.Run("title too short rejected", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		body, _ := json.Marshal(map[string]any{
			"title":      "Go",
			"start_date": start,
			"end_date":   end,
		})
		rec := httptest.NewRecorder()
		c.CreateEvent(rec, authedRequest(http.MethodPost, "/events", body, 42))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		body, _ := json.Marshal(map[string]any{
			"title":      "GopherCon",
			"start_date": start,
			"end_date":   end,
		})
		req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		c.CreateEvent(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestEventController_ListEvents(t *testing.T) {
	t.Run("nil slice serialized as empty array", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{listed: nil})
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rec := httptest.NewRecorder()
		c.ListEvents(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("pagination params forwarded and capped", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)
		req := httptest.NewRequest(http.MethodGet, "/events?offset=20&limit=500", nil)
		rec := httptest.NewRecorder()
		c.ListEvents(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 20, svc.lastPagination.Offset)
		assert.Equal(t, helpers.MaxLimit, svc.lastPagination.Limit)
	})
}

func TestEventController_GetEvent(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{getErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/events/99", nil)
		req.SetPathValue("eventID", "99")
		rec := httptest.NewRecorder()
		c.GetEvent(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeAPIResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("store failure is not echoed to the caller", func(t *testing.T) {
		storeErr := errors.New(`pq: password authentication failed for user "eventdesk"`)
		c := NewEventController(testLogger, &fakeEventService{getErr: storeErr})
		req := httptest.NewRequest(http.MethodGet, "/events/1", nil)
		req.SetPathValue("eventID", "1")
		rec := httptest.NewRecorder()
		c.GetEvent(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeAPIResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeInternalError, resp.Error.Code)
		assert.Equal(t, "internal server error", resp.Error.Message)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		req := httptest.NewRequest(http.MethodGet, "/events/abc", nil)
		req.SetPathValue("eventID", "abc")
		rec := httptest.NewRecorder()
		c.GetEvent(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventController_UpdateEvent(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeEventService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing event",
			svc:        &fakeEventService{updateErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "caller not organizer or admin",
			svc:        &fakeEventService{updateErr: domain.ErrForbidden},
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
		},
		{
			name:       "merged dates out of order",
			svc:        &fakeEventService{updateErr: domain.ErrInvalidInput},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "success",
			svc:        &fakeEventService{updated: &domain.Event{ID: 1, Title: "Renamed"}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEventController(testLogger, tt.svc)
			body, _ := json.Marshal(map[string]any{"title": "Renamed"})
			req := authedRequest(http.MethodPut, "/events/1", body, 2)
			req.SetPathValue("eventID", "1")
			rec := httptest.NewRecorder()
			c.UpdateEvent(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				resp := decodeAPIResponse(t, rec)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	t.Run("success returns status deleted", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)
		req := authedRequest(http.MethodDelete, "/events/1", nil, 7)
		req.SetPathValue("eventID", "1")
		rec := httptest.NewRecorder()
		c.DeleteEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(7), svc.lastCallerID)
		assert.Contains(t, rec.Body.String(), `"status":"deleted"`)
	})

	t.Run("forbidden", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{deleteErr: domain.ErrForbidden})
		req := authedRequest(http.MethodDelete, "/events/1", nil, 7)
		req.SetPathValue("eventID", "1")
		rec := httptest.NewRecorder()
		c.DeleteEvent(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
