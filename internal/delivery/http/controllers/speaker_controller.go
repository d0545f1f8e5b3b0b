package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	h "eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// CreateSpeakerRequest is the request body for POST /speakers.
type CreateSpeakerRequest struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	ContactInfo string `json:"contact_info"`
}

// Validate implements Validator.
func (c CreateSpeakerRequest) Validate() []string {
	var errs []string
	n := utf8.RuneCountInString(strings.TrimSpace(c.Name))
	if n < 2 || n > 100 {
		errs = append(errs, "name must be between 2 and 100 characters")
	}
	return errs
}

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSpeaker godoc
// @Summary Create a speaker
// @Description Create a speaker profile. Any authenticated user can create speakers.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSpeakerRequest true "Speaker data"
// @Success 201 {object} helpers.APIResponse "data contains the created speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) CreateSpeaker(w http.ResponseWriter, r *http.Request) {
	var req CreateSpeakerRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	speaker := domain.NewSpeaker(req.Name, req.Bio, req.ContactInfo, now, now)
	if err := c.Service.CreateSpeaker(r.Context(), speaker); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, speaker)
}

// ListSpeakers godoc
// @Summary List speakers
// @Description Returns speakers ordered by name. Public. Use offset and limit query params.
// @Tags speakers
// @Produce json
// @Param offset query int false "Number of speakers to skip (default 0)"
// @Param limit query int false "Maximum speakers to return (default 100, max 100)"
// @Success 200 {object} helpers.APIResponse "data is an array of speakers"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	speakers, err := c.Service.ListSpeakers(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, speakers)
}

// GetSpeaker godoc
// @Summary Get a speaker by ID
// @Description Returns a single speaker. Public.
// @Tags speakers
// @Produce json
// @Param speakerID path int true "Speaker ID"
// @Success 200 {object} helpers.APIResponse "data contains the speaker"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID} [get]
func (c *SpeakerController) GetSpeaker(w http.ResponseWriter, r *http.Request) {
	speakerID, ok := parseIDParam(w, r, "speakerID")
	if !ok {
		return
	}
	speaker, err := c.Service.GetSpeaker(r.Context(), speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "speaker not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, speaker)
}
