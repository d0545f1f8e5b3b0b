package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/domain"
)

// CreateBudgetItemRequest is the request body for POST /budgets. is_expense
// defaults to true when omitted.
type CreateBudgetItemRequest struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	IsExpense *bool   `json:"is_expense"`
	EventID   int64   `json:"event_id"`
}

// Validate implements Validator.
func (b CreateBudgetItemRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(b.Name) == "" {
		errs = append(errs, "name is required")
	}
	if b.Amount <= 0 {
		errs = append(errs, "amount must be greater than zero")
	}
	if b.EventID <= 0 {
		errs = append(errs, "event_id is required")
	}
	return errs
}

type BudgetController struct {
	Logger  *slog.Logger
	Service domain.BudgetService
}

func NewBudgetController(logger *slog.Logger, svc domain.BudgetService) *BudgetController {
	return &BudgetController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBudgetItem godoc
// @Summary Record a budget item
// @Description Records an expense or income item against an event's budget. Only the event's organizer or an admin can record items. amount must be greater than zero.
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateBudgetItemRequest true "Budget item data"
// @Success 201 {object} helpers.APIResponse "data contains the created budget item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer or admin)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /budgets [post]
func (c *BudgetController) CreateBudgetItem(w http.ResponseWriter, r *http.Request) {
	var req CreateBudgetItemRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	isExpense := true
	if req.IsExpense != nil {
		isExpense = *req.IsExpense
	}
	now := time.Now()
	item := domain.NewBudgetItem(req.Name, req.Category, req.Amount, isExpense, req.EventID, now, now)
	if err := c.Service.CreateBudgetItem(r.Context(), callerID, item); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, item)
}

// ListEventBudget godoc
// @Summary List budget items of an event
// @Description Returns the budget items recorded against the event. Only the event's organizer or an admin can list. Requires authentication.
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is an array of budget items"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer or admin)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/budgets [get]
func (c *BudgetController) ListEventBudget(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseIDParam(w, r, "eventID")
	if !ok {
		return
	}
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	items, err := c.Service.ListEventBudget(r.Context(), eventID, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
		return
	}
	if items == nil {
		items = []*domain.BudgetItem{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, items)
}
