package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"studyhub/internal/model"
	"studyhub/internal/service"
	"studyhub/internal/stats"
)

// BudgetHandler handles budget endpoints.
type BudgetHandler struct {
	budgetService service.BudgetService
	loc           *time.Location
}

// NewBudgetHandler creates a new budget handler. Bare dates are read in loc.
func NewBudgetHandler(budgetService service.BudgetService, loc *time.Location) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, loc: loc}
}

// BudgetRequest represents a budget entry create or update request.
type BudgetRequest struct {
	Type        string           `json:"type" validate:"required,oneof=income expense"`
	Category    string           `json:"category"`
	Amount      *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

func (r BudgetRequest) model(loc *time.Location) (*model.BudgetEntry, error) {
	date, err := parseDate(r.Date, loc)
	if err != nil {
		return nil, err
	}
	return &model.BudgetEntry{
		Type:        model.BudgetType(r.Type),
		Category:    r.Category,
		Amount:      *r.Amount,
		Description: r.Description,
		Date:        date,
	}, nil
}

// List godoc
// @Summary List budget entries, newest first
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param timeFilter query string false "today, yesterday, thisWeek, thisMonth, thisYear or lifetime"
// @Success 200 {array} model.BudgetEntry
// @Failure 401 {object} errors.ErrorResponse
// @Router /budget/all [get]
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	entries, err := h.budgetService.List(c.Request().Context(), userID, stats.ParseWindow(c.QueryParam("timeFilter")))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Summary godoc
// @Summary Income, expense and balance totals
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param timeFilter query string false "today, yesterday, thisWeek, thisMonth, thisYear or lifetime"
// @Success 200 {object} stats.BudgetSummary
// @Failure 401 {object} errors.ErrorResponse
// @Router /budget/summary [get]
func (h *BudgetHandler) Summary(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	summary, err := h.budgetService.Summary(c.Request().Context(), userID, stats.ParseWindow(c.QueryParam("timeFilter")))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// Create godoc
// @Summary Add a budget entry
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BudgetRequest true "Budget entry"
// @Success 201 {object} model.BudgetEntry
// @Failure 400 {object} errors.ErrorResponse
// @Router /budget/add [post]
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req BudgetRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := req.model(h.loc)
	if err != nil {
		return fail(err)
	}
	created, err := h.budgetService.Create(c.Request().Context(), userID, entry)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a budget entry
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body BudgetRequest true "Budget entry"
// @Success 200 {object} model.BudgetEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /budget/update/{id} [put]
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Budget entry")
	if err != nil {
		return err
	}
	var req BudgetRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := req.model(h.loc)
	if err != nil {
		return fail(err)
	}
	updated, err := h.budgetService.Update(c.Request().Context(), userID, id, entry)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a budget entry
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /budget/delete/{id} [delete]
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Budget entry")
	if err != nil {
		return err
	}
	if err := h.budgetService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Budget entry deleted successfully"})
}
