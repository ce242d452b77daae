package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
	"studyhub/internal/stats"
)

// StudySessionHandler handles study session endpoints.
type StudySessionHandler struct {
	sessionService service.StudySessionService
	loc            *time.Location
}

// NewStudySessionHandler creates a new study session handler. Bare dates are read in loc.
func NewStudySessionHandler(sessionService service.StudySessionService, loc *time.Location) *StudySessionHandler {
	return &StudySessionHandler{sessionService: sessionService, loc: loc}
}

// StudySessionRequest represents a study session create or update request.
// Duration is in minutes; fractions from the timer are rounded.
type StudySessionRequest struct {
	Subject  string  `json:"subject" validate:"required"`
	Duration float64 `json:"duration" validate:"required,gt=0"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes"`
}

func (r StudySessionRequest) model(loc *time.Location) (*model.StudySession, error) {
	date, err := parseDate(r.Date, loc)
	if err != nil {
		return nil, err
	}
	return &model.StudySession{
		Subject:  r.Subject,
		Duration: service.RoundMinutes(r.Duration),
		Date:     date,
		Notes:    r.Notes,
	}, nil
}

// List godoc
// @Summary List study sessions, newest first
// @Tags study-session
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Subject substring, or All"
// @Param timeFilter query string false "today, yesterday, thisWeek, thisMonth, thisYear or lifetime"
// @Success 200 {array} model.StudySession
// @Router /study-session/all [get]
func (h *StudySessionHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	sessions, err := h.sessionService.List(c.Request().Context(), userID,
		c.QueryParam("subject"), stats.ParseWindow(c.QueryParam("timeFilter")))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

// Stats godoc
// @Summary Study time totals by subject and by day
// @Tags study-session
// @Produce json
// @Security BearerAuth
// @Param timeFilter query string false "today, yesterday, thisWeek, thisMonth, thisYear or lifetime"
// @Success 200 {object} stats.SessionStats
// @Router /study-session/stats [get]
func (h *StudySessionHandler) Stats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	st, err := h.sessionService.Stats(c.Request().Context(), userID, stats.ParseWindow(c.QueryParam("timeFilter")))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, st)
}

// Chart godoc
// @Summary Hours per subject per day for charting
// @Tags study-session
// @Produce json
// @Security BearerAuth
// @Param timeFilter query string false "today, yesterday, thisWeek, thisMonth, thisYear or lifetime"
// @Success 200 {object} stats.StudyChart
// @Router /study-session/chart [get]
func (h *StudySessionHandler) Chart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	chart, err := h.sessionService.Chart(c.Request().Context(), userID, stats.ParseWindow(c.QueryParam("timeFilter")))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, chart)
}

// Create godoc
// @Summary Log a study session
// @Tags study-session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StudySessionRequest true "Study session"
// @Success 201 {object} model.StudySession
// @Failure 400 {object} errors.ErrorResponse
// @Router /study-session/add [post]
func (h *StudySessionHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req StudySessionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	session, err := req.model(h.loc)
	if err != nil {
		return fail(err)
	}
	created, err := h.sessionService.Create(c.Request().Context(), userID, session)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a study session
// @Tags study-session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body StudySessionRequest true "Study session"
// @Success 200 {object} model.StudySession
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /study-session/update/{id} [put]
func (h *StudySessionHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Study session")
	if err != nil {
		return err
	}
	var req StudySessionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	session, err := req.model(h.loc)
	if err != nil {
		return fail(err)
	}
	updated, err := h.sessionService.Update(c.Request().Context(), userID, id, session)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a study session
// @Tags study-session
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /study-session/delete/{id} [delete]
func (h *StudySessionHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Study session")
	if err != nil {
		return err
	}
	if err := h.sessionService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Study session deleted successfully"})
}
