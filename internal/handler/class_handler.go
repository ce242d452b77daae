package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/service"
)

// ClassHandler handles class schedule endpoints.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// ClassRequest represents a class create or update request.
type ClassRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Day        string `json:"day" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Instructor string `json:"instructor" validate:"required"`
	Color      string `json:"color" validate:"omitempty,hexcolor"`
}

func (r ClassRequest) model() *model.ClassSession {
	return &model.ClassSession{
		Subject:    r.Subject,
		Day:        r.Day,
		Time:       r.Time,
		Instructor: r.Instructor,
		Color:      r.Color,
	}
}

// ConflictResponse reports whether a (day, time) slot is taken.
type ConflictResponse struct {
	Conflict bool                `json:"conflict"`
	Class    *model.ClassSession `json:"class,omitempty"`
}

// List godoc
// @Summary List classes, Saturday first
// @Tags class
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ClassSession
// @Failure 401 {object} errors.ErrorResponse
// @Router /class/all [get]
func (h *ClassHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	classes, err := h.classService.List(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, classes)
}

// Create godoc
// @Summary Add a class
// @Tags class
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClassRequest true "Class"
// @Success 201 {object} model.ClassSession
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /class/add [post]
func (h *ClassHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req ClassRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	class, err := h.classService.Create(c.Request().Context(), userID, req.model())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, class)
}

// Update godoc
// @Summary Update a class
// @Tags class
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param request body ClassRequest true "Class"
// @Success 200 {object} model.ClassSession
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /class/update/{id} [put]
func (h *ClassHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Class")
	if err != nil {
		return err
	}
	var req ClassRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	class, err := h.classService.Update(c.Request().Context(), userID, id, req.model())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, class)
}

// Delete godoc
// @Summary Delete a class
// @Tags class
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /class/delete/{id} [delete]
func (h *ClassHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Class")
	if err != nil {
		return err
	}
	if err := h.classService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Class deleted successfully"})
}

// Next godoc
// @Summary Next upcoming class
// @Tags class
// @Produce json
// @Security BearerAuth
// @Success 200 {object} schedule.Upcoming
// @Failure 404 {object} errors.ErrorResponse
// @Router /class/next [get]
func (h *ClassHandler) Next(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	next, err := h.classService.Next(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, next)
}

// Conflict godoc
// @Summary Check whether a day and time slot is already taken
// @Tags class
// @Produce json
// @Security BearerAuth
// @Param day query string true "Weekday name"
// @Param time query string true "HH:MM"
// @Param excludeId query string false "Class being edited"
// @Success 200 {object} ConflictResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /class/conflict [get]
func (h *ClassHandler) Conflict(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	day, clock := c.QueryParam("day"), c.QueryParam("time")
	if day == "" || clock == "" {
		return fail(errors.Invalid("day and time are required"))
	}
	exclude := uuid.Nil
	if raw := c.QueryParam("excludeId"); raw != "" {
		if exclude, err = uuid.Parse(raw); err != nil {
			return fail(errors.Invalid("Invalid excludeId"))
		}
	}

	class, err := h.classService.Conflict(c.Request().Context(), userID, day, clock, exclude)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ConflictResponse{Conflict: class != nil, Class: class})
}
