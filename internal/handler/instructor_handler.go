package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// InstructorHandler handles instructor endpoints.
type InstructorHandler struct {
	instructorService service.InstructorService
}

// NewInstructorHandler creates a new instructor handler.
func NewInstructorHandler(instructorService service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// InstructorRequest represents an instructor create or update request.
type InstructorRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	OfficeHours    string `json:"officeHours"`
	OfficeLocation string `json:"officeLocation"`
	Website        string `json:"website" validate:"omitempty,url"`
	Notes          string `json:"notes"`
}

func (r InstructorRequest) model() *model.Instructor {
	return &model.Instructor{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Department:     r.Department,
		OfficeHours:    r.OfficeHours,
		OfficeLocation: r.OfficeLocation,
		Website:        r.Website,
		Notes:          r.Notes,
	}
}

// List godoc
// @Summary List instructors by name
// @Tags instructor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Instructor
// @Router /instructor/all [get]
func (h *InstructorHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	instructors, err := h.instructorService.List(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, instructors)
}

// Create godoc
// @Summary Add an instructor
// @Tags instructor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InstructorRequest true "Instructor"
// @Success 201 {object} model.Instructor
// @Failure 400 {object} errors.ErrorResponse
// @Router /instructor/add [post]
func (h *InstructorHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req InstructorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	instructor, err := h.instructorService.Create(c.Request().Context(), userID, req.model())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, instructor)
}

// Update godoc
// @Summary Update an instructor
// @Tags instructor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instructor ID"
// @Param request body InstructorRequest true "Instructor"
// @Success 200 {object} model.Instructor
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /instructor/update/{id} [put]
func (h *InstructorHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Instructor")
	if err != nil {
		return err
	}
	var req InstructorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	instructor, err := h.instructorService.Update(c.Request().Context(), userID, id, req.model())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, instructor)
}

// Delete godoc
// @Summary Delete an instructor
// @Tags instructor
// @Produce json
// @Security BearerAuth
// @Param id path string true "Instructor ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /instructor/delete/{id} [delete]
func (h *InstructorHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Instructor")
	if err != nil {
		return err
	}
	if err := h.instructorService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Instructor deleted successfully"})
}
