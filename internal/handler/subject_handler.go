package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// SubjectHandler handles subject endpoints.
type SubjectHandler struct {
	subjectService service.SubjectService
}

// NewSubjectHandler creates a new subject handler.
func NewSubjectHandler(subjectService service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// SubjectRequest represents a subject create or update request.
type SubjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

func (r SubjectRequest) model() *model.Subject {
	return &model.Subject{Name: r.Name, Description: r.Description, Color: r.Color}
}

// List godoc
// @Summary List subjects by name
// @Tags subject
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Subject
// @Router /subject/all [get]
func (h *SubjectHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	subjects, err := h.subjectService.List(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, subjects)
}

// Create godoc
// @Summary Add a subject
// @Tags subject
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubjectRequest true "Subject"
// @Success 201 {object} model.Subject
// @Failure 400 {object} errors.ErrorResponse
// @Router /subject/add [post]
func (h *SubjectHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req SubjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	subject, err := h.subjectService.Create(c.Request().Context(), userID, req.model())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, subject)
}

// Update godoc
// @Summary Update a subject
// @Tags subject
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Param request body SubjectRequest true "Subject"
// @Success 200 {object} model.Subject
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subject/update/{id} [put]
func (h *SubjectHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Subject")
	if err != nil {
		return err
	}
	var req SubjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	subject, err := h.subjectService.Update(c.Request().Context(), userID, id, req.model())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, subject)
}

// Delete godoc
// @Summary Delete a subject
// @Tags subject
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subject ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subject/delete/{id} [delete]
func (h *SubjectHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Subject")
	if err != nil {
		return err
	}
	if err := h.subjectService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Subject deleted successfully"})
}
