package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

// StudyTaskHandler handles study task endpoints.
type StudyTaskHandler struct {
	taskService service.StudyTaskService
	loc         *time.Location
}

// NewStudyTaskHandler creates a new study task handler. Bare dates are read in loc.
func NewStudyTaskHandler(taskService service.StudyTaskService, loc *time.Location) *StudyTaskHandler {
	return &StudyTaskHandler{taskService: taskService, loc: loc}
}

// TimeSlotRequest is a planned study block.
type TimeSlotRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// StudyTaskRequest represents a study task create or update request.
type StudyTaskRequest struct {
	Title          string            `json:"title" validate:"required"`
	Subject        string            `json:"subject" validate:"required"`
	Topic          string            `json:"topic"`
	Description    string            `json:"description"`
	Priority       string            `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline       string            `json:"deadline" validate:"required"`
	EstimatedHours float64           `json:"estimatedHours" validate:"omitempty,gte=0.5,lte=24"`
	Completed      bool              `json:"completed"`
	TimeSlots      []TimeSlotRequest `json:"timeSlots" validate:"dive"`
}

func (r StudyTaskRequest) model(loc *time.Location) (*model.StudyTask, error) {
	deadline, err := parseDate(r.Deadline, loc)
	if err != nil {
		return nil, err
	}
	slots := make([]model.TimeSlot, 0, len(r.TimeSlots))
	for _, s := range r.TimeSlots {
		slots = append(slots, model.TimeSlot{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return &model.StudyTask{
		Title:          r.Title,
		Subject:        r.Subject,
		Topic:          r.Topic,
		Description:    r.Description,
		Priority:       model.Priority(r.Priority),
		Deadline:       deadline,
		EstimatedHours: r.EstimatedHours,
		Completed:      r.Completed,
		TimeSlots:      slots,
	}, nil
}

// List godoc
// @Summary List study tasks
// @Tags study-task
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Exact subject, or All"
// @Param priority query string false "low, medium, high or All"
// @Param completed query bool false "Completion state"
// @Param upcoming query bool false "Deadline not yet passed"
// @Param overdue query bool false "Deadline passed and not completed"
// @Success 200 {array} model.StudyTask
// @Router /study-task/all [get]
func (h *StudyTaskHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	filter := service.TaskFilter{
		Subject:  c.QueryParam("subject"),
		Priority: model.Priority(c.QueryParam("priority")),
		Upcoming: c.QueryParam("upcoming") == "true",
		Overdue:  c.QueryParam("overdue") == "true",
	}
	if raw := c.QueryParam("completed"); raw != "" {
		if completed, err := strconv.ParseBool(raw); err == nil {
			filter.Completed = &completed
		}
	}

	tasks, err := h.taskService.List(c.Request().Context(), userID, filter)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// Stats godoc
// @Summary Task counts by status and priority
// @Tags study-task
// @Produce json
// @Security BearerAuth
// @Success 200 {object} stats.TaskStats
// @Router /study-task/stats [get]
func (h *StudyTaskHandler) Stats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	st, err := h.taskService.Stats(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, st)
}

// Create godoc
// @Summary Add a study task
// @Tags study-task
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StudyTaskRequest true "Study task"
// @Success 201 {object} model.StudyTask
// @Failure 400 {object} errors.ErrorResponse
// @Router /study-task/add [post]
func (h *StudyTaskHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req StudyTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	task, err := req.model(h.loc)
	if err != nil {
		return fail(err)
	}
	created, err := h.taskService.Create(c.Request().Context(), userID, task)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a study task
// @Tags study-task
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body StudyTaskRequest true "Study task"
// @Success 200 {object} model.StudyTask
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /study-task/update/{id} [put]
func (h *StudyTaskHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Study task")
	if err != nil {
		return err
	}
	var req StudyTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	task, err := req.model(h.loc)
	if err != nil {
		return fail(err)
	}
	updated, err := h.taskService.Update(c.Request().Context(), userID, id, task)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Toggle godoc
// @Summary Flip a task's completion
// @Tags study-task
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} model.StudyTask
// @Failure 404 {object} errors.ErrorResponse
// @Router /study-task/toggle/{id} [patch]
func (h *StudyTaskHandler) Toggle(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Study task")
	if err != nil {
		return err
	}
	task, err := h.taskService.Toggle(c.Request().Context(), userID, id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary Delete a study task
// @Tags study-task
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /study-task/delete/{id} [delete]
func (h *StudyTaskHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Study task")
	if err != nil {
		return err
	}
	if err := h.taskService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Study task deleted successfully"})
}
