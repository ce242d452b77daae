package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studyhub/internal/ai"
	"studyhub/internal/model"
	"studyhub/internal/service"
)

// QuestionHandler handles question bank endpoints.
type QuestionHandler struct {
	questionService service.QuestionService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// QuestionRequest represents a question create or update request.
type QuestionRequest struct {
	Type          string   `json:"type" validate:"required,oneof=multiple_choice true_false short_answer"`
	Subject       string   `json:"subject" validate:"required"`
	Topic         string   `json:"topic" validate:"required"`
	Difficulty    string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Explanation   string   `json:"explanation"`
}

func (r QuestionRequest) model() *model.Question {
	return &model.Question{
		Type:          model.QuestionType(r.Type),
		Subject:       r.Subject,
		Topic:         r.Topic,
		Difficulty:    model.Difficulty(r.Difficulty),
		Question:      r.Question,
		Options:       r.Options,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
	}
}

// GenerateRequest asks the AI provider for new questions.
type GenerateRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Type       string `json:"type" validate:"required,oneof=multiple_choice true_false short_answer"`
	Count      int    `json:"count" validate:"omitempty,min=1,max=20"`
}

// List godoc
// @Summary List questions, newest first
// @Tags question
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Subject substring"
// @Param topic query string false "Topic substring"
// @Param difficulty query string false "easy, medium or hard"
// @Param type query string false "multiple_choice, true_false or short_answer"
// @Success 200 {array} model.Question
// @Router /question/all [get]
func (h *QuestionHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	questions, err := h.questionService.List(c.Request().Context(), userID, service.QuestionFilter{
		Subject:    c.QueryParam("subject"),
		Topic:      c.QueryParam("topic"),
		Difficulty: model.Difficulty(c.QueryParam("difficulty")),
		Type:       model.QuestionType(c.QueryParam("type")),
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, questions)
}

// Create godoc
// @Summary Add a custom question
// @Tags question
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuestionRequest true "Question"
// @Success 201 {object} model.Question
// @Failure 400 {object} errors.ErrorResponse
// @Router /question/create-custom [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req QuestionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	question, err := h.questionService.Create(c.Request().Context(), userID, req.model())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, question)
}

// Update godoc
// @Summary Update a question
// @Tags question
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param request body QuestionRequest true "Question"
// @Success 200 {object} model.Question
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /question/update/{id} [put]
func (h *QuestionHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Question")
	if err != nil {
		return err
	}
	var req QuestionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	question, err := h.questionService.Update(c.Request().Context(), userID, id, req.model())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, question)
}

// Delete godoc
// @Summary Delete a question
// @Tags question
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /question/delete/{id} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "Question")
	if err != nil {
		return err
	}
	if err := h.questionService.Delete(c.Request().Context(), userID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Question deleted successfully"})
}

// Generate godoc
// @Summary Draft questions with AI and save them
// @Tags question
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateRequest true "Generation parameters"
// @Success 200 {array} model.Question
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /question/generate-by-ai [post]
func (h *QuestionHandler) Generate(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req GenerateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	questions, err := h.questionService.Generate(c.Request().Context(), userID, ai.Request{
		Subject:    req.Subject,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Type:       req.Type,
		Count:      req.Count,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, questions)
}
