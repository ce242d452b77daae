package service

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"studyhub/internal/ai"
	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// QuestionFilter narrows a question bank listing. Subject and topic match as
// case-insensitive substrings; difficulty and type match exactly.
type QuestionFilter struct {
	Subject    string
	Topic      string
	Difficulty model.Difficulty
	Type       model.QuestionType
}

// Generator drafts questions with an external model.
type Generator interface {
	Generate(ctx context.Context, req ai.Request) ([]model.Question, error)
}

// QuestionService manages the personal question bank.
type QuestionService interface {
	List(ctx context.Context, userID uuid.UUID, filter QuestionFilter) ([]model.Question, error)
	Create(ctx context.Context, userID uuid.UUID, question *model.Question) (*model.Question, error)
	Update(ctx context.Context, userID, id uuid.UUID, question *model.Question) (*model.Question, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Generate(ctx context.Context, userID uuid.UUID, req ai.Request) ([]model.Question, error)
}

type questionService struct {
	resource[model.Question]
	generator Generator
}

// NewQuestionService creates a question service. generator may be nil, in
// which case Generate always fails.
func NewQuestionService(repo repository.ScopedRepository[model.Question], generator Generator) QuestionService {
	return &questionService{
		resource:  resource[model.Question]{name: "Question", repo: repo},
		generator: generator,
	}
}

// List returns matching questions, newest first.
func (s *questionService) List(ctx context.Context, userID uuid.UUID, filter QuestionFilter) ([]model.Question, error) {
	return s.list(ctx, userID,
		repository.Contains("subject", allToEmpty(filter.Subject)),
		repository.Contains("topic", filter.Topic),
		repository.Equal("difficulty", allToEmpty(string(filter.Difficulty))),
		repository.Equal("type", allToEmpty(string(filter.Type))),
		repository.OrderBy("created_at DESC"),
	)
}

func (s *questionService) Create(ctx context.Context, userID uuid.UUID, question *model.Question) (*model.Question, error) {
	if err := ValidateQuestion(question); err != nil {
		return nil, err
	}
	return s.create(ctx, userID, question)
}

func (s *questionService) Update(ctx context.Context, userID, id uuid.UUID, question *model.Question) (*model.Question, error) {
	if err := ValidateQuestion(question); err != nil {
		return nil, err
	}
	return s.update(ctx, userID, id, question)
}

func (s *questionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.delete(ctx, userID, id)
}

// Generate drafts questions and saves every returned item for the user.
// Items are stored as the provider wrote them; nothing is retried.
func (s *questionService) Generate(ctx context.Context, userID uuid.UUID, req ai.Request) ([]model.Question, error) {
	if req.Subject == "" || req.Topic == "" || req.Difficulty == "" || req.Type == "" {
		return nil, apperrors.Invalid("Subject, topic, difficulty, and type are required")
	}
	if s.generator == nil {
		return nil, fmt.Errorf("no question generator configured: %w", apperrors.ErrGenerationFailed)
	}

	questions, err := s.generator.Generate(ctx, req)
	if err != nil {
		log.Printf("question generation failed: %v", err)
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrGenerationFailed)
	}
	if err := s.repo.CreateBatch(ctx, userID, questions); err != nil {
		log.Printf("saving generated questions failed: %v", err)
		return nil, fmt.Errorf("save generated questions: %w", apperrors.ErrGenerationFailed)
	}
	return questions, nil
}

// ValidateQuestion enforces the answer-format rules before persistence.
// Multiple choice needs at least two options and a correct answer among them;
// other types carry no options.
func ValidateQuestion(q *model.Question) error {
	q.Subject = strings.TrimSpace(q.Subject)
	q.Topic = strings.TrimSpace(q.Topic)
	q.Question = strings.TrimSpace(q.Question)
	if q.Subject == "" || q.Topic == "" || q.Question == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
		return apperrors.Invalid("Subject, topic, question and correct answer are required")
	}

	switch q.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return apperrors.Invalid("Difficulty must be easy, medium or hard")
	}

	switch q.Type {
	case model.QuestionMultipleChoice:
		options := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			if o = strings.TrimSpace(o); o != "" {
				options = append(options, o)
			}
		}
		if len(options) < 2 {
			return apperrors.Invalid("Multiple choice questions need at least 2 options")
		}
		if !slices.Contains(options, strings.TrimSpace(q.CorrectAnswer)) {
			return apperrors.Invalid("Correct answer must be one of the options")
		}
		q.Options = options
	case model.QuestionTrueFalse, model.QuestionShortAnswer:
		q.Options = datatypes.JSONSlice[string]{}
	default:
		return apperrors.Invalid("Type must be multiple_choice, true_false or short_answer")
	}
	return nil
}
