package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// InstructorService manages the user's instructor contacts.
type InstructorService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Instructor, error)
	Create(ctx context.Context, userID uuid.UUID, instructor *model.Instructor) (*model.Instructor, error)
	Update(ctx context.Context, userID, id uuid.UUID, instructor *model.Instructor) (*model.Instructor, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type instructorService struct {
	resource[model.Instructor]
}

// NewInstructorService creates an instructor service.
func NewInstructorService(repo repository.ScopedRepository[model.Instructor]) InstructorService {
	return &instructorService{resource: resource[model.Instructor]{name: "Instructor", repo: repo}}
}

func (s *instructorService) List(ctx context.Context, userID uuid.UUID) ([]model.Instructor, error) {
	return s.list(ctx, userID, repository.OrderBy("name ASC"))
}

func (s *instructorService) Create(ctx context.Context, userID uuid.UUID, instructor *model.Instructor) (*model.Instructor, error) {
	if err := normalizeInstructor(instructor); err != nil {
		return nil, err
	}
	return s.create(ctx, userID, instructor)
}

func (s *instructorService) Update(ctx context.Context, userID, id uuid.UUID, instructor *model.Instructor) (*model.Instructor, error) {
	if err := normalizeInstructor(instructor); err != nil {
		return nil, err
	}
	return s.update(ctx, userID, id, instructor)
}

func (s *instructorService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.delete(ctx, userID, id)
}

func normalizeInstructor(in *model.Instructor) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return apperrors.Invalid("Instructor name is required")
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email != "" {
		if err := validate.Var(in.Email, "email"); err != nil {
			return apperrors.Invalid("Please enter a valid email")
		}
	}
	return nil
}
