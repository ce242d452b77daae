package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// DefaultSubjectColor is used when a subject is saved without a color.
const DefaultSubjectColor = "#6366F1"

// SubjectService manages the user's subjects. Names are unique per user,
// ignoring case.
type SubjectService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Subject, error)
	Create(ctx context.Context, userID uuid.UUID, subject *model.Subject) (*model.Subject, error)
	Update(ctx context.Context, userID, id uuid.UUID, subject *model.Subject) (*model.Subject, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type subjectService struct {
	resource[model.Subject]
	subjects repository.SubjectRepository
}

// NewSubjectService creates a subject service.
func NewSubjectService(repo repository.SubjectRepository) SubjectService {
	return &subjectService{
		resource: resource[model.Subject]{name: "Subject", repo: repo},
		subjects: repo,
	}
}

func (s *subjectService) List(ctx context.Context, userID uuid.UUID) ([]model.Subject, error) {
	return s.list(ctx, userID, repository.OrderBy("name ASC"))
}

// Create rejects a name the user already has. The check and the insert are
// not atomic, so two concurrent requests may both succeed.
func (s *subjectService) Create(ctx context.Context, userID uuid.UUID, subject *model.Subject) (*model.Subject, error) {
	if err := s.prepare(ctx, userID, uuid.Nil, subject); err != nil {
		return nil, err
	}
	return s.create(ctx, userID, subject)
}

// Update renames or recolors a subject. Renaming onto another subject's name is rejected.
func (s *subjectService) Update(ctx context.Context, userID, id uuid.UUID, subject *model.Subject) (*model.Subject, error) {
	if err := s.prepare(ctx, userID, id, subject); err != nil {
		return nil, err
	}
	return s.update(ctx, userID, id, subject)
}

func (s *subjectService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.delete(ctx, userID, id)
}

func (s *subjectService) prepare(ctx context.Context, userID, id uuid.UUID, subject *model.Subject) error {
	subject.Name = strings.TrimSpace(subject.Name)
	if subject.Name == "" {
		return apperrors.Invalid("Subject name is required")
	}
	if subject.Color == "" {
		subject.Color = DefaultSubjectColor
	}

	_, err := s.subjects.FindByName(ctx, userID, subject.Name, id)
	switch {
	case err == nil:
		return apperrors.ErrSubjectExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}
