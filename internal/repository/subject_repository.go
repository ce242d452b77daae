package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyhub/internal/model"
)

// SubjectRepository adds name lookups to the scoped subject store.
type SubjectRepository interface {
	ScopedRepository[model.Subject]
	// FindByName matches the name case-insensitively within the user's subjects,
	// ignoring the record identified by exclude (uuid.Nil ignores nothing).
	FindByName(ctx context.Context, userID uuid.UUID, name string, exclude uuid.UUID) (*model.Subject, error)
}

type subjectRepository struct {
	ScopedRepository[model.Subject]
	db *gorm.DB
}

// NewSubjectRepository creates a new subject repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{
		ScopedRepository: NewScopedRepository[model.Subject](db),
		db:               db,
	}
}

func (r *subjectRepository) FindByName(ctx context.Context, userID uuid.UUID, name string, exclude uuid.UUID) (*model.Subject, error) {
	var subject model.Subject
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}
