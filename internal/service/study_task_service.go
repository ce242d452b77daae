package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/schedule"
	"studyhub/internal/stats"
)

const (
	minEstimatedHours = 0.5
	maxEstimatedHours = 24
)

// TaskFilter narrows a task listing. Empty fields match everything; "All"
// is treated as empty for subject and priority.
type TaskFilter struct {
	Subject   string
	Priority  model.Priority
	Completed *bool
	Upcoming  bool
	Overdue   bool
}

// StudyTaskService manages study tasks.
type StudyTaskService interface {
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]model.StudyTask, error)
	Stats(ctx context.Context, userID uuid.UUID) (stats.TaskStats, error)
	Create(ctx context.Context, userID uuid.UUID, task *model.StudyTask) (*model.StudyTask, error)
	Update(ctx context.Context, userID, id uuid.UUID, task *model.StudyTask) (*model.StudyTask, error)
	Toggle(ctx context.Context, userID, id uuid.UUID) (*model.StudyTask, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type studyTaskService struct {
	resource[model.StudyTask]
	now Clock
}

// NewStudyTaskService creates a study task service.
func NewStudyTaskService(repo repository.ScopedRepository[model.StudyTask], clock Clock) StudyTaskService {
	return &studyTaskService{
		resource: resource[model.StudyTask]{name: "Study task", repo: repo},
		now:      orNow(clock),
	}
}

// List orders tasks high priority first, then by nearest deadline, then newest.
func (s *studyTaskService) List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]model.StudyTask, error) {
	scopes := []repository.Scope{
		repository.Equal("subject", allToEmpty(filter.Subject)),
		repository.Equal("priority", allToEmpty(string(filter.Priority))),
	}
	if filter.Completed != nil {
		scopes = append(scopes, repository.Equal("completed", *filter.Completed))
	}

	now := s.now()
	switch {
	case filter.Upcoming:
		scopes = append(scopes, deadlineFrom(now))
	case filter.Overdue:
		scopes = append(scopes, deadlineBefore(now), repository.Equal("completed", false))
	}

	scopes = append(scopes,
		repository.OrderBy("CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC"),
		repository.OrderBy("deadline ASC"),
		repository.OrderBy("created_at DESC"),
	)
	return s.list(ctx, userID, scopes...)
}

// Stats derives status and priority counts from the current rows.
func (s *studyTaskService) Stats(ctx context.Context, userID uuid.UUID) (stats.TaskStats, error) {
	tasks, err := s.list(ctx, userID)
	if err != nil {
		return stats.TaskStats{}, err
	}
	return stats.ComputeTaskStats(tasks, s.now()), nil
}

func (s *studyTaskService) Create(ctx context.Context, userID uuid.UUID, task *model.StudyTask) (*model.StudyTask, error) {
	if err := s.normalize(task); err != nil {
		return nil, err
	}
	task.Completed = false
	task.CompletedAt = nil
	return s.create(ctx, userID, task)
}

// Update replaces the editable fields. Completion state is kept in step:
// marking a task completed stamps CompletedAt, un-marking clears it.
func (s *studyTaskService) Update(ctx context.Context, userID, id uuid.UUID, task *model.StudyTask) (*model.StudyTask, error) {
	if err := s.normalize(task); err != nil {
		return nil, err
	}
	existing, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	switch {
	case task.Completed && existing.Completed:
		task.CompletedAt = existing.CompletedAt
	case task.Completed:
		done := s.now()
		task.CompletedAt = &done
	default:
		task.CompletedAt = nil
	}
	return s.update(ctx, userID, id, task)
}

// Toggle flips completion, stamping or clearing CompletedAt.
func (s *studyTaskService) Toggle(ctx context.Context, userID, id uuid.UUID) (*model.StudyTask, error) {
	task, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	if task.Completed {
		done := s.now()
		task.CompletedAt = &done
	} else {
		task.CompletedAt = nil
	}
	return s.update(ctx, userID, id, task)
}

func (s *studyTaskService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.delete(ctx, userID, id)
}

func (s *studyTaskService) normalize(t *model.StudyTask) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Subject = strings.TrimSpace(t.Subject)
	if t.Title == "" || t.Subject == "" {
		return apperrors.Invalid("Title and subject are required")
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Priority.Rank() == 0 {
		return apperrors.Invalid("Priority must be low, medium or high")
	}
	if t.EstimatedHours == 0 {
		t.EstimatedHours = 1
	}
	if t.EstimatedHours < minEstimatedHours || t.EstimatedHours > maxEstimatedHours {
		return apperrors.Invalid("Estimated hours must be between 0.5 and 24")
	}
	if t.Deadline.IsZero() {
		t.Deadline = s.now()
	}
	for _, slot := range t.TimeSlots {
		if schedule.DayIndex(slot.Day) < 0 {
			return apperrors.Invalid("Invalid time slot day %q", slot.Day)
		}
		start, err := schedule.ParseClock(slot.StartTime)
		if err != nil {
			return apperrors.Invalid("Invalid time slot start %q", slot.StartTime)
		}
		end, err := schedule.ParseClock(slot.EndTime)
		if err != nil {
			return apperrors.Invalid("Invalid time slot end %q", slot.EndTime)
		}
		if end <= start {
			return apperrors.Invalid("Time slot must end after it starts")
		}
	}
	return nil
}

func allToEmpty(s string) string {
	if strings.EqualFold(s, "All") {
		return ""
	}
	return s
}

func deadlineFrom(t time.Time) repository.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deadline >= ?", t)
	}
}

func deadlineBefore(t time.Time) repository.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deadline < ?", t)
	}
}
