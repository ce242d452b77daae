package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/schedule"
)

// ClassService manages the weekly class schedule.
type ClassService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.ClassSession, error)
	Create(ctx context.Context, userID uuid.UUID, class *model.ClassSession) (*model.ClassSession, error)
	Update(ctx context.Context, userID, id uuid.UUID, class *model.ClassSession) (*model.ClassSession, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Next(ctx context.Context, userID uuid.UUID) (*schedule.Upcoming, error)
	Conflict(ctx context.Context, userID uuid.UUID, day, clock string, exclude uuid.UUID) (*model.ClassSession, error)
}

type classService struct {
	resource[model.ClassSession]
	now Clock
}

// NewClassService creates a class schedule service.
func NewClassService(repo repository.ScopedRepository[model.ClassSession], clock Clock) ClassService {
	return &classService{
		resource: resource[model.ClassSession]{name: "Class", repo: repo},
		now:      orNow(clock),
	}
}

// List returns the schedule ordered Saturday first, then by time.
func (s *classService) List(ctx context.Context, userID uuid.UUID) ([]model.ClassSession, error) {
	classes, err := s.list(ctx, userID, repository.OrderBy("time ASC"))
	if err != nil {
		return nil, err
	}
	schedule.Sort(classes)
	return classes, nil
}

// Create adds a class. A second class in the same (day, time) slot is accepted;
// callers use Conflict to warn before saving.
func (s *classService) Create(ctx context.Context, userID uuid.UUID, class *model.ClassSession) (*model.ClassSession, error) {
	if err := normalizeClass(class); err != nil {
		return nil, err
	}
	return s.create(ctx, userID, class)
}

func (s *classService) Update(ctx context.Context, userID, id uuid.UUID, class *model.ClassSession) (*model.ClassSession, error) {
	if err := normalizeClass(class); err != nil {
		return nil, err
	}
	return s.update(ctx, userID, id, class)
}

func (s *classService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.delete(ctx, userID, id)
}

// Next returns the user's next class relative to now.
func (s *classService) Next(ctx context.Context, userID uuid.UUID) (*schedule.Upcoming, error) {
	classes, err := s.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	next, ok := schedule.Next(classes, s.now())
	if !ok {
		return nil, apperrors.NotFound("Class")
	}
	return &next, nil
}

// Conflict returns the class occupying (day, clock), or nil.
func (s *classService) Conflict(ctx context.Context, userID uuid.UUID, day, clock string, exclude uuid.UUID) (*model.ClassSession, error) {
	classes, err := s.list(ctx, userID, repository.Equal("day", canonicalDay(day)))
	if err != nil {
		return nil, err
	}
	return schedule.FindConflict(classes, day, clock, exclude), nil
}

func normalizeClass(c *model.ClassSession) error {
	c.Subject = strings.TrimSpace(c.Subject)
	c.Instructor = strings.TrimSpace(c.Instructor)
	if c.Subject == "" || c.Instructor == "" {
		return apperrors.Invalid("Subject, day, time and instructor are required")
	}
	c.Day = canonicalDay(c.Day)
	if schedule.DayIndex(c.Day) < 0 {
		return apperrors.Invalid("Invalid day %q", c.Day)
	}
	if _, err := schedule.ParseClock(c.Time); err != nil {
		return apperrors.Invalid("Invalid time %q, expected HH:MM", c.Time)
	}
	if c.Color == "" {
		c.Color = model.DefaultClassColor
	}
	return nil
}

// canonicalDay maps "monday" or "MONDAY" to "Monday"; unknown names pass through.
func canonicalDay(day string) string {
	for _, d := range model.Weekdays {
		if strings.EqualFold(d, strings.TrimSpace(day)) {
			return d
		}
	}
	return day
}
