package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/stats"
)

// StudySessionService manages logged study time.
type StudySessionService interface {
	List(ctx context.Context, userID uuid.UUID, subject string, window stats.Window) ([]model.StudySession, error)
	Stats(ctx context.Context, userID uuid.UUID, window stats.Window) (stats.SessionStats, error)
	Chart(ctx context.Context, userID uuid.UUID, window stats.Window) (stats.StudyChart, error)
	Create(ctx context.Context, userID uuid.UUID, session *model.StudySession) (*model.StudySession, error)
	Update(ctx context.Context, userID, id uuid.UUID, session *model.StudySession) (*model.StudySession, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type studySessionService struct {
	resource[model.StudySession]
	now Clock
}

// NewStudySessionService creates a study session service.
func NewStudySessionService(repo repository.ScopedRepository[model.StudySession], clock Clock) StudySessionService {
	return &studySessionService{
		resource: resource[model.StudySession]{name: "Study session", repo: repo},
		now:      orNow(clock),
	}
}

// List returns sessions newest first. subject matches as a case-insensitive substring.
func (s *studySessionService) List(ctx context.Context, userID uuid.UUID, subject string, window stats.Window) ([]model.StudySession, error) {
	sessions, err := s.list(ctx, userID,
		repository.Contains("subject", allToEmpty(subject)),
		repository.OrderBy("date DESC"),
	)
	if err != nil {
		return nil, err
	}
	return stats.FilterByPeriod(sessions, window, s.now()), nil
}

func (s *studySessionService) Stats(ctx context.Context, userID uuid.UUID, window stats.Window) (stats.SessionStats, error) {
	sessions, err := s.list(ctx, userID)
	if err != nil {
		return stats.SessionStats{}, err
	}
	return stats.ComputeSessionStats(sessions, window, s.now()), nil
}

// Chart aggregates all of the user's sessions into per-day hour buckets.
func (s *studySessionService) Chart(ctx context.Context, userID uuid.UUID, window stats.Window) (stats.StudyChart, error) {
	sessions, err := s.list(ctx, userID)
	if err != nil {
		return stats.StudyChart{}, err
	}
	return stats.AggregateStudyTime(sessions, window, s.now()), nil
}

func (s *studySessionService) Create(ctx context.Context, userID uuid.UUID, session *model.StudySession) (*model.StudySession, error) {
	if err := s.normalize(session); err != nil {
		return nil, err
	}
	return s.create(ctx, userID, session)
}

func (s *studySessionService) Update(ctx context.Context, userID, id uuid.UUID, session *model.StudySession) (*model.StudySession, error) {
	if err := s.normalize(session); err != nil {
		return nil, err
	}
	return s.update(ctx, userID, id, session)
}

func (s *studySessionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.delete(ctx, userID, id)
}

func (s *studySessionService) normalize(session *model.StudySession) error {
	session.Subject = strings.TrimSpace(session.Subject)
	if session.Subject == "" {
		return apperrors.Invalid("Subject is required")
	}
	if session.Duration < 1 {
		return apperrors.Invalid("Duration must be at least 1 minute")
	}
	if session.Date.IsZero() {
		session.Date = s.now()
	}
	return nil
}

// RoundMinutes converts a fractional minute count from a timer into whole minutes.
func RoundMinutes(minutes float64) int {
	return int(math.Round(minutes))
}
