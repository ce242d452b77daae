package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/stats"
)

// BudgetService manages income and expense entries.
type BudgetService interface {
	List(ctx context.Context, userID uuid.UUID, window stats.Window) ([]model.BudgetEntry, error)
	Summary(ctx context.Context, userID uuid.UUID, window stats.Window) (stats.BudgetSummary, error)
	Create(ctx context.Context, userID uuid.UUID, entry *model.BudgetEntry) (*model.BudgetEntry, error)
	Update(ctx context.Context, userID, id uuid.UUID, entry *model.BudgetEntry) (*model.BudgetEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type budgetService struct {
	resource[model.BudgetEntry]
	now Clock
}

// NewBudgetService creates a budget service.
func NewBudgetService(repo repository.ScopedRepository[model.BudgetEntry], clock Clock) BudgetService {
	return &budgetService{
		resource: resource[model.BudgetEntry]{name: "Budget entry", repo: repo},
		now:      orNow(clock),
	}
}

// List returns entries newest first, restricted to the window.
func (s *budgetService) List(ctx context.Context, userID uuid.UUID, window stats.Window) ([]model.BudgetEntry, error) {
	entries, err := s.list(ctx, userID, repository.OrderBy("date DESC"))
	if err != nil {
		return nil, err
	}
	return stats.FilterByPeriod(entries, window, s.now()), nil
}

// Summary recomputes totals from the current rows.
func (s *budgetService) Summary(ctx context.Context, userID uuid.UUID, window stats.Window) (stats.BudgetSummary, error) {
	entries, err := s.List(ctx, userID, window)
	if err != nil {
		return stats.BudgetSummary{}, err
	}
	return stats.SummarizeBudget(entries), nil
}

func (s *budgetService) Create(ctx context.Context, userID uuid.UUID, entry *model.BudgetEntry) (*model.BudgetEntry, error) {
	if err := s.normalize(entry); err != nil {
		return nil, err
	}
	return s.create(ctx, userID, entry)
}

func (s *budgetService) Update(ctx context.Context, userID, id uuid.UUID, entry *model.BudgetEntry) (*model.BudgetEntry, error) {
	if err := s.normalize(entry); err != nil {
		return nil, err
	}
	return s.update(ctx, userID, id, entry)
}

func (s *budgetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.delete(ctx, userID, id)
}

func (s *budgetService) normalize(e *model.BudgetEntry) error {
	if e.Type != model.BudgetIncome && e.Type != model.BudgetExpense {
		return apperrors.Invalid("Type must be income or expense")
	}
	if e.Amount.IsNegative() {
		return apperrors.Invalid("Amount must not be negative")
	}
	e.Category = strings.TrimSpace(e.Category)
	if e.Date.IsZero() {
		e.Date = s.now()
	}
	return nil
}
