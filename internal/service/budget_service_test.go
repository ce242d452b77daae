package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/stats"
)

func TestBudgetService_ListAndSummaryByWindow(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewBudgetService(repos.Budget, fixedClock)
	ctx := context.Background()
	userID := uuid.New()

	entries := []model.BudgetEntry{
		{Type: model.BudgetIncome, Category: "Job", Amount: decimal.RequireFromString("100.50"), Date: fixedNow.Add(-time.Hour)},
		{Type: model.BudgetExpense, Category: "Food", Amount: decimal.RequireFromString("20.25"), Date: fixedNow.Add(-2 * time.Hour)},
		{Type: model.BudgetExpense, Amount: decimal.RequireFromString("5"), Date: fixedNow.AddDate(0, -2, 0)},
	}
	for i := range entries {
		_, err := svc.Create(ctx, userID, &entries[i])
		require.NoError(t, err)
	}

	today, err := svc.List(ctx, userID, stats.Today)
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, "Job", today[0].Category)

	all, err := svc.List(ctx, userID, stats.Lifetime)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	summary, err := svc.Summary(ctx, userID, stats.Lifetime)
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("100.50")))
	assert.True(t, summary.TotalExpense.Equal(decimal.RequireFromString("25.25")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("75.25")))
	assert.True(t, summary.ExpenseByCategory[stats.UncategorizedLabel].Equal(decimal.NewFromInt(5)))

	monthly, err := svc.Summary(ctx, userID, stats.ThisMonth)
	require.NoError(t, err)
	assert.True(t, monthly.Balance.Equal(decimal.RequireFromString("80.25")))
}

func TestBudgetService_Validation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewBudgetService(repos.Budget, fixedClock)
	ctx := context.Background()

	var invalid *apperrors.ValidationError
	_, err := svc.Create(ctx, uuid.New(), &model.BudgetEntry{Type: "gift", Amount: decimal.NewFromInt(1)})
	assert.ErrorAs(t, err, &invalid)

	_, err = svc.Create(ctx, uuid.New(), &model.BudgetEntry{Type: model.BudgetExpense, Amount: decimal.NewFromInt(-1)})
	assert.ErrorAs(t, err, &invalid)

	entry, err := svc.Create(ctx, uuid.New(), &model.BudgetEntry{Type: model.BudgetExpense, Category: "Books", Amount: decimal.NewFromInt(0)})
	require.NoError(t, err)
	assert.True(t, entry.Date.Equal(fixedNow))
}

func TestBudgetService_ForeignEntryIsNotFound(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewBudgetService(repos.Budget, fixedClock)
	ctx := context.Background()
	owner := uuid.New()

	entry, err := svc.Create(ctx, owner, &model.BudgetEntry{Type: model.BudgetIncome, Category: "Job", Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	var notFound *apperrors.NotFoundError
	_, err = svc.Update(ctx, uuid.New(), entry.ID, &model.BudgetEntry{Type: model.BudgetIncome, Amount: decimal.NewFromInt(99)})
	assert.ErrorAs(t, err, &notFound)
	assert.ErrorAs(t, svc.Delete(ctx, uuid.New(), entry.ID), &notFound)

	mine, err := svc.List(ctx, owner, stats.Lifetime)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].Amount.Equal(decimal.NewFromInt(10)))
}
