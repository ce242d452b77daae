package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/model"
)

func TestSummarizeBudget(t *testing.T) {
	entries := []model.BudgetEntry{
		{Type: model.BudgetIncome, Category: "Scholarship", Amount: decimal.RequireFromString("500.00")},
		{Type: model.BudgetIncome, Category: "Job", Amount: decimal.RequireFromString("120.10")},
		{Type: model.BudgetExpense, Category: "Food", Amount: decimal.RequireFromString("40.20")},
		{Type: model.BudgetExpense, Category: "Food", Amount: decimal.RequireFromString("9.80")},
		{Type: model.BudgetExpense, Amount: decimal.RequireFromString("0.10")},
	}

	s := SummarizeBudget(entries)

	assert.True(t, decimal.RequireFromString("620.10").Equal(s.TotalIncome))
	assert.True(t, decimal.RequireFromString("50.10").Equal(s.TotalExpense))
	assert.True(t, decimal.RequireFromString("570.00").Equal(s.Balance))
	assert.True(t, decimal.RequireFromString("50.00").Equal(s.ExpenseByCategory["Food"]))
	assert.True(t, decimal.RequireFromString("0.10").Equal(s.ExpenseByCategory[UncategorizedLabel]))
	assert.Len(t, s.IncomeByCategory, 2)
}

func TestSummarizeBudgetEmpty(t *testing.T) {
	s := SummarizeBudget(nil)

	assert.True(t, s.Balance.IsZero())
	assert.NotNil(t, s.IncomeByCategory)
	assert.NotNil(t, s.ExpenseByCategory)
}

func TestComputeTaskStats(t *testing.T) {
	tasks := []model.StudyTask{
		{Priority: model.PriorityHigh, Completed: true, Deadline: day(time.May, 1, 0)},
		{Priority: model.PriorityHigh, Deadline: day(time.May, 10, 0)},
		{Priority: model.PriorityLow, Deadline: day(time.June, 1, 0)},
		{Priority: model.PriorityMedium, Deadline: day(time.May, 15, 9)},
	}

	st := ComputeTaskStats(tasks, now)

	assert.Equal(t, 4, st.TotalTasks)
	assert.Equal(t, 1, st.CompletedTasks)
	assert.Equal(t, 3, st.PendingTasks)
	assert.Equal(t, 2, st.OverdueTasks)
	assert.InDelta(t, 25.0, st.CompletionRate, 1e-9)
	assert.Equal(t, PriorityCount{Total: 2, Completed: 1}, st.PriorityStats["high"])
	assert.Equal(t, PriorityCount{Total: 1}, st.PriorityStats["low"])
}

func TestComputeTaskStatsEmpty(t *testing.T) {
	st := ComputeTaskStats(nil, now)

	assert.Zero(t, st.CompletionRate)
	assert.Empty(t, st.PriorityStats)
}

func TestComputeSessionStats(t *testing.T) {
	sessions := []model.StudySession{
		{Subject: "Math", Duration: 30, Date: day(time.May, 15, 8)},
		{Subject: "Math", Duration: 20, Date: day(time.May, 13, 8)},
		{Subject: "Art", Duration: 60, Date: day(time.May, 14, 8)},
		{Subject: "Art", Duration: 15, Date: day(time.April, 1, 8)},
	}

	st := ComputeSessionStats(sessions, ThisWeek, now)

	assert.Equal(t, 110, st.TotalMinutes)
	assert.Equal(t, 3, st.SessionCount)
	require.Len(t, st.SubjectStats, 2)
	assert.Equal(t, SubjectStat{Subject: "Art", TotalMinutes: 60, SessionCount: 1}, st.SubjectStats[0])
	assert.Equal(t, SubjectStat{Subject: "Math", TotalMinutes: 50, SessionCount: 2}, st.SubjectStats[1])

	require.Len(t, st.DailyStats, 7)
	assert.Equal(t, day(time.May, 9, 0), st.DailyStats[0].Date)
	assert.Equal(t, 30, st.DailyStats[6].TotalMinutes)
	assert.Equal(t, 60, st.DailyStats[5].TotalMinutes)
}

func TestComputeSessionStatsLifetime(t *testing.T) {
	sessions := []model.StudySession{
		{Subject: "Math", Duration: 30, Date: day(time.January, 15, 8)},
		{Subject: "Math", Duration: 20, Date: day(time.May, 13, 8)},
	}

	st := ComputeSessionStats(sessions, Lifetime, now)

	assert.Equal(t, 50, st.TotalMinutes)
	assert.Equal(t, 2, st.SessionCount)
}
