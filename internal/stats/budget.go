package stats

import (
	"github.com/shopspring/decimal"

	"studyhub/internal/model"
)

// UncategorizedLabel groups entries saved without a category.
const UncategorizedLabel = "Uncategorized"

// BudgetSummary is derived from the current ledger rows on every read.
type BudgetSummary struct {
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpense      decimal.Decimal            `json:"totalExpense"`
	Balance           decimal.Decimal            `json:"balance"`
	IncomeByCategory  map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
}

// SummarizeBudget totals income and expense overall and per category.
func SummarizeBudget(entries []model.BudgetEntry) BudgetSummary {
	summary := BudgetSummary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		IncomeByCategory:  make(map[string]decimal.Decimal),
		ExpenseByCategory: make(map[string]decimal.Decimal),
	}

	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = UncategorizedLabel
		}
		if e.Type == model.BudgetIncome {
			summary.TotalIncome = summary.TotalIncome.Add(e.Amount)
			summary.IncomeByCategory[category] = summary.IncomeByCategory[category].Add(e.Amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(e.Amount)
			summary.ExpenseByCategory[category] = summary.ExpenseByCategory[category].Add(e.Amount)
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}
