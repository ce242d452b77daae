package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetType distinguishes income from expense entries.
type BudgetType string

const (
	BudgetIncome  BudgetType = "income"
	BudgetExpense BudgetType = "expense"
)

// BudgetEntry is a single ledger line. Summaries are derived on read, never stored.
type BudgetEntry struct {
	Base
	Type        BudgetType      `json:"type" gorm:"type:varchar(10);not null;index"`
	Category    string          `json:"category" gorm:"size:255"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
}

// EntryDate implements stats.Dated.
func (b BudgetEntry) EntryDate() time.Time { return b.Date }
