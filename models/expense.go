package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is a shop cost entry in the monthly ledger.
type Expense struct {
	gorm.Model
	Description string    `json:"description" gorm:"size:255"`
	Amount      float64   `json:"amount"`
	ExpenseDate time.Time `json:"expense_date"`
	IsFixed     bool      `json:"is_fixed"` // fixed (rent) vs variable (supplies)
}
