package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an append-only category/amount record with explicit delete.
type Expense struct {
	ID          uint            `gorm:"primaryKey"`
	Date        time.Time       `gorm:"index;not null"`
	Category    string          `gorm:"index;not null"`
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null;check:amount >= 0"`
	Notes       string
	CreatedAt   time.Time
}
