package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DuesReceived is one payment applied against a customer's accumulated
// wholesale due balance. The ledger is purely additive — rows are never
// updated or deleted.
type DuesReceived struct {
	ID             uint            `gorm:"primaryKey"`
	CustomerName   string          `gorm:"index;not null"`
	AmountReceived decimal.Decimal `gorm:"type:decimal(12,2);not null;check:amount_received >= 0"`
	ReceivedDate   time.Time       `gorm:"index;autoCreateTime"`
	Notes          string
}

// TableName overrides GORM's default pluralization (dues_receiveds → dues_received).
func (DuesReceived) TableName() string { return "dues_received" }
