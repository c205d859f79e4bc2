package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale types.
const (
	SaleTypeRetail    = "retail"
	SaleTypeWholesale = "wholesale"
)

// Sale is an immutable ledger record. Product name and prices are a snapshot
// taken at sale time so that deleting the product later does not invalidate
// historical reports. DueAmount is always total - paid_amount, never edited
// independently.
type Sale struct {
	ID           uint            `gorm:"primaryKey"`
	Date         time.Time       `gorm:"index;autoCreateTime"`
	SaleType     string          `gorm:"not null;index;check:sale_type IN ('retail','wholesale')"`
	CustomerName *string         `gorm:"index"` // nil for retail
	ProductID    string          `gorm:"not null;index"`
	ProductName  string          `gorm:"not null"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;check:selling_price >= 0"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;check:cost_price >= 0"`
	Quantity     int             `gorm:"not null;check:quantity >= 0"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Profit       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null;check:paid_amount >= 0"`
	DueAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}
