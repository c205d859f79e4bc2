package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the inventory ledger entry for one article. Quantity is the
// denormalized total of the two location quantities; every mutator must keep
// warehouse_quantity + store_quantity == quantity or the write is rejected
// before it reaches the store.
type Product struct {
	ID                string          `gorm:"primaryKey"`
	Name              string          `gorm:"index;not null"`
	Company           string          `gorm:"index;not null"`
	CostPrice         decimal.Decimal `gorm:"type:decimal(12,2);not null;check:cost_price >= 0"`
	Quantity          int             `gorm:"not null;check:quantity >= 0"`
	WarehouseQuantity int             `gorm:"not null;default:0;check:warehouse_quantity >= 0"`
	StoreQuantity     int             `gorm:"not null;default:0;check:store_quantity >= 0"`
	CreatedAt         time.Time
}

// Balance is the stock valuation at cost used by product listings.
func (p *Product) Balance() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
