package repository

import (
	"context"
	"time"

	"shopledger/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProfitTotals is the aggregate row behind the daily/monthly dashboards.
type ProfitTotals struct {
	TotalSales decimal.Decimal `json:"total_sales"`
	Profit     decimal.Decimal `json:"profit"`
}

// CustomerDueRow is one customer's accumulated wholesale due.
// LastSaleDate stays a raw string: it is display-only and the storage engine
// already returns it in sortable form.
type CustomerDueRow struct {
	CustomerName string          `json:"customer_name"`
	TotalDue     decimal.Decimal `json:"total_due"`
	LastSaleDate string          `json:"last_sale_date"`
}

type SaleRepository interface {
	// CreateTx inserts the sale row inside the caller's transaction; the
	// stock deduction that completes the sale runs in the same tx.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	ListByDateRange(ctx context.Context, start, end time.Time, saleType string) ([]model.Sale, error)

	// Aggregates over the storage engine's current clock.
	DailyTotals(ctx context.Context) (*ProfitTotals, error)
	MonthlyTotals(ctx context.Context) (*ProfitTotals, error)

	// Derived due reads — wholesale only, read-only access for the dues ledger.
	WholesaleDuesByCustomer(ctx context.Context) ([]CustomerDueRow, error)
	WholesaleDueTotalByName(ctx context.Context, customerName string) (decimal.Decimal, error)

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) ListByDateRange(ctx context.Context, start, end time.Time, saleType string) ([]model.Sale, error) {
	var sales []model.Sale
	q := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end)
	if saleType != "" {
		q = q.Where("sale_type = ?", saleType)
	}
	err := q.Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) DailyTotals(ctx context.Context) (*ProfitTotals, error) {
	var t ProfitTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)  AS total_sales,
		       COALESCE(SUM(profit), 0) AS profit
		FROM sales
		WHERE date(date) = date('now', 'localtime')`).Scan(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *saleRepo) MonthlyTotals(ctx context.Context) (*ProfitTotals, error) {
	var t ProfitTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)  AS total_sales,
		       COALESCE(SUM(profit), 0) AS profit
		FROM sales
		WHERE strftime('%Y-%m', date) = strftime('%Y-%m', 'now', 'localtime')`).Scan(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *saleRepo) WholesaleDuesByCustomer(ctx context.Context) ([]CustomerDueRow, error) {
	var rows []CustomerDueRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT customer_name,
		       SUM(due_amount) AS total_due,
		       MAX(date)       AS last_sale_date
		FROM sales
		WHERE sale_type = 'wholesale'
		  AND due_amount > 0
		  AND customer_name IS NOT NULL
		GROUP BY customer_name`).Scan(&rows).Error
	return rows, err
}

func (r *saleRepo) WholesaleDueTotalByName(ctx context.Context, customerName string) (decimal.Decimal, error) {
	var row struct {
		TotalDue decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(due_amount), 0) AS total_due
		FROM sales
		WHERE sale_type = 'wholesale'
		  AND customer_name = ?
		  AND due_amount > 0`, customerName).Scan(&row).Error
	return row.TotalDue, err
}
