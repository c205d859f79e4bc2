package repository

import (
	"context"

	"shopledger/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceivedRow is the total received from one customer across all payments.
type ReceivedRow struct {
	CustomerName  string          `json:"customer_name"`
	TotalReceived decimal.Decimal `json:"total_received"`
}

// DuesRepository owns the dues_received ledger. Inserts only — the payment
// history is never rewritten.
type DuesRepository interface {
	Create(ctx context.Context, d *model.DuesReceived) error
	TotalReceivedByName(ctx context.Context, customerName string) (decimal.Decimal, error)
	TotalReceivedByCustomer(ctx context.Context) ([]ReceivedRow, error)
	History(ctx context.Context) ([]model.DuesReceived, error)
}

type duesRepo struct{ db *gorm.DB }

func NewDuesRepository(db *gorm.DB) DuesRepository { return &duesRepo{db: db} }

func (r *duesRepo) Create(ctx context.Context, d *model.DuesReceived) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *duesRepo) TotalReceivedByName(ctx context.Context, customerName string) (decimal.Decimal, error) {
	var row struct {
		TotalReceived decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount_received), 0) AS total_received
		FROM dues_received
		WHERE customer_name = ?`, customerName).Scan(&row).Error
	return row.TotalReceived, err
}

func (r *duesRepo) TotalReceivedByCustomer(ctx context.Context) ([]ReceivedRow, error) {
	var rows []ReceivedRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT customer_name,
		       SUM(amount_received) AS total_received
		FROM dues_received
		GROUP BY customer_name`).Scan(&rows).Error
	return rows, err
}

func (r *duesRepo) History(ctx context.Context) ([]model.DuesReceived, error) {
	var payments []model.DuesReceived
	err := r.db.WithContext(ctx).Order("received_date DESC").Find(&payments).Error
	return payments, err
}
