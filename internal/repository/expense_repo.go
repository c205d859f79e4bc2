package repository

import (
	"context"
	"time"

	"shopledger/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryTotal is one row of the per-category expense summary.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	ListByDateRange(ctx context.Context, start, end time.Time, category string) ([]model.Expense, error)
	// Total and CategorySummary take optional bounds — nil means unbounded.
	Total(ctx context.Context, start, end *time.Time) (decimal.Decimal, error)
	CategorySummary(ctx context.Context, start, end *time.Time) ([]CategoryTotal, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *expenseRepo) ListByDateRange(ctx context.Context, start, end time.Time, category string) ([]model.Expense, error) {
	var expenses []model.Expense
	q := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Total(ctx context.Context, start, end *time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	q := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total")
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date < ?", *end)
	}
	err := q.Scan(&row).Error
	return row.Total, err
}

func (r *expenseRepo) CategorySummary(ctx context.Context, start, end *time.Time) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	q := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("category, SUM(amount) AS total, COUNT(*) AS count")
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date < ?", *end)
	}
	err := q.Group("category").Order("total DESC").Scan(&rows).Error
	return rows, err
}

func (r *expenseRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Expense{}, id)
	return res.RowsAffected, res.Error
}
