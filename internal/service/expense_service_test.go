package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopledger/internal/dto"
	"shopledger/internal/model"
	"shopledger/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExpenseRepo struct {
	expenses []model.Expense
	readErr  error
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	e.ID = uint(len(r.expenses) + 1)
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *stubExpenseRepo) ListByDateRange(_ context.Context, start, end time.Time, category string) ([]model.Expense, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	var out []model.Expense
	for _, e := range r.expenses {
		if e.Date.Before(start) || !e.Date.Before(end) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *stubExpenseRepo) Total(_ context.Context, start, end *time.Time) (decimal.Decimal, error) {
	if r.readErr != nil {
		return decimal.Zero, r.readErr
	}
	total := decimal.Zero
	for _, e := range r.expenses {
		if start != nil && e.Date.Before(*start) {
			continue
		}
		if end != nil && !e.Date.Before(*end) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (r *stubExpenseRepo) CategorySummary(_ context.Context, _, _ *time.Time) ([]repository.CategoryTotal, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	byCat := make(map[string]*repository.CategoryTotal)
	for _, e := range r.expenses {
		ct, ok := byCat[e.Category]
		if !ok {
			ct = &repository.CategoryTotal{Category: e.Category}
			byCat[e.Category] = ct
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++
	}
	out := make([]repository.CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		out = append(out, *ct)
	}
	return out, nil
}

func (r *stubExpenseRepo) Delete(_ context.Context, id uint) (int64, error) {
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestAddExpenseDefaultsDateToNow(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := NewExpenseService(repo)

	resp, err := svc.AddExpense(context.Background(), dto.AddExpenseRequest{
		Category:    "utilities",
		Description: "electricity bill",
		Amount:      decimal.NewFromInt(4500),
	})
	require.NoError(t, err)
	require.Len(t, repo.expenses, 1)
	assert.WithinDuration(t, time.Now(), repo.expenses[0].Date, time.Minute)
	assert.NotEmpty(t, resp.Date)
}

func TestAddExpenseHonorsExplicitDate(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := NewExpenseService(repo)

	_, err := svc.AddExpense(context.Background(), dto.AddExpenseRequest{
		Category:    "rent",
		Description: "shop rent august",
		Amount:      decimal.NewFromInt(30000),
		Date:        "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 2026, repo.expenses[0].Date.Year())
	assert.Equal(t, time.August, repo.expenses[0].Date.Month())
	assert.Equal(t, 1, repo.expenses[0].Date.Day())
}

func TestAddExpenseValidates(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{})

	_, err := svc.AddExpense(context.Background(), dto.AddExpenseRequest{
		Category:    " ",
		Description: "x",
		Amount:      decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddExpense(context.Background(), dto.AddExpenseRequest{
		Category:    "misc",
		Description: "x",
		Amount:      decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddExpense(context.Background(), dto.AddExpenseRequest{
		Category:    "misc",
		Description: "x",
		Amount:      decimal.NewFromInt(10),
		Date:        "01-08-2026",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTotalExpensesDegradesToZeroOnReadError(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{readErr: errors.New("locked")})
	total, err := svc.TotalExpenses(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestExpensesByDateRangeRejectsInvertedRange(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{})
	now := time.Now()
	_, err := svc.ExpensesByDateRange(context.Background(), now, now.Add(-time.Hour), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteExpenseNotFound(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{})
	err := svc.DeleteExpense(context.Background(), 42)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}
