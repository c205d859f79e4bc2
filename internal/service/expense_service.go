package service

import (
	"context"
	"strings"
	"time"

	"shopledger/internal/dto"
	"shopledger/internal/model"
	"shopledger/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseService is plain validated CRUD with range and group-by queries.
// No cross-entity invariants: expenses never touch products, sales, or dues.
type ExpenseService interface {
	AddExpense(ctx context.Context, req dto.AddExpenseRequest) (*dto.ExpenseResponse, error)
	// ExpensesByDateRange: start inclusive, end exclusive.
	ExpensesByDateRange(ctx context.Context, start, end time.Time, category string) ([]dto.ExpenseResponse, error)
	TotalExpenses(ctx context.Context, start, end *time.Time) (decimal.Decimal, error)
	CategorySummary(ctx context.Context, start, end *time.Time) ([]repository.CategoryTotal, error)
	DeleteExpense(ctx context.Context, id uint) error
}

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) AddExpense(ctx context.Context, req dto.AddExpenseRequest) (*dto.ExpenseResponse, error) {
	category := strings.TrimSpace(req.Category)
	description := strings.TrimSpace(req.Description)
	if category == "" || description == "" {
		return nil, invalidf("category and description are required")
	}
	if !req.Amount.IsPositive() {
		return nil, invalidf("expense amount must be positive")
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return nil, invalidf("date must be in YYYY-MM-DD form")
		}
		date = parsed
	}

	e := &model.Expense{
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      req.Amount,
		Notes:       strings.TrimSpace(req.Notes),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return expenseToResponse(e), nil
}

func (s *expenseService) ExpensesByDateRange(ctx context.Context, start, end time.Time, category string) ([]dto.ExpenseResponse, error) {
	if end.Before(start) {
		return nil, invalidf("end date must not precede start date")
	}
	expenses, err := s.repo.ListByDateRange(ctx, start, end, strings.TrimSpace(category))
	if err != nil {
		log.Error().Err(err).Msg("failed to read expenses")
		return []dto.ExpenseResponse{}, nil
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, *expenseToResponse(&expenses[i]))
	}
	return out, nil
}

func (s *expenseService) TotalExpenses(ctx context.Context, start, end *time.Time) (decimal.Decimal, error) {
	total, err := s.repo.Total(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to total expenses")
		return decimal.Zero, nil
	}
	return total, nil
}

func (s *expenseService) CategorySummary(ctx context.Context, start, end *time.Time) ([]repository.CategoryTotal, error) {
	rows, err := s.repo.CategorySummary(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize expenses by category")
		return []repository.CategoryTotal{}, nil
	}
	return rows, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date.Format(time.RFC3339),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Notes:       e.Notes,
	}
}
