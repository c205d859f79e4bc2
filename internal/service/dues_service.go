package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"shopledger/internal/dto"
	"shopledger/internal/model"
	"shopledger/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DuesService derives outstanding balances from two append-only ledgers:
// wholesale sale dues and received payments. No running balance is stored, so
// there is nothing to double-book — at the price of recomputation per query.
type DuesService interface {
	CustomerDuesWithPayments(ctx context.Context) ([]dto.CustomerDueResponse, error)
	// CustomerDues lists accumulated wholesale dues per customer before any
	// payments are applied.
	CustomerDues(ctx context.Context) ([]repository.CustomerDueRow, error)
	CustomerDuesByName(ctx context.Context, customerName string) (decimal.Decimal, error)
	AddPayment(ctx context.Context, req dto.AddPaymentRequest) error
	PaymentHistory(ctx context.Context) ([]dto.PaymentResponse, error)
}

type duesService struct {
	sales repository.SaleRepository
	dues  repository.DuesRepository
}

func NewDuesService(sales repository.SaleRepository, dues repository.DuesRepository) DuesService {
	return &duesService{sales: sales, dues: dues}
}

// CustomerDuesWithPayments joins accumulated wholesale dues and received
// payments over the union of customer names in either ledger. Customers whose
// remaining due is zero or negative (overpaid) are dropped; decimal math is
// exact, so no epsilon is needed. A failed read degrades to an empty board
// rather than failing the dashboard.
func (s *duesService) CustomerDuesWithPayments(ctx context.Context) ([]dto.CustomerDueResponse, error) {
	dueRows, err := s.sales.WholesaleDuesByCustomer(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read customer dues")
		return []dto.CustomerDueResponse{}, nil
	}
	receivedRows, err := s.dues.TotalReceivedByCustomer(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read received payments")
		return []dto.CustomerDueResponse{}, nil
	}

	dueByName := make(map[string]repository.CustomerDueRow, len(dueRows))
	for _, row := range dueRows {
		dueByName[row.CustomerName] = row
	}
	receivedByName := make(map[string]decimal.Decimal, len(receivedRows))
	for _, row := range receivedRows {
		receivedByName[row.CustomerName] = row.TotalReceived
	}

	names := make(map[string]struct{}, len(dueByName)+len(receivedByName))
	for name := range dueByName {
		names[name] = struct{}{}
	}
	for name := range receivedByName {
		names[name] = struct{}{}
	}

	result := make([]dto.CustomerDueResponse, 0, len(names))
	for name := range names {
		due := dueByName[name]
		received := receivedByName[name]
		remaining := due.TotalDue.Sub(received)
		if !remaining.IsPositive() {
			continue
		}
		result = append(result, dto.CustomerDueResponse{
			CustomerName:  name,
			TotalDue:      due.TotalDue,
			TotalReceived: received,
			RemainingDue:  remaining,
			LastSaleDate:  due.LastSaleDate,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RemainingDue.GreaterThan(result[j].RemainingDue)
	})
	return result, nil
}

func (s *duesService) CustomerDues(ctx context.Context) ([]repository.CustomerDueRow, error) {
	rows, err := s.sales.WholesaleDuesByCustomer(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read gross customer dues")
		return []repository.CustomerDueRow{}, nil
	}
	return rows, nil
}

// CustomerDuesByName returns max(0, dues - received): overpayment beyond the
// recorded dues is absorbed, never reported as credit.
func (s *duesService) CustomerDuesByName(ctx context.Context, customerName string) (decimal.Decimal, error) {
	totalDue, err := s.sales.WholesaleDueTotalByName(ctx, customerName)
	if err != nil {
		log.Error().Err(err).Str("customer", customerName).Msg("failed to read dues")
		return decimal.Zero, nil
	}
	totalReceived, err := s.dues.TotalReceivedByName(ctx, customerName)
	if err != nil {
		log.Error().Err(err).Str("customer", customerName).Msg("failed to read payments")
		return decimal.Zero, nil
	}
	remaining := totalDue.Sub(totalReceived)
	if remaining.IsNegative() {
		return decimal.Zero, nil
	}
	return remaining, nil
}

// AddPayment is a pure insert. It deliberately does not check the computed
// balance: a customer may pay more than the recorded dues, and the floor-at-
// zero display rule absorbs the excess.
func (s *duesService) AddPayment(ctx context.Context, req dto.AddPaymentRequest) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return invalidf("customer name is required")
	}
	if !req.Amount.IsPositive() {
		return invalidf("payment amount must be positive")
	}
	return s.dues.Create(ctx, &model.DuesReceived{
		CustomerName:   name,
		AmountReceived: req.Amount,
		Notes:          strings.TrimSpace(req.Notes),
	})
}

func (s *duesService) PaymentHistory(ctx context.Context) ([]dto.PaymentResponse, error) {
	payments, err := s.dues.History(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read payment history")
		return []dto.PaymentResponse{}, nil
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentResponse{
			CustomerName:   p.CustomerName,
			AmountReceived: p.AmountReceived,
			ReceivedDate:   p.ReceivedDate.Format(time.RFC3339),
			Notes:          p.Notes,
		})
	}
	return out, nil
}
