package service

import (
	"context"

	"shopledger/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReportService serves the dashboard aggregates. These are the lenient read
// paths of the ledger: a storage failure logs and returns zeroed totals so a
// dashboard refresh never crashes the caller. Write paths stay strict.
type ReportService interface {
	DailyProfit(ctx context.Context) *repository.ProfitTotals
	MonthlyProfit(ctx context.Context) *repository.ProfitTotals
}

type reportService struct {
	sales repository.SaleRepository
}

func NewReportService(sales repository.SaleRepository) ReportService {
	return &reportService{sales: sales}
}

func (s *reportService) DailyProfit(ctx context.Context) *repository.ProfitTotals {
	totals, err := s.sales.DailyTotals(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to calculate daily profit")
		return &repository.ProfitTotals{}
	}
	return totals
}

func (s *reportService) MonthlyProfit(ctx context.Context) *repository.ProfitTotals {
	totals, err := s.sales.MonthlyTotals(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to calculate monthly profit")
		return &repository.ProfitTotals{}
	}
	return totals
}
