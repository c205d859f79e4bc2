package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyProfitZeroesOnReadError(t *testing.T) {
	saleRepo := newStubSaleRepo()
	saleRepo.readErr = errors.New("locked")
	svc := NewReportService(saleRepo)

	totals := svc.DailyProfit(context.Background())
	require.NotNil(t, totals)
	assert.True(t, totals.TotalSales.IsZero())
	assert.True(t, totals.Profit.IsZero())
}

func TestMonthlyProfitZeroesOnReadError(t *testing.T) {
	saleRepo := newStubSaleRepo()
	saleRepo.readErr = errors.New("locked")
	svc := NewReportService(saleRepo)

	totals := svc.MonthlyProfit(context.Background())
	require.NotNil(t, totals)
	assert.True(t, totals.TotalSales.IsZero())
	assert.True(t, totals.Profit.IsZero())
}
