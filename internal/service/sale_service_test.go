package service

import (
	"context"
	"testing"
	"time"

	"shopledger/internal/dto"
	"shopledger/internal/model"
	"shopledger/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubSaleRepo struct {
	sales    []model.Sale
	dueRows  []repository.CustomerDueRow
	readErr  error
	dueTotal map[string]decimal.Decimal
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{dueTotal: make(map[string]decimal.Decimal)}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	s.ID = uint(len(r.sales) + 1)
	s.Date = time.Now()
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) ListByDateRange(_ context.Context, start, end time.Time, saleType string) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if s.Date.Before(start) || !s.Date.Before(end) {
			continue
		}
		if saleType != "" && s.SaleType != saleType {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *stubSaleRepo) DailyTotals(_ context.Context) (*repository.ProfitTotals, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	return &repository.ProfitTotals{}, nil
}

func (r *stubSaleRepo) MonthlyTotals(_ context.Context) (*repository.ProfitTotals, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	return &repository.ProfitTotals{}, nil
}

func (r *stubSaleRepo) WholesaleDuesByCustomer(_ context.Context) ([]repository.CustomerDueRow, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	return r.dueRows, nil
}

func (r *stubSaleRepo) WholesaleDueTotalByName(_ context.Context, name string) (decimal.Decimal, error) {
	if r.readErr != nil {
		return decimal.Zero, r.readErr
	}
	return r.dueTotal[name], nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

func strPtr(s string) *string { return &s }

func newSaleFixture(warehouse, store int) (*stubSaleRepo, *stubProductRepo, SaleService) {
	saleRepo := newStubSaleRepo()
	productRepo := newStubProductRepo()
	seedProduct(productRepo, "P1", warehouse, store)
	svc := NewSaleService(saleRepo, NewInventoryService(productRepo))
	return saleRepo, productRepo, svc
}

func TestRecordRetailSaleComputesDerivedAmounts(t *testing.T) {
	saleRepo, productRepo, svc := newSaleFixture(5, 10)

	resp, err := svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeRetail,
		ProductID:    "P1",
		ProductName:  "Engine Oil 5W30",
		SellingPrice: decimal.NewFromInt(150),
		CostPrice:    decimal.NewFromInt(100),
		Quantity:     3,
		PaidAmount:   decimal.NewFromInt(450),
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(450)))
	assert.True(t, resp.Profit.Equal(decimal.NewFromInt(150)))
	assert.True(t, resp.DueAmount.IsZero())
	assert.Nil(t, resp.CustomerName)
	require.Len(t, saleRepo.sales, 1)

	// Deduction hits store stock and total only; warehouse untouched.
	p := productRepo.products["P1"]
	assert.Equal(t, 5, p.WarehouseQuantity)
	assert.Equal(t, 7, p.StoreQuantity)
	assert.Equal(t, 12, p.Quantity)
}

func TestRecordWholesaleSaleTracksDue(t *testing.T) {
	_, _, svc := newSaleFixture(0, 10)

	resp, err := svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeWholesale,
		ProductID:    "P1",
		ProductName:  "Engine Oil 5W30",
		SellingPrice: decimal.NewFromInt(140),
		CostPrice:    decimal.NewFromInt(100),
		Quantity:     5,
		PaidAmount:   decimal.NewFromInt(400),
		CustomerName: strPtr("Ali"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(700)))
	assert.True(t, resp.DueAmount.Equal(decimal.NewFromInt(300)))
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Ali", *resp.CustomerName)
}

func TestRecordWholesaleSaleRequiresCustomer(t *testing.T) {
	saleRepo, _, svc := newSaleFixture(0, 10)

	_, err := svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeWholesale,
		ProductID:    "P1",
		ProductName:  "Engine Oil 5W30",
		SellingPrice: decimal.NewFromInt(140),
		Quantity:     1,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, saleRepo.sales)
}

func TestRecordSaleRejectsOverpayment(t *testing.T) {
	saleRepo, _, svc := newSaleFixture(0, 10)

	_, err := svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeRetail,
		ProductID:    "P1",
		ProductName:  "Engine Oil 5W30",
		SellingPrice: decimal.NewFromInt(100),
		Quantity:     2,
		PaidAmount:   decimal.NewFromInt(201),
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, saleRepo.sales)
}

func TestRecordSaleInsufficientStoreStock(t *testing.T) {
	// Warehouse is full but the store floor only has 2: sales never draw
	// from the warehouse.
	_, productRepo, svc := newSaleFixture(50, 2)

	_, err := svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeRetail,
		ProductID:    "P1",
		ProductName:  "Engine Oil 5W30",
		SellingPrice: decimal.NewFromInt(100),
		Quantity:     5,
		PaidAmount:   decimal.NewFromInt(500),
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Available: 2")

	p := productRepo.products["P1"]
	assert.Equal(t, 2, p.StoreQuantity)
	assert.Equal(t, 52, p.Quantity)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	saleRepo := newStubSaleRepo()
	svc := NewSaleService(saleRepo, NewInventoryService(newStubProductRepo()))

	_, err := svc.RecordSale(context.Background(), dto.RecordSaleRequest{
		SaleType:     model.SaleTypeRetail,
		ProductID:    "ghost",
		ProductName:  "Ghost",
		SellingPrice: decimal.NewFromInt(10),
		Quantity:     1,
		PaidAmount:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSalesByDateRangeValidatesInput(t *testing.T) {
	_, _, svc := newSaleFixture(0, 10)
	now := time.Now()

	_, err := svc.SalesByDateRange(context.Background(), now, now.Add(-time.Hour), "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SalesByDateRange(context.Background(), now, now.Add(time.Hour), "consignment")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSalesByDateRangeFiltersByType(t *testing.T) {
	saleRepo, _, svc := newSaleFixture(0, 100)

	for i, saleType := range []string{model.SaleTypeRetail, model.SaleTypeWholesale, model.SaleTypeRetail} {
		req := dto.RecordSaleRequest{
			SaleType:     saleType,
			ProductID:    "P1",
			ProductName:  "Engine Oil 5W30",
			SellingPrice: decimal.NewFromInt(int64(100 + i)),
			Quantity:     1,
			PaidAmount:   decimal.NewFromInt(int64(100 + i)),
		}
		if saleType == model.SaleTypeWholesale {
			req.CustomerName = strPtr("Ali")
		}
		_, err := svc.RecordSale(context.Background(), req)
		require.NoError(t, err)
	}
	require.Len(t, saleRepo.sales, 3)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)

	retail, err := svc.SalesByDateRange(context.Background(), start, end, model.SaleTypeRetail)
	require.NoError(t, err)
	assert.Len(t, retail, 2)

	all, err := svc.SalesByDateRange(context.Background(), start, end, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
