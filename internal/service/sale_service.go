package service

import (
	"context"
	"strings"
	"time"

	"shopledger/internal/dto"
	"shopledger/internal/model"
	"shopledger/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService records immutable sale rows. A sale and its stock deduction are
// one unit: both writes run in one transaction, and a failed deduction rolls
// the sale row back.
type SaleService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	// SalesByDateRange returns sales with start inclusive and end exclusive,
	// newest first, optionally filtered by sale type.
	SalesByDateRange(ctx context.Context, start, end time.Time, saleType string) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo      repository.SaleRepository
	inventory InventoryService
}

func NewSaleService(repo repository.SaleRepository, inventory InventoryService) SaleService {
	return &saleService{repo: repo, inventory: inventory}
}

func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if req.SaleType != model.SaleTypeRetail && req.SaleType != model.SaleTypeWholesale {
		return nil, invalidf("sale_type must be 'retail' or 'wholesale'")
	}
	if strings.TrimSpace(req.ProductID) == "" || strings.TrimSpace(req.ProductName) == "" {
		return nil, invalidf("product id and name are required")
	}
	if req.Quantity <= 0 {
		return nil, invalidf("sale quantity must be positive")
	}
	if req.SellingPrice.IsNegative() || req.CostPrice.IsNegative() || req.PaidAmount.IsNegative() {
		return nil, invalidf("prices and paid amount must be non-negative")
	}

	// Wholesale sales need a customer for due tracking; retail stores none.
	var customerName *string
	if req.SaleType == model.SaleTypeWholesale {
		if req.CustomerName == nil || strings.TrimSpace(*req.CustomerName) == "" {
			return nil, invalidf("customer name is required for wholesale sales")
		}
		name := strings.TrimSpace(*req.CustomerName)
		customerName = &name
	}

	qty := decimal.NewFromInt(int64(req.Quantity))
	total := req.SellingPrice.Mul(qty)
	profit := req.SellingPrice.Sub(req.CostPrice).Mul(qty)
	due := total.Sub(req.PaidAmount)
	if due.IsNegative() {
		return nil, invalidf("paid amount cannot exceed total amount")
	}

	sale := model.Sale{
		SaleType:     req.SaleType,
		CustomerName: customerName,
		ProductID:    strings.TrimSpace(req.ProductID),
		ProductName:  strings.TrimSpace(req.ProductName),
		SellingPrice: req.SellingPrice,
		CostPrice:    req.CostPrice,
		Quantity:     req.Quantity,
		Total:        total,
		Profit:       profit,
		PaidAmount:   req.PaidAmount,
		DueAmount:    due,
	}

	// Insert and deduct inside one transaction: an insufficient-stock or
	// missing-product failure must leave no orphaned sale row behind.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &sale); err != nil {
			return err
		}
		return s.inventory.DeductForSaleTx(tx, sale.ProductID, sale.Quantity)
	})
	if txErr != nil {
		return nil, txErr
	}
	return saleToResponse(&sale), nil
}

func (s *saleService) SalesByDateRange(ctx context.Context, start, end time.Time, saleType string) ([]dto.SaleResponse, error) {
	if saleType != "" && saleType != model.SaleTypeRetail && saleType != model.SaleTypeWholesale {
		return nil, invalidf("sale_type must be 'retail' or 'wholesale'")
	}
	if end.Before(start) {
		return nil, invalidf("end date must not precede start date")
	}
	sales, err := s.repo.ListByDateRange(ctx, start, end, saleType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *saleToResponse(&sales[i]))
	}
	return out, nil
}

func saleToResponse(v *model.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           v.ID,
		Date:         v.Date.Format(time.RFC3339),
		SaleType:     v.SaleType,
		CustomerName: v.CustomerName,
		ProductID:    v.ProductID,
		ProductName:  v.ProductName,
		SellingPrice: v.SellingPrice,
		CostPrice:    v.CostPrice,
		Quantity:     v.Quantity,
		Total:        v.Total,
		Profit:       v.Profit,
		PaidAmount:   v.PaidAmount,
		DueAmount:    v.DueAmount,
	}
}
