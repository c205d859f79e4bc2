package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shopledger/internal/dto"
	"shopledger/internal/model"
	"shopledger/internal/repository"

	"gorm.io/gorm"
)

// InventoryService owns product rows and the warehouse/store split. Every
// mutation re-validates warehouse_quantity + store_quantity == quantity
// before the write reaches storage.
type InventoryService interface {
	AddProduct(ctx context.Context, req dto.AddProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, search string) ([]dto.ProductResponse, error)
	Transfer(ctx context.Context, id string, req dto.TransferRequest) (*dto.ProductResponse, error)
	Purchase(ctx context.Context, id string, quantity int) (*dto.ProductResponse, error)
	LowStock(ctx context.Context, threshold int, location string) ([]dto.ProductResponse, error)

	// DeductForSaleTx deducts a sale's quantity from store stock and total
	// inside the sale transaction — requires the live tx.
	DeductForSaleTx(tx *gorm.DB, productID string, quantity int) error
}

type inventoryService struct {
	repo repository.ProductRepository
}

func NewInventoryService(repo repository.ProductRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) AddProduct(ctx context.Context, req dto.AddProductRequest) (*dto.ProductResponse, error) {
	id := strings.TrimSpace(req.ID)
	name := strings.TrimSpace(req.Name)
	company := strings.TrimSpace(req.Company)
	if id == "" {
		return nil, invalidf("product id is required")
	}
	if name == "" || company == "" {
		return nil, invalidf("product name and company are required")
	}
	if req.CostPrice.IsNegative() {
		return nil, invalidf("cost_price must be non-negative")
	}
	if req.Quantity < 0 {
		return nil, invalidf("quantity must be non-negative")
	}

	// Omitted split defaults: everything to warehouse, nothing in store.
	warehouse := req.Quantity
	if req.WarehouseQuantity != nil {
		warehouse = *req.WarehouseQuantity
	}
	store := 0
	if req.StoreQuantity != nil {
		store = *req.StoreQuantity
	}
	if warehouse < 0 || store < 0 {
		return nil, invalidf("warehouse_quantity and store_quantity must be non-negative")
	}
	if warehouse+store != req.Quantity {
		return nil, invalidf("warehouse_quantity + store_quantity must equal total quantity")
	}

	p := &model.Product{
		ID:                id,
		Name:              name,
		Company:           company,
		CostPrice:         req.CostPrice,
		Quantity:          req.Quantity,
		WarehouseQuantity: warehouse,
		StoreQuantity:     store,
	}
	// Duplicate id violates the primary key and surfaces as a storage error.
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	company := strings.TrimSpace(req.Company)
	if name == "" || company == "" {
		return nil, invalidf("product name and company are required")
	}
	if req.CostPrice.IsNegative() {
		return nil, invalidf("cost_price must be non-negative")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// Fetch-before-merge: omitted quantity fields keep the stored values so
	// that a price-only edit cannot collapse the stock to zero.
	quantity := current.Quantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	warehouse := current.WarehouseQuantity
	if req.WarehouseQuantity != nil {
		warehouse = *req.WarehouseQuantity
	}
	store := current.StoreQuantity
	if req.StoreQuantity != nil {
		store = *req.StoreQuantity
	}
	if quantity < 0 || warehouse < 0 || store < 0 {
		return nil, invalidf("all quantities must be non-negative")
	}
	if warehouse+store != quantity {
		return nil, invalidf("warehouse_quantity + store_quantity must equal total quantity")
	}

	current.Name = name
	current.Company = company
	current.CostPrice = req.CostPrice
	current.Quantity = quantity
	current.WarehouseQuantity = warehouse
	current.StoreQuantity = store

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return productToResponse(current), nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id string) error {
	// Hard delete. Sales keep a denormalized name/price snapshot, so a
	// product with sale history may be removed without breaking reports.
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *inventoryService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *inventoryService) ListProducts(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out, nil
}

func (s *inventoryService) Transfer(ctx context.Context, id string, req dto.TransferRequest) (*dto.ProductResponse, error) {
	if req.Quantity <= 0 {
		return nil, invalidf("transfer quantity must be positive")
	}
	if !validLocation(req.From) || !validLocation(req.To) {
		return nil, invalidf("locations must be 'warehouse' or 'store'")
	}
	if req.From == req.To {
		return nil, invalidf("source and destination locations must be different")
	}

	var updated *model.Product
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Sufficiency is enforced by the WHERE clause of the conditional
		// update, so a concurrent deduction cannot slip past a stale read.
		rows, err := s.repo.TransferStockTx(tx, id, req.From, req.To, req.Quantity)
		if err != nil {
			return err
		}
		if rows == 0 {
			return s.explainStockFailure(tx, id, req.From, req.Quantity)
		}
		updated, err = s.repo.FindByIDTx(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return productToResponse(updated), nil
}

func (s *inventoryService) Purchase(ctx context.Context, id string, quantity int) (*dto.ProductResponse, error) {
	if quantity <= 0 {
		return nil, invalidf("purchase quantity must be positive")
	}
	rows, err := s.repo.AddWarehouseStock(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrProductNotFound
	}
	return s.GetProduct(ctx, id)
}

func (s *inventoryService) LowStock(ctx context.Context, threshold int, location string) ([]dto.ProductResponse, error) {
	if threshold < 0 {
		return nil, invalidf("threshold must be non-negative")
	}
	if !validLocation(location) {
		return nil, invalidf("location must be 'warehouse' or 'store'")
	}
	products, err := s.repo.LowStock(ctx, threshold, location)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out, nil
}

func (s *inventoryService) DeductForSaleTx(tx *gorm.DB, productID string, quantity int) error {
	rows, err := s.repo.DeductSaleStockTx(tx, productID, quantity)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.explainStockFailure(tx, productID, repository.LocationStore, quantity)
	}
	return nil
}

// explainStockFailure turns a zero-rows conditional update into the precise
// ledger error: the product is missing, or the source location is short.
func (s *inventoryService) explainStockFailure(tx *gorm.DB, id, location string, required int) error {
	p, err := s.repo.FindByIDTx(tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	available := p.WarehouseQuantity
	if location == repository.LocationStore {
		available = p.StoreQuantity
	}
	return invalidStock(location, available, required)
}

func invalidStock(location string, available, required int) error {
	return fmt.Errorf("%w: not enough stock in %s. Available: %d, Required: %d",
		ErrInsufficientStock, location, available, required)
}

func validLocation(loc string) bool {
	return loc == repository.LocationWarehouse || loc == repository.LocationStore
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Company:           p.Company,
		CostPrice:         p.CostPrice,
		Quantity:          p.Quantity,
		WarehouseQuantity: p.WarehouseQuantity,
		StoreQuantity:     p.StoreQuantity,
		Balance:           p.Balance(),
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
}
