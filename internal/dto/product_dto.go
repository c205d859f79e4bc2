package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AddProductRequest carries a user-supplied id. When the location split is
// omitted the whole quantity lands in the warehouse.
type AddProductRequest struct {
	ID                string          `json:"id"       validate:"required"`
	Name              string          `json:"name"     validate:"required,max=120"`
	Company           string          `json:"company"  validate:"required,max=120"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	Quantity          int             `json:"quantity" validate:"min=0"`
	WarehouseQuantity *int            `json:"warehouse_quantity"`
	StoreQuantity     *int            `json:"store_quantity"`
}

// UpdateProductRequest is a partial update: nil quantity fields keep the
// currently stored values, they do NOT reset to zero.
type UpdateProductRequest struct {
	Name              string          `json:"name"    validate:"required,max=120"`
	Company           string          `json:"company" validate:"required,max=120"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	Quantity          *int            `json:"quantity"`
	WarehouseQuantity *int            `json:"warehouse_quantity"`
	StoreQuantity     *int            `json:"store_quantity"`
}

type TransferRequest struct {
	From     string `json:"from"     validate:"required,oneof=warehouse store"`
	To       string `json:"to"       validate:"required,oneof=warehouse store"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

type PurchaseRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// ─── Filter / Query DTOs ─────────────────────────────────────────────────────

type LowStockFilter struct {
	Threshold int    `form:"threshold,default=10" validate:"min=0"`
	Location  string `form:"location,default=store" validate:"oneof=warehouse store"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Company           string          `json:"company"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	Quantity          int             `json:"quantity"`
	WarehouseQuantity int             `json:"warehouse_quantity"`
	StoreQuantity     int             `json:"store_quantity"`
	Balance           decimal.Decimal `json:"balance"`
	CreatedAt         string          `json:"created_at"`
}
