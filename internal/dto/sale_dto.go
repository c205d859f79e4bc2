package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest snapshots product name and prices at sale time — the sale
// row stays valid even if the product is later edited or deleted.
type RecordSaleRequest struct {
	SaleType     string          `json:"sale_type"     validate:"required,oneof=retail wholesale"`
	ProductID    string          `json:"product_id"    validate:"required"`
	ProductName  string          `json:"product_name"  validate:"required"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int             `json:"quantity"      validate:"gt=0"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	CustomerName *string         `json:"customer_name"`
}

// SaleFilter binds the inclusive date-range query. Dates are calendar days
// in "2006-01-02" form; Type empty means both sale types.
type SaleFilter struct {
	Start string `form:"start" validate:"required"`
	End   string `form:"end"   validate:"required"`
	Type  string `form:"type"  validate:"omitempty,oneof=retail wholesale"`
}

type SaleResponse struct {
	ID           uint            `json:"id"`
	Date         string          `json:"date"`
	SaleType     string          `json:"sale_type"`
	CustomerName *string         `json:"customer_name"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	Profit       decimal.Decimal `json:"profit"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	DueAmount    decimal.Decimal `json:"due_amount"`
}
