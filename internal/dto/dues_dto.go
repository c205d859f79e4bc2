package dto

import "github.com/shopspring/decimal"

type AddPaymentRequest struct {
	CustomerName string          `json:"customer_name" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        string          `json:"notes"`
}

// CustomerDueResponse is one line of the outstanding-dues board: wholesale
// dues accumulated minus payments received, floored at zero.
type CustomerDueResponse struct {
	CustomerName  string          `json:"customer_name"`
	TotalDue      decimal.Decimal `json:"total_due"`
	TotalReceived decimal.Decimal `json:"total_received"`
	RemainingDue  decimal.Decimal `json:"remaining_due"`
	LastSaleDate  string          `json:"last_sale_date"`
}

type PaymentResponse struct {
	CustomerName   string          `json:"customer_name"`
	AmountReceived decimal.Decimal `json:"amount_received"`
	ReceivedDate   string          `json:"received_date"`
	Notes          string          `json:"notes"`
}

type DueBalanceResponse struct {
	CustomerName string          `json:"customer_name"`
	RemainingDue decimal.Decimal `json:"remaining_due"`
}
