package dto

import "github.com/shopspring/decimal"

type AddExpenseRequest struct {
	Category    string          `json:"category"    validate:"required,max=80"`
	Description string          `json:"description" validate:"required,max=250"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
	// Date is optional ("2006-01-02"); empty means today.
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ExpenseFilter binds the range queries. Start/End are optional for the
// total and summary endpoints, required for the range listing.
type ExpenseFilter struct {
	Start    string `form:"start" validate:"omitempty,datetime=2006-01-02"`
	End      string `form:"end"   validate:"omitempty,datetime=2006-01-02"`
	Category string `form:"category"`
}

type ExpenseResponse struct {
	ID          uint            `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
}

type ExpenseTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}
