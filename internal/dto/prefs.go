package dto

import "github.com/shopspring/decimal"

// BudgetUpdateRequest sets or clears a category budget; a null budget clears.
type BudgetUpdateRequest struct {
	Budget *decimal.Decimal `json:"budget"`
}
