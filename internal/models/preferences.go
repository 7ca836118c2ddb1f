package models

import "github.com/shopspring/decimal"

// Preferences is the per-transaction side-table owned entirely by the client.
// It is keyed by transaction id in the preference store and never written
// back to any record source.
type Preferences struct {
	Excluded    bool            `json:"excluded"`
	Category    string          `json:"category,omitempty"`
	Adjustment  decimal.Decimal `json:"adjustment"`
	Note        string          `json:"note,omitempty"`
	ReceiptName string          `json:"receiptName,omitempty"`
}

// FilterSnapshot is the persisted last-used filter state, restored when a
// request carries no explicit filter parameters.
type FilterSnapshot struct {
	Query              string   `json:"q,omitempty"`
	DateFrom           string   `json:"dateFrom,omitempty"`
	DateTo             string   `json:"dateTo,omitempty"`
	SelectedCategories []string `json:"selectedCategories,omitempty"`
}
