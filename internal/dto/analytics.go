package dto

import (
	"github.com/shopspring/decimal"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

// DayGroup is one calendar-day bucket of the transaction list, most-recent
// day first. Total excludes reverted and card-verification entries.
type DayGroup struct {
	Key   string               `json:"key"`   // YYYY-MM-DD
	Label string               `json:"label"` // e.g. "27 July"
	Items []models.Transaction `json:"items"`
	Total decimal.Decimal      `json:"total"`
}

// GroupPage is one page of day groups for the incrementally-loaded list.
// Total counts day groups across the whole filtered set, not records.
type GroupPage struct {
	Groups  []DayGroup `json:"groups"`
	Total   int        `json:"total"`
	HasMore bool       `json:"hasMore"`
	Filter  FilterEcho `json:"filter"`
}

// CategoryAggregate is the per-category fold used by the summary. Spend is
// reported as a positive magnitude.
type CategoryAggregate struct {
	Category string          `json:"category"`
	Spend    decimal.Decimal `json:"spend"`
	Income   decimal.Decimal `json:"income"`
	Count    int             `json:"count"`
}

type MerchantAggregate struct {
	Merchant string          `json:"merchant"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// BudgetProgress reports spend against an optional user-set monthly budget.
// Progress is a display ratio clamped to 100.
type BudgetProgress struct {
	Category string           `json:"category"`
	Spend    decimal.Decimal  `json:"spend"`
	Budget   *decimal.Decimal `json:"budget,omitempty"`
	Progress int              `json:"progress"`
}

// PeriodSummary is the net income/spend summary of an arbitrary filtered set.
type PeriodSummary struct {
	Income        decimal.Decimal     `json:"income"`
	Spend         decimal.Decimal     `json:"spend"` // positive magnitude
	Net           decimal.Decimal     `json:"net"`
	Currency      string              `json:"currency"`
	Count         int                 `json:"count"`
	TopMerchants  []MerchantAggregate `json:"topMerchants"`
	TopCategories []BudgetProgress    `json:"topCategories"`
}

// MerchantStats backs the "Spent at X" block of the detail sheet.
type MerchantStats struct {
	Merchant string          `json:"merchant"`
	Total    decimal.Decimal `json:"total"` // net over all the merchant's records
	Count    int             `json:"count"`
	SeeAll   string          `json:"seeAll"` // /transactions?q=<merchant>
}

// TransactionDetail is the full detail-sheet payload for one record.
type TransactionDetail struct {
	Transaction models.Transaction `json:"transaction"`
	Preferences models.Preferences `json:"preferences"`
	Stats       MerchantStats      `json:"stats"`
	MapsURL     string             `json:"mapsUrl,omitempty"`
}

// LoadStatus reports the record store's load outcome: the feed error is
// non-fatal and surfaced here exactly once per process.
type LoadStatus struct {
	Transactions int    `json:"transactions"`
	FeedError    string `json:"feedError,omitempty"`
}
