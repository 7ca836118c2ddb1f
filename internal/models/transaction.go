package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses. The set is open-ended: anything else coming from a
// feed is kept verbatim and rendered as-is.
const (
	StatusCompleted           = "completed"
	StatusReverted            = "reverted"
	StatusCardVerification    = "card_verification"
	StatusInsufficientBalance = "insufficient_balance"
	StatusDelayedTransaction  = "delayed_transaction"
)

type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address,omitempty"`
}

// Transaction is the strongly-typed record produced by the store's ingestion
// boundary. Amount is always a parsed decimal in the settlement currency;
// negative is an outflow, positive an inflow, zero a non-monetary marker.
type Transaction struct {
	ID               string          `json:"id"`
	Date             time.Time       `json:"date"`
	Merchant         string          `json:"merchant"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	OriginalAmount   decimal.Decimal `json:"originalAmount,omitempty"`
	OriginalCurrency string          `json:"originalCurrency,omitempty"`
	Status           string          `json:"status"`
	Description      string          `json:"description,omitempty"`
	Secondary        string          `json:"secondary,omitempty"`
	Category         string          `json:"category,omitempty"`
	Location         *Location       `json:"location,omitempty"`
}

// CountsTowardTotals reports whether the amount participates in daily and
// period totals. Reverted entries stay visible (struck through) but never
// count; card verification placeholders never count and never render a
// primary amount.
func (t Transaction) CountsTowardTotals() bool {
	return t.Status != StatusReverted && t.Status != StatusCardVerification
}
