package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card is a seeded reference entity backing the card management screens.
type Card struct {
	CardID      string    `json:"cardId"`
	Type        string    `json:"type"` // "original" | "disposable"
	Name        string    `json:"name"`
	LastFour    string    `json:"lastFour"`
	IsActive    bool      `json:"isActive"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CryptoAsset is a seeded market entry for the crypto view. Prices are
// display fixtures, not live quotes.
type CryptoAsset struct {
	AssetID   string          `json:"assetId"`
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change24h"`
	ChartData []ChartPoint    `json:"chartData,omitempty"`
	Icon      string          `json:"icon,omitempty"`
}

type ChartPoint struct {
	Time  int     `json:"time"`
	Value float64 `json:"value"`
}
