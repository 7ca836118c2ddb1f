package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

// ReferenceStore is the seeded in-memory backing for the card and crypto
// screens. Prices are display fixtures, not market data.
type ReferenceStore struct {
	mu     sync.RWMutex
	cards  []models.Card
	crypto []models.CryptoAsset
}

func NewReferenceStore() *ReferenceStore {
	s := &ReferenceStore{}
	s.seed()
	return s
}

func (s *ReferenceStore) ListCards() []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cards
}

func (s *ReferenceStore) ListCryptoAssets() []models.CryptoAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.crypto
}

func (s *ReferenceStore) seed() {
	now := time.Now()
	s.cards = []models.Card{
		{
			CardID:      uuid.New().String(),
			Type:        "original",
			Name:        "Original",
			LastFour:    "4103",
			IsActive:    true,
			Description: "Fully activate card",
			CreatedAt:   now,
		},
		{
			CardID:      uuid.New().String(),
			Type:        "disposable",
			Name:        "Disposable",
			LastFour:    "5678",
			IsActive:    true,
			Description: "Regenerates details after each use",
			CreatedAt:   now,
		},
	}

	s.crypto = []models.CryptoAsset{
		{
			AssetID:   "bitcoin",
			Symbol:    "BTC",
			Name:      "Bitcoin",
			Price:     decimal.RequireFromString("178792.00"),
			Change24h: decimal.RequireFromString("0.25"),
			ChartData: []models.ChartPoint{
				{Time: 1, Value: 175000},
				{Time: 2, Value: 176500},
				{Time: 3, Value: 178000},
				{Time: 4, Value: 179200},
				{Time: 5, Value: 178792},
			},
			Icon: "₿",
		},
		{
			AssetID:   "ethereum",
			Symbol:    "ETH",
			Name:      "Ethereum",
			Price:     decimal.RequireFromString("6635.63"),
			Change24h: decimal.RequireFromString("-0.71"),
			ChartData: []models.ChartPoint{
				{Time: 1, Value: 6800},
				{Time: 2, Value: 6750},
				{Time: 3, Value: 6700},
				{Time: 4, Value: 6650},
				{Time: 5, Value: 6635.63},
			},
			Icon: "Ξ",
		},
		{AssetID: "0x", Symbol: "XCN", Name: "0x Protocol", Price: decimal.RequireFromString("0.45"), Change24h: decimal.RequireFromString("23.44"), Icon: "0x"},
		{AssetID: "polygon", Symbol: "MATIC", Name: "Polygon", Price: decimal.RequireFromString("1.23"), Change24h: decimal.RequireFromString("4.14"), Icon: "⬟"},
		{AssetID: "polkadot", Symbol: "POL", Name: "Polkadot", Price: decimal.RequireFromString("8.92"), Change24h: decimal.RequireFromString("4.10"), Icon: "●"},
		{AssetID: "golem", Symbol: "GLM", Name: "Golem", Price: decimal.RequireFromString("0.34"), Change24h: decimal.RequireFromString("3.40"), Icon: "G"},
		{AssetID: "amp", Symbol: "AMP", Name: "Amp", Price: decimal.RequireFromString("0.012"), Change24h: decimal.RequireFromString("3.19"), Icon: "A"},
		{AssetID: "qtum", Symbol: "QI", Name: "Qtum", Price: decimal.RequireFromString("4.56"), Change24h: decimal.RequireFromString("2.64"), Icon: "Q"},
		{AssetID: "cronos", Symbol: "CRO", Name: "Cronos", Price: decimal.RequireFromString("0.18"), Change24h: decimal.RequireFromString("2.39"), Icon: "C"},
		{AssetID: "loot", Symbol: "AGLD", Name: "Adventure Gold", Price: decimal.RequireFromString("2.34"), Change24h: decimal.RequireFromString("2.36"), Icon: "L"},
	}
}
