package services

import (
	"context"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

type referenceSource interface {
	ListCards() []models.Card
	ListCryptoAssets() []models.CryptoAsset
}

type referenceService struct {
	source referenceSource
}

func NewReferenceService(source referenceSource) *referenceService {
	return &referenceService{source: source}
}

func (s *referenceService) Cards(ctx context.Context) []models.Card {
	return s.source.ListCards()
}

func (s *referenceService) CryptoAssets(ctx context.Context) []models.CryptoAsset {
	return s.source.ListCryptoAssets()
}
