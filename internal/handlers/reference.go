package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/response"
)

type ReferenceService interface {
	Cards(ctx context.Context) []models.Card
	CryptoAssets(ctx context.Context) []models.CryptoAsset
}

type referenceHandlers struct {
	ResponseHandler response.ResponseHandler
	ReferenceSvc    ReferenceService
}

func NewReferenceHandlers(deps *Deps) *referenceHandlers {
	return &referenceHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReferenceSvc:    deps.ReferenceSvc,
	}
}

func (h *referenceHandlers) CardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetCards)
	return r
}

func (h *referenceHandlers) CryptoRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetCryptoAssets)
	return r
}

func (h *referenceHandlers) GetCards(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ReferenceSvc.Cards(r.Context()))
}

func (h *referenceHandlers) GetCryptoAssets(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ReferenceSvc.CryptoAssets(r.Context()))
}
