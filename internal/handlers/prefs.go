package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/dto"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/response"
)

type PrefsService interface {
	Preferences(ctx context.Context, txID string) (models.Preferences, error)
	SetPreferences(ctx context.Context, txID string, p models.Preferences) error
	Budget(ctx context.Context, category string) (*decimal.Decimal, error)
	SetBudget(ctx context.Context, category string, budget *decimal.Decimal) error
	FilterSnapshot(ctx context.Context) (models.FilterSnapshot, error)
	SaveFilterSnapshot(ctx context.Context, snap models.FilterSnapshot) error
}

type prefsHandlers struct {
	ResponseHandler response.ResponseHandler
	PrefsSvc        PrefsService
	TransactionSvc  TransactionService
	AnalyticsSvc    AnalyticsService
}

func NewPrefsHandlers(deps *Deps) *prefsHandlers {
	return &prefsHandlers{
		ResponseHandler: deps.ResponseHandler,
		PrefsSvc:        deps.PrefsSvc,
		TransactionSvc:  deps.TransactionSvc,
		AnalyticsSvc:    deps.AnalyticsSvc,
	}
}

func (h *prefsHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetBudgets)
	r.Put("/{category}", h.PutBudget)
	return r
}

func (h *prefsHandlers) FilterRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetFilters)
	r.Put("/", h.PutFilters)
	return r
}

// GetBudgets reports spend against budget for every known category over the
// full record set.
func (h *prefsHandlers) GetBudgets(w http.ResponseWriter, r *http.Request) {
	categories, err := h.TransactionSvc.Categories(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	records, err := h.TransactionSvc.Filtered(r.Context(), dto.TransactionQuery{})
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	report, err := h.AnalyticsSvc.BudgetReport(r.Context(), records, categories)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, report)
}

func (h *prefsHandlers) PutBudget(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	var req dto.BudgetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid budget payload: "+err.Error()))
		return
	}
	if err := h.PrefsSvc.SetBudget(r.Context(), category, req.Budget); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *prefsHandlers) GetFilters(w http.ResponseWriter, r *http.Request) {
	snap, err := h.PrefsSvc.FilterSnapshot(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, snap)
}

func (h *prefsHandlers) PutFilters(w http.ResponseWriter, r *http.Request) {
	var snap models.FilterSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid filter payload: "+err.Error()))
		return
	}
	if err := h.PrefsSvc.SaveFilterSnapshot(r.Context(), snap); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, snap)
}
