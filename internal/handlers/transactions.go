package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/dto"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/response"
	"github.com/thomasrocks006-cmyk/Revoclone/pkg/helpers"
)

type TransactionService interface {
	List(ctx context.Context, q dto.TransactionQuery) ([]dto.TransactionListItem, error)
	Filtered(ctx context.Context, q dto.TransactionQuery) ([]models.Transaction, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, txID string) (models.Transaction, error)
	Detail(ctx context.Context, txID string) (dto.TransactionDetail, error)
	Status(ctx context.Context) dto.LoadStatus
}

type AnalyticsService interface {
	GroupByDay(ctx context.Context, records []models.Transaction) []dto.DayGroup
	Summary(ctx context.Context, records []models.Transaction) (dto.PeriodSummary, error)
	BudgetReport(ctx context.Context, records []models.Transaction, categories []string) ([]dto.BudgetProgress, error)
}

type ExportService interface {
	WriteTransactionsCSV(ctx context.Context, w io.Writer, records []models.Transaction) error
	WriteStatementCSV(ctx context.Context, w io.Writer, t models.Transaction) error
}

// defaultGroupPageSize matches the list's incremental loading step.
const defaultGroupPageSize = 6

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
	AnalyticsSvc    AnalyticsService
	ExportSvc       ExportService
	PrefsSvc        PrefsService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
		AnalyticsSvc:    deps.AnalyticsSvc,
		ExportSvc:       deps.ExportSvc,
		PrefsSvc:        deps.PrefsSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Get("/groups", h.GetGroups)
	r.Get("/summary", h.GetSummary)
	r.Get("/categories", h.GetCategories)
	r.Get("/export", h.ExportTransactions)
	r.Get("/{txId}", h.GetTransaction)
	r.Get("/{txId}/statement", h.GetStatement)
	r.Get("/{txId}/preferences", h.GetPreferences)
	r.Put("/{txId}/preferences", h.PutPreferences)
	return r
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q, err := h.resolveQuery(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	items, err := h.TransactionSvc.List(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.TransactionList{
		Items:  items,
		Count:  len(items),
		Filter: filterEcho(q),
	})
}

func (h *transactionHandlers) GetGroups(w http.ResponseWriter, r *http.Request) {
	q, err := h.resolveQuery(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	records, err := h.TransactionSvc.Filtered(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	groups := h.AnalyticsSvc.GroupByDay(r.Context(), records)

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", defaultGroupPageSize)
	page := dto.GroupPage{
		Total:  len(groups),
		Filter: filterEcho(q),
	}
	if offset < len(groups) {
		end := offset + limit
		if limit <= 0 || end > len(groups) {
			end = len(groups)
		}
		page.Groups = groups[offset:end]
		page.HasMore = end < len(groups)
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, page)
}

func (h *transactionHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	q, err := h.resolveQuery(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	records, err := h.TransactionSvc.Filtered(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	summary, err := h.AnalyticsSvc.Summary(r.Context(), records)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *transactionHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.TransactionSvc.Categories(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, categories)
}

func (h *transactionHandlers) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	q, err := h.resolveQuery(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	records, err := h.TransactionSvc.Filtered(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	writeCSVHeaders(w, "transactions_export.csv")
	if err := h.ExportSvc.WriteTransactionsCSV(r.Context(), w, records); err != nil {
		// The body may already be partially written; HandleError still logs it.
		h.ResponseHandler.HandleError(w, r, err)
	}
}

func (h *transactionHandlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	txID := chi.URLParam(r, "txId")
	detail, err := h.TransactionSvc.Detail(r.Context(), txID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, detail)
}

func (h *transactionHandlers) GetStatement(w http.ResponseWriter, r *http.Request) {
	txID := chi.URLParam(r, "txId")
	t, err := h.TransactionSvc.Get(r.Context(), txID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	writeCSVHeaders(w, "statement_"+txID+".csv")
	if err := h.ExportSvc.WriteStatementCSV(r.Context(), w, t); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
	}
}

func (h *transactionHandlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	txID := chi.URLParam(r, "txId")
	if _, err := h.TransactionSvc.Get(r.Context(), txID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	p, err := h.PrefsSvc.Preferences(r.Context(), txID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, p)
}

func (h *transactionHandlers) PutPreferences(w http.ResponseWriter, r *http.Request) {
	txID := chi.URLParam(r, "txId")
	if _, err := h.TransactionSvc.Get(r.Context(), txID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	var p models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid preferences payload: "+err.Error()))
		return
	}
	if err := h.PrefsSvc.SetPreferences(r.Context(), txID, p); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, p)
}

func (h *transactionHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.TransactionSvc.Status(r.Context()))
}

// resolveQuery parses q/from/to/cats. A request carrying any filter parameter
// persists the new filter state; a request carrying none restores the
// persisted state, so a bare GET reopens the last session's view.
func (h *transactionHandlers) resolveQuery(r *http.Request) (dto.TransactionQuery, error) {
	params := r.URL.Query()
	if !params.Has("q") && !params.Has("from") && !params.Has("to") && !params.Has("cats") {
		snap, err := h.PrefsSvc.FilterSnapshot(r.Context())
		if err != nil {
			return dto.TransactionQuery{}, err
		}
		return queryFromSnapshot(snap), nil
	}

	q := dto.TransactionQuery{Term: params.Get("q")}
	if params.Has("from") {
		q.DateFrom = helpers.Ptr(params.Get("from"))
	}
	if params.Has("to") {
		q.DateTo = helpers.Ptr(params.Get("to"))
	}
	if cats := params.Get("cats"); cats != "" {
		for _, c := range strings.Split(cats, ",") {
			if c = strings.TrimSpace(c); c != "" {
				q.Categories = append(q.Categories, c)
			}
		}
	}

	if err := h.PrefsSvc.SaveFilterSnapshot(r.Context(), snapshotFromQuery(q)); err != nil {
		return q, err
	}
	return q, nil
}

func queryFromSnapshot(snap models.FilterSnapshot) dto.TransactionQuery {
	q := dto.TransactionQuery{
		Term:       snap.Query,
		Categories: snap.SelectedCategories,
	}
	if snap.DateFrom != "" {
		q.DateFrom = helpers.Ptr(snap.DateFrom)
	}
	if snap.DateTo != "" {
		q.DateTo = helpers.Ptr(snap.DateTo)
	}
	return q
}

func snapshotFromQuery(q dto.TransactionQuery) models.FilterSnapshot {
	return models.FilterSnapshot{
		Query:              q.Term,
		DateFrom:           helpers.Value(q.DateFrom),
		DateTo:             helpers.Value(q.DateTo),
		SelectedCategories: q.Categories,
	}
}

func filterEcho(q dto.TransactionQuery) dto.FilterEcho {
	return dto.FilterEcho{
		Q:    q.Term,
		From: helpers.Value(q.DateFrom),
		To:   helpers.Value(q.DateTo),
		Cats: strings.Join(q.Categories, ","),
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func writeCSVHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
}
