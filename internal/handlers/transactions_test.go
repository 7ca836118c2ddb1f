package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/dto"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

// --- Stubs ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, code, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

type stubTransactionService struct {
	items       []dto.TransactionListItem
	listErr     error
	filtered    []models.Transaction
	filteredErr error
	categories  []string
	getTx       models.Transaction
	getErr      error
	detail      dto.TransactionDetail
	detailErr   error
	status      dto.LoadStatus
	lastQuery   dto.TransactionQuery
}

func (s *stubTransactionService) List(_ context.Context, q dto.TransactionQuery) ([]dto.TransactionListItem, error) {
	s.lastQuery = q
	return s.items, s.listErr
}

func (s *stubTransactionService) Filtered(_ context.Context, q dto.TransactionQuery) ([]models.Transaction, error) {
	s.lastQuery = q
	return s.filtered, s.filteredErr
}

func (s *stubTransactionService) Categories(_ context.Context) ([]string, error) {
	return s.categories, nil
}

func (s *stubTransactionService) Get(_ context.Context, _ string) (models.Transaction, error) {
	return s.getTx, s.getErr
}

func (s *stubTransactionService) Detail(_ context.Context, _ string) (dto.TransactionDetail, error) {
	return s.detail, s.detailErr
}

func (s *stubTransactionService) Status(_ context.Context) dto.LoadStatus {
	return s.status
}

type stubAnalyticsService struct {
	groups  []dto.DayGroup
	summary dto.PeriodSummary
	report  []dto.BudgetProgress
}

func (s *stubAnalyticsService) GroupByDay(_ context.Context, _ []models.Transaction) []dto.DayGroup {
	return s.groups
}

func (s *stubAnalyticsService) Summary(_ context.Context, _ []models.Transaction) (dto.PeriodSummary, error) {
	return s.summary, nil
}

func (s *stubAnalyticsService) BudgetReport(_ context.Context, _ []models.Transaction, _ []string) ([]dto.BudgetProgress, error) {
	return s.report, nil
}

type stubExportService struct {
	transactionsCalled bool
	statementCalled    bool
}

func (s *stubExportService) WriteTransactionsCSV(_ context.Context, w io.Writer, _ []models.Transaction) error {
	s.transactionsCalled = true
	_, err := w.Write([]byte("id,date\n"))
	return err
}

func (s *stubExportService) WriteStatementCSV(_ context.Context, w io.Writer, _ models.Transaction) error {
	s.statementCalled = true
	_, err := w.Write([]byte("id,date\n"))
	return err
}

type stubPrefsService struct {
	prefs      models.Preferences
	prefsErr   error
	setErr     error
	lastSet    models.Preferences
	snapshot   models.FilterSnapshot
	saveCalled bool
	lastSaved  models.FilterSnapshot

	budgetErr    error
	lastCategory string
	lastBudget   *decimal.Decimal
}

func (s *stubPrefsService) Preferences(_ context.Context, _ string) (models.Preferences, error) {
	return s.prefs, s.prefsErr
}

func (s *stubPrefsService) SetPreferences(_ context.Context, _ string, p models.Preferences) error {
	s.lastSet = p
	return s.setErr
}

func (s *stubPrefsService) Budget(_ context.Context, _ string) (*decimal.Decimal, error) {
	return nil, nil
}

func (s *stubPrefsService) SetBudget(_ context.Context, category string, budget *decimal.Decimal) error {
	s.lastCategory = category
	s.lastBudget = budget
	return s.budgetErr
}

func (s *stubPrefsService) FilterSnapshot(_ context.Context) (models.FilterSnapshot, error) {
	return s.snapshot, nil
}

func (s *stubPrefsService) SaveFilterSnapshot(_ context.Context, snap models.FilterSnapshot) error {
	s.saveCalled = true
	s.lastSaved = snap
	return nil
}

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func newTestTransactionHandlers(svc *stubTransactionService, prefs *stubPrefsService) (*transactionHandlers, *stubResponseHandler, *stubAnalyticsService, *stubExportService) {
	resp := &stubResponseHandler{}
	analytics := &stubAnalyticsService{}
	export := &stubExportService{}
	h := NewTransactionHandlers(&Deps{
		ResponseHandler: resp,
		TransactionSvc:  svc,
		AnalyticsSvc:    analytics,
		ExportSvc:       export,
		PrefsSvc:        prefs,
	})
	return h, resp, analytics, export
}

// --- Tests ---

func TestListTransactions_OK(t *testing.T) {
	svc := &stubTransactionService{
		items: []dto.TransactionListItem{{EffectiveCategory: "Transport"}},
	}
	h, resp, _, _ := newTestTransactionHandlers(svc, &stubPrefsService{})

	req := httptest.NewRequest(http.MethodGet, "/transactions?q=lime", nil)
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	list, ok := resp.writeSuccessData.(dto.TransactionList)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.writeSuccessData)
	}
	if list.Count != 1 || list.Filter.Q != "lime" {
		t.Fatalf("payload mismatch: %+v", list)
	}
}

func TestListTransactions_RestoresSnapshot(t *testing.T) {
	svc := &stubTransactionService{}
	prefs := &stubPrefsService{
		snapshot: models.FilterSnapshot{Query: "lime", SelectedCategories: []string{"Transport"}},
	}
	h, resp, _, _ := newTestTransactionHandlers(svc, prefs)

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
	if svc.lastQuery.Term != "lime" || len(svc.lastQuery.Categories) != 1 {
		t.Fatalf("snapshot not applied: %+v", svc.lastQuery)
	}
	if prefs.saveCalled {
		t.Fatal("a bare request must not overwrite the snapshot")
	}
}

func TestListTransactions_PersistsSnapshot(t *testing.T) {
	svc := &stubTransactionService{}
	prefs := &stubPrefsService{
		snapshot: models.FilterSnapshot{Query: "stale"},
	}
	h, _, _, _ := newTestTransactionHandlers(svc, prefs)

	req := httptest.NewRequest(http.MethodGet, "/transactions?q=uber&cats=Transport,Shopping&from=2024-07-01", nil)
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if !prefs.saveCalled {
		t.Fatal("expected the new filter state to be persisted")
	}
	if prefs.lastSaved.Query != "uber" || len(prefs.lastSaved.SelectedCategories) != 2 || prefs.lastSaved.DateFrom != "2024-07-01" {
		t.Fatalf("saved snapshot mismatch: %+v", prefs.lastSaved)
	}
	if svc.lastQuery.Term != "uber" {
		t.Fatalf("query mismatch: %+v", svc.lastQuery)
	}
}

func TestGetGroups_Pagination(t *testing.T) {
	svc := &stubTransactionService{}
	h, resp, analytics, _ := newTestTransactionHandlers(svc, &stubPrefsService{})
	for i := 0; i < 8; i++ {
		analytics.groups = append(analytics.groups, dto.DayGroup{Key: "g"})
	}

	req := httptest.NewRequest(http.MethodGet, "/transactions/groups?q=", nil)
	rr := httptest.NewRecorder()
	h.GetGroups(rr, req)

	page, ok := resp.writeSuccessData.(dto.GroupPage)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.writeSuccessData)
	}
	if len(page.Groups) != 6 || !page.HasMore || page.Total != 8 {
		t.Fatalf("first page mismatch: len=%d hasMore=%v total=%d", len(page.Groups), page.HasMore, page.Total)
	}

	req = httptest.NewRequest(http.MethodGet, "/transactions/groups?q=&offset=6", nil)
	rr = httptest.NewRecorder()
	h.GetGroups(rr, req)

	page = resp.writeSuccessData.(dto.GroupPage)
	if len(page.Groups) != 2 || page.HasMore {
		t.Fatalf("second page mismatch: len=%d hasMore=%v", len(page.Groups), page.HasMore)
	}
}

func TestExportTransactions_Headers(t *testing.T) {
	svc := &stubTransactionService{}
	h, _, _, export := newTestTransactionHandlers(svc, &stubPrefsService{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/export?q=", nil)
	rr := httptest.NewRecorder()
	h.ExportTransactions(rr, req)

	if !export.transactionsCalled {
		t.Fatal("expected the export writer to run")
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type mismatch: %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "transactions_export.csv") {
		t.Errorf("content disposition mismatch: %q", cd)
	}
}

func TestGetStatement_Headers(t *testing.T) {
	svc := &stubTransactionService{getTx: models.Transaction{ID: "t1"}}
	h, _, _, export := newTestTransactionHandlers(svc, &stubPrefsService{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/t1/statement", nil)
	req = withChiParam(req, "txId", "t1")
	rr := httptest.NewRecorder()
	h.GetStatement(rr, req)

	if !export.statementCalled {
		t.Fatal("expected the statement writer to run")
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "statement_t1.csv") {
		t.Errorf("content disposition mismatch: %q", cd)
	}
}

func TestGetTransaction_NotFound(t *testing.T) {
	svc := &stubTransactionService{detailErr: errs.NewNotFoundError("transaction not found: x")}
	h, resp, _, _ := newTestTransactionHandlers(svc, &stubPrefsService{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/x", nil)
	req = withChiParam(req, "txId", "x")
	rr := httptest.NewRecorder()
	h.GetTransaction(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError")
	}
}

func TestPutPreferences_OK(t *testing.T) {
	svc := &stubTransactionService{getTx: models.Transaction{ID: "t1"}}
	prefs := &stubPrefsService{}
	h, resp, _, _ := newTestTransactionHandlers(svc, prefs)

	body := `{"excluded":true,"category":"Groceries","adjustment":"-2.5"}`
	req := httptest.NewRequest(http.MethodPut, "/transactions/t1/preferences", strings.NewReader(body))
	req = withChiParam(req, "txId", "t1")
	rr := httptest.NewRecorder()
	h.PutPreferences(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if !prefs.lastSet.Excluded || prefs.lastSet.Category != "Groceries" {
		t.Fatalf("preferences not passed through: %+v", prefs.lastSet)
	}
}

func TestPutPreferences_UnknownTransaction(t *testing.T) {
	svc := &stubTransactionService{getErr: errs.NewNotFoundError("transaction not found: x")}
	h, resp, _, _ := newTestTransactionHandlers(svc, &stubPrefsService{})

	req := httptest.NewRequest(http.MethodPut, "/transactions/x/preferences", strings.NewReader(`{}`))
	req = withChiParam(req, "txId", "x")
	rr := httptest.NewRecorder()
	h.PutPreferences(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError for unknown transaction")
	}
}

func TestPutPreferences_InvalidJSON(t *testing.T) {
	svc := &stubTransactionService{getTx: models.Transaction{ID: "t1"}}
	h, resp, _, _ := newTestTransactionHandlers(svc, &stubPrefsService{})

	req := httptest.NewRequest(http.MethodPut, "/transactions/t1/preferences", strings.NewReader("not-json"))
	req = withChiParam(req, "txId", "t1")
	rr := httptest.NewRecorder()
	h.PutPreferences(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError on invalid JSON")
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called on invalid JSON")
	}
}

func TestGetStatus(t *testing.T) {
	svc := &stubTransactionService{status: dto.LoadStatus{Transactions: 29, FeedError: "feed returned status 503"}}
	h, resp, _, _ := newTestTransactionHandlers(svc, &stubPrefsService{})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()
	h.GetStatus(rr, req)

	status, ok := resp.writeSuccessData.(dto.LoadStatus)
	if !ok {
		t.Fatalf("unexpected payload type %T", resp.writeSuccessData)
	}
	if status.Transactions != 29 || status.FeedError == "" {
		t.Fatalf("status mismatch: %+v", status)
	}
}
