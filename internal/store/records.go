package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

// RawTransaction is the wire shape of fixture and feed records: string
// amounts, freely absent optional fields. Nothing past this package sees it.
type RawTransaction struct {
	ID               string           `json:"id,omitempty"`
	Date             string           `json:"date"`
	Merchant         string           `json:"merchant"`
	Amount           string           `json:"amount"`
	Currency         string           `json:"currency,omitempty"`
	OriginalAmount   string           `json:"originalAmount,omitempty"`
	OriginalCurrency string           `json:"originalCurrency,omitempty"`
	Status           string           `json:"status,omitempty"`
	Description      string           `json:"description,omitempty"`
	Secondary        string           `json:"secondary,omitempty"`
	Category         string           `json:"category,omitempty"`
	Location         *models.Location `json:"location,omitempty"`
}

// RecordStore holds the session's transaction set: fixture records merged
// with an optional one-shot feed, deduplicated by natural key and sorted
// most-recent first. Records are immutable once ingested; only the
// preference side-table ever changes.
type RecordStore struct {
	mu           sync.RWMutex
	records      []models.Transaction
	feedErr      error
	homeCurrency string
}

func NewRecordStore(homeCurrency string) *RecordStore {
	return &RecordStore{homeCurrency: homeCurrency}
}

// Ingest parses raw records at the boundary, appends them and re-applies the
// dedupe rule. Earlier-ingested records win ties, so the fixture always
// survives a feed that repeats it.
func (s *RecordStore) Ingest(raw []RawTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range raw {
		s.records = append(s.records, s.parse(r))
	}
	s.records = Dedupe(s.records)
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Date.After(s.records[j].Date)
	})
}

// SetFeedError records the non-fatal feed failure surfaced by /status. It is
// set at most once, at startup; there is no retry.
func (s *RecordStore) SetFeedError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedErr = err
}

func (s *RecordStore) FeedError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feedErr
}

// All returns the merged record set, most-recent first. Callers must not
// mutate the returned slice.
func (s *RecordStore) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *RecordStore) Get(id string) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.records {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Transaction{}, errs.NewNotFoundError("transaction not found: " + id)
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *RecordStore) parse(r RawTransaction) models.Transaction {
	t := models.Transaction{
		ID:               r.ID,
		Date:             parseDate(r.Date),
		Merchant:         r.Merchant,
		Amount:           parseAmount(r.Amount),
		Currency:         r.Currency,
		OriginalAmount:   parseAmount(r.OriginalAmount),
		OriginalCurrency: r.OriginalCurrency,
		Status:           r.Status,
		Description:      r.Description,
		Secondary:        r.Secondary,
		Category:         r.Category,
		Location:         r.Location,
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Currency == "" {
		t.Currency = s.homeCurrency
	}
	if t.Status == "" {
		t.Status = models.StatusCompleted
	}
	if t.Location == nil {
		t.Location = LookupMerchantLocation(t.Merchant)
	}
	return t
}

// NaturalKey is the dedupe key: UTC timestamp, merchant, and the amount
// normalized to two decimal places.
func NaturalKey(t models.Transaction) string {
	return strings.Join([]string{
		t.Date.UTC().Format(time.RFC3339),
		t.Merchant,
		t.Amount.StringFixed(2),
	}, "|")
}

// Dedupe drops later occurrences of records sharing a natural key, keeping
// input order otherwise. Dedupe(Dedupe(x)) == Dedupe(x).
func Dedupe(list []models.Transaction) []models.Transaction {
	seen := make(map[string]struct{}, len(list))
	out := make([]models.Transaction, 0, len(list))
	for _, t := range list {
		k := NaturalKey(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}

// parseAmount coerces malformed amount strings to zero so aggregation stays
// total; an empty string is simply an absent optional amount.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
