package services

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/dto"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

type recordSource interface {
	All() []models.Transaction
	Get(id string) (models.Transaction, error)
	FeedError() error
	Len() int
}

type preferenceReader interface {
	Preferences(ctx context.Context, txID string) (models.Preferences, error)
}

type transactionService struct {
	source recordSource
	prefs  preferenceReader
}

func NewTransactionService(source recordSource, prefs preferenceReader) *transactionService {
	return &transactionService{source: source, prefs: prefs}
}

// Filtered applies the composed filter to the full record set, preserving the
// store's most-recent-first order. Filters are AND-ed; each zero-valued
// parameter is a no-op.
func (s *transactionService) Filtered(ctx context.Context, q dto.TransactionQuery) ([]models.Transaction, error) {
	from, to, err := parseDateBounds(q.DateFrom, q.DateTo)
	if err != nil {
		return nil, err
	}

	var catSet map[string]struct{}
	if len(q.Categories) > 0 {
		catSet = make(map[string]struct{}, len(q.Categories))
		for _, c := range q.Categories {
			catSet[c] = struct{}{}
		}
	}

	records := s.source.All()
	out := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if !matchesTerm(t, q.Term) {
			continue
		}
		if from != nil && t.Date.Before(*from) {
			continue
		}
		if to != nil && t.Date.After(*to) {
			continue
		}
		if catSet != nil {
			cat, err := s.EffectiveCategory(ctx, t)
			if err != nil {
				return nil, err
			}
			if _, ok := catSet[cat]; !ok {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// List is Filtered plus the per-row presentation fields: the resolved
// category and, when a term is active, the highlight spans.
func (s *transactionService) List(ctx context.Context, q dto.TransactionQuery) ([]dto.TransactionListItem, error) {
	records, err := s.Filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionListItem, 0, len(records))
	for _, t := range records {
		item := dto.TransactionListItem{Transaction: t}
		if item.EffectiveCategory, err = s.EffectiveCategory(ctx, t); err != nil {
			return nil, err
		}
		if q.Term != "" {
			m := matchTransaction(t, q.Term)
			item.Matches = &m
		}
		items = append(items, item)
	}
	return items, nil
}

// EffectiveCategory resolves a record's category: a preference override wins,
// then the record's own category, then merchant-name inference.
func (s *transactionService) EffectiveCategory(ctx context.Context, t models.Transaction) (string, error) {
	p, err := s.prefs.Preferences(ctx, t.ID)
	if err != nil {
		return "", err
	}
	if p.Category != "" {
		return p.Category, nil
	}
	if t.Category != "" {
		return t.Category, nil
	}
	return InferCategory(t.Merchant), nil
}

// Categories returns the distinct effective categories across the full record
// set, sorted, for the filter bar.
func (s *transactionService) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	for _, t := range s.source.All() {
		cat, err := s.EffectiveCategory(ctx, t)
		if err != nil {
			return nil, err
		}
		seen[cat] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out, nil
}

// Get returns one record by id.
func (s *transactionService) Get(ctx context.Context, txID string) (models.Transaction, error) {
	return s.source.Get(txID)
}

// Detail assembles the detail-sheet payload for one record.
func (s *transactionService) Detail(ctx context.Context, txID string) (dto.TransactionDetail, error) {
	t, err := s.source.Get(txID)
	if err != nil {
		return dto.TransactionDetail{}, err
	}
	p, err := s.prefs.Preferences(ctx, txID)
	if err != nil {
		return dto.TransactionDetail{}, err
	}
	stats, err := s.MerchantStats(ctx, t.Merchant)
	if err != nil {
		return dto.TransactionDetail{}, err
	}
	return dto.TransactionDetail{
		Transaction: t,
		Preferences: p,
		Stats:       stats,
		MapsURL:     mapsURL(t.Location),
	}, nil
}

// MerchantStats folds every countable record of one merchant into the "spent
// at" block: net total, visit count, and a link that re-runs the search.
func (s *transactionService) MerchantStats(ctx context.Context, merchant string) (dto.MerchantStats, error) {
	stats := dto.MerchantStats{
		Merchant: merchant,
		SeeAll:   "/transactions?q=" + url.QueryEscape(merchant),
	}
	for _, t := range s.source.All() {
		if t.Merchant != merchant || !t.CountsTowardTotals() {
			continue
		}
		stats.Total = stats.Total.Add(t.Amount)
		stats.Count++
	}
	return stats, nil
}

// Status reports the load outcome: how many records survived the merge and
// whether the feed fetch failed.
func (s *transactionService) Status(ctx context.Context) dto.LoadStatus {
	status := dto.LoadStatus{Transactions: s.source.Len()}
	if err := s.source.FeedError(); err != nil {
		status.FeedError = err.Error()
	}
	return status
}

// parseDateBounds turns the inclusive YYYY-MM-DD bounds into concrete
// instants: from local midnight through the last millisecond of the end day.
func parseDateBounds(fromStr, toStr *string) (from, to *time.Time, err error) {
	if fromStr != nil {
		f, err := time.ParseInLocation("2006-01-02", *fromStr, time.Local)
		if err != nil {
			return nil, nil, errs.NewValidationError("invalid from date: " + *fromStr)
		}
		from = &f
	}
	if toStr != nil {
		t, err := time.ParseInLocation("2006-01-02", *toStr, time.Local)
		if err != nil {
			return nil, nil, errs.NewValidationError("invalid to date: " + *toStr)
		}
		end := t.Add(24*time.Hour - time.Millisecond)
		to = &end
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, errs.NewValidationError("from date is after to date")
	}
	return from, to, nil
}

func mapsURL(loc *models.Location) string {
	if loc == nil {
		return ""
	}
	if loc.Lat != 0 || loc.Lon != 0 {
		query := strconv.FormatFloat(loc.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(loc.Lon, 'f', -1, 64)
		return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
	}
	if loc.Address != "" {
		return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(loc.Address)
	}
	return ""
}
