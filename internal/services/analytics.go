package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/dto"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

type analyticsPreferences interface {
	Preferences(ctx context.Context, txID string) (models.Preferences, error)
	Budget(ctx context.Context, category string) (*decimal.Decimal, error)
}

type categoryResolver interface {
	EffectiveCategory(ctx context.Context, t models.Transaction) (string, error)
}

type analyticsService struct {
	prefs analyticsPreferences
	cats  categoryResolver
}

func NewAnalyticsService(prefs analyticsPreferences, cats categoryResolver) *analyticsService {
	return &analyticsService{prefs: prefs, cats: cats}
}

const topN = 5

// GroupByDay buckets an already-filtered, most-recent-first record set into
// calendar days. Reverted and card-verification entries stay in the bucket's
// items but never move its total; user exclusions and adjustments do not
// apply here, only in the analytics folds.
func (s *analyticsService) GroupByDay(ctx context.Context, records []models.Transaction) []dto.DayGroup {
	var groups []dto.DayGroup
	index := map[string]int{}
	for _, t := range records {
		key := t.Date.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.DayGroup{
				Key:   key,
				Label: t.Date.Format("2 January"),
			})
		}
		groups[i].Items = append(groups[i].Items, t)
		if t.CountsTowardTotals() {
			groups[i].Total = groups[i].Total.Add(t.Amount)
		}
	}
	return groups
}

// CategoryBreakdown folds countable, non-excluded records by effective
// category. Spend is the positive magnitude of outflows; user adjustments
// shift the amount before it is classified.
func (s *analyticsService) CategoryBreakdown(ctx context.Context, records []models.Transaction) ([]dto.CategoryAggregate, error) {
	items := map[string]*dto.CategoryAggregate{}
	err := s.foldIncluded(ctx, records, func(t models.Transaction, amount decimal.Decimal) error {
		cat, err := s.cats.EffectiveCategory(ctx, t)
		if err != nil {
			return err
		}
		item, ok := items[cat]
		if !ok {
			item = &dto.CategoryAggregate{Category: cat}
			items[cat] = item
		}
		if amount.Sign() < 0 {
			item.Spend = item.Spend.Add(amount.Neg())
		} else {
			item.Income = item.Income.Add(amount)
		}
		item.Count++
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryAggregate, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Spend.Cmp(out[j].Spend); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// MerchantBreakdown folds countable, non-excluded records by merchant into
// net totals, largest magnitude first.
func (s *analyticsService) MerchantBreakdown(ctx context.Context, records []models.Transaction) ([]dto.MerchantAggregate, error) {
	items := map[string]*dto.MerchantAggregate{}
	err := s.foldIncluded(ctx, records, func(t models.Transaction, amount decimal.Decimal) error {
		item, ok := items[t.Merchant]
		if !ok {
			item = &dto.MerchantAggregate{Merchant: t.Merchant}
			items[t.Merchant] = item
		}
		item.Total = item.Total.Add(amount)
		item.Count++
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.MerchantAggregate, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Abs().Cmp(out[j].Total.Abs()); c != 0 {
			return c > 0
		}
		return out[i].Merchant < out[j].Merchant
	})
	return out, nil
}

// Summary rolls a filtered set into the period card: income, spend, net, and
// the top merchants and categories with budget progress.
func (s *analyticsService) Summary(ctx context.Context, records []models.Transaction) (dto.PeriodSummary, error) {
	summary := dto.PeriodSummary{Count: len(records)}

	err := s.foldIncluded(ctx, records, func(t models.Transaction, amount decimal.Decimal) error {
		if amount.Sign() < 0 {
			summary.Spend = summary.Spend.Add(amount.Neg())
		} else {
			summary.Income = summary.Income.Add(amount)
		}
		if summary.Currency == "" && t.Currency != "" {
			summary.Currency = t.Currency
		}
		return nil
	})
	if err != nil {
		return summary, err
	}
	summary.Net = summary.Income.Sub(summary.Spend)

	merchants, err := s.MerchantBreakdown(ctx, records)
	if err != nil {
		return summary, err
	}
	if len(merchants) > topN {
		merchants = merchants[:topN]
	}
	summary.TopMerchants = merchants

	categories, err := s.CategoryBreakdown(ctx, records)
	if err != nil {
		return summary, err
	}
	if len(categories) > topN {
		categories = categories[:topN]
	}
	summary.TopCategories = make([]dto.BudgetProgress, 0, len(categories))
	for _, cat := range categories {
		progress, err := s.budgetProgress(ctx, cat.Category, cat.Spend)
		if err != nil {
			return summary, err
		}
		summary.TopCategories = append(summary.TopCategories, progress)
	}
	return summary, nil
}

// BudgetReport returns budget progress for every given category, including
// those with no budget set.
func (s *analyticsService) BudgetReport(ctx context.Context, records []models.Transaction, categories []string) ([]dto.BudgetProgress, error) {
	breakdown, err := s.CategoryBreakdown(ctx, records)
	if err != nil {
		return nil, err
	}
	spend := make(map[string]decimal.Decimal, len(breakdown))
	for _, item := range breakdown {
		spend[item.Category] = item.Spend
	}

	out := make([]dto.BudgetProgress, 0, len(categories))
	for _, cat := range categories {
		progress, err := s.budgetProgress(ctx, cat, spend[cat])
		if err != nil {
			return nil, err
		}
		out = append(out, progress)
	}
	return out, nil
}

func (s *analyticsService) budgetProgress(ctx context.Context, category string, spend decimal.Decimal) (dto.BudgetProgress, error) {
	progress := dto.BudgetProgress{Category: category, Spend: spend}
	budget, err := s.prefs.Budget(ctx, category)
	if err != nil {
		return progress, err
	}
	progress.Budget = budget
	if budget != nil && budget.Sign() > 0 {
		ratio := spend.Div(*budget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		if ratio > 100 {
			ratio = 100
		}
		progress.Progress = int(ratio)
	}
	return progress, nil
}

// foldIncluded walks the records that analytics count: status exclusions
// apply as everywhere else, user-excluded entries are skipped, and the
// adjustment preference is folded into the amount before handing it over.
func (s *analyticsService) foldIncluded(ctx context.Context, records []models.Transaction, handle func(models.Transaction, decimal.Decimal) error) error {
	for _, t := range records {
		if !t.CountsTowardTotals() {
			continue
		}
		p, err := s.prefs.Preferences(ctx, t.ID)
		if err != nil {
			return err
		}
		if p.Excluded {
			continue
		}
		if err := handle(t, t.Amount.Add(p.Adjustment)); err != nil {
			return err
		}
	}
	return nil
}
