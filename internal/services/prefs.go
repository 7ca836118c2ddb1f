package services

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/errs"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/store"
)

// Preference key scheme. One key per field keeps writes independent: setting
// a note never races a category override.
const (
	keyFilterSnapshot = "tx:filters"
	budgetKeyPrefix   = "budget:"
)

func txKey(txID, field string) string {
	return "tx:" + txID + ":" + field
}

type prefsService struct {
	kv store.PrefStore
}

func NewPrefsService(kv store.PrefStore) *prefsService {
	return &prefsService{kv: kv}
}

// Preferences assembles the side-table entry for one transaction. Absent keys
// yield the zero preference; a malformed adjustment reads as zero rather than
// failing the whole record.
func (s *prefsService) Preferences(ctx context.Context, txID string) (models.Preferences, error) {
	var p models.Preferences

	v, ok, err := s.kv.Get(ctx, txKey(txID, "excluded"))
	if err != nil {
		return p, err
	}
	p.Excluded = ok && v == "1"

	if p.Category, _, err = s.kv.Get(ctx, txKey(txID, "category")); err != nil {
		return p, err
	}

	v, ok, err = s.kv.Get(ctx, txKey(txID, "adjustment"))
	if err != nil {
		return p, err
	}
	if ok {
		if d, err := decimal.NewFromString(v); err == nil {
			p.Adjustment = d
		}
	}

	if p.Note, _, err = s.kv.Get(ctx, txKey(txID, "note")); err != nil {
		return p, err
	}
	if p.ReceiptName, _, err = s.kv.Get(ctx, txKey(txID, "receiptName")); err != nil {
		return p, err
	}
	return p, nil
}

// SetPreferences writes the full side-table entry, deleting keys whose fields
// are back at their zero value so the store never accumulates tombstones.
func (s *prefsService) SetPreferences(ctx context.Context, txID string, p models.Preferences) error {
	if err := s.setOrDelete(ctx, txKey(txID, "excluded"), boolValue(p.Excluded)); err != nil {
		return err
	}
	if err := s.setOrDelete(ctx, txKey(txID, "category"), p.Category); err != nil {
		return err
	}
	adjustment := ""
	if !p.Adjustment.IsZero() {
		adjustment = p.Adjustment.String()
	}
	if err := s.setOrDelete(ctx, txKey(txID, "adjustment"), adjustment); err != nil {
		return err
	}
	if err := s.setOrDelete(ctx, txKey(txID, "note"), p.Note); err != nil {
		return err
	}
	return s.setOrDelete(ctx, txKey(txID, "receiptName"), p.ReceiptName)
}

// Budget returns the user-set budget for a category, or nil when none is set.
func (s *prefsService) Budget(ctx context.Context, category string) (*decimal.Decimal, error) {
	v, ok, err := s.kv.Get(ctx, budgetKeyPrefix+category)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, errs.NewStorageError("budget.get", "corrupt budget for "+category+": "+v)
	}
	return &d, nil
}

// SetBudget stores a category budget; a nil budget clears it. Budgets must be
// positive to be meaningful as a progress denominator.
func (s *prefsService) SetBudget(ctx context.Context, category string, budget *decimal.Decimal) error {
	if budget == nil {
		return s.kv.Delete(ctx, budgetKeyPrefix+category)
	}
	if budget.Sign() <= 0 {
		return errs.NewValidationError("budget must be positive")
	}
	return s.kv.Set(ctx, budgetKeyPrefix+category, budget.String())
}

// FilterSnapshot restores the last persisted filter state, or the zero
// snapshot when none has been saved yet. A corrupt snapshot is treated as
// absent; it gets overwritten on the next save.
func (s *prefsService) FilterSnapshot(ctx context.Context) (models.FilterSnapshot, error) {
	var snap models.FilterSnapshot
	v, ok, err := s.kv.Get(ctx, keyFilterSnapshot)
	if err != nil || !ok {
		return snap, err
	}
	if err := json.Unmarshal([]byte(v), &snap); err != nil {
		return models.FilterSnapshot{}, nil
	}
	return snap, nil
}

func (s *prefsService) SaveFilterSnapshot(ctx context.Context, snap models.FilterSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return errs.NewStorageError("filters.save", err.Error())
	}
	return s.kv.Set(ctx, keyFilterSnapshot, string(b))
}

func (s *prefsService) setOrDelete(ctx context.Context, key, value string) error {
	if value == "" {
		return s.kv.Delete(ctx, key)
	}
	return s.kv.Set(ctx, key, value)
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return ""
}
