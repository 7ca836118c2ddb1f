package services

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

type exportService struct {
	cats categoryResolver
}

func NewExportService(cats categoryResolver) *exportService {
	return &exportService{cats: cats}
}

// WriteTransactionsCSV streams the filtered set as CSV, one row per record in
// list order, with the resolved category in the last column.
func (s *exportService) WriteTransactionsCSV(ctx context.Context, w io.Writer, records []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "merchant", "amount", "currency", "status", "description", "secondary", "category"}); err != nil {
		return err
	}
	for _, t := range records {
		cat, err := s.cats.EffectiveCategory(ctx, t)
		if err != nil {
			return err
		}
		if err := cw.Write(append(exportRow(t), cat)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStatementCSV writes the single-record statement variant, which omits
// the category column.
func (s *exportService) WriteStatementCSV(ctx context.Context, w io.Writer, t models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "merchant", "amount", "currency", "status", "description", "secondary"}); err != nil {
		return err
	}
	if err := cw.Write(exportRow(t)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(t models.Transaction) []string {
	return []string{
		t.ID,
		t.Date.Format(time.RFC3339),
		t.Merchant,
		t.Amount.StringFixed(2),
		t.Currency,
		t.Status,
		t.Description,
		t.Secondary,
	}
}
