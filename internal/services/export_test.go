package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
	"github.com/thomasrocks006-cmyk/Revoclone/pkg/helpers"
)

func TestWriteTransactionsCSV(t *testing.T) {
	svc := NewExportService(staticCategories{})
	records := []models.Transaction{
		{ID: "t1", Date: localDate(27, 5, 35), Merchant: "McDonald's", Amount: amount("-15.98"), Currency: "AUD", Status: models.StatusCompleted, Secondary: "-€8.90"},
		{ID: "t2", Date: localDate(26, 23, 59), Merchant: "Olvadis", Amount: amount("-1.82"), Currency: "AUD", Status: models.StatusCompleted, Category: "Shopping", Description: "Souvenirs"},
	}

	var buf bytes.Buffer
	if err := svc.WriteTransactionsCSV(helpers.TestCtx(), &buf, records); err != nil {
		t.Fatalf("WriteTransactionsCSV error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("row count mismatch: got %d", len(rows))
	}
	header := rows[0]
	if header[0] != "id" || header[len(header)-1] != "category" {
		t.Fatalf("header mismatch: %v", header)
	}

	first := rows[1]
	if first[0] != "t1" || first[2] != "McDonald's" || first[3] != "-15.98" {
		t.Errorf("row mismatch: %v", first)
	}
	if first[8] != "Restaurants" {
		t.Errorf("category column mismatch: got %q", first[8])
	}
	if rows[2][8] != "Shopping" {
		t.Errorf("explicit category not exported: got %q", rows[2][8])
	}
}

func TestWriteStatementCSV(t *testing.T) {
	svc := NewExportService(staticCategories{})
	tx := models.Transaction{ID: "t1", Date: localDate(27, 5, 35), Merchant: "McDonald's", Amount: amount("-15.98"), Currency: "AUD", Status: models.StatusCompleted}

	var buf bytes.Buffer
	if err := svc.WriteStatementCSV(helpers.TestCtx(), &buf, tx); err != nil {
		t.Fatalf("WriteStatementCSV error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count mismatch: got %d", len(rows))
	}
	// The statement variant carries no category column.
	if len(rows[0]) != 8 || rows[0][len(rows[0])-1] != "secondary" {
		t.Fatalf("header mismatch: %v", rows[0])
	}
	if rows[1][0] != "t1" || rows[1][4] != "AUD" {
		t.Errorf("row mismatch: %v", rows[1])
	}
}
