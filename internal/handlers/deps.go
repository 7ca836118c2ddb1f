package handlers

import (
	"log/slog"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
	AnalyticsSvc    AnalyticsService
	ExportSvc       ExportService
	PrefsSvc        PrefsService
	ReferenceSvc    ReferenceService
}
