package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/bootstrap"
	feedclient "github.com/thomasrocks006-cmyk/Revoclone/internal/client/feed"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/config"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/handlers"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/response"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/router"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/services"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	prefs, err := newPrefStore(cfg, bs)
	exitOnError("preference store init failed", err, bs.Log)

	records := store.NewRecordStore(cfg.HomeCurrency)
	fixture, err := store.FixtureRecords()
	exitOnError("fixture load failed", err, bs.Log)
	records.Ingest(fixture)
	loadFeed(cfg, bs.Log, records)

	refs := store.NewReferenceStore()

	// services
	pserv := services.NewPrefsService(prefs)
	tserv := services.NewTransactionService(records, pserv)
	anserv := services.NewAnalyticsService(pserv, tserv)
	exserv := services.NewExportService(tserv)
	rserv := services.NewReferenceService(refs)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.TransactionSvc = tserv
	deps.AnalyticsSvc = anserv
	deps.ExportSvc = exserv
	deps.PrefsSvc = pserv
	deps.ReferenceSvc = rserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "addr", cfg.Addr, "transactions", records.Len())
	err = http.ListenAndServe(cfg.Addr, r)
	exitOnError("server start failed", err, bs.Log)
}

func newPrefStore(cfg *config.Config, bs *bootstrap.Bootstrap) (store.PrefStore, error) {
	switch cfg.PrefsBackend {
	case config.PrefsFile:
		return store.NewFilePrefStore(cfg.PrefsFile)
	case config.PrefsFirestore:
		return store.NewFirestorePrefStore(bs.Firestore), nil
	default:
		return store.NewMemoryPrefStore(), nil
	}
}

// loadFeed merges the optional remote feed into the record store. A feed
// failure leaves the fixture data in place and is surfaced via /status.
func loadFeed(cfg *config.Config, log *slog.Logger, records *store.RecordStore) {
	if cfg.FeedURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feed := feedclient.NewAdapter(nil, cfg.FeedURL)
	raw, err := feed.Fetch(ctx)
	if err != nil {
		log.Warn("transaction feed fetch failed", "error", err)
		records.SetFeedError(err)
		return
	}
	records.Ingest(raw)
	log.Info("transaction feed merged", "records", len(raw))
}
