package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/handlers"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	th := handlers.NewTransactionHandlers(deps)
	ph := handlers.NewPrefsHandlers(deps)
	rh := handlers.NewReferenceHandlers(deps)

	r.Mount("/transactions", th.TransactionRoutes())
	r.Mount("/budgets", ph.BudgetRoutes())
	r.Mount("/filters", ph.FilterRoutes())
	r.Mount("/cards", rh.CardRoutes())
	r.Mount("/crypto", rh.CryptoRoutes())
	r.Get("/status", th.GetStatus)

	return r
}
