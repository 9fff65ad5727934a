package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/contalivre/contalivre/internal/ledger/accounts"
	"github.com/contalivre/contalivre/internal/ledger/journals"
	"github.com/contalivre/contalivre/internal/ledger/reports"
	"github.com/contalivre/contalivre/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	AccountsHandler *accounts.Handler
	JournalsHandler *journals.Handler
	ReportsHandler  *reports.Handler
	JobsHandler     *jobs.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/accounts", func(ar chi.Router) {
			params.AccountsHandler.MountRoutes(ar)
			ar.Get("/{id}/statement", params.ReportsHandler.AccountStatement)
		})
		api.Route("/entries", params.JournalsHandler.MountRoutes)
		api.Route("/reports", params.ReportsHandler.MountRoutes)
		api.Get("/overview", params.ReportsHandler.Overview)
	})

	if params.JobsHandler != nil {
		r.Route("/jobs", params.JobsHandler.MountRoutes)
	}

	return r
}
