package reports

import "github.com/go-chi/chi/v5"

// MountRoutes registers report routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/trial-balance", h.TrialBalance)
	r.Get("/trial-balance.csv", h.TrialBalanceCSV)
	r.Get("/income-statement", h.IncomeStatement)
	r.Get("/income-statement.csv", h.IncomeStatementCSV)
}
