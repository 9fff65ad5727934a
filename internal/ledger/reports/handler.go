package reports

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/contalivre/contalivre/internal/ledger/shared"
	internalShared "github.com/contalivre/contalivre/internal/shared"
)

// Handler wires HTTP endpoints for the derived reports.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

type intervalEcho struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

func echoWindow(w Window) intervalEcho {
	var iv intervalEcho
	if w.From != nil {
		s := w.From.Format("2006-01-02")
		iv.From = &s
	}
	if w.To != nil {
		s := w.To.Format("2006-01-02")
		iv.To = &s
	}
	return iv
}

func parseWindow(r *http.Request) (Window, error) {
	var w Window
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return Window{}, errors.New("invalid 'from' date (YYYY-MM-DD)")
		}
		w.From = &t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return Window{}, errors.New("invalid 'to' date (YYYY-MM-DD)")
		}
		w.To = &t
	}
	return w, nil
}

func requireWindow(r *http.Request) (time.Time, time.Time, error) {
	w, err := parseWindow(r)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if w.From == nil || w.To == nil {
		return time.Time{}, time.Time{}, errors.New("'from' and 'to' are required (YYYY-MM-DD)")
	}
	return *w.From, *w.To, nil
}

// TrialBalance serves the per-account opening/movement/closing report.
func (h *Handler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	onlyWithActivity := r.URL.Query().Get("only_with_activity") == "1" ||
		r.URL.Query().Get("only_with_activity") == "true"
	tb, err := h.service.TrialBalance(r.Context(), window, onlyWithActivity)
	if err != nil {
		h.writeError(w, "trial balance", err)
		return
	}
	internalShared.WriteJSON(w, http.StatusOK, struct {
		Interval intervalEcho `json:"interval"`
		TrialBalance
	}{echoWindow(window), tb})
}

// TrialBalanceCSV serves the trial balance as a CSV download.
func (h *Handler) TrialBalanceCSV(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	onlyWithActivity := r.URL.Query().Get("only_with_activity") == "1" ||
		r.URL.Query().Get("only_with_activity") == "true"
	tb, err := h.service.TrialBalance(r.Context(), window, onlyWithActivity)
	if err != nil {
		h.writeError(w, "trial balance csv", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trial-balance.csv"`)
	if err := WriteTrialBalanceCSV(w, tb); err != nil {
		h.logger.Error("write trial balance csv", slog.Any("error", err))
	}
}

// IncomeStatement serves revenue/expense totals over a mandatory window.
func (h *Handler) IncomeStatement(w http.ResponseWriter, r *http.Request) {
	from, to, err := requireWindow(r)
	if err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	is, err := h.service.IncomeStatement(r.Context(), from, to)
	if err != nil {
		h.writeError(w, "income statement", err)
		return
	}
	internalShared.WriteJSON(w, http.StatusOK, struct {
		Interval intervalEcho `json:"interval"`
		IncomeStatement
	}{echoWindow(Window{From: &from, To: &to}), is})
}

// IncomeStatementCSV serves the income statement as a CSV download.
func (h *Handler) IncomeStatementCSV(w http.ResponseWriter, r *http.Request) {
	from, to, err := requireWindow(r)
	if err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	is, err := h.service.IncomeStatement(r.Context(), from, to)
	if err != nil {
		h.writeError(w, "income statement csv", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="income-statement.csv"`)
	if err := WriteIncomeStatementCSV(w, is); err != nil {
		h.logger.Error("write income statement csv", slog.Any("error", err))
	}
}

// AccountStatement serves the paginated running-balance ledger for one account.
func (h *Handler) AccountStatement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}
	window, err := parseWindow(r)
	if err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	page := internalShared.NormalizePage(limit, offset)

	stmt, err := h.service.AccountStatement(r.Context(), id, window, page)
	if err != nil {
		h.writeError(w, "account statement", err)
		return
	}
	internalShared.WriteJSON(w, http.StatusOK, struct {
		Interval intervalEcho `json:"interval"`
		Statement
	}{echoWindow(window), stmt})
}

// Overview serves the trial balance and income statement for one window.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	from, to, err := requireWindow(r)
	if err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	ov, err := h.service.Overview(r.Context(), from, to)
	if err != nil {
		h.writeError(w, "overview", err)
		return
	}
	internalShared.WriteJSON(w, http.StatusOK, struct {
		Interval intervalEcho `json:"interval"`
		Overview
	}{echoWindow(Window{From: &from, To: &to}), ov})
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrAccountNotFound):
		internalShared.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(op, slog.Any("error", err))
		internalShared.WriteError(w, http.StatusInternalServerError, "could not compute "+op)
	}
}
