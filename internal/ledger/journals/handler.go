package journals

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contalivre/contalivre/internal/ledger/shared"
	internalShared "github.com/contalivre/contalivre/internal/shared"
)

const idempotencyModule = "entries"

// Handler wires HTTP endpoints for journal entries.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	idem      *internalShared.IdempotencyStore
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, idem *internalShared.IdempotencyStore) *Handler {
	return &Handler{logger: logger, service: service, idem: idem, validator: validator.New()}
}

type createEntryLine struct {
	AccountID int64            `json:"account_id" validate:"required"`
	Debit     *decimal.Decimal `json:"debit"`
	Credit    *decimal.Decimal `json:"credit"`
}

type createEntryRequest struct {
	Date  string            `json:"date" validate:"required,datetime=2006-01-02"`
	Memo  string            `json:"memo"`
	Lines []createEntryLine `json:"lines" validate:"required,min=2,dive"`
}

func (req createEntryRequest) toInput() EntryInput {
	date, _ := time.Parse("2006-01-02", req.Date)
	in := EntryInput{Date: date, Memo: req.Memo}
	for _, l := range req.Lines {
		line := EntryLineInput{AccountID: l.AccountID}
		if l.Debit != nil {
			line.Debit = *l.Debit
		}
		if l.Credit != nil {
			line.Credit = *l.Credit
		}
		in.Lines = append(in.Lines, line)
	}
	return in
}

// List returns journal entry headers, most recent first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list entries", slog.Any("error", err))
		internalShared.WriteError(w, http.StatusInternalServerError, "could not list entries")
		return
	}
	if entries == nil {
		entries = []JournalEntry{}
	}
	internalShared.WriteJSON(w, http.StatusOK, entries)
}

// Create validates and persists a new balanced journal entry. An optional
// Idempotency-Key header (UUID) makes replays return the original entry id.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := internalShared.DecodeJSON(r, &req); err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid entry: "+err.Error())
		return
	}

	key := r.Header.Get("Idempotency-Key")
	if key != "" {
		if _, err := uuid.Parse(key); err != nil {
			internalShared.WriteError(w, http.StatusBadRequest, "Idempotency-Key must be a UUID")
			return
		}
		if prev, found, err := h.idem.Lookup(r.Context(), idempotencyModule, key); err != nil {
			if errors.Is(err, internalShared.ErrIdempotencyConflict) {
				internalShared.WriteError(w, http.StatusConflict, "request is already being processed")
				return
			}
			h.logger.Error("idempotency lookup", slog.Any("error", err))
			internalShared.WriteError(w, http.StatusInternalServerError, "could not create entry")
			return
		} else if found {
			id, _ := strconv.ParseInt(prev, 10, 64)
			internalShared.WriteJSON(w, http.StatusOK, map[string]int64{"id": id})
			return
		}
		ok, err := h.idem.Reserve(r.Context(), idempotencyModule, key)
		if err != nil {
			h.logger.Error("idempotency reserve", slog.Any("error", err))
			internalShared.WriteError(w, http.StatusInternalServerError, "could not create entry")
			return
		}
		if !ok {
			internalShared.WriteError(w, http.StatusConflict, "request is already being processed")
			return
		}
	}

	id, err := h.service.CreateEntry(r.Context(), req.toInput())
	if err != nil {
		if key != "" {
			if relErr := h.idem.Release(r.Context(), idempotencyModule, key); relErr != nil {
				h.logger.Warn("idempotency release", slog.Any("error", relErr))
			}
		}
		h.writeError(w, err)
		return
	}
	if key != "" {
		if err := h.idem.Complete(r.Context(), idempotencyModule, key, strconv.FormatInt(id, 10)); err != nil {
			h.logger.Warn("idempotency complete", slog.Any("error", err))
		}
	}
	internalShared.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidInput),
		errors.Is(err, shared.ErrTooFewLines),
		errors.Is(err, shared.ErrUnbalanced):
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrAccountNotFound):
		internalShared.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("create entry", slog.Any("error", err))
		internalShared.WriteError(w, http.StatusInternalServerError, "could not create entry")
	}
}
