package accounts

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/contalivre/contalivre/internal/ledger/shared"
	internalShared "github.com/contalivre/contalivre/internal/shared"
)

// Handler wires HTTP endpoints for the account registry.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// List returns every account ordered by code.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list accounts", slog.Any("error", err))
		internalShared.WriteError(w, http.StatusInternalServerError, "could not list accounts")
		return
	}
	if list == nil {
		list = []Account{}
	}
	internalShared.WriteJSON(w, http.StatusOK, list)
}

// Create registers a new account.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := internalShared.DecodeJSON(r, &in); err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Struct(in); err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid account: "+err.Error())
		return
	}
	account, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, "create account", err)
		return
	}
	internalShared.WriteJSON(w, http.StatusCreated, account)
}

// Update replaces all mutable fields of an account.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in UpdateInput
	if err := internalShared.DecodeJSON(r, &in); err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validator.Struct(in); err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid account: "+err.Error())
		return
	}
	if err := h.service.Update(r.Context(), id, in); err != nil {
		h.writeError(w, "update account", err)
		return
	}
	internalShared.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// SetActive toggles account visibility.
func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req setActiveRequest
	if err := internalShared.DecodeJSON(r, &req); err != nil {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.service.SetActive(r.Context(), id, req.IsActive); err != nil {
		h.writeError(w, "set account active", err)
		return
	}
	internalShared.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Deactivate is the public delete operation. The row stays in place so past
// reports remain reproducible.
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Deactivate(r.Context(), id); err != nil {
		h.writeError(w, "deactivate account", err)
		return
	}
	internalShared.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		internalShared.WriteError(w, http.StatusBadRequest, "invalid account id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		internalShared.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrDuplicateCode):
		internalShared.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, shared.ErrAccountNotFound):
		internalShared.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(op, slog.Any("error", err))
		internalShared.WriteError(w, http.StatusInternalServerError, "could not "+op)
	}
}
