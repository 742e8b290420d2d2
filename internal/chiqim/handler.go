package chiqim

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hisobchi/hisobchi/internal/ledger"
	"github.com/hisobchi/hisobchi/internal/platform/httpx"
	"github.com/hisobchi/hisobchi/internal/shared"
)

// Handler wires HTTP endpoints for the expense ledger.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers expense routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/totals", h.handleTotals)
	r.Get("/export", h.handleExport)
	r.Get("/{id}", h.handleGet)
	r.Patch("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
}

type listResponse struct {
	Entries []ledger.ExpenseEntry `json:"entries"`
	Count   int                   `json:"count"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), filterFromQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if entries == nil {
		entries = []ledger.ExpenseEntry{}
	}
	httpx.JSON(w, http.StatusOK, listResponse{Entries: entries, Count: len(entries)})
}

type createRequest struct {
	Date             string  `json:"date"`
	Payee            string  `json:"payee"`
	Branch           string  `json:"branch"`
	Category         string  `json:"category"`
	PriorMonthsCarry float64 `json:"priorMonthsCarry"`
	MonthlyBilled    float64 `json:"monthlyBilled"`
	Paid             float64 `json:"paid"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	entry, err := h.service.Create(r.Context(), CreateInput{
		Date:             req.Date,
		Payee:            req.Payee,
		Branch:           req.Branch,
		Category:         req.Category,
		PriorMonthsCarry: req.PriorMonthsCarry,
		MonthlyBilled:    req.MonthlyBilled,
		Paid:             req.Paid,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	entry, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

type updateRequest struct {
	Date             *string  `json:"date"`
	Payee            *string  `json:"payee"`
	Branch           *string  `json:"branch"`
	Category         *string  `json:"category"`
	PriorMonthsCarry *float64 `json:"priorMonthsCarry"`
	MonthlyBilled    *float64 `json:"monthlyBilled"`
	Paid             *float64 `json:"paid"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	entry, err := h.service.Update(r.Context(), id, Patch{
		Date:             req.Date,
		Payee:            req.Payee,
		Branch:           req.Branch,
		Category:         req.Category,
		PriorMonthsCarry: req.PriorMonthsCarry,
		MonthlyBilled:    req.MonthlyBilled,
		Paid:             req.Paid,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) handleTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.Totals(r.Context(), filterFromQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, totals)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), filterFromQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	filename := "chiqim-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := WriteCSV(w, entries); err != nil {
		h.logger.Error("write csv export", slog.Any("error", err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrValidation):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error("chiqim request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid id")
		return 0, false
	}
	return id, true
}

func filterFromQuery(r *http.Request) ledger.Filter {
	q := r.URL.Query()
	return ledger.Filter{
		Query:     q.Get("q"),
		Branch:    q.Get("filial"),
		Status:    ledger.PayStatus(q.Get("status")),
		StartDate: q.Get("from"),
		EndDate:   q.Get("to"),
	}
}
