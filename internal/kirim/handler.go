package kirim

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hisobchi/hisobchi/internal/ledger"
	"github.com/hisobchi/hisobchi/internal/platform/httpx"
	"github.com/hisobchi/hisobchi/internal/shared"
)

// Handler wires HTTP endpoints for the income ledger.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers income routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/totals", h.handleTotals)
	r.Get("/{id}", h.handleGet)
	r.Patch("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
}

type listResponse struct {
	Entries []ledger.IncomeEntry `json:"entries"`
	Count   int                  `json:"count"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), filterFromQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if entries == nil {
		entries = []ledger.IncomeEntry{}
	}
	httpx.JSON(w, http.StatusOK, listResponse{Entries: entries, Count: len(entries)})
}

type createRequest struct {
	CompanyName       string               `json:"companyName"`
	TaxID             string               `json:"inn"`
	Phone             string               `json:"phone"`
	ContactName       string               `json:"contactName"`
	ServiceType       string               `json:"serviceType"`
	Branch            string               `json:"branch"`
	PriorMonthsCount  int                  `json:"priorMonthsCount"`
	PriorMonthsAmount float64              `json:"priorMonthsAmount"`
	MonthlyBilled     float64              `json:"monthlyBilled"`
	TotalOwed         float64              `json:"totalOwed"`
	Paid              ledger.PaidBreakdown `json:"paid"`
	Remaining         float64              `json:"remaining"`
	LastUpdated       string               `json:"lastUpdated"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	entry, err := h.service.Create(r.Context(), CreateInput{
		CompanyName:       req.CompanyName,
		TaxID:             req.TaxID,
		Phone:             req.Phone,
		ContactName:       req.ContactName,
		ServiceType:       req.ServiceType,
		Branch:            req.Branch,
		PriorMonthsCount:  req.PriorMonthsCount,
		PriorMonthsAmount: req.PriorMonthsAmount,
		MonthlyBilled:     req.MonthlyBilled,
		TotalOwed:         req.TotalOwed,
		Paid:              req.Paid,
		Remaining:         req.Remaining,
		LastUpdated:       req.LastUpdated,
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
	CompanyName       *string               `json:"companyName"`
	TaxID             *string               `json:"inn"`
	Phone             *string               `json:"phone"`
	ContactName       *string               `json:"contactName"`
	ServiceType       *string               `json:"serviceType"`
	Branch            *string               `json:"branch"`
	PriorMonthsCount  *int                  `json:"priorMonthsCount"`
	PriorMonthsAmount *float64              `json:"priorMonthsAmount"`
	MonthlyBilled     *float64              `json:"monthlyBilled"`
	TotalOwed         *float64              `json:"totalOwed"`
	Paid              *ledger.PaidBreakdown `json:"paid"`
	Remaining         *float64              `json:"remaining"`
	LastUpdated       *string               `json:"lastUpdated"`
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
		CompanyName:       req.CompanyName,
		TaxID:             req.TaxID,
		Phone:             req.Phone,
		ContactName:       req.ContactName,
		ServiceType:       req.ServiceType,
		Branch:            req.Branch,
		PriorMonthsCount:  req.PriorMonthsCount,
		PriorMonthsAmount: req.PriorMonthsAmount,
		MonthlyBilled:     req.MonthlyBilled,
		TotalOwed:         req.TotalOwed,
		Paid:              req.Paid,
		Remaining:         req.Remaining,
		LastUpdated:       req.LastUpdated,
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

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrValidation):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error("kirim request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
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
