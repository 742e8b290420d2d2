package eslatma

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hisobchi/hisobchi/internal/platform/httpx"
	"github.com/hisobchi/hisobchi/internal/shared"
)

// Handler wires HTTP endpoints for reminders.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers reminder routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Patch("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
}

type listResponse struct {
	Reminders []Reminder `json:"reminders"`
	Count     int        `json:"count"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if reminders == nil {
		reminders = []Reminder{}
	}
	httpx.JSON(w, http.StatusOK, listResponse{Reminders: reminders, Count: len(reminders)})
}

type createRequest struct {
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Date        string    `json:"date"`
	IsRecurring bool      `json:"isRecurring"`
	Frequency   Frequency `json:"frequency"`
	IsActive    bool      `json:"isActive"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	rem, err := h.service.Create(r.Context(), CreateInput{
		Title:       req.Title,
		Message:     req.Message,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, rem)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	rem, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rem)
}

type updateRequest struct {
	Title       *string    `json:"title"`
	Message     *string    `json:"message"`
	Date        *string    `json:"date"`
	IsRecurring *bool      `json:"isRecurring"`
	Frequency   *Frequency `json:"frequency"`
	IsActive    *bool      `json:"isActive"`
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
	rem, err := h.service.Update(r.Context(), id, Patch{
		Title:       req.Title,
		Message:     req.Message,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rem)
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

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrValidation):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error("eslatma request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
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
