package balans

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hisobchi/hisobchi/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the balance report.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	snapshots *SnapshotStore
}

// NewHandler constructs a Handler instance. snapshots may be nil when no
// Redis-backed store is configured.
func NewHandler(logger *slog.Logger, service *Service, snapshots *SnapshotStore) *Handler {
	return &Handler{logger: logger, service: service, snapshots: snapshots}
}

// MountRoutes registers balance routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleSummary)
	r.Get("/snapshot", h.handleSnapshot)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("compose balance report", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.snapshots == nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	snap, err := h.snapshots.Load(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "snapshot not captured yet")
			return
		}
		h.logger.Error("load balance snapshot", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, snap)
}
