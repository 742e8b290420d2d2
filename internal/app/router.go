package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hisobchi/hisobchi/internal/auth"
	"github.com/hisobchi/hisobchi/internal/balans"
	"github.com/hisobchi/hisobchi/internal/chiqim"
	"github.com/hisobchi/hisobchi/internal/eslatma"
	"github.com/hisobchi/hisobchi/internal/kirim"
	"github.com/hisobchi/hisobchi/internal/observability"
	"github.com/hisobchi/hisobchi/internal/shared"
	"github.com/hisobchi/hisobchi/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager

	AuthHandler    *auth.Handler
	KirimHandler   *kirim.Handler
	ChiqimHandler  *chiqim.Handler
	BalansHandler  *balans.Handler
	EslatmaHandler *eslatma.Handler
	JobHandler     *jobs.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router serving the bookkeeping API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)

	r.Route("/api", func(r chi.Router) {
		r.Use(RequireAuth)
		r.Route("/kirim", params.KirimHandler.MountRoutes)
		r.Route("/chiqim", params.ChiqimHandler.MountRoutes)
		r.Route("/balans", params.BalansHandler.MountRoutes)
		r.Route("/eslatma", params.EslatmaHandler.MountRoutes)
	})

	if params.JobHandler != nil {
		r.Route("/jobs", func(r chi.Router) {
			r.Use(RequireAuth)
			params.JobHandler.MountRoutes(r)
		})
	}

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
