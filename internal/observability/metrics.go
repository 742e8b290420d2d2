package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics ilova uchun Prometheus metrikalarini yig'adi.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	snapshotRefresh *prometheus.CounterVec
}

// NewMetrics registry va asosiy metrikalarni tayyorlaydi.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hisobchi_http_requests_total",
		Help: "HTTP so'rovlar soni route va status bo'yicha.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hisobchi_http_request_duration_seconds",
		Help:    "HTTP so'rov davomiyligi route bo'yicha.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	snapshot := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hisobchi_balans_snapshot_refresh_total",
		Help: "Balans snapshot yangilanishlari natija bo'yicha.",
	}, []string{"result"})
	registry.MustRegister(requests, duration, snapshot)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		snapshotRefresh: snapshot,
	}
}

// Handler /metrics endpoint uchun http.Handler qaytaradi.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware har bir HTTP so'rov uchun metrikalarni yozadi.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveSnapshotRefresh balans snapshot yangilanishini qayd etadi.
func (m *Metrics) ObserveSnapshotRefresh(result string) {
	if m == nil {
		return
	}
	m.snapshotRefresh.WithLabelValues(result).Inc()
}

// Registerer maxsus metrikalar uchun registryni ochadi.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
