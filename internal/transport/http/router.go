package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cmbridge/internal/platform/health"
	"cmbridge/internal/platform/middleware"
)

// NewRouter wires the diagnostics endpoints with middleware. The bridge
// itself is an in-process library; this surface only exposes its state for
// debugging and probes, so every consent route stays a thin delegation.
func NewRouter(consent *ConsentHandler, webview *WebViewHandler, healthHandler *health.Handler, registry *prometheus.Registry, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	healthHandler.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	consent.Register(r)
	webview.Register(r)

	return r
}
