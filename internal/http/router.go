// Package httpapi assembles the public HTTP surface: shared middleware,
// check endpoints, health and metrics.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"veracity/internal/platform/metrics"
	"veracity/pkg/platform/httputil"
	"veracity/pkg/platform/middleware/device"
	"veracity/pkg/platform/middleware/metadata"
	"veracity/pkg/platform/middleware/requestid"
	"veracity/pkg/platform/middleware/requesttime"
)

const healthTimeout = 2 * time.Second

// Registrar mounts a group of routes, such as the check handler.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Config carries the router's collaborators. Nil Health, Metrics and Gatherer
// are allowed.
type Config struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Health   HealthChecker
}

// NewRouter wires middleware and mounts every registrar.
func NewRouter(cfg Config, registrars ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(device.Middleware)
	r.Use(cfg.Metrics.Middleware)
	r.Use(chimiddleware.Recoverer)

	for _, reg := range registrars {
		reg.Register(r)
	}

	r.Get("/healthz", healthHandler(cfg.Health, cfg.Logger))

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

func healthHandler(checker HealthChecker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "cache": "disabled"}
		if checker != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := checker.Health(ctx); err != nil {
				if logger != nil {
					logger.WarnContext(ctx, "health check failed", "error", err)
				}
				status["status"] = "degraded"
				status["cache"] = "unreachable"
				httputil.WriteJSON(w, http.StatusServiceUnavailable, status)
				return
			}
			status["cache"] = "ok"
		}
		httputil.WriteJSON(w, http.StatusOK, status)
	}
}
