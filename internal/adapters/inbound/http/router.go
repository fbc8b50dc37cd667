// Package http exposes classification over a JSON HTTP API.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abdidvp/polaxis/internal/application"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

// Deps are the services behind the API. Distribution may be backed by a nil
// store, in which case the endpoints that need one answer 503.
type Deps struct {
	Classify     *application.ClassifyService
	Compare      *application.CompareService
	Distribution *application.DistributionService
	Logger       *slog.Logger
	CORSOrigins  []string
	Timeout      time.Duration
}

type handlers struct {
	Deps
}

// NewRouter wires middleware and routes.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Timeout <= 0 {
		d.Timeout = defaultTimeout
	}
	h := &handlers{Deps: d}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(d.Logger), middleware.Recoverer)
	r.Use(middleware.Timeout(d.Timeout))
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", h.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/bank", h.bank)
		r.Post("/classify", h.classify)
		r.Post("/compare", h.compare)
		r.Get("/archetypes", h.archetypes)
		r.Get("/archetypes/{code}", h.archetype)
		r.Get("/results/{id}", h.result)
		r.Get("/distribution", h.distribution)
	})
	return r
}

// requestLogger logs one line per request at INFO.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
