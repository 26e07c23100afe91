package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"calculator-api/internal/calculator"
	"calculator-api/internal/config"
	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"
)

func NewRouter(cfg config.Config) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", handlers.Index)
	r.Get("/health", handlers.Health(cfg.ServiceName, cfg.Version))

	calculator.RegisterRoutes(r)

	r.Handle("/metrics", observability.PrometheusHandler())

	return r
}

// NewHTTPServer builds the http.Server serving router on cfg.Addr.
func NewHTTPServer(cfg config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
