package handlers

import "net/http"

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// IndexResponse is returned by GET /.
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Endpoints maps each public endpoint name to its path pattern.
var Endpoints = map[string]string{
	"health":   "/health",
	"add":      "/add/<a>/<b>",
	"subtract": "/subtract/<a>/<b>",
	"multiply": "/multiply/<a>/<b>",
	"divide":   "/divide/<a>/<b>",
	"power":    "/power/<base>/<exponent>",
}

// Health returns a handler reporting a static healthy status.
func Health(service, version string) http.HandlerFunc {
	resp := HealthResponse{
		Status:  "healthy",
		Service: service,
		Version: version,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, resp)
	}
}

// Index lists the available endpoints.
func Index(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, IndexResponse{
		Message:   "Calculator API",
		Endpoints: Endpoints,
	})
}
