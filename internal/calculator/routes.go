package calculator

import (
	"github.com/go-chi/chi/v5"

	"calculator-api/internal/arithmetic"
)

// RegisterRoutes mounts GET /{op}/{a}/{b} for every arithmetic operation.
func RegisterRoutes(r chi.Router) {
	for _, op := range arithmetic.Operations {
		r.Get("/"+op.Name+"/{a}/{b}", Handler(op))
	}
}
