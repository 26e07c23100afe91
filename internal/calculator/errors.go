package calculator

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ErrInvalidNumber is returned when a path operand is not a finite number.
var ErrInvalidNumber = errors.New("Invalid number format")

// operandParam reads the path parameter name and parses it as an operand.
// chi matches against RawPath when it is set and then hands back segments
// still escaped, so only those are unescaped here.
func operandParam(r *http.Request, name string) (float64, error) {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidNumber, name, raw, err)
		}
		raw = decoded
	}
	return parseOperand(name, raw)
}

// parseOperand parses a decoded path segment as a finite decimal float64.
// Hexadecimal literals are rejected.
func parseOperand(name, raw string) (float64, error) {
	digits := strings.ToLower(strings.TrimLeft(raw, "+-"))
	if strings.HasPrefix(digits, "0x") {
		return 0, fmt.Errorf("%w: %s=%q is hexadecimal", ErrInvalidNumber, name, raw)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidNumber, name, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s=%q is not finite", ErrInvalidNumber, name, raw)
	}
	return v, nil
}
