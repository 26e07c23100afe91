package calculator

import (
	"encoding/json"
	"math"
)

// Number is a float64 result that survives JSON encoding when non-finite:
// NaN and the infinities are written as the strings "NaN", "Infinity" and
// "-Infinity".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(f)
}

// BinaryResult is the response for add, subtract, multiply and divide.
type BinaryResult struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    Number  `json:"result"`
}

// PowerResult is the response for power.
type PowerResult struct {
	Operation string  `json:"operation"`
	Base      float64 `json:"base"`
	Exponent  float64 `json:"exponent"`
	Result    Number  `json:"result"`
}
