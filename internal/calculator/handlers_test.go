package calculator

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"calculator-api/internal/observability"
	"calculator-api/internal/testutil"
)

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r)
	return r
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.Get(newTestRouter(), path)
}

func TestBinaryOperations(t *testing.T) {
	tests := []struct {
		path      string
		operation string
		a, b      float64
		result    float64
	}{
		{"/add/5/3", "addition", 5, 3, 8},
		{"/add/1.5/2.5", "addition", 1.5, 2.5, 4},
		{"/subtract/10/4", "subtraction", 10, 4, 6},
		{"/subtract/3/5", "subtraction", 3, 5, -2},
		{"/multiply/-2/3", "multiplication", -2, 3, -6},
		{"/multiply/2.5/4", "multiplication", 2.5, 4, 10},
		{"/divide/10/2", "division", 10, 2, 5},
		{"/divide/7/2", "division", 7, 2, 3.5},
		{"/add/1e3/-0.5", "addition", 1000, -0.5, 999.5},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := get(t, tc.path)
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			testutil.CheckJSONContentType(t, w)

			var body struct {
				Operation string  `json:"operation"`
				A         float64 `json:"a"`
				B         float64 `json:"b"`
				Result    float64 `json:"result"`
			}
			testutil.DecodeJSONBody(t, w.Body, &body)

			if body.Operation != tc.operation {
				t.Fatalf("expected operation %q, got %q", tc.operation, body.Operation)
			}
			if body.A != tc.a || body.B != tc.b {
				t.Fatalf("expected operands %g, %g, got %g, %g", tc.a, tc.b, body.A, body.B)
			}
			if body.Result != tc.result {
				t.Fatalf("expected result %g, got %g", tc.result, body.Result)
			}
		})
	}
}

func TestPowerEchoesBaseAndExponent(t *testing.T) {
	w := get(t, "/power/2/3")
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var body map[string]any
	testutil.DecodeJSONBody(t, w.Body, &body)

	want := map[string]any{
		"operation": "power",
		"base":      2.0,
		"exponent":  3.0,
		"result":    8.0,
	}
	if len(body) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, body)
	}
	for k, v := range want {
		if body[k] != v {
			t.Fatalf("field %q: expected %#v, got %#v", k, v, body[k])
		}
	}
}

func TestPowerNonFiniteResults(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/power/-8/0.5", "NaN"},
		{"/power/10/400", "Infinity"},
		{"/power/-10/401", "-Infinity"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := get(t, tc.path)
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var body map[string]any
			testutil.DecodeJSONBody(t, w.Body, &body)

			if body["result"] != tc.want {
				t.Fatalf("expected result %q, got %#v", tc.want, body["result"])
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, path := range []string{"/divide/10/0", "/divide/0/0", "/divide/1/-0", "/divide/1/0.0"} {
		t.Run(path, func(t *testing.T) {
			w := get(t, path)
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)

			if body["error"] != "Cannot divide by zero" {
				t.Fatalf("expected error %q, got %q", "Cannot divide by zero", body["error"])
			}
		})
	}
}

func TestEscapedOperandsAreDecoded(t *testing.T) {
	tests := []struct {
		path string
		a, b float64
	}{
		{"/add/%2B5/3", 5, 3},
		{"/subtract/%2D2.5/1", -2.5, 1},
		{"/multiply/1%2E5/%2B2", 1.5, 2},
		{"/divide/%35/2", 5, 2},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := get(t, tc.path)
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var body BinaryResult
			testutil.DecodeJSONBody(t, w.Body, &body)

			if body.A != tc.a || body.B != tc.b {
				t.Fatalf("expected operands %g, %g, got %g, %g", tc.a, tc.b, body.A, body.B)
			}
		})
	}
}

func TestInvalidNumberFormat(t *testing.T) {
	paths := []string{
		"/add/abc/3",
		"/subtract/3/abc",
		"/multiply/1,5/2",
		"/divide/x/0",
		"/power/2/three",
		"/add/NaN/1",
		"/add/1/inf",
		"/add/1e999/1",
		"/add/0x1p-2/1",
		"/power/2/-0X10",
		"/add/%2530x1/1",
		"/add/%2535/1",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := get(t, path)
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)

			if body["error"] != "Invalid number format" {
				t.Fatalf("expected error %q, got %q", "Invalid number format", body["error"])
			}
			if len(body) != 1 {
				t.Fatalf("expected only the error field, got %v", body)
			}
		})
	}
}

func TestNumberMarshalJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{-6, "-6"},
		{3.5, "3.5"},
		{math.NaN(), `"NaN"`},
		{math.Inf(1), `"Infinity"`},
		{math.Inf(-1), `"-Infinity"`},
	}

	for _, tc := range tests {
		got, err := json.Marshal(Number(tc.in))
		if err != nil {
			t.Fatalf("marshal %g: %v", tc.in, err)
		}
		if string(got) != tc.want {
			t.Fatalf("marshal %g: expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestHandlerLogsCompletedOperation(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	req := httptest.NewRequest(http.MethodGet, "/multiply/4/2.5", nil)
	req = req.WithContext(observability.ContextWithRequestID(req.Context(), "req-42"))
	w := testutil.ExecuteRequest(req, newTestRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	entries := logs.FilterMessage("calculator operation completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 completion log, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["operation"] != "multiply" {
		t.Fatalf("expected operation %q, got %#v", "multiply", fields["operation"])
	}
	if fields["result"] != 10.0 {
		t.Fatalf("expected result 10, got %#v", fields["result"])
	}
	if fields["request_id"] != "req-42" {
		t.Fatalf("expected request_id %q, got %#v", "req-42", fields["request_id"])
	}
}

func TestHandlerRecordsSpansAndMetrics(t *testing.T) {
	ctx := context.Background()

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}

	get(t, "/add/2/3")
	get(t, "/divide/1/0")

	ended := spans.Ended()
	if len(ended) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(ended))
	}
	if ended[0].Name() != "calculator.add" || ended[0].Status().Code != codes.Ok {
		t.Fatalf("expected ok calculator.add span, got %q %v", ended[0].Name(), ended[0].Status())
	}
	if ended[1].Name() != "calculator.divide" || ended[1].Status().Code != codes.Error {
		t.Fatalf("expected failed calculator.divide span, got %q %v", ended[1].Name(), ended[1].Status())
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collecting metrics: %v", err)
	}

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}

	if sums["calculator.operations.total"] != 1 {
		t.Fatalf("expected 1 operation, got %d", sums["calculator.operations.total"])
	}
	if sums["calculator.errors.total"] != 1 {
		t.Fatalf("expected 1 error, got %d", sums["calculator.errors.total"])
	}
}
