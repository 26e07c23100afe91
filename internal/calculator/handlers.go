package calculator

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"calculator-api/internal/arithmetic"
	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler returns the GET /{op}/{a}/{b} handler for op.
//
// Both operands are parsed from the path; a segment that is not a finite
// number yields 400 "Invalid number format", and a zero divisor yields 400
// "Cannot divide by zero". Every request runs in a calculator.<op> span and
// updates the calculator metrics.
func Handler(op arithmetic.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := observability.LoggerWithTrace(ctx)
		requestID := observability.RequestIDFromContext(ctx)

		ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", op.Name),
			trace.WithAttributes(
				attribute.String("calculator.operation", op.Name),
				attribute.String("request.id", requestID),
			),
		)
		defer span.End()

		a, errA := operandParam(r, "a")
		b, errB := operandParam(r, "b")
		if err := errors.Join(errA, errB); err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, op.Name, ErrInvalidNumber.Error(), err)
			handlers.WriteError(w, http.StatusBadRequest, ErrInvalidNumber.Error())
			return
		}

		span.SetAttributes(
			attribute.Float64("calculator.operand.a", a),
			attribute.Float64("calculator.operand.b", b),
		)

		start := time.Now()
		result, err := op.Func(a, b)
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

		if err != nil {
			status, msg := http.StatusInternalServerError, "internal error"
			if errors.Is(err, arithmetic.ErrDivisionByZero) {
				status, msg = http.StatusBadRequest, err.Error()
			}
			observability.RecordError(ctx, span, logger, errorCounter, op.Name, msg, err)
			handlers.WriteError(w, status, msg)
			return
		}

		attrs := metric.WithAttributes(attribute.String("operation", op.Name))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, elapsed, attrs)
		if !math.IsNaN(result) && !math.IsInf(result, 0) {
			resultGauge.Record(ctx, result, attrs)
		}

		span.AddEvent("computation.complete", trace.WithAttributes(
			attribute.Float64("result", result),
			attribute.Float64("duration_ms", elapsed),
		))
		span.SetAttributes(attribute.Float64("calculator.result", result))
		span.SetStatus(codes.Ok, "")

		logger.Info("calculator operation completed",
			zap.String("operation", op.Name),
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.Float64("result", result),
			zap.String("request_id", requestID),
			zap.Float64("duration_ms", elapsed),
		)

		handlers.WriteJSON(w, http.StatusOK, response(op, a, b, result))
	}
}

// response picks the body shape from the operation's operand naming.
func response(op arithmetic.Operation, a, b, result float64) any {
	if op.Operands == arithmetic.OperandsBaseExponent {
		return PowerResult{
			Operation: op.Tag,
			Base:      a,
			Exponent:  b,
			Result:    Number(result),
		}
	}
	return BinaryResult{
		Operation: op.Tag,
		A:         a,
		B:         b,
		Result:    Number(result),
	}
}
