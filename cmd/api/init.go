package main

import (
	"context"
	"errors"
	"fmt"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	"calculator-api/internal/calculator"
	"calculator-api/internal/config"
	"calculator-api/internal/observability"
)

// shutdownStep is one named resource to release on exit.
type shutdownStep struct {
	name string
	fn   func(context.Context) error
}

// sequentialShutdown runs steps one after another in slice order, so the HTTP
// server finishes draining before the telemetry providers flush. A failing
// step does not stop the ones after it.
func sequentialShutdown(steps []shutdownStep) gfshutdown.Operation {
	return func(ctx context.Context) error {
		var errs []error
		for _, step := range steps {
			if err := step.fn(ctx); err != nil {
				observability.Logger.Error("shutdown step failed", zap.String("step", step.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
			}
		}
		return errors.Join(errs...)
	}
}

// initTelemetry starts the OTLP trace, metric and log pipelines and registers
// the calculator instruments. The returned steps flush each provider; the log
// provider comes last so shutdown errors from the others are still exported.
func initTelemetry(ctx context.Context, cfg config.Config) ([]shutdownStep, error) {
	if !cfg.TelemetryEnabled {
		observability.Logger.Info("telemetry disabled, skipping OTLP exporters")
		return nil, nil
	}

	res, err := observability.NewResource(ctx, cfg.ServiceName, cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("build telemetry resource: %w", err)
	}

	var steps []shutdownStep

	traceShutdown, err := observability.InitTracing(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	steps = append(steps, shutdownStep{"tracer-provider", traceShutdown})

	metricShutdown, err := observability.InitMetrics(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	steps = append(steps, shutdownStep{"meter-provider", metricShutdown})

	if err := calculator.InitMetrics(); err != nil {
		return nil, fmt.Errorf("init calculator metrics: %w", err)
	}

	logShutdown, err := observability.InitLogging(ctx, res, cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	steps = append(steps, shutdownStep{"logger-provider", logShutdown})

	return steps, nil
}
