package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	"calculator-api/internal/config"
	"calculator-api/internal/observability"
	"calculator-api/internal/server"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(os.Getenv("CALCULATOR_ENV_FILE")); err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}

	// Tracing, metrics, log export
	telemetry, err := initTelemetry(ctx, cfg)
	if err != nil {
		observability.Logger.Fatal("telemetry setup failed", zap.Error(err))
	}

	// Router
	srv := server.NewHTTPServer(cfg, server.NewRouter(cfg))

	// Drain the server before flushing the telemetry providers.
	steps := append([]shutdownStep{{"http-server", srv.Shutdown}}, telemetry...)

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.String("service", cfg.ServiceName),
			zap.String("version", cfg.Version),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"calculator-api": sequentialShutdown(steps),
	})

	exitCode := <-wait
	observability.Logger.Info("server stopped", zap.Int("exit_code", exitCode))
	observability.SyncLogger()
	os.Exit(exitCode)
}
