// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config holds all runtime settings for the API process.
type Config struct {
	Addr             string
	ServiceName      string
	Version          string
	LogLevel         zapcore.Level
	TelemetryEnabled bool

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Addr:             ":5000",
		ServiceName:      "calculator-api",
		Version:          "1.0.0",
		LogLevel:         zapcore.InfoLevel,
		TelemetryEnabled: true,
		ReadTimeout:      10 * time.Second,
		WriteTimeout:     10 * time.Second,
		IdleTimeout:      60 * time.Second,
		ShutdownTimeout:  5 * time.Second,
	}
}

// Load builds a Config from the process environment on top of Default.
func Load() (Config, error) {
	cfg := Default()

	if v := os.Getenv("CALCULATOR_ADDR"); v != "" {
		cfg.Addr = v
	}

	// OTEL_SERVICE_NAME keeps the telemetry resource and /health in agreement.
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("CALCULATOR_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}

	if v := os.Getenv("CALCULATOR_VERSION"); v != "" {
		cfg.Version = v
	}

	if v := os.Getenv("CALCULATOR_LOG_LEVEL"); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse CALCULATOR_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	if v := os.Getenv("OTEL_SDK_DISABLED"); v != "" {
		disabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse OTEL_SDK_DISABLED: %w", err)
		}
		cfg.TelemetryEnabled = !disabled
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{"CALCULATOR_READ_TIMEOUT", &cfg.ReadTimeout},
		{"CALCULATOR_WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"CALCULATOR_IDLE_TIMEOUT", &cfg.IdleTimeout},
		{"CALCULATOR_SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v := os.Getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.env, err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("parse %s: duration must be positive, got %s", d.env, v)
		}
		*d.dst = parsed
	}

	return cfg, nil
}
