// main is the entry point of the student-report command.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file, env vars, defaults)
//  2. Initialise the logger on stderr
//  3. Build the sample students
//  4. Rank them by GPA and print the report on stdout
//
// RUNNING:
//
//	go run ./cmd/student-report
//
// or with JSON logs:
//
//	ENV=prod go run ./cmd/student-report
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aanand-mishra/student-report/internal/config"
	"github.com/aanand-mishra/student-report/internal/ranking"
	"github.com/aanand-mishra/student-report/internal/report"
	"github.com/aanand-mishra/student-report/internal/sample"
	"github.com/lmittmann/tint"
)

func main() {
	cfg := config.MustLoad()

	// Logs go to stderr so stdout carries only the report.
	log := setupLogger(cfg.Env, cfg.LogLevel, os.Stderr)

	log.Debug("starting student-report", slog.String("env", cfg.Env))

	if err := run(os.Stdout, log); err != nil {
		log.Error("failed to generate report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run builds the sample records, ranks them and writes the report to out.
func run(out io.Writer, log *slog.Logger) error {
	students, err := sample.Students()
	if err != nil {
		return fmt.Errorf("build students: %w", err)
	}
	log.Debug("students built", slog.Int("count", len(students)))

	ranked := ranking.Rank(students)
	if len(ranked) > 0 {
		log.Debug("students ranked", slog.String("top", ranked[0].String()))
	}

	return report.Write(out, ranked)
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): colored human-readable output at DEBUG level.
// Staging/production: JSON output at DEBUG/INFO level.
// A non-empty level overrides the environment default.
func setupLogger(env, level string, w io.Writer) *slog.Logger {
	var handler slog.Handler

	switch env {
	case config.EnvProd:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: parseLevel(level, slog.LevelInfo),
		})
	case config.EnvStaging:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: parseLevel(level, slog.LevelDebug),
		})
	default:
		handler = tint.NewHandler(w, &tint.Options{
			Level:      parseLevel(level, slog.LevelDebug),
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
