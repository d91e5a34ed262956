// Package engine orchestrates a graphgauge run: ingest the snapshot,
// run the analyzers over the resulting store, and assemble a Summary
// for whichever surface renders it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/graphgauge/graphgauge/pkg/analysis"
	"github.com/graphgauge/graphgauge/pkg/ingest"
	"github.com/graphgauge/graphgauge/pkg/telemetry"
	"github.com/graphgauge/graphgauge/pkg/version"
)

// ErrDirtyInput indicates the run completed but some edge lines were
// skipped as malformed. The Summary is still valid for everything that
// parsed; callers decide whether to surface this as a warning.
var ErrDirtyInput = errors.New("engine: snapshot contained malformed lines")

// Config holds engine settings.
type Config struct {
	InputPath string
	Strict    bool // abort on the first malformed integer token
	JSONLogs  bool
	Verbose   bool

	// Telemetry config.
	OtelEndpoint  string // "http://localhost:4318" or via env
	SkipTelemetry bool   // set when the host app already has OTel

	// Dependencies.
	Logger *slog.Logger
}

// Engine is the runtime core.
type Engine struct {
	Logger *slog.Logger
	Tracer trace.Tracer

	config   Config
	shutdown func(context.Context) error
}

// New initializes the Engine: logger, tracer, nothing graph-specific
// yet — the store is built per Run.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if cfg.JSONLogs {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}
		logger = slog.New(handler)
	}
	slog.SetDefault(logger)

	e := &Engine{
		Logger: logger,
		Tracer: otel.Tracer("graphgauge/engine"),
		config: cfg,
	}

	if !cfg.SkipTelemetry {
		shutdown, err := telemetry.Init(ctx, version.AppName, version.Current, cfg.OtelEndpoint)
		if err != nil {
			logger.Warn("telemetry init failed", "error", err)
		} else {
			e.shutdown = shutdown
		}
	}

	return e, nil
}

// Run executes one batch computation over the configured snapshot.
// On dirty input (lenient mode, malformed lines skipped) it returns
// both a valid Summary and ErrDirtyInput.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	runCtx, span := e.Tracer.Start(ctx, "engine.run")
	defer span.End()

	// Phase 1: ingest.
	ingestCtx, ingestSpan := e.Tracer.Start(runCtx, "ingest")
	loadOpts := []ingest.Option{ingest.WithLogger(e.Logger)}
	if e.config.Strict {
		loadOpts = append(loadOpts, ingest.WithStrict())
	}
	store, stats, err := ingest.Load(ingestCtx, e.config.InputPath, loadOpts...)
	ingestSpan.End()
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	span.SetAttributes(
		attribute.Int("graph.nodes", store.NodeCount()),
		attribute.Int("graph.edges", store.EdgeCount()),
	)
	e.Logger.Info("snapshot loaded",
		"nodes", store.NodeCount(),
		"edges", store.EdgeCount(),
		"elapsed", stats.Elapsed,
	)

	summary := &Summary{
		NodeCount: store.NodeCount(),
		EdgeCount: store.EdgeCount(),
		Ingest:    *stats,
	}
	summary.Phases.Ingest = stats.Elapsed

	// Phase 2: analyses. Each one reads the store independently; their
	// results do not depend on each other or on run order.
	_, degSpan := e.Tracer.Start(runCtx, "degree")
	begin := time.Now()
	summary.Degree = analysis.DegreeHistogram(store)
	summary.Phases.Degree = time.Since(begin)
	degSpan.End()
	e.Logger.Debug("degree histogram done", "buckets", len(summary.Degree))

	_, sdSpan := e.Tracer.Start(runCtx, "second_degree")
	begin = time.Now()
	summary.SecondDegree = analysis.SecondDegreeHistogram(store)
	summary.Phases.SecondDegree = time.Since(begin)
	sdSpan.End()
	e.Logger.Debug("second-degree histogram done", "buckets", len(summary.SecondDegree))

	_, centSpan := e.Tracer.Start(runCtx, "centrality")
	begin = time.Now()
	summary.Centrality = analysis.ClosenessCentrality(store)
	summary.Phases.Centrality = time.Since(begin)
	centSpan.End()
	e.Logger.Debug("closeness centrality done", "sources", len(summary.Centrality))

	if stats.Malformed > 0 {
		return summary, fmt.Errorf("%w: %d lines skipped", ErrDirtyInput, stats.Malformed)
	}
	return summary, nil
}

// Close flushes telemetry.
func (e *Engine) Close(ctx context.Context) error {
	if e.shutdown == nil {
		return nil
	}
	return e.shutdown(ctx)
}
