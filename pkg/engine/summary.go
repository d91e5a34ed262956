package engine

import (
	"time"

	"github.com/graphgauge/graphgauge/pkg/analysis"
	"github.com/graphgauge/graphgauge/pkg/ingest"
)

// PhaseDurations records wall time per run phase.
type PhaseDurations struct {
	Ingest       time.Duration
	Degree       time.Duration
	SecondDegree time.Duration
	Centrality   time.Duration
}

// Summary is the renderable result of one run. Every consumer
// (console report, exports, TUI) reads from this one structure.
type Summary struct {
	NodeCount int
	EdgeCount int

	// Degree maps out-degree to node count.
	Degree analysis.Histogram

	// SecondDegree maps distinct two-hop neighbor count to node count.
	SecondDegree analysis.Histogram

	// Centrality holds approximate closeness scores for the first
	// min(NodeCount, analysis.CentralitySourceCap) nodes, indexed by
	// enumeration position in store order.
	Centrality []float64

	Ingest ingest.Stats
	Phases PhaseDurations
}
