// Package ingest reads a directed edge list from a text snapshot and
// builds the graph store the analyzers run over.
//
// Line grammar: a line starting with '#' is a comment; a line with
// exactly two whitespace-separated non-negative integers "from to" is
// one directed edge; any other token count is silently skipped.
//
// Malformed integer tokens are skipped with a diagnostic by default.
// The reference behavior of aborting the whole run on the first bad
// token is available behind WithStrict; the lenient default is the
// deliberate policy choice here (see DESIGN.md).
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/graphgauge/graphgauge/pkg/graph"
)

// ErrMalformedToken indicates an edge line whose token failed integer
// parsing. Returned only in strict mode; the lenient default skips the
// line and counts it in Stats.Malformed.
var ErrMalformedToken = errors.New("ingest: malformed integer token")

// Stats summarizes one ingestion run.
type Stats struct {
	Lines     int           // total lines read
	Comments  int           // '#' lines
	Skipped   int           // wrong token count, silently dropped
	Malformed int           // integer parse failures (lenient mode)
	Edges     int           // edges inserted
	Elapsed   time.Duration // wall time for read + build
}

// Options control loader behavior.
type Options struct {
	strict bool
	logger *slog.Logger
}

// Option is a functional override for Load.
type Option func(*Options)

// WithStrict aborts ingestion on the first malformed integer token,
// matching the reference behavior instead of the lenient default.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithLogger sets the diagnostic logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

type edgePair struct {
	from, to graph.NodeID
}

// Load reads the edge list at path and builds a MemoryStore.
//
// Construction is two-phase: edges are buffered while tracking the
// maximum node index, the store is sized once, then edges are
// inserted. This matches the results of lazy growth-by-max-index
// without incremental resizing. Both endpoints of a pair are
// materialized as nodes, so node count is always 1 + the highest
// index seen.
func Load(ctx context.Context, path string, opts ...Option) (*graph.MemoryStore, *Stats, error) {
	o := Options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: open snapshot: %w", err)
	}
	defer f.Close()

	stats := &Stats{}
	edges := make([]edgePair, 0, 1024)
	maxIdx := -1

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		stats.Lines++

		// Cancellation check, amortized over the hot loop.
		if stats.Lines%4096 == 0 {
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			default:
			}
		}

		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			stats.Comments++
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) != 2 {
			stats.Skipped++
			continue
		}

		from, err := strconv.ParseUint(tokens[0], 10, 32)
		if err == nil {
			var to uint64
			to, err = strconv.ParseUint(tokens[1], 10, 32)
			if err == nil {
				if int(from) > maxIdx {
					maxIdx = int(from)
				}
				if int(to) > maxIdx {
					maxIdx = int(to)
				}
				edges = append(edges, edgePair{graph.NodeID(from), graph.NodeID(to)})
				continue
			}
		}

		if o.strict {
			return nil, nil, fmt.Errorf("ingest: line %d: %w: %v", stats.Lines, ErrMalformedToken, err)
		}
		stats.Malformed++
		o.logger.Warn("skipping malformed edge line",
			"line", stats.Lines,
			"error", err,
		)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("ingest: read snapshot: %w", err)
	}

	st := graph.NewMemoryStore(maxIdx + 1)
	st.Grow(maxIdx + 1)
	for _, e := range edges {
		st.AddEdge(e.from, e.to)
	}

	stats.Edges = st.EdgeCount()
	stats.Elapsed = time.Since(start)
	return st, stats, nil
}
