package analysis

import "github.com/graphgauge/graphgauge/pkg/graph"

// SecondDegreeHistogram buckets every node by its count of distinct
// nodes reachable in exactly two directed hops. A target reachable
// through several first-hop paths counts once per source; a source
// sitting on a 2-cycle counts itself. Zero out-degree sources land in
// bucket 0.
//
// Worst case O(nodes * avgDegree^2) — acceptable for snapshot-sized
// graphs, this is a descriptive tool, not one meant to scale forever.
func SecondDegreeHistogram(st graph.Store) Histogram {
	n := st.NodeCount()
	h := make(Histogram)

	// Visited markers are epoch-stamped: a slot is visited for the
	// current source only when it carries the source's generation, so
	// one buffer serves every source without per-source clearing.
	// The marker state is local to this sweep and never shared.
	stamp := make([]uint32, n)
	var epoch uint32

	for src := 0; src < n; src++ {
		epoch++
		seen := 0
		for _, first := range st.OutNeighbors(graph.NodeID(src)) {
			for _, second := range st.OutNeighbors(first) {
				if stamp[second] != epoch {
					stamp[second] = epoch
					seen++
				}
			}
		}
		h[seen]++
	}
	return h
}
