package analysis

import "github.com/graphgauge/graphgauge/pkg/graph"

// DegreeHistogram buckets every node by its out-degree. Parallel edges
// count individually, matching the multigraph store. O(nodes) time,
// O(distinct degrees) space.
func DegreeHistogram(st graph.Store) Histogram {
	h := make(Histogram)
	for _, id := range st.Nodes() {
		h[len(st.OutNeighbors(id))]++
	}
	return h
}
