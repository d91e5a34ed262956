package analysis

import "github.com/graphgauge/graphgauge/pkg/graph"

// Unreachable marks a node with no directed path from the sweep source.
const Unreachable = int32(-1)

// ShortestDistances runs an unweighted breadth-first sweep from src
// over forward edges only, writing hop distances into dist. Every slot
// is reset first: unreachable nodes end up Unreachable, the source
// itself 0. dist must be at least st.NodeCount() long; the caller owns
// the buffer so repeated sweeps can reuse it.
//
// All edges cost 1, so BFS order is the priority order a Dijkstra
// sweep would produce, at O(nodes + edges) per call.
func ShortestDistances(st graph.Store, src graph.NodeID, dist []int32) {
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0

	queue := make([]graph.NodeID, 1, 64)
	queue[0] = src

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		next := dist[cur] + 1
		for _, nbr := range st.OutNeighbors(cur) {
			if dist[nbr] == Unreachable {
				dist[nbr] = next
				queue = append(queue, nbr)
			}
		}
	}
}
