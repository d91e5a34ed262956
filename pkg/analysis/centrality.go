package analysis

import "github.com/graphgauge/graphgauge/pkg/graph"

// CentralitySourceCap bounds the closeness sweep to a prefix of the
// store's nodes. Beyond this many single-source sweeps the estimate
// costs more than it tells on snapshot-sized graphs.
const CentralitySourceCap = 1000

// ClosenessCentrality scores the first min(NodeCount, CentralitySourceCap)
// nodes in store order by inverse total shortest-path distance:
// 1 / sum(dist to every reachable node), or 0 when the node reaches
// nothing but itself. Unreachable nodes contribute nothing to the sum.
//
// The result is indexed by enumeration position in store iteration
// order, not by the node's original input index.
func ClosenessCentrality(st graph.Store) []float64 {
	n := st.NodeCount()
	sources := n
	if sources > CentralitySourceCap {
		sources = CentralitySourceCap
	}

	scores := make([]float64, sources)
	dist := make([]int32, n)

	for i := 0; i < sources; i++ {
		ShortestDistances(st, graph.NodeID(i), dist)

		var sum int64
		for _, d := range dist {
			if d > 0 {
				sum += int64(d)
			}
		}
		if sum > 0 {
			scores[i] = 1 / float64(sum)
		}
	}
	return scores
}
