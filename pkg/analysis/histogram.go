// Package analysis computes descriptive statistics over an immutable
// graph.Store: out-degree distribution, second-degree (two-hop)
// distribution, and bounded approximate closeness centrality.
//
// Every analyzer is read-only and deterministic: running one twice on
// the same store yields identical results.
package analysis

// Histogram maps a bucket value to the number of nodes in that bucket.
// Keys are unordered but unique.
type Histogram map[int]int

// Total returns the sum of all bucket counts. For the analyzers in
// this package it always equals the store's node count.
func (h Histogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}
