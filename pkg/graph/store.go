// Package graph holds the in-memory snapshot the analyzers run over:
// a directed multigraph addressed by dense integer node IDs.
//
// The store is write-once: the loader builds it, every analyzer reads
// it. Nothing mutates a store after construction, so reads need no
// locking.
package graph

// NodeID indexes a node within a Store. IDs are dense: a store with
// NodeCount() == n holds exactly the IDs [0, n).
type NodeID = uint32

// Store defines graph storage interface.
type Store interface {
	// Node operations.
	AddNode() NodeID
	NodeCount() int
	// Nodes returns all node IDs in creation order.
	Nodes() []NodeID

	// Edge operations.
	AddEdge(from, to NodeID)
	EdgeCount() int

	// OutNeighbors returns the direct successors of n in edge
	// insertion order. Parallel edges appear once per insertion; the
	// store performs no deduplication. The returned slice is owned by
	// the store and must not be modified.
	OutNeighbors(n NodeID) []NodeID
}
