package graph

// MemoryStore is an index-based in-memory graph store.
//
// Adjacency is a slice of out-edge target lists, so neighbor lookup is
// a single index operation. Parallel edges are kept as-is (multigraph
// semantics): adding the same edge twice makes the target appear twice
// in the source's neighbor list and contributes two to its out-degree.
type MemoryStore struct {
	out       [][]NodeID
	edgeCount int
}

// NewMemoryStore returns an empty store. sizeHint pre-sizes the node
// table; pass 0 when the final node count is unknown.
func NewMemoryStore(sizeHint int) *MemoryStore {
	return &MemoryStore{out: make([][]NodeID, 0, sizeHint)}
}

// AddNode appends a node and returns its ID.
func (s *MemoryStore) AddNode() NodeID {
	idx := NodeID(len(s.out))
	s.out = append(s.out, nil)
	return idx
}

// Grow appends nodes until the store holds n of them. It is the bulk
// form of AddNode used by two-phase construction: size the node table
// from the maximum index seen, then insert edges.
func (s *MemoryStore) Grow(n int) {
	for len(s.out) < n {
		s.out = append(s.out, nil)
	}
}

// AddEdge inserts a directed edge. Both endpoints must already exist;
// construction order guarantees that, so an out-of-range endpoint is a
// programmer error and the edge is dropped.
func (s *MemoryStore) AddEdge(from, to NodeID) {
	if int(from) >= len(s.out) || int(to) >= len(s.out) {
		return
	}
	s.out[from] = append(s.out[from], to)
	s.edgeCount++
}

// NodeCount returns the number of nodes.
func (s *MemoryStore) NodeCount() int {
	return len(s.out)
}

// EdgeCount returns the number of edges, parallel edges counted
// individually.
func (s *MemoryStore) EdgeCount() int {
	return s.edgeCount
}

// Nodes returns all node IDs in creation order.
func (s *MemoryStore) Nodes() []NodeID {
	ids := make([]NodeID, len(s.out))
	for i := range ids {
		ids[i] = NodeID(i)
	}
	return ids
}

// OutNeighbors returns the successors of n in insertion order, or nil
// for an out-of-range ID.
func (s *MemoryStore) OutNeighbors(n NodeID) []NodeID {
	if int(n) >= len(s.out) {
		return nil
	}
	return s.out[n]
}
