package graph

import (
	"testing"
)

func TestAddNodeAssignsDenseIDs(t *testing.T) {
	s := NewMemoryStore(0)

	for want := NodeID(0); want < 5; want++ {
		if got := s.AddNode(); got != want {
			t.Fatalf("AddNode returned %d, want %d", got, want)
		}
	}
	if s.NodeCount() != 5 {
		t.Errorf("NodeCount = %d, want 5", s.NodeCount())
	}
	if s.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", s.EdgeCount())
	}
}

func TestGrowMaterializesRange(t *testing.T) {
	// Seeing node 20 implies nodes 0..20 all exist, even if most of
	// them never appear in any edge.
	s := NewMemoryStore(0)
	s.Grow(21)

	if s.NodeCount() != 21 {
		t.Fatalf("NodeCount = %d, want 21", s.NodeCount())
	}

	// Grow never shrinks.
	s.Grow(3)
	if s.NodeCount() != 21 {
		t.Errorf("NodeCount after smaller Grow = %d, want 21", s.NodeCount())
	}
}

func TestParallelEdgesAreKept(t *testing.T) {
	s := NewMemoryStore(0)
	s.Grow(2)

	s.AddEdge(0, 1)
	s.AddEdge(0, 1)

	if s.EdgeCount() != 2 {
		t.Fatalf("EdgeCount = %d, want 2 (no dedup)", s.EdgeCount())
	}
	nbrs := s.OutNeighbors(0)
	if len(nbrs) != 2 || nbrs[0] != 1 || nbrs[1] != 1 {
		t.Errorf("OutNeighbors(0) = %v, want [1 1]", nbrs)
	}
}

func TestSelfLoop(t *testing.T) {
	s := NewMemoryStore(0)
	s.Grow(1)
	s.AddEdge(0, 0)

	if s.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d, want 1", s.EdgeCount())
	}
	if nbrs := s.OutNeighbors(0); len(nbrs) != 1 || nbrs[0] != 0 {
		t.Errorf("OutNeighbors(0) = %v, want [0]", nbrs)
	}
}

func TestOutNeighborsInsertionOrder(t *testing.T) {
	s := NewMemoryStore(0)
	s.Grow(4)
	s.AddEdge(0, 3)
	s.AddEdge(0, 1)
	s.AddEdge(0, 2)

	nbrs := s.OutNeighbors(0)
	want := []NodeID{3, 1, 2}
	if len(nbrs) != len(want) {
		t.Fatalf("OutNeighbors(0) = %v, want %v", nbrs, want)
	}
	for i := range want {
		if nbrs[i] != want[i] {
			t.Fatalf("OutNeighbors(0) = %v, want %v", nbrs, want)
		}
	}
}

func TestOutOfRangeLookups(t *testing.T) {
	s := NewMemoryStore(0)
	s.Grow(1)

	if nbrs := s.OutNeighbors(7); nbrs != nil {
		t.Errorf("OutNeighbors(7) = %v, want nil", nbrs)
	}

	// Edge to a node that was never materialized is dropped.
	s.AddEdge(0, 7)
	if s.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0 after dropped edge", s.EdgeCount())
	}
}

func TestNodesCreationOrder(t *testing.T) {
	s := NewMemoryStore(0)
	s.Grow(3)

	ids := s.Nodes()
	if len(ids) != 3 {
		t.Fatalf("Nodes() returned %d IDs, want 3", len(ids))
	}
	for i, id := range ids {
		if id != NodeID(i) {
			t.Errorf("Nodes()[%d] = %d, want %d", i, id, i)
		}
	}
}
