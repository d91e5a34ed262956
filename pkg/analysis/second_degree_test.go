package analysis

import (
	"reflect"
	"testing"

	"github.com/graphgauge/graphgauge/pkg/graph"
)

func TestSecondDegreeThreeCycle(t *testing.T) {
	// 0 -> 1 -> 2 -> 0: each node's only two-hop target is the node
	// two steps ahead.
	st := buildStore([][2]graph.NodeID{{0, 1}, {1, 2}, {2, 0}})

	got := SecondDegreeHistogram(st)
	want := Histogram{1: 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SecondDegreeHistogram = %v, want %v", got, want)
	}
}

func TestSecondDegreeCountsTargetOncePerSource(t *testing.T) {
	// Diamond: 0 reaches 3 through both 1 and 2, but 3 counts once.
	st := buildStore([][2]graph.NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 3}})

	got := SecondDegreeHistogram(st)
	// 0 -> {3}, 1 -> {}, 2 -> {}, 3 -> {}.
	want := Histogram{1: 1, 0: 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SecondDegreeHistogram = %v, want %v", got, want)
	}
}

func TestSecondDegreeTwoCycleIncludesSelf(t *testing.T) {
	// 0 <-> 1: each node is its own second-hop neighbor. No
	// self-exclusion applies.
	st := buildStore([][2]graph.NodeID{{0, 1}, {1, 0}})

	got := SecondDegreeHistogram(st)
	want := Histogram{1: 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SecondDegreeHistogram = %v, want %v", got, want)
	}
}

func TestSecondDegreeZeroOutDegree(t *testing.T) {
	// Sinks contribute a count of 0.
	st := buildStore([][2]graph.NodeID{{0, 1}})

	got := SecondDegreeHistogram(st)
	want := Histogram{0: 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SecondDegreeHistogram = %v, want %v", got, want)
	}
}

func TestSecondDegreeMarkersNotSharedAcrossSources(t *testing.T) {
	// 0 -> 1 -> 2 and 3 -> 1: both 0 and 3 must independently count 2,
	// even though they traverse the same first-hop node.
	st := buildStore([][2]graph.NodeID{{0, 1}, {1, 2}, {3, 1}})

	got := SecondDegreeHistogram(st)
	// 0 -> {2}, 1 -> {}, 2 -> {}, 3 -> {2}.
	want := Histogram{1: 2, 0: 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SecondDegreeHistogram = %v, want %v", got, want)
	}
}

func TestSecondDegreeConservation(t *testing.T) {
	st := buildStore([][2]graph.NodeID{
		{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 0}, {4, 1}, {4, 4},
	})

	h := SecondDegreeHistogram(st)
	if h.Total() != st.NodeCount() {
		t.Errorf("histogram total = %d, want node count %d", h.Total(), st.NodeCount())
	}
	for bucket := range h {
		if bucket < 0 || bucket > st.NodeCount()-1 {
			t.Errorf("bucket %d out of range [0, %d]", bucket, st.NodeCount()-1)
		}
	}
}

func BenchmarkSecondDegreeHistogram(b *testing.B) {
	// Ring with chords: every node has out-degree 2.
	const n = 4096
	st := graph.NewMemoryStore(n)
	st.Grow(n)
	for i := 0; i < n; i++ {
		st.AddEdge(graph.NodeID(i), graph.NodeID((i+1)%n))
		st.AddEdge(graph.NodeID(i), graph.NodeID((i+7)%n))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SecondDegreeHistogram(st)
	}
}
