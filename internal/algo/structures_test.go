package algo

import (
	"slices"
	"testing"

	"github.com/san-kum/algoviz/internal/anim"
)

func TestBFS(t *testing.T) {
	rec := trace(t, BFS{}, anim.Input{})
	last, _ := rec.Last()

	if !slices.Equal(last.Graph.Visited, []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("visit order = %v", last.Graph.Visited)
	}
	want := []anim.Edge{{0, 1, 4}, {0, 2, 2}, {1, 3, 5}, {2, 4, 10}, {3, 5, 6}}
	if !slices.Equal(last.Graph.Traversed, want) {
		t.Errorf("traversed = %v, want %v", last.Graph.Traversed, want)
	}
	if rec.Stats.Operations != 6 {
		t.Errorf("expected 6 visits, got %d", rec.Stats.Operations)
	}
	// one frame per dequeued node plus the final one
	if len(rec.Frames) != 7 {
		t.Errorf("expected 7 frames, got %d", len(rec.Frames))
	}
}

func TestDFS(t *testing.T) {
	rec := trace(t, DFS{}, anim.Input{})
	last, _ := rec.Last()

	want := []anim.Edge{{0, 1, 4}, {1, 2, 1}, {2, 3, 8}, {3, 4, 2}, {4, 5, 2}}
	if !slices.Equal(last.Graph.Traversed, want) {
		t.Errorf("traversed = %v, want %v", last.Graph.Traversed, want)
	}
	if rec.Frames[1].Colors[1] != anim.RoleActive || rec.Frames[1].Colors[0] != anim.RoleVisited {
		t.Errorf("second frame should show A visited and B active, got %v", rec.Frames[1].Colors)
	}
}

func TestDijkstra(t *testing.T) {
	rec := trace(t, Dijkstra{}, anim.Input{})
	last, _ := rec.Last()

	if !slices.Equal(last.Graph.Dist, []int{0, 3, 2, 8, 10, 12}) {
		t.Errorf("distances = %v", last.Graph.Dist)
	}
	if !slices.Equal(last.Graph.Visited, []int{0, 2, 1, 3, 4, 5}) {
		t.Errorf("finalization order = %v", last.Graph.Visited)
	}
	if rec.Stats.Operations != 6 {
		t.Errorf("expected 6 finalized nodes, got %d", rec.Stats.Operations)
	}
}

func TestStack(t *testing.T) {
	rec := trace(t, Stack{}, anim.Input{})
	last, _ := rec.Last()

	if !slices.Equal(last.Values, []int{10}) {
		t.Errorf("final stack = %v", last.Values)
	}
	if rec.Stats.Operations != len(stackScript) {
		t.Errorf("operations = %d, want %d", rec.Stats.Operations, len(stackScript))
	}
	// every operation emits a pre-op frame and a post-op frame
	if len(rec.Frames) != 2*len(stackScript) {
		t.Errorf("expected %d frames, got %d", 2*len(stackScript), len(rec.Frames))
	}
	for i, f := range rec.Frames {
		if f.Kind != anim.KindStack {
			t.Errorf("frame %d has kind %v", i, f.Kind)
		}
	}
}

func TestStackPopHighlightsTopBeforeRemoval(t *testing.T) {
	rec := trace(t, Stack{}, anim.Input{})
	pre, post := rec.Frames[6], rec.Frames[7]

	if !slices.Equal(pre.Values, []int{10, 20, 30}) || pre.Colors[2] != anim.RoleSwap {
		t.Errorf("pre-pop frame = %v %v", pre.Values, pre.Colors)
	}
	if !slices.Equal(post.Values, []int{10, 20}) {
		t.Errorf("post-pop frame = %v", post.Values)
	}
}

func TestLinearPushShowsStateBeforeInsert(t *testing.T) {
	tests := []struct {
		name      string
		alg       Algorithm
		first     string
		pre, post anim.Frame
	}{
		{"stack", Stack{}, "push 10", anim.Frame{Values: []int{10, 20}, Label: "push 30"}, anim.Frame{Values: []int{10, 20, 30}, Label: "pushed 30"}},
		{"queue", Queue{}, "enqueue 10", anim.Frame{Values: []int{10, 20}, Label: "enqueue 30"}, anim.Frame{Values: []int{10, 20, 30}, Label: "enqueued 30"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := trace(t, tt.alg, anim.Input{})
			if first := rec.Frames[0]; len(first.Values) != 0 || first.Label != tt.first {
				t.Errorf("first frame = %v %q, want an empty structure labelled %q", first.Values, first.Label, tt.first)
			}
			pre, post := rec.Frames[4], rec.Frames[5]
			if !slices.Equal(pre.Values, tt.pre.Values) || pre.Label != tt.pre.Label || pre.Colors[1] != anim.RoleCompare {
				t.Errorf("pre-op frame = %v %q %v", pre.Values, pre.Label, pre.Colors)
			}
			if !slices.Equal(post.Values, tt.post.Values) || post.Label != tt.post.Label || post.Colors[2] != anim.RoleActive {
				t.Errorf("post-op frame = %v %q %v", post.Values, post.Label, post.Colors)
			}
			if pre.Stats.Operations+1 != post.Stats.Operations {
				t.Errorf("operations %d -> %d, want one more after the insert", pre.Stats.Operations, post.Stats.Operations)
			}
		})
	}
}

func TestQueue(t *testing.T) {
	rec := trace(t, Queue{}, anim.Input{})
	last, _ := rec.Last()

	if !slices.Equal(last.Values, []int{30, 40}) {
		t.Errorf("final queue = %v", last.Values)
	}
	if rec.Stats.Operations != len(queueScript) {
		t.Errorf("operations = %d, want %d", rec.Stats.Operations, len(queueScript))
	}
	if len(rec.Frames) != 2*len(queueScript) {
		t.Errorf("expected %d frames, got %d", 2*len(queueScript), len(rec.Frames))
	}
}

func TestTreeInorder(t *testing.T) {
	rec := trace(t, TreeInorder{}, anim.Input{})
	last, _ := rec.Last()

	var values []int
	for _, i := range last.Tree.Visited {
		values = append(values, last.Tree.Nodes[i].Value)
	}
	if !slices.Equal(values, []int{20, 30, 40, 50, 60, 70, 80}) {
		t.Errorf("in-order values = %v", values)
	}
	if rec.Stats.Operations != 7 {
		t.Errorf("expected 7 visits, got %d", rec.Stats.Operations)
	}
	if last.Tree.Current != -1 || last.Highlight != nil {
		t.Error("final frame should not point at a node")
	}
}

func TestBuildBST(t *testing.T) {
	tree := BuildBST([]int{50, 30, 70})
	root := tree.Nodes[tree.Root]
	if root.Value != 50 {
		t.Fatalf("root = %d", root.Value)
	}
	if tree.Nodes[root.Left].Value != 30 || tree.Nodes[root.Right].Value != 70 {
		t.Errorf("children = %d, %d", tree.Nodes[root.Left].Value, tree.Nodes[root.Right].Value)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	names := reg.List()
	if len(names) != 12 {
		t.Errorf("expected 12 algorithms, got %d: %v", len(names), names)
	}
	if !slices.IsSorted(names) {
		t.Errorf("list should be sorted: %v", names)
	}
	if _, err := reg.Get("bogo-sort"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
	a, err := reg.Get("quick-sort")
	if err != nil || a.Name() != "quick-sort" {
		t.Errorf("Get(quick-sort) = %v, %v", a, err)
	}
}
