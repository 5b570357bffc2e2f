package algo

import (
	"context"
	"slices"
	"testing"

	"github.com/san-kum/algoviz/internal/anim"
)

func intp(v int) *int { return &v }

func TestBinarySearchExample(t *testing.T) {
	rec := trace(t, BinarySearch{}, anim.Input{Data: []int{1, 3, 5, 8}, Target: intp(5)})
	last, _ := rec.Last()

	if last.Outcome != anim.OutcomeFound {
		t.Fatalf("expected found outcome, got %v", last.Outcome)
	}
	if last.Colors[2] != anim.RoleFound || !slices.Equal(last.Highlight, []int{2}) {
		t.Errorf("found frame should highlight index 2, got %v %v", last.Highlight, last.Colors)
	}
	if rec.Stats.Comparisons > 3 {
		t.Errorf("expected at most 3 midpoint checks, got %d", rec.Stats.Comparisons)
	}
}

func TestBinarySearchSortsFirst(t *testing.T) {
	rec := trace(t, BinarySearch{}, anim.Input{Data: []int{8, 1, 5, 3}, Target: intp(8)})
	if !slices.Equal(rec.Frames[0].Values, []int{1, 3, 5, 8}) {
		t.Errorf("first frame should be the sorted data, got %v", rec.Frames[0].Values)
	}
	last, _ := rec.Last()
	if last.Outcome != anim.OutcomeFound || last.Colors[3] != anim.RoleFound {
		t.Errorf("expected 8 found at index 3, got %v %v", last.Outcome, last.Colors)
	}
}

func TestBinarySearchMidpointFrames(t *testing.T) {
	rec := trace(t, BinarySearch{}, anim.Input{Data: []int{1, 3, 5, 8}, Target: intp(5)})
	check := rec.Frames[1]
	if check.Colors[1] != anim.RoleMid {
		t.Errorf("first midpoint should be index 1, colors = %v", check.Colors)
	}
	if check.Colors[0] != anim.RoleRange || check.Colors[3] != anim.RoleRange {
		t.Errorf("whole range should be highlighted, colors = %v", check.Colors)
	}
}

func TestSearchNotFound(t *testing.T) {
	for _, a := range []Algorithm{BinarySearch{}, LinearSearch{}} {
		rec := trace(t, a, anim.Input{Data: []int{1, 3, 5, 8}, Target: intp(4)})
		last, _ := rec.Last()
		if last.Outcome != anim.OutcomeNotFound {
			t.Errorf("%s: expected not-found outcome, got %v", a.Name(), last.Outcome)
		}
	}
}

func TestLinearSearch(t *testing.T) {
	rec := trace(t, LinearSearch{}, anim.Input{Data: []int{4, 2, 7, 2}, Target: intp(2)})
	last, _ := rec.Last()

	if last.Outcome != anim.OutcomeFound || last.Colors[1] != anim.RoleFound {
		t.Errorf("expected first match at index 1, got %v %v", last.Outcome, last.Colors)
	}
	if rec.Stats.Comparisons != 2 {
		t.Errorf("expected 2 checks, got %d", rec.Stats.Comparisons)
	}
	if rec.Frames[0].Colors[0] != anim.RoleCompare {
		t.Errorf("scanning frames use compare color, got %v", rec.Frames[0].Colors)
	}
}

func TestSearchRequiresTarget(t *testing.T) {
	for _, a := range []Algorithm{BinarySearch{}, LinearSearch{}} {
		rec := NewRecorder(context.Background(), a.Name(), 0)
		if err := a.Run(anim.Input{Data: []int{1}}, rec); err == nil {
			t.Errorf("%s: expected error without target", a.Name())
		}
		if !IsSearch(a) {
			t.Errorf("%s should report itself as a search", a.Name())
		}
	}
	if IsSearch(BubbleSort{}) {
		t.Error("bubble sort is not a search")
	}
}
