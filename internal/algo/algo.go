// Package algo implements the step generators: one per algorithm, each
// walking a textbook algorithm and emitting a frame at every step worth
// looking at.
package algo

import (
	"maps"
	"slices"

	"github.com/san-kum/algoviz/internal/anim"
)

// Steps is everything a generator may do to the run it belongs to. Counters
// and run state live behind it; generators never see them directly.
//
// Checkpoint and Emit return anim.ErrCancelled once the run is cancelled and
// generators must return that error unchanged, unwinding any recursion.
type Steps interface {
	// Checkpoint blocks while the run is paused.
	Checkpoint() error
	// Emit publishes a frame, then waits one playback tick.
	Emit(f anim.Frame) error
	Compare()
	Operate()
}

// Algorithm is a step generator.
type Algorithm interface {
	Name() string
	Kind() anim.Kind
	Run(in anim.Input, s Steps) error
}

// Searcher marks generators that look for Input.Target.
type Searcher interface {
	Searches() bool
}

type roles map[int]anim.Role

func barFrame(data []int, label string, colors roles) anim.Frame {
	f := anim.Frame{
		Kind:   anim.KindBars,
		Values: slices.Clone(data),
		Label:  label,
	}
	if len(colors) > 0 {
		f.Colors = maps.Clone(colors)
		f.Highlight = slices.Sorted(maps.Keys(colors))
	}
	return f
}

func sortedFrame(data []int) anim.Frame {
	colors := make(roles, len(data))
	for i := range data {
		colors[i] = anim.RoleSorted
	}
	f := barFrame(data, "sorted", colors)
	f.Highlight = nil
	return f
}
