package algo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/anim"
)

var errNoTarget = errors.New("algo: search needs a target")

// BinarySearch sorts its input ascending, then halves the search range.
type BinarySearch struct{}

func (BinarySearch) Name() string    { return "binary-search" }
func (BinarySearch) Kind() anim.Kind { return anim.KindBars }
func (BinarySearch) Searches() bool  { return true }

func (BinarySearch) Run(in anim.Input, s Steps) error {
	if in.Target == nil {
		return errNoTarget
	}
	target := *in.Target
	data := slices.Clone(in.Data)
	slices.Sort(data)
	if err := s.Emit(barFrame(data, fmt.Sprintf("sorted, searching for %d", target), nil)); err != nil {
		return err
	}

	low, high := 0, len(data)-1
	for low <= high {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		mid := low + (high-low)/2
		s.Compare()
		colors := make(roles, high-low+1)
		for i := low; i <= high; i++ {
			colors[i] = anim.RoleRange
		}
		colors[mid] = anim.RoleMid
		label := fmt.Sprintf("check index %d (%d)", mid, data[mid])
		if err := s.Emit(barFrame(data, label, colors)); err != nil {
			return err
		}

		switch {
		case data[mid] == target:
			f := barFrame(data, fmt.Sprintf("found %d at index %d", target, mid), roles{mid: anim.RoleFound})
			f.Outcome = anim.OutcomeFound
			return s.Emit(f)
		case data[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	f := barFrame(data, fmt.Sprintf("%d not found", target), nil)
	f.Outcome = anim.OutcomeNotFound
	return s.Emit(f)
}

// LinearSearch scans left to right and stops at the first match.
type LinearSearch struct{}

func (LinearSearch) Name() string    { return "linear-search" }
func (LinearSearch) Kind() anim.Kind { return anim.KindBars }
func (LinearSearch) Searches() bool  { return true }

func (LinearSearch) Run(in anim.Input, s Steps) error {
	if in.Target == nil {
		return errNoTarget
	}
	target := *in.Target
	data := slices.Clone(in.Data)

	for i, v := range data {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		s.Compare()
		if err := s.Emit(barFrame(data, fmt.Sprintf("check index %d (%d)", i, v), roles{i: anim.RoleCompare})); err != nil {
			return err
		}
		if v == target {
			f := barFrame(data, fmt.Sprintf("found %d at index %d", target, i), roles{i: anim.RoleFound})
			f.Outcome = anim.OutcomeFound
			return s.Emit(f)
		}
	}

	f := barFrame(data, fmt.Sprintf("%d not found", target), nil)
	f.Outcome = anim.OutcomeNotFound
	return s.Emit(f)
}
