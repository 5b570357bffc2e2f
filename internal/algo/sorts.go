package algo

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/anim"
)

type BubbleSort struct{}

func (BubbleSort) Name() string    { return "bubble-sort" }
func (BubbleSort) Kind() anim.Kind { return anim.KindBars }

func (BubbleSort) Run(in anim.Input, s Steps) error {
	data := slices.Clone(in.Data)
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if err := s.Checkpoint(); err != nil {
				return err
			}
			s.Compare()
			label := fmt.Sprintf("compare %d and %d", data[j], data[j+1])
			if err := s.Emit(barFrame(data, label, roles{j: anim.RoleCompare, j + 1: anim.RoleCompare})); err != nil {
				return err
			}
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				s.Operate()
				label := fmt.Sprintf("swap %d and %d", data[j+1], data[j])
				if err := s.Emit(barFrame(data, label, roles{j: anim.RoleSwap, j + 1: anim.RoleSwap})); err != nil {
					return err
				}
			}
		}
	}
	return s.Emit(sortedFrame(data))
}

type InsertionSort struct{}

func (InsertionSort) Name() string    { return "insertion-sort" }
func (InsertionSort) Kind() anim.Kind { return anim.KindBars }

// Run counts one comparison and one operation per left shift; the failing
// predecessor test that ends a pass is not counted.
func (InsertionSort) Run(in anim.Input, s Steps) error {
	data := slices.Clone(in.Data)
	for i := 1; i < len(data); i++ {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		key := data[i]
		if err := s.Emit(barFrame(data, fmt.Sprintf("insert %d", key), roles{i: anim.RoleActive})); err != nil {
			return err
		}
		j := i - 1
		for j >= 0 && data[j] > key {
			if err := s.Checkpoint(); err != nil {
				return err
			}
			s.Compare()
			data[j+1] = data[j]
			s.Operate()
			j--
			label := fmt.Sprintf("shift %d right", data[j+1])
			if err := s.Emit(barFrame(data, label, roles{j + 1: anim.RoleCompare, j + 2: anim.RoleSwap})); err != nil {
				return err
			}
		}
		data[j+1] = key
		if err := s.Emit(barFrame(data, fmt.Sprintf("place %d", key), roles{j + 1: anim.RoleFound})); err != nil {
			return err
		}
	}
	return s.Emit(sortedFrame(data))
}

// QuickSort uses the Lomuto partition with the last element as pivot.
type QuickSort struct{}

func (QuickSort) Name() string    { return "quick-sort" }
func (QuickSort) Kind() anim.Kind { return anim.KindBars }

func (q QuickSort) Run(in anim.Input, s Steps) error {
	data := slices.Clone(in.Data)
	if err := q.sort(data, 0, len(data)-1, s); err != nil {
		return err
	}
	return s.Emit(sortedFrame(data))
}

func (q QuickSort) sort(data []int, low, high int, s Steps) error {
	if err := s.Checkpoint(); err != nil {
		return err
	}
	if low >= high {
		return nil
	}
	pi, err := q.partition(data, low, high, s)
	if err != nil {
		return err
	}
	if err := q.sort(data, low, pi-1, s); err != nil {
		return err
	}
	return q.sort(data, pi+1, high, s)
}

func (QuickSort) partition(data []int, low, high int, s Steps) (int, error) {
	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		if err := s.Checkpoint(); err != nil {
			return 0, err
		}
		s.Compare()
		label := fmt.Sprintf("compare %d with pivot %d", data[j], pivot)
		if err := s.Emit(barFrame(data, label, roles{j: anim.RoleCompare, high: anim.RolePivot})); err != nil {
			return 0, err
		}
		if data[j] < pivot {
			i++
			data[i], data[j] = data[j], data[i]
			s.Operate()
			label := fmt.Sprintf("swap %d and %d", data[j], data[i])
			if err := s.Emit(barFrame(data, label, roles{i: anim.RoleSwap, j: anim.RoleSwap, high: anim.RolePivot})); err != nil {
				return 0, err
			}
		}
	}
	data[i+1], data[high] = data[high], data[i+1]
	s.Operate()
	label := fmt.Sprintf("pivot %d in place", pivot)
	if err := s.Emit(barFrame(data, label, roles{i + 1: anim.RolePivot})); err != nil {
		return 0, err
	}
	return i + 1, nil
}

type MergeSort struct{}

func (MergeSort) Name() string    { return "merge-sort" }
func (MergeSort) Kind() anim.Kind { return anim.KindBars }

func (m MergeSort) Run(in anim.Input, s Steps) error {
	data := slices.Clone(in.Data)
	if err := m.sort(data, 0, len(data)-1, s); err != nil {
		return err
	}
	return s.Emit(sortedFrame(data))
}

func (m MergeSort) sort(data []int, left, right int, s Steps) error {
	if err := s.Checkpoint(); err != nil {
		return err
	}
	if left >= right {
		return nil
	}
	mid := left + (right-left)/2
	if err := m.sort(data, left, mid, s); err != nil {
		return err
	}
	if err := m.sort(data, mid+1, right, s); err != nil {
		return err
	}
	return m.merge(data, left, mid, right, s)
}

func (MergeSort) merge(data []int, left, mid, right int, s Steps) error {
	lo := slices.Clone(data[left : mid+1])
	hi := slices.Clone(data[mid+1 : right+1])

	span := func(k int) roles {
		r := make(roles, right-left+1)
		for x := left; x <= right; x++ {
			r[x] = anim.RoleRange
		}
		r[k] = anim.RoleSwap
		return r
	}

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		s.Compare()
		if lo[i] <= hi[j] {
			data[k] = lo[i]
			i++
		} else {
			data[k] = hi[j]
			j++
		}
		s.Operate()
		if err := s.Emit(barFrame(data, fmt.Sprintf("merge [%d..%d] place %d", left, right, data[k]), span(k))); err != nil {
			return err
		}
		k++
	}
	for ; i < len(lo); i, k = i+1, k+1 {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		data[k] = lo[i]
		s.Operate()
		if err := s.Emit(barFrame(data, fmt.Sprintf("merge [%d..%d] place %d", left, right, data[k]), span(k))); err != nil {
			return err
		}
	}
	for ; j < len(hi); j, k = j+1, k+1 {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		data[k] = hi[j]
		s.Operate()
		if err := s.Emit(barFrame(data, fmt.Sprintf("merge [%d..%d] place %d", left, right, data[k]), span(k))); err != nil {
			return err
		}
	}
	return nil
}
