package algo

import (
	"fmt"
	"sort"

	"github.com/san-kum/algoviz/internal/anim"
)

type Registry struct {
	algorithms map[string]func() Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func() Algorithm),
	}

	r.Register(func() Algorithm { return BubbleSort{} })
	r.Register(func() Algorithm { return InsertionSort{} })
	r.Register(func() Algorithm { return QuickSort{} })
	r.Register(func() Algorithm { return MergeSort{} })
	r.Register(func() Algorithm { return BinarySearch{} })
	r.Register(func() Algorithm { return LinearSearch{} })
	r.Register(func() Algorithm { return BFS{} })
	r.Register(func() Algorithm { return DFS{} })
	r.Register(func() Algorithm { return Dijkstra{} })
	r.Register(func() Algorithm { return Stack{} })
	r.Register(func() Algorithm { return Queue{} })
	r.Register(func() Algorithm { return TreeInorder{} })

	return r
}

// Register adds or replaces a generator under its own name.
func (r *Registry) Register(fn func() Algorithm) {
	r.algorithms[fn().Name()] = fn
}

func (r *Registry) Get(name string) (Algorithm, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", anim.ErrUnknownAlgorithm, name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSearch reports whether the named generator reads Input.Target.
func IsSearch(a Algorithm) bool {
	s, ok := a.(Searcher)
	return ok && s.Searches()
}
