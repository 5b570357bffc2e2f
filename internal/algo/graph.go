package algo

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/anim"
)

type neighbor struct {
	to, weight int
}

// Graph is a small undirected weighted graph with layout coordinates.
type Graph struct {
	Nodes []anim.Node
	Edges []anim.Edge
	adj   [][]neighbor
}

// NewGraph builds adjacency lists sorted by neighbour id so traversal order
// is deterministic.
func NewGraph(nodes []anim.Node, edges []anim.Edge) *Graph {
	g := &Graph{Nodes: nodes, Edges: edges, adj: make([][]neighbor, len(nodes))}
	for _, e := range edges {
		g.adj[e.From] = append(g.adj[e.From], neighbor{e.To, e.Weight})
		g.adj[e.To] = append(g.adj[e.To], neighbor{e.From, e.Weight})
	}
	for i := range g.adj {
		slices.SortFunc(g.adj[i], func(a, b neighbor) int { return a.to - b.to })
	}
	return g
}

// DemoGraph is the fixed graph every traversal runs on.
func DemoGraph() *Graph {
	return NewGraph(
		[]anim.Node{
			{ID: 0, Label: "A", X: 0.10, Y: 0.50},
			{ID: 1, Label: "B", X: 0.35, Y: 0.15},
			{ID: 2, Label: "C", X: 0.35, Y: 0.85},
			{ID: 3, Label: "D", X: 0.65, Y: 0.15},
			{ID: 4, Label: "E", X: 0.65, Y: 0.85},
			{ID: 5, Label: "F", X: 0.90, Y: 0.50},
		},
		[]anim.Edge{
			{From: 0, To: 1, Weight: 4},
			{From: 0, To: 2, Weight: 2},
			{From: 1, To: 2, Weight: 1},
			{From: 1, To: 3, Weight: 5},
			{From: 2, To: 3, Weight: 8},
			{From: 2, To: 4, Weight: 10},
			{From: 3, To: 4, Weight: 2},
			{From: 3, To: 5, Weight: 6},
			{From: 4, To: 5, Weight: 2},
		},
	)
}

func (g *Graph) frame(label string, visited []int, traversed []anim.Edge, dist []int, current int) anim.Frame {
	f := anim.Frame{
		Kind:  anim.KindGraph,
		Label: label,
		Graph: &anim.GraphView{
			Nodes:     slices.Clone(g.Nodes),
			Edges:     slices.Clone(g.Edges),
			Visited:   slices.Clone(visited),
			Traversed: slices.Clone(traversed),
			Dist:      slices.Clone(dist),
		},
		Colors: make(map[int]anim.Role, len(visited)+1),
	}
	for _, v := range visited {
		f.Colors[v] = anim.RoleVisited
	}
	if current >= 0 {
		f.Colors[current] = anim.RoleActive
		f.Highlight = []int{current}
	}
	return f
}

func (g *Graph) edge(from, to int) anim.Edge {
	for _, n := range g.adj[from] {
		if n.to == to {
			return anim.Edge{From: from, To: to, Weight: n.weight}
		}
	}
	return anim.Edge{From: from, To: to}
}

// BFS visits the demo graph breadth first from node A.
type BFS struct{}

func (BFS) Name() string    { return "bfs" }
func (BFS) Kind() anim.Kind { return anim.KindGraph }

func (BFS) Run(_ anim.Input, s Steps) error {
	g := DemoGraph()
	parent := make([]int, len(g.Nodes))
	seen := make([]bool, len(g.Nodes))
	for i := range parent {
		parent[i] = -1
	}

	var visited []int
	var traversed []anim.Edge
	queue := []int{0}
	seen[0] = true

	for len(queue) > 0 {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		u := queue[0]
		queue = queue[1:]
		visited = append(visited, u)
		if parent[u] >= 0 {
			traversed = append(traversed, g.edge(parent[u], u))
		}
		s.Operate()
		if err := s.Emit(g.frame("visit "+g.Nodes[u].Label, visited, traversed, nil, u)); err != nil {
			return err
		}
		for _, n := range g.adj[u] {
			if err := s.Checkpoint(); err != nil {
				return err
			}
			s.Compare()
			if !seen[n.to] {
				seen[n.to] = true
				parent[n.to] = u
				queue = append(queue, n.to)
			}
		}
	}
	return s.Emit(g.frame("done", visited, traversed, nil, -1))
}

// DFS visits the demo graph depth first from node A.
type DFS struct{}

func (DFS) Name() string    { return "dfs" }
func (DFS) Kind() anim.Kind { return anim.KindGraph }

func (DFS) Run(_ anim.Input, s Steps) error {
	g := DemoGraph()
	w := &dfsWalk{g: g, s: s, seen: make([]bool, len(g.Nodes))}
	if err := w.visit(0, -1); err != nil {
		return err
	}
	return s.Emit(g.frame("done", w.visited, w.traversed, nil, -1))
}

type dfsWalk struct {
	g         *Graph
	s         Steps
	seen      []bool
	visited   []int
	traversed []anim.Edge
}

func (w *dfsWalk) visit(u, from int) error {
	if err := w.s.Checkpoint(); err != nil {
		return err
	}
	w.seen[u] = true
	w.visited = append(w.visited, u)
	if from >= 0 {
		w.traversed = append(w.traversed, w.g.edge(from, u))
	}
	w.s.Operate()
	if err := w.s.Emit(w.g.frame("visit "+w.g.Nodes[u].Label, w.visited, w.traversed, nil, u)); err != nil {
		return err
	}
	for _, n := range w.g.adj[u] {
		if err := w.s.Checkpoint(); err != nil {
			return err
		}
		w.s.Compare()
		if !w.seen[n.to] {
			if err := w.visit(n.to, u); err != nil {
				return err
			}
		}
	}
	return nil
}

// Dijkstra computes shortest distances from node A with a linear minimum
// scan over unfinalised nodes. The demo graph is tiny so O(V²) is fine.
type Dijkstra struct{}

func (Dijkstra) Name() string    { return "dijkstra" }
func (Dijkstra) Kind() anim.Kind { return anim.KindGraph }

func (Dijkstra) Run(_ anim.Input, s Steps) error {
	g := DemoGraph()
	n := len(g.Nodes)
	dist := make([]int, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i], prev[i] = -1, -1
	}
	dist[0] = 0

	var finalized []int
	var traversed []anim.Edge
	for range n {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		u := -1
		for v := 0; v < n; v++ {
			if done[v] || dist[v] < 0 {
				continue
			}
			s.Compare()
			if u < 0 || dist[v] < dist[u] {
				u = v
			}
		}
		if u < 0 {
			break
		}
		done[u] = true
		finalized = append(finalized, u)
		if prev[u] >= 0 {
			traversed = append(traversed, g.edge(prev[u], u))
		}
		s.Operate()
		label := fmt.Sprintf("finalize %s at distance %d", g.Nodes[u].Label, dist[u])
		if err := s.Emit(g.frame(label, finalized, traversed, dist, u)); err != nil {
			return err
		}

		for _, nb := range g.adj[u] {
			if err := s.Checkpoint(); err != nil {
				return err
			}
			if done[nb.to] {
				continue
			}
			s.Compare()
			if alt := dist[u] + nb.weight; dist[nb.to] < 0 || alt < dist[nb.to] {
				dist[nb.to] = alt
				prev[nb.to] = u
			}
		}
	}
	return s.Emit(g.frame("shortest paths from A", finalized, traversed, dist, -1))
}
