package anim

import (
	"maps"
	"slices"
)

// RunState is the lifecycle position of the current run.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
	Completed
	Cancelled
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Active reports whether a generator is in flight for this state.
func (s RunState) Active() bool {
	return s == Running || s == Paused
}

// Stats holds the counters shown next to the animation. Operations means
// swaps for sorts, placements for merge sort, visits for traversals and
// pushes/pops for linear structures.
type Stats struct {
	Comparisons int `json:"comparisons"`
	Operations  int `json:"operations"`
}

// Kind selects the structure shape a frame carries and the renderer variant.
type Kind int

const (
	KindBars Kind = iota
	KindGraph
	KindStack
	KindQueue
	KindTree
)

func (k Kind) String() string {
	switch k {
	case KindBars:
		return "bars"
	case KindGraph:
		return "graph"
	case KindStack:
		return "stack"
	case KindQueue:
		return "queue"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Role is a semantic color. Themes map roles to concrete colors.
type Role int

const (
	RoleDefault Role = iota
	RoleCompare
	RoleSwap
	RolePivot
	RoleRange
	RoleMid
	RoleFound
	RoleVisited
	RoleActive
	RoleSorted
)

var roleNames = [...]string{"default", "compare", "swap", "pivot", "range", "mid", "found", "visited", "active", "sorted"}

func (r Role) String() string {
	if int(r) < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// Outcome marks terminal search frames.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeFound
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not-found"
	default:
		return "none"
	}
}

// Node is a vertex of a demonstration graph. X and Y are layout coordinates
// in the unit square.
type Node struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Edge is an undirected weighted edge.
type Edge struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

// Same reports whether e and o join the same pair of nodes.
func (e Edge) Same(o Edge) bool {
	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// GraphView is the graph part of a frame. Dist is only set by shortest-path
// generators; unreachable entries hold -1.
type GraphView struct {
	Nodes     []Node `json:"nodes"`
	Edges     []Edge `json:"edges"`
	Visited   []int  `json:"visited"`
	Traversed []Edge `json:"traversed"`
	Dist      []int  `json:"dist,omitempty"`
}

// TreeNode is a flattened binary tree node. Left and Right are indices into
// TreeView.Nodes, -1 when absent.
type TreeNode struct {
	Value int `json:"value"`
	Left  int `json:"left"`
	Right int `json:"right"`
}

// TreeView is the tree part of a frame.
type TreeView struct {
	Nodes   []TreeNode `json:"nodes"`
	Root    int        `json:"root"`
	Visited []int      `json:"visited"`
	Current int        `json:"current"`
}

// Frame is one renderable snapshot.
type Frame struct {
	Seq       int          `json:"seq"`
	Algorithm string       `json:"algorithm"`
	Kind      Kind         `json:"kind"`
	Values    []int        `json:"values,omitempty"`
	Graph     *GraphView   `json:"graph,omitempty"`
	Tree      *TreeView    `json:"tree,omitempty"`
	Highlight []int        `json:"highlight,omitempty"`
	Colors    map[int]Role `json:"colors,omitempty"`
	Outcome   Outcome      `json:"outcome"`
	Label     string       `json:"label,omitempty"`
	Stats     Stats        `json:"stats"`
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	c := f
	c.Values = slices.Clone(f.Values)
	c.Highlight = slices.Clone(f.Highlight)
	c.Colors = maps.Clone(f.Colors)
	if f.Graph != nil {
		g := *f.Graph
		g.Nodes = slices.Clone(f.Graph.Nodes)
		g.Edges = slices.Clone(f.Graph.Edges)
		g.Visited = slices.Clone(f.Graph.Visited)
		g.Traversed = slices.Clone(f.Graph.Traversed)
		g.Dist = slices.Clone(f.Graph.Dist)
		c.Graph = &g
	}
	if f.Tree != nil {
		t := *f.Tree
		t.Nodes = slices.Clone(f.Tree.Nodes)
		t.Visited = slices.Clone(f.Tree.Visited)
		c.Tree = &t
	}
	return c
}

// RoleOf resolves the color role of element i: explicit overrides first,
// then the highlight set, then the default.
func (f Frame) RoleOf(i int) Role {
	if r, ok := f.Colors[i]; ok {
		return r
	}
	if slices.Contains(f.Highlight, i) {
		return RoleCompare
	}
	return RoleDefault
}

// MarshalText makes the enums read as words in JSON.
func (s RunState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (k Kind) MarshalText() ([]byte, error)     { return []byte(k.String()), nil }
func (r Role) MarshalText() ([]byte, error)     { return []byte(r.String()), nil }
func (o Outcome) MarshalText() ([]byte, error)  { return []byte(o.String()), nil }
