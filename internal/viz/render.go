package viz

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/anim"
)

type Op int

const (
	OpRect Op = iota
	OpLine
	OpCircle
	OpText
)

func (o Op) String() string {
	switch o {
	case OpRect:
		return "rect"
	case OpLine:
		return "line"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCmd is one drawing primitive in viewport coordinates, origin top left.
//
//	rect    X,Y top-left corner, W,H size
//	line    X,Y to X2,Y2
//	circle  X,Y center, R radius
//	text    X,Y center of the text
type DrawCmd struct {
	Op     Op
	X, Y   float64
	X2, Y2 float64
	W, H   float64
	R      float64
	Role   anim.Role
	Fill   lipgloss.Color
	Text   string
}

type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) empty() bool { return v.Width <= 0 || v.Height <= 0 }

// Render turns a frame into drawing commands. It does not mutate the frame
// and returns the same commands for the same arguments.
func Render(f anim.Frame, t Theme, vp Viewport) []DrawCmd {
	if vp.empty() {
		return nil
	}
	switch f.Kind {
	case anim.KindGraph:
		return renderGraph(f, t, vp)
	case anim.KindStack:
		return renderStack(f, t, vp)
	case anim.KindQueue:
		return renderQueue(f, t, vp)
	case anim.KindTree:
		return renderTree(f, t, vp)
	default:
		return renderBars(f, t, vp)
	}
}

func text(x, y float64, s string, c lipgloss.Color) DrawCmd {
	return DrawCmd{Op: OpText, X: x, Y: y, Text: s, Fill: c}
}

func renderBars(f anim.Frame, t Theme, vp Viewport) []DrawCmd {
	n := len(f.Values)
	if n == 0 {
		return nil
	}
	labelH := math.Max(1, vp.Height*0.08)
	plotH := vp.Height - labelH

	lo, hi := 0, 0
	for _, v := range f.Values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}
	zeroY := float64(hi) / span * plotH

	slot := vp.Width / float64(n)
	gap := slot * 0.15
	cmds := make([]DrawCmd, 0, 2*n)
	for i, v := range f.Values {
		role := f.RoleOf(i)
		h := math.Abs(float64(v)) / span * plotH
		y := zeroY
		if v >= 0 {
			y -= h
		}
		x := float64(i)*slot + gap/2
		w := slot - gap
		cmds = append(cmds,
			DrawCmd{Op: OpRect, X: x, Y: y, W: w, H: h, Role: role, Fill: t.Color(role)},
			text(x+w/2, plotH+labelH/2, strconv.Itoa(v), t.Text),
		)
	}
	return cmds
}

const linearSlots = 6

func renderStack(f anim.Frame, t Theme, vp Viewport) []DrawCmd {
	if len(f.Values) == 0 {
		return []DrawCmd{text(vp.Width/2, vp.Height/2, "empty", t.Muted)}
	}
	slots := max(len(f.Values), linearSlots)
	cellH := vp.Height / float64(slots)
	w := vp.Width * 0.4
	x := (vp.Width - w) / 2

	var cmds []DrawCmd
	for i, v := range f.Values {
		role := f.RoleOf(i)
		y := vp.Height - float64(i+1)*cellH
		cmds = append(cmds,
			DrawCmd{Op: OpRect, X: x, Y: y + cellH*0.1, W: w, H: cellH * 0.8, Role: role, Fill: t.Color(role)},
			text(x+w/2, y+cellH/2, strconv.Itoa(v), t.Text),
		)
	}
	top := vp.Height - float64(len(f.Values))*cellH + cellH/2
	cmds = append(cmds, text(x+w+vp.Width*0.1, top, "top", t.Muted))
	return cmds
}

func renderQueue(f anim.Frame, t Theme, vp Viewport) []DrawCmd {
	if len(f.Values) == 0 {
		return []DrawCmd{text(vp.Width/2, vp.Height/2, "empty", t.Muted)}
	}
	slots := max(len(f.Values), linearSlots)
	cellW := vp.Width / float64(slots)
	h := vp.Height * 0.4
	y := (vp.Height - h) / 2

	var cmds []DrawCmd
	for i, v := range f.Values {
		role := f.RoleOf(i)
		x := float64(i) * cellW
		cmds = append(cmds,
			DrawCmd{Op: OpRect, X: x + cellW*0.1, Y: y, W: cellW * 0.8, H: h, Role: role, Fill: t.Color(role)},
			text(x+cellW/2, y+h/2, strconv.Itoa(v), t.Text),
		)
	}
	cmds = append(cmds,
		text(cellW/2, y+h+vp.Height*0.1, "front", t.Muted),
		text(float64(len(f.Values))*cellW-cellW/2, y-vp.Height*0.1, "back", t.Muted),
	)
	return cmds
}

func renderGraph(f anim.Frame, t Theme, vp Viewport) []DrawCmd {
	g := f.Graph
	if g == nil {
		return nil
	}
	r := math.Min(vp.Width, vp.Height) * 0.06
	pos := func(id int) (float64, float64) {
		n := g.Nodes[id]
		return n.X * vp.Width, n.Y * vp.Height
	}
	traversed := func(e anim.Edge) bool {
		for _, o := range g.Traversed {
			if o.Same(e) {
				return true
			}
		}
		return false
	}

	var cmds []DrawCmd
	for _, e := range g.Edges {
		x1, y1 := pos(e.From)
		x2, y2 := pos(e.To)
		role, c := anim.RoleDefault, t.Edge
		if traversed(e) {
			role, c = anim.RoleVisited, t.Visited
		}
		cmds = append(cmds,
			DrawCmd{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Role: role, Fill: c},
			text((x1+x2)/2, (y1+y2)/2, strconv.Itoa(e.Weight), t.Muted),
		)
	}
	for _, n := range g.Nodes {
		x, y := pos(n.ID)
		role := f.RoleOf(n.ID)
		cmds = append(cmds,
			DrawCmd{Op: OpCircle, X: x, Y: y, R: r, Role: role, Fill: t.Color(role)},
			text(x, y, n.Label, t.Text),
		)
		if n.ID < len(g.Dist) {
			d := "∞"
			if g.Dist[n.ID] >= 0 {
				d = strconv.Itoa(g.Dist[n.ID])
			}
			cmds = append(cmds, text(x, y+r*2, d, t.Accent))
		}
	}
	return cmds
}

func renderTree(f anim.Frame, t Theme, vp Viewport) []DrawCmd {
	tree := f.Tree
	if tree == nil || tree.Root < 0 {
		return nil
	}
	n := len(tree.Nodes)
	rank := make([]int, n)
	depth := make([]int, n)
	next, deepest := 0, 0
	var walk func(i, d int)
	walk = func(i, d int) {
		if i < 0 {
			return
		}
		walk(tree.Nodes[i].Left, d+1)
		rank[i], depth[i] = next, d
		next++
		deepest = max(deepest, d)
		walk(tree.Nodes[i].Right, d+1)
	}
	walk(tree.Root, 0)

	pos := func(i int) (float64, float64) {
		return float64(rank[i]+1) / float64(n+1) * vp.Width,
			float64(depth[i]+1) / float64(deepest+2) * vp.Height
	}
	r := math.Min(vp.Width/float64(n+1), vp.Height/float64(deepest+2)) * 0.35

	var cmds []DrawCmd
	for i, node := range tree.Nodes {
		x1, y1 := pos(i)
		for _, c := range []int{node.Left, node.Right} {
			if c < 0 {
				continue
			}
			x2, y2 := pos(c)
			cmds = append(cmds, DrawCmd{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Fill: t.Edge})
		}
	}
	for i, node := range tree.Nodes {
		x, y := pos(i)
		role := f.RoleOf(i)
		cmds = append(cmds,
			DrawCmd{Op: OpCircle, X: x, Y: y, R: r, Role: role, Fill: t.Color(role)},
			text(x, y, strconv.Itoa(node.Value), t.Text),
		)
	}
	return cmds
}
