package algo

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/anim"
)

var demoTreeValues = []int{50, 30, 70, 20, 40, 60, 80}

// BuildBST inserts values in order into a binary search tree laid out as a
// flat node list. Duplicates go right.
func BuildBST(values []int) *anim.TreeView {
	t := &anim.TreeView{Root: -1, Current: -1}
	for _, v := range values {
		idx := len(t.Nodes)
		t.Nodes = append(t.Nodes, anim.TreeNode{Value: v, Left: -1, Right: -1})
		if t.Root < 0 {
			t.Root = idx
			continue
		}
		cur := t.Root
		for {
			n := &t.Nodes[cur]
			if v < n.Value {
				if n.Left < 0 {
					n.Left = idx
					break
				}
				cur = n.Left
			} else {
				if n.Right < 0 {
					n.Right = idx
					break
				}
				cur = n.Right
			}
		}
	}
	return t
}

// TreeInorder walks the demo BST left, node, right.
type TreeInorder struct{}

func (TreeInorder) Name() string    { return "tree-inorder" }
func (TreeInorder) Kind() anim.Kind { return anim.KindTree }

func (t TreeInorder) Run(_ anim.Input, s Steps) error {
	tree := BuildBST(demoTreeValues)
	if err := t.walk(tree, tree.Root, s); err != nil {
		return err
	}
	tree.Current = -1
	return s.Emit(treeFrame(tree, "traversal complete"))
}

func (t TreeInorder) walk(tree *anim.TreeView, i int, s Steps) error {
	if err := s.Checkpoint(); err != nil {
		return err
	}
	if i < 0 {
		return nil
	}
	if err := t.walk(tree, tree.Nodes[i].Left, s); err != nil {
		return err
	}
	tree.Visited = append(tree.Visited, i)
	tree.Current = i
	s.Operate()
	if err := s.Emit(treeFrame(tree, fmt.Sprintf("visit %d", tree.Nodes[i].Value))); err != nil {
		return err
	}
	return t.walk(tree, tree.Nodes[i].Right, s)
}

func treeFrame(tree *anim.TreeView, label string) anim.Frame {
	view := *tree
	view.Nodes = slices.Clone(tree.Nodes)
	view.Visited = slices.Clone(tree.Visited)
	f := anim.Frame{Kind: anim.KindTree, Tree: &view, Label: label, Colors: make(map[int]anim.Role)}
	for _, v := range view.Visited {
		f.Colors[v] = anim.RoleVisited
	}
	if view.Current >= 0 {
		f.Colors[view.Current] = anim.RoleActive
		f.Highlight = []int{view.Current}
	}
	return f
}
