package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/anim"
)

type opKind int

const (
	opPush opKind = iota
	opPop
)

type scriptOp struct {
	kind  opKind
	value int
}

var (
	stackScript = []scriptOp{{opPush, 10}, {opPush, 20}, {opPush, 30}, {opPop, 0}, {opPush, 40}, {opPop, 0}, {opPop, 0}}
	queueScript = []scriptOp{{opPush, 10}, {opPush, 20}, {opPush, 30}, {opPop, 0}, {opPush, 40}, {opPop, 0}}
)

func linearFrame(kind anim.Kind, items []int, label string, at int, role anim.Role) anim.Frame {
	var colors roles
	if at >= 0 && at < len(items) {
		colors = roles{at: role}
	}
	f := barFrame(items, label, colors)
	f.Kind = kind
	return f
}

// Stack replays a fixed push/pop script. Values run bottom to top. Every
// operation first shows the stack as it is, marking the top the next push
// lands on or the value about to be popped.
type Stack struct{}

func (Stack) Name() string    { return "stack" }
func (Stack) Kind() anim.Kind { return anim.KindStack }

func (Stack) Run(_ anim.Input, s Steps) error {
	var items []int
	for _, op := range stackScript {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		switch op.kind {
		case opPush:
			if err := s.Emit(linearFrame(anim.KindStack, items, fmt.Sprintf("push %d", op.value), len(items)-1, anim.RoleCompare)); err != nil {
				return err
			}
			items = append(items, op.value)
			s.Operate()
			if err := s.Emit(linearFrame(anim.KindStack, items, fmt.Sprintf("pushed %d", op.value), len(items)-1, anim.RoleActive)); err != nil {
				return err
			}
		case opPop:
			if len(items) == 0 {
				continue
			}
			top := len(items) - 1
			v := items[top]
			if err := s.Emit(linearFrame(anim.KindStack, items, fmt.Sprintf("pop %d", v), top, anim.RoleSwap)); err != nil {
				return err
			}
			items = items[:top]
			s.Operate()
			if err := s.Emit(linearFrame(anim.KindStack, items, fmt.Sprintf("popped %d", v), -1, anim.RoleDefault)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Queue replays a fixed enqueue/dequeue script. Values run front to back.
type Queue struct{}

func (Queue) Name() string    { return "queue" }
func (Queue) Kind() anim.Kind { return anim.KindQueue }

func (Queue) Run(_ anim.Input, s Steps) error {
	var items []int
	for _, op := range queueScript {
		if err := s.Checkpoint(); err != nil {
			return err
		}
		switch op.kind {
		case opPush:
			if err := s.Emit(linearFrame(anim.KindQueue, items, fmt.Sprintf("enqueue %d", op.value), len(items)-1, anim.RoleCompare)); err != nil {
				return err
			}
			items = append(items, op.value)
			s.Operate()
			if err := s.Emit(linearFrame(anim.KindQueue, items, fmt.Sprintf("enqueued %d", op.value), len(items)-1, anim.RoleActive)); err != nil {
				return err
			}
		case opPop:
			if len(items) == 0 {
				continue
			}
			v := items[0]
			if err := s.Emit(linearFrame(anim.KindQueue, items, fmt.Sprintf("dequeue %d", v), 0, anim.RoleSwap)); err != nil {
				return err
			}
			items = items[1:]
			s.Operate()
			if err := s.Emit(linearFrame(anim.KindQueue, items, fmt.Sprintf("dequeued %d", v), -1, anim.RoleDefault)); err != nil {
				return err
			}
		}
	}
	return nil
}
