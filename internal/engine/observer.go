package engine

import "github.com/san-kum/algoviz/internal/anim"

// Observer receives every published frame and every state transition, in
// the order the controller produced them. Calls happen outside the
// controller lock on one goroutine at a time, so an Observer may call back
// into the Controller. Observers must not block: a slow one holds up the
// run that is delivering to it.
type Observer interface {
	OnFrame(f anim.Frame)
	OnState(s anim.RunState)
}

// Funcs adapts plain functions to Observer. Nil fields are skipped.
type Funcs struct {
	Frame func(anim.Frame)
	State func(anim.RunState)
}

func (o Funcs) OnFrame(f anim.Frame) {
	if o.Frame != nil {
		o.Frame(f)
	}
}

func (o Funcs) OnState(s anim.RunState) {
	if o.State != nil {
		o.State(s)
	}
}

// notice is one queued notification: a frame when frame is set, otherwise
// a state.
type notice struct {
	frame *anim.Frame
	state anim.RunState
}

// queueState appends a transition behind any frames already queued. Called
// with c.mu held.
func (c *Controller) queueState(s anim.RunState) {
	c.pending = append(c.pending, notice{state: s})
}

// deliver drains the queue. Only one goroutine delivers at a time; a call
// that finds delivery in progress, including one made from inside an
// Observer, returns at once and leaves its notices to the current deliverer.
func (c *Controller) deliver() {
	c.mu.Lock()
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true
	for len(c.pending) > 0 {
		n := c.pending[0]
		c.pending[0] = notice{}
		c.pending = c.pending[1:]
		obs := c.snapshotObservers()
		c.mu.Unlock()
		for _, o := range obs {
			if n.frame != nil {
				o.OnFrame(*n.frame)
			} else {
				o.OnState(n.state)
			}
		}
		c.mu.Lock()
	}
	c.pending = nil
	c.delivering = false
	c.drained.Broadcast()
	c.mu.Unlock()
}
