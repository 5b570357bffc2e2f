package engine

import (
	"context"

	"github.com/san-kum/algoviz/internal/anim"
)

// stepper is the algo.Steps a run's generator sees. Every mutation checks
// gen so a generator from an aborted run cannot reach the next one.
type stepper struct {
	c   *Controller
	ctx context.Context
	gen uint64
}

func (s *stepper) Checkpoint() error {
	if s.ctx.Err() != nil {
		return anim.ErrCancelled
	}
	return s.c.gate.Wait(s.ctx)
}

func (s *stepper) Emit(f anim.Frame) error {
	if err := s.Checkpoint(); err != nil {
		return err
	}
	if !s.c.publish(s.gen, f) {
		return anim.ErrCancelled
	}
	s.c.deliver()
	if err := s.c.clock.Wait(s.ctx); err != nil {
		return err
	}
	return s.Checkpoint()
}

func (s *stepper) Compare() {
	s.c.count(s.gen, func(st *anim.Stats) { st.Comparisons++ })
}

func (s *stepper) Operate() {
	s.c.count(s.gen, func(st *anim.Stats) { st.Operations++ })
}

// publish stamps f and queues it for delivery, unless the run behind gen has
// already ended.
func (c *Controller) publish(gen uint64, f anim.Frame) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen || !c.state.Active() {
		return false
	}
	c.seq++
	f.Seq = c.seq
	f.Algorithm = c.algorithm
	f.Stats = c.stats
	stored, queued := f.Clone(), f.Clone()
	c.last = &stored
	c.pending = append(c.pending, notice{frame: &queued})
	return true
}

func (c *Controller) count(gen uint64, bump func(*anim.Stats)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen || !c.state.Active() {
		return
	}
	bump(&c.stats)
}
