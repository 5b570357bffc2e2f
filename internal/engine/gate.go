package engine

import (
	"context"
	"sync"

	"github.com/san-kum/algoviz/internal/anim"
)

// Gate suspends generators while a run is paused. Waiters block on a
// channel that Open closes, so resuming wakes them without polling.
type Gate struct {
	mu     sync.Mutex
	ch     chan struct{}
	closed bool
}

func NewGate() *Gate {
	ch := make(chan struct{})
	close(ch)
	return &Gate{ch: ch}
}

// Close makes subsequent waits block until Open.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.ch = make(chan struct{})
	g.closed = true
}

// Open releases every waiter.
func (g *Gate) Open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.closed {
		return
	}
	close(g.ch)
	g.closed = false
}

func (g *Gate) IsClosed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}

// Wait returns immediately when the gate is open, otherwise blocks until it
// opens or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.ch
	g.mu.Unlock()

	select {
	case <-ch:
		if ctx.Err() != nil {
			return anim.ErrCancelled
		}
		return nil
	case <-ctx.Done():
		return anim.ErrCancelled
	}
}
