package engine

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/anim"
)

type Config struct {
	BaseDelay time.Duration
	Speed     float64
	// Seed drives the random target picked when a search starts without one.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		BaseDelay: time.Second,
		Speed:     5,
		Seed:      time.Now().UnixNano(),
	}
}

// Request describes a run. Target is only read by search generators; when
// nil, a value is drawn from the parsed data.
type Request struct {
	Algorithm string
	Input     string
	Speed     float64
	Target    *int
}

type Controller struct {
	registry *algo.Registry
	clock    *Clock
	gate     *Gate

	mu        sync.Mutex
	rng       *rand.Rand
	state     anim.RunState
	stats     anim.Stats
	last      *anim.Frame
	seq       int
	gen       uint64
	runID     string
	algorithm string
	cancel    context.CancelFunc
	done      chan struct{}
	observers []Observer

	pending    []notice
	delivering bool
	drained    *sync.Cond
}

func New(registry *algo.Registry, cfg Config) *Controller {
	c := &Controller{
		registry: registry,
		clock:    NewClock(cfg.BaseDelay, cfg.Speed),
		gate:     NewGate(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}
	c.drained = sync.NewCond(&c.mu)
	return c
}

func (c *Controller) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// Start launches algorithmID over the comma separated input.
func (c *Controller) Start(algorithmID, input string, speed float64) error {
	return c.StartRequest(Request{Algorithm: algorithmID, Input: input, Speed: speed})
}

// StartRequest is a no-op while a run is active. Validation failures leave
// the controller Idle.
func (c *Controller) StartRequest(req Request) error {
	c.mu.Lock()
	if c.state.Active() {
		c.mu.Unlock()
		return nil
	}

	in, a, err := c.prepare(req)
	if err != nil {
		if c.state != anim.Idle {
			c.state = anim.Idle
			c.queueState(anim.Idle)
		}
		c.mu.Unlock()
		c.deliver()
		slog.Debug("Rejected run.", "algorithm", req.Algorithm, "err", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.gen++
	gen := c.gen
	c.stats = anim.Stats{}
	c.last = nil
	c.seq = 0
	c.runID = uuid.NewString()
	c.algorithm = a.Name()
	c.cancel = cancel
	c.done = make(chan struct{})
	c.state = anim.Running
	c.gate.Open()
	_ = c.clock.SetSpeed(req.Speed)
	done := c.done
	runID := c.runID
	c.queueState(anim.Running)
	c.mu.Unlock()

	slog.Debug("Starting run.", "run", runID, "algorithm", a.Name(), "n", len(in.Data), "speed", req.Speed)
	c.deliver()

	go c.run(ctx, gen, a, in, done)
	return nil
}

// prepare validates req. Called with c.mu held.
func (c *Controller) prepare(req Request) (anim.Input, algo.Algorithm, error) {
	data, err := anim.ParseInput(req.Input)
	if err != nil {
		return anim.Input{}, nil, err
	}
	a, err := c.registry.Get(req.Algorithm)
	if err != nil {
		return anim.Input{}, nil, err
	}
	if !ValidSpeed(req.Speed) {
		return anim.Input{}, nil, anim.ErrInvalidSpeed
	}

	in := anim.Input{Data: data, Target: req.Target}
	if algo.IsSearch(a) && in.Target == nil {
		t := data[c.rng.Intn(len(data))]
		in.Target = &t
	}
	return in, a, nil
}

func (c *Controller) run(ctx context.Context, gen uint64, a algo.Algorithm, in anim.Input, done chan struct{}) {
	defer close(done)
	err := a.Run(in, &stepper{c: c, ctx: ctx, gen: gen})
	c.finish(gen, err)
}

func (c *Controller) finish(gen uint64, err error) {
	c.mu.Lock()
	if c.gen != gen || !c.state.Active() {
		c.mu.Unlock()
		return
	}
	next := anim.Completed
	if err != nil {
		next = anim.Cancelled
	}
	c.state = next
	c.cancel()
	runID := c.runID
	stats := c.stats
	c.queueState(next)
	c.mu.Unlock()

	switch {
	case err == nil:
		slog.Debug("Run completed.", "run", runID, "comparisons", stats.Comparisons, "operations", stats.Operations)
	case errors.Is(err, anim.ErrCancelled):
		slog.Debug("Run cancelled.", "run", runID)
	default:
		slog.Error("Run failed.", "run", runID, "err", err)
	}
	c.deliver()
}

func (c *Controller) Pause() {
	c.transition(anim.Running, anim.Paused, c.gate.Close)
}

func (c *Controller) Resume() {
	c.transition(anim.Paused, anim.Running, c.gate.Open)
}

// Toggle flips between Running and Paused.
func (c *Controller) Toggle() {
	switch c.State() {
	case anim.Running:
		c.Pause()
	case anim.Paused:
		c.Resume()
	}
}

func (c *Controller) transition(from, to anim.RunState, gate func()) {
	c.mu.Lock()
	if c.state != from {
		c.mu.Unlock()
		return
	}
	c.state = to
	gate()
	c.queueState(to)
	c.mu.Unlock()
	c.deliver()
}

// Cancel stops the active run and keeps its counters.
func (c *Controller) Cancel() {
	c.mu.Lock()
	if !c.state.Active() {
		c.mu.Unlock()
		return
	}
	c.state = anim.Cancelled
	c.cancel()
	c.queueState(anim.Cancelled)
	c.mu.Unlock()
	c.deliver()
}

// Reset aborts whatever is running and returns to Idle with zeroed counters.
// An active run passes through Cancelled on the way.
func (c *Controller) Reset() {
	c.mu.Lock()
	wasActive := c.state.Active()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	c.stats = anim.Stats{}
	c.last = nil
	c.seq = 0
	c.runID = ""
	c.algorithm = ""
	c.state = anim.Idle
	c.gate.Open()
	if wasActive {
		c.queueState(anim.Cancelled)
	}
	c.queueState(anim.Idle)
	c.mu.Unlock()
	c.deliver()
}

func (c *Controller) SetSpeed(s float64) error {
	if err := c.clock.SetSpeed(s); err != nil {
		return err
	}
	slog.Debug("Speed changed.", "speed", s)
	return nil
}

func (c *Controller) Speed() float64 { return c.clock.Speed() }

func (c *Controller) State() anim.RunState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Stats() anim.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// RunID identifies the current run; empty when Idle.
func (c *Controller) RunID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runID
}

func (c *Controller) Algorithm() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.algorithm
}

func (c *Controller) LastFrame() (anim.Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return anim.Frame{}, false
	}
	return c.last.Clone(), true
}

// Wait blocks until the most recently started generator goroutine exits and
// every notification queued so far has reached the observers. It must not be
// called from inside an Observer.
func (c *Controller) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done != nil {
		<-done
	}
	c.mu.Lock()
	for c.delivering || len(c.pending) > 0 {
		c.drained.Wait()
	}
	c.mu.Unlock()
}

func (c *Controller) snapshotObservers() []Observer {
	if len(c.observers) == 0 {
		return nil
	}
	return append([]Observer(nil), c.observers...)
}
