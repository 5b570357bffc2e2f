package engine

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/san-kum/algoviz/internal/anim"
)

// Clock paces a run. The delay between frames is base/speed, with speed
// read at every wait so changes apply to the next step.
type Clock struct {
	base  time.Duration
	speed atomic.Uint64
}

func NewClock(base time.Duration, speed float64) *Clock {
	c := &Clock{base: base}
	if !ValidSpeed(speed) {
		speed = 1
	}
	c.speed.Store(math.Float64bits(speed))
	return c
}

// ValidSpeed reports whether s can be used as a playback multiplier.
func ValidSpeed(s float64) bool {
	return s > 0 && !math.IsNaN(s) && !math.IsInf(s, 0)
}

func (c *Clock) SetSpeed(s float64) error {
	if !ValidSpeed(s) {
		return anim.ErrInvalidSpeed
	}
	c.speed.Store(math.Float64bits(s))
	return nil
}

func (c *Clock) Speed() float64 {
	return math.Float64frombits(c.speed.Load())
}

// Delay is the wait a call to Wait would perform right now. Very small
// speeds saturate at the longest representable duration.
func (c *Clock) Delay() time.Duration {
	d := float64(c.base) / c.Speed()
	if d >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d)
}

// Wait sleeps for one tick or until ctx is done.
func (c *Clock) Wait(ctx context.Context) error {
	d := c.Delay()
	if d <= 0 {
		if ctx.Err() != nil {
			return anim.ErrCancelled
		}
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return anim.ErrCancelled
	case <-timer.C:
		return nil
	}
}
