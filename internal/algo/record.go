package algo

import (
	"context"

	"github.com/san-kum/algoviz/internal/anim"
)

// Recorder is an unpaced Steps that keeps every frame. It backs the trace
// and export commands and the generator tests.
type Recorder struct {
	Frames []anim.Frame
	Stats  anim.Stats

	ctx       context.Context
	name      string
	seq       int
	stopAfter int
}

// NewRecorder returns a recorder for the named algorithm. A stopAfter above
// zero cancels the run once that many frames have been recorded.
func NewRecorder(ctx context.Context, name string, stopAfter int) *Recorder {
	return &Recorder{ctx: ctx, name: name, stopAfter: stopAfter}
}

func (r *Recorder) Checkpoint() error {
	if r.ctx != nil && r.ctx.Err() != nil {
		return anim.ErrCancelled
	}
	if r.stopAfter > 0 && len(r.Frames) >= r.stopAfter {
		return anim.ErrCancelled
	}
	return nil
}

func (r *Recorder) Emit(f anim.Frame) error {
	if err := r.Checkpoint(); err != nil {
		return err
	}
	r.seq++
	f.Seq = r.seq
	f.Algorithm = r.name
	f.Stats = r.Stats
	r.Frames = append(r.Frames, f)
	return nil
}

func (r *Recorder) Compare() { r.Stats.Comparisons++ }
func (r *Recorder) Operate() { r.Stats.Operations++ }

// Last returns the final recorded frame.
func (r *Recorder) Last() (anim.Frame, bool) {
	if len(r.Frames) == 0 {
		return anim.Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// Trace runs a generator to completion without pacing.
func Trace(ctx context.Context, a Algorithm, in anim.Input) (*Recorder, error) {
	rec := NewRecorder(ctx, a.Name(), 0)
	if err := a.Run(in, rec); err != nil {
		return rec, err
	}
	return rec, nil
}
