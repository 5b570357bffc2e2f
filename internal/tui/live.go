package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws every frame of a run onto a plain terminal. It is an
// engine.Observer for non-interactive use; frames arriving faster than
// frameRate are skipped, except the last one of a run.
type LiveRenderer struct {
	out       io.Writer
	theme     viz.Theme
	width     int
	height    int
	frameRate int
	color     bool

	mu       sync.Mutex
	lastDraw time.Time
	pending  *anim.Frame
}

func NewLiveRenderer(out io.Writer, theme viz.Theme, width, height, frameRate int, color bool) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{
		out:       out,
		theme:     theme,
		width:     width,
		height:    height,
		frameRate: frameRate,
		color:     color,
	}
}

func (r *LiveRenderer) OnFrame(f anim.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if time.Since(r.lastDraw) < time.Second/time.Duration(r.frameRate) {
		r.pending = &f
		return
	}
	r.pending = nil
	r.lastDraw = time.Now()
	r.draw(f)
}

func (r *LiveRenderer) OnState(s anim.RunState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.Active() {
		return
	}
	if r.pending != nil {
		r.draw(*r.pending)
		r.pending = nil
	}
	fmt.Fprintf(r.out, "  %s\n", s)
}

func (r *LiveRenderer) draw(f anim.Frame) {
	c := viz.NewCanvas(r.width, r.height)
	c.Paint(viz.Render(f, r.theme, c.Viewport()))

	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  %s  step %d\n", f.Algorithm, f.Seq)
	b.WriteString("  " + strings.Repeat("-", r.width) + "\n")
	body := c.Plain()
	if r.color {
		body = c.String()
	}
	for _, line := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("  " + strings.Repeat("-", r.width) + "\n")
	fmt.Fprintf(&b, "  comparisons=%d operations=%d", f.Stats.Comparisons, f.Stats.Operations)
	if f.Outcome != anim.OutcomeNone {
		fmt.Fprintf(&b, " outcome=%s", f.Outcome)
	}
	b.WriteString("\n  " + f.Label + "\n")

	io.WriteString(r.out, b.String())
}

func (r *LiveRenderer) Start() { io.WriteString(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { io.WriteString(r.out, showCursor) }
