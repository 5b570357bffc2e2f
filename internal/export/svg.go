package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/viz"
)

// SVG converts drawing commands into a standalone SVG document.
func SVG(cmds []viz.DrawCmd, vp viz.Viewport, theme viz.Theme) string {
	var sb strings.Builder
	writeSVG(&sb, cmds, vp, theme, "")
	return sb.String()
}

// FrameSVG renders a frame and wraps it with its label as a caption.
func FrameSVG(f anim.Frame, vp viz.Viewport, theme viz.Theme) string {
	var sb strings.Builder
	writeSVG(&sb, viz.Render(f, theme, vp), vp, theme, f.Label)
	return sb.String()
}

func writeSVG(w io.Writer, cmds []viz.DrawCmd, vp viz.Viewport, theme viz.Theme, caption string) {
	height := vp.Height
	if caption != "" {
		height += 30
	}
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, vp.Width, height, vp.Width, height, theme.Background)

	fontSize := clamp(vp.Height*0.04, 10, 18)
	for _, d := range cmds {
		switch d.Op {
		case viz.OpRect:
			fmt.Fprintf(w, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s" data-role="%s"/>
`, d.X, d.Y, d.W, d.H, d.Fill, d.Role)
		case viz.OpLine:
			fmt.Fprintf(w, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, d.X, d.Y, d.X2, d.Y2, d.Fill)
		case viz.OpCircle:
			fmt.Fprintf(w, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" data-role="%s"/>
`, d.X, d.Y, d.R, d.Fill, d.Role)
		case viz.OpText:
			fmt.Fprintf(w, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="%.0f" text-anchor="middle" dominant-baseline="middle">%s</text>
`, d.X, d.Y, d.Fill, fontSize, html.EscapeString(d.Text))
		}
	}
	if caption != "" {
		fmt.Fprintf(w, `<text x="%.1f" y="%.1f" fill="%s" font-family="sans-serif" font-size="14" text-anchor="middle">%s</text>
`, vp.Width/2, vp.Height+20, theme.Text, html.EscapeString(caption))
	}
	io.WriteString(w, "</svg>\n")
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
