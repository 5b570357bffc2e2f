package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/anim"
)

func TestNewCanvasBlank(t *testing.T) {
	c := NewCanvas(4, 2)
	if got := c.Plain(); got != "    \n    \n" {
		t.Errorf("Plain() = %q", got)
	}
	if vp := c.Viewport(); vp.Width != 4 || vp.Height != 2 {
		t.Errorf("Viewport() = %+v", vp)
	}
	if got := NewCanvas(-3, -1).Plain(); got != "" {
		t.Errorf("negative size canvas = %q", got)
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(-1, 0, 'x', "")
	c.Set(3, 3, 'x', "")
	c.Shade(5, 1, lipgloss.Color("#fff"))
	if strings.ContainsRune(c.Plain(), 'x') {
		t.Error("out of bounds write landed on the grid")
	}
	if ch, _, _ := c.At(7, 7); ch != 0 {
		t.Errorf("At outside = %q", ch)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"horizontal", 0, 1, 3, 1, [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical", 2, 0, 2, 2, [][2]int{{2, 0}, {2, 1}, {2, 2}}},
		{"diagonal", 3, 3, 0, 0, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"point", 1, 1, 1, 1, [][2]int{{1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 4)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, '*', "")
			for _, p := range tt.want {
				if ch, _, _ := c.At(p[0], p[1]); ch != '*' {
					t.Errorf("cell %v not set", p)
				}
			}
			if got := strings.Count(c.Plain(), "*"); got != len(tt.want) {
				t.Errorf("set %d cells, want %d", got, len(tt.want))
			}
		})
	}
}

func TestCanvasTextCentered(t *testing.T) {
	c := NewCanvas(10, 1)
	c.Text(5, 0, "abc", "")
	if got := c.Plain(); got != "    abc   \n" {
		t.Errorf("Plain() = %q", got)
	}
}

func TestCanvasSetKeepsBackground(t *testing.T) {
	c := NewCanvas(2, 1)
	bg := lipgloss.Color("#112233")
	c.FillRect(0, 0, 2, 1, bg)
	c.Set(0, 0, '7', lipgloss.Color("#ffffff"))

	ch, fg, got := c.At(0, 0)
	if ch != '7' || fg != "#ffffff" || got != bg {
		t.Errorf("At = %q %v %v", ch, fg, got)
	}
	c.Clear()
	if _, _, got := c.At(0, 0); got != "" {
		t.Errorf("Clear left background %v", got)
	}
}

func TestCanvasPaintBars(t *testing.T) {
	c := NewCanvas(12, 6)
	f := anim.Frame{Kind: anim.KindBars, Values: []int{1, 2, 3}, Colors: map[int]anim.Role{2: anim.RoleSorted}}
	c.Paint(Render(f, ThemeLight, c.Viewport()))

	// the tallest bar reaches the top row and carries the sorted color
	shaded := 0
	for x := 0; x < c.Width; x++ {
		if _, _, bg := c.At(x, 0); bg == ThemeLight.Sorted {
			shaded++
		}
	}
	if shaded == 0 {
		t.Error("top row has no sorted cells")
	}
	last := strings.Split(strings.TrimSuffix(c.Plain(), "\n"), "\n")[5]
	for _, label := range []string{"1", "2", "3"} {
		if !strings.Contains(last, label) {
			t.Errorf("label row %q is missing %s", last, label)
		}
	}
	if got := strings.Count(c.String(), "\n"); got != c.Height {
		t.Errorf("String() has %d lines, want %d", got, c.Height)
	}
}
