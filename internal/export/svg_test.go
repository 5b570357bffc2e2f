package export

import (
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/viz"
)

func TestSVGPrimitives(t *testing.T) {
	cmds := []viz.DrawCmd{
		{Op: viz.OpRect, X: 1, Y: 2, W: 3, H: 4, Fill: "#ff0000", Role: anim.RoleSwap},
		{Op: viz.OpLine, X: 0, Y: 0, X2: 10, Y2: 10, Fill: "#00ff00"},
		{Op: viz.OpCircle, X: 5, Y: 5, R: 2, Fill: "#0000ff", Role: anim.RoleFound},
		{Op: viz.OpText, X: 5, Y: 5, Text: "a<b", Fill: "#000000"},
	}
	got := SVG(cmds, viz.Viewport{Width: 100, Height: 50}, viz.ThemeLight)

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`width="100" height="50"`,
		`fill="` + string(viz.ThemeLight.Background) + `"`,
		`<rect x="1.0" y="2.0" width="3.0" height="4.0" rx="2" fill="#ff0000" data-role="swap"/>`,
		`<line x1="0.0" y1="0.0" x2="10.0" y2="10.0" stroke="#00ff00"`,
		`<circle cx="5.0" cy="5.0" r="2.0" fill="#0000ff" data-role="found"/>`,
		`>a&lt;b</text>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("svg missing %s\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestFrameSVGCaption(t *testing.T) {
	f := anim.Frame{Kind: anim.KindBars, Values: []int{2, 1}, Label: `swap "2" & "1"`}
	vp := viz.Viewport{Width: 200, Height: 100}
	got := FrameSVG(f, vp, viz.ThemeDark)

	if !strings.Contains(got, `height="130"`) {
		t.Error("caption row not added to the height")
	}
	if !strings.Contains(got, "swap &#34;2&#34; &amp; &#34;1&#34;") {
		t.Errorf("caption not escaped:\n%s", got)
	}
	if strings.Count(got, "<rect") != 3 {
		t.Errorf("want a background and two bars, got %d rects", strings.Count(got, "<rect"))
	}
}

func TestFrameSVGNoCaption(t *testing.T) {
	f := anim.Frame{Kind: anim.KindQueue}
	got := FrameSVG(f, viz.Viewport{Width: 80, Height: 40}, viz.ThemeLight)
	if !strings.Contains(got, `height="40"`) || !strings.Contains(got, ">empty</text>") {
		t.Errorf("unexpected svg:\n%s", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float64 }{{5, 10}, {12, 12}, {40, 18}}
	for _, tt := range tests {
		if got := clamp(tt.v, 10, 18); got != tt.want {
			t.Errorf("clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
