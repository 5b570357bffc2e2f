package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/prefs"
)

// executeIn runs the CLI with its config and prefs files under dir.
func executeIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	args = append(args,
		"--config", filepath.Join(dir, "config.yaml"),
		"--prefs", filepath.Join(dir, "prefs.db"),
		"--log-level", "error",
	)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

type traceView struct {
	Algorithm string     `json:"algorithm"`
	Input     []int      `json:"input"`
	Target    *int       `json:"target"`
	Steps     int        `json:"steps"`
	Stats     anim.Stats `json:"stats"`
	Frames    []struct {
		Seq     int    `json:"seq"`
		Outcome string `json:"outcome"`
	} `json:"frames"`
}

func decodeTrace(t *testing.T, out string) traceView {
	t.Helper()
	var v traceView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decoding trace: %v\n%s", err, out)
	}
	return v
}

func TestTraceJSON(t *testing.T) {
	out, err := execute(t, "trace", "bubble-sort", "-i", "5, 3, 8, 1", "-f", "json")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	v := decodeTrace(t, out)
	if v.Algorithm != "bubble-sort" {
		t.Errorf("algorithm = %q", v.Algorithm)
	}
	if v.Stats != (anim.Stats{Comparisons: 6, Operations: 4}) {
		t.Errorf("stats = %+v, want 6 comparisons and 4 operations", v.Stats)
	}
	if v.Steps == 0 || v.Steps != len(v.Frames) {
		t.Errorf("steps = %d, frames = %d", v.Steps, len(v.Frames))
	}
	if v.Frames[len(v.Frames)-1].Seq != v.Steps {
		t.Errorf("last seq = %d, want %d", v.Frames[len(v.Frames)-1].Seq, v.Steps)
	}
}

func TestTraceSearchOutcome(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"7", "found"},
		{"9", "not-found"},
	}
	for _, tt := range tests {
		out, err := execute(t, "trace", "linear-search", "-i", "4, 2, 7", "--target", tt.target, "-f", "json")
		if err != nil {
			t.Fatalf("trace target %s: %v", tt.target, err)
		}
		v := decodeTrace(t, out)
		if got := v.Frames[len(v.Frames)-1].Outcome; got != tt.want {
			t.Errorf("target %s: outcome = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestTraceSearchPicksTargetFromData(t *testing.T) {
	out, err := execute(t, "trace", "binary-search", "-i", "1, 3, 5, 7", "--seed", "42", "-f", "json")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	v := decodeTrace(t, out)
	if v.Target == nil {
		t.Fatal("search ran without a target")
	}
	found := false
	for _, x := range v.Input {
		found = found || x == *v.Target
	}
	if !found {
		t.Errorf("target %d not drawn from %v", *v.Target, v.Input)
	}
	if got := v.Frames[len(v.Frames)-1].Outcome; got != "found" {
		t.Errorf("outcome = %q, want found", got)
	}
}

func TestTracePresetThenFlags(t *testing.T) {
	out, err := execute(t, "trace", "bubble-sort", "--preset", "example", "--target", "3", "-f", "json")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	v := decodeTrace(t, out)
	if want := []int{5, 3, 8, 1}; len(v.Input) != len(want) || v.Input[0] != 5 || v.Input[3] != 1 {
		t.Errorf("input = %v, want %v", v.Input, want)
	}
	if v.Target == nil || *v.Target != 3 {
		t.Errorf("target = %v, want the flag to override the preset", v.Target)
	}
}

func TestTraceTableWithPlot(t *testing.T) {
	out, err := execute(t, "trace", "insertion-sort", "-i", "4, 3, 2, 1", "--plot")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	for _, want := range []string{"STEP", "COMPARISONS", "comparisons (red)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTraceCSVToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.csv")
	if _, err := executeIn(t, dir, "trace", "stack", "-f", "csv", "-o", path); err != nil {
		t.Fatalf("trace: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "seq,comparisons,operations,outcome,label\n") {
		t.Errorf("unexpected csv header: %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestTraceErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"unknown algorithm", []string{"trace", "bogo-sort"}, anim.ErrUnknownAlgorithm},
		{"no numbers", []string{"trace", "bubble-sort", "-i", "x, y"}, anim.ErrEmptyInput},
		{"bad format", []string{"trace", "bubble-sort", "-f", "xml"}, nil},
		{"unknown preset", []string{"trace", "--preset", "nope"}, nil},
		{"bad speed", []string{"trace", "--speed=-1"}, config.ErrInvalidSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestRootRejectsUnknownAlgorithm(t *testing.T) {
	_, err := execute(t, "bogo-sort")
	if !errors.Is(err, anim.ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestListAlgorithms(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 13 {
		t.Errorf("got %d lines, want a header and 12 algorithms:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "binary-search") || !strings.Contains(lines[1], "O(log n)") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("preset %q missing", name)
		}
	}
}

func TestExplainPlain(t *testing.T) {
	out, err := execute(t, "explain", "binary-search", "--plain", "--lang", "go")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	for _, want := range []string{"Binary Search", "Time Complexity", "func binarySearch"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestExportSVG(t *testing.T) {
	dir := t.TempDir()
	svgs := filepath.Join(dir, "svg")

	out, err := executeIn(t, dir, "export-svg", "bubble-sort", "-i", "3, 1, 2", "-o", svgs)
	if err != nil {
		t.Fatalf("export-svg: %v", err)
	}
	files, _ := filepath.Glob(filepath.Join(svgs, "*.svg"))
	if len(files) != 1 {
		t.Fatalf("wrote %d files, want the last step only", len(files))
	}
	if strings.TrimSpace(out) != files[0] {
		t.Errorf("printed %q, wrote %q", out, files[0])
	}
	data, _ := os.ReadFile(files[0])
	if !strings.HasPrefix(string(data), "<?xml") || !strings.Contains(string(data), "</svg>") {
		t.Errorf("not an svg document")
	}

	if _, err := executeIn(t, dir, "export-svg", "bubble-sort", "-i", "3, 1, 2", "-o", svgs, "--all"); err != nil {
		t.Fatalf("export-svg --all: %v", err)
	}
	all, _ := filepath.Glob(filepath.Join(svgs, "*.svg"))
	if len(all) <= 1 {
		t.Errorf("--all wrote %d files", len(all))
	}

	if _, err := executeIn(t, dir, "export-svg", "bubble-sort", "-o", svgs, "--step", "999"); err == nil {
		t.Error("expected an out of range step to fail")
	}
}

func TestThemeCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := executeIn(t, dir, "theme", "ocean"); err != nil {
		t.Fatalf("theme ocean: %v", err)
	}
	out, err := executeIn(t, dir, "theme")
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if !strings.Contains(out, "* ocean") {
		t.Errorf("current theme not marked:\n%s", out)
	}
	if _, err := executeIn(t, dir, "theme", "neon"); err == nil {
		t.Error("expected an unknown theme to fail")
	}
}

func TestSelectHandsOff(t *testing.T) {
	dir := t.TempDir()
	if _, err := executeIn(t, dir, "select", "dijkstra"); err != nil {
		t.Fatalf("select: %v", err)
	}
	store, err := prefs.Open(filepath.Join(dir, "prefs.db"))
	if err != nil {
		t.Fatalf("prefs.Open: %v", err)
	}
	defer store.Close()
	name, ok, err := store.TakeSelected(context.Background())
	if err != nil || !ok || name != "dijkstra" {
		t.Errorf("TakeSelected = %q %v %v", name, ok, err)
	}

	if _, err := executeIn(t, dir, "select", "bogo-sort"); !errors.Is(err, anim.ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestConfigSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	if _, err := executeIn(t, dir, "config", "--save", "--theme", "retro"); err != nil {
		t.Fatalf("config --save: %v", err)
	}
	cfg, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "retro" {
		t.Errorf("theme = %q, want retro", cfg.Theme)
	}

	out, err := executeIn(t, dir, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "theme: retro") {
		t.Errorf("saved config not picked up:\n%s", out)
	}
}

func TestConfigDefaultOriginsAreLocal(t *testing.T) {
	out, err := executeIn(t, t.TempDir(), "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "http://localhost:*") {
		t.Errorf("expected local origins in:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		switch strings.TrimSpace(line) {
		case `- '*'`, `- "*"`, `- '*:*'`:
			t.Errorf("default config allows every origin:\n%s", out)
		}
	}
}
