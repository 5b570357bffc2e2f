package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/anim"
)

func sampleFrames() []anim.Frame {
	return []anim.Frame{
		{Seq: 1, Kind: anim.KindBars, Values: []int{2, 1}, Label: "compare 2, 1", Stats: anim.Stats{Comparisons: 1}},
		{Seq: 2, Kind: anim.KindBars, Values: []int{1, 2}, Label: "swap, done", Stats: anim.Stats{Comparisons: 1, Operations: 1}},
	}
}

func TestWriteJSON(t *testing.T) {
	target := 2
	var buf bytes.Buffer
	err := WriteJSON(&buf, TraceData{
		Algorithm: "linear-search",
		Input:     []int{2, 1},
		Target:    &target,
		Stats:     anim.Stats{Comparisons: 1, Operations: 1},
		Frames:    sampleFrames(),
	})
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got struct {
		Algorithm string `json:"algorithm"`
		Target    int    `json:"target"`
		Steps     int    `json:"steps"`
		Frames    []struct {
			Kind    string `json:"kind"`
			Outcome string `json:"outcome"`
		} `json:"frames"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Algorithm != "linear-search" || got.Target != 2 || got.Steps != 2 {
		t.Errorf("header = %+v", got)
	}
	if got.Frames[0].Kind != "bars" || got.Frames[0].Outcome != "none" {
		t.Errorf("enums not written as words: %+v", got.Frames[0])
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("output is not indented")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleFrames()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	want := [][]string{
		{"seq", "comparisons", "operations", "outcome", "label"},
		{"1", "1", "0", "none", "compare 2, 1"},
		{"2", "1", "1", "none", "swap, done"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}
