package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/algoviz/internal/anim"
)

// TraceData is the JSON form of a recorded run.
type TraceData struct {
	Algorithm string       `json:"algorithm"`
	Input     []int        `json:"input,omitempty"`
	Target    *int         `json:"target,omitempty"`
	Steps     int          `json:"steps"`
	Stats     anim.Stats   `json:"stats"`
	Frames    []anim.Frame `json:"frames"`
}

func WriteJSON(w io.Writer, data TraceData) error {
	data.Steps = len(data.Frames)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one row per frame with the counters and label.
func WriteCSV(w io.Writer, frames []anim.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"seq", "comparisons", "operations", "outcome", "label"}); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{
			strconv.Itoa(f.Seq),
			strconv.Itoa(f.Stats.Comparisons),
			strconv.Itoa(f.Stats.Operations),
			f.Outcome.String(),
			f.Label,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
