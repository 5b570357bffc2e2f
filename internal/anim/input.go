package anim

import (
	"strconv"
	"strings"
)

// Input is the data a run operates on. Target is only read by searches;
// when nil the controller picks one from Data.
type Input struct {
	Data   []int
	Target *int
}

// ParseInput turns comma separated text into integers. Each field
// contributes its leading decimal integer, so "3.7" reads as 3 and "12px"
// as 12; fields with no leading digits are dropped. An empty result is an
// *InputError wrapping ErrEmptyInput.
func ParseInput(raw string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(raw, ",") {
		v, ok := leadingInt(strings.TrimSpace(field))
		if !ok {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, &InputError{Raw: raw, Err: ErrEmptyInput}
	}
	return out, nil
}

// leadingInt reads an optional sign followed by at least one digit from the
// start of s. Values outside the int range are rejected.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatInts is the inverse of ParseInput.
func FormatInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
