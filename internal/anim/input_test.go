package anim

import (
	"errors"
	"slices"
	"testing"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"simple", "5,3,8,1", []int{5, 3, 8, 1}},
		{"spaces", " 64, 34 ,25 ", []int{64, 34, 25}},
		{"negative", "-2,0,7", []int{-2, 0, 7}},
		{"drops junk", "4,abc,,9", []int{4, 9}},
		{"single", "42", []int{42}},
		{"fraction truncates", "3.7,-2.9", []int{3, -2}},
		{"trailing text", "12px,7 apples", []int{12, 7}},
		{"explicit plus", "+5", []int{5}},
		{"exponent stops at e", "1e3", []int{1}},
		{"bare sign dropped", "-,+,4", []int{4}},
		{"overflow dropped", "99999999999999999999,8", []int{8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseInput(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseInput_Empty(t *testing.T) {
	for _, raw := range []string{"", "  ", "a,b,c", ",,,"} {
		_, err := ParseInput(raw)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("ParseInput(%q): expected ErrEmptyInput, got %v", raw, err)
		}
		var inErr *InputError
		if !errors.As(err, &inErr) || inErr.Raw != raw {
			t.Errorf("ParseInput(%q): expected InputError carrying raw text, got %v", raw, err)
		}
	}
}

func TestFormatInts(t *testing.T) {
	if got := FormatInts([]int{1, 3, 5, 8}); got != "1,3,5,8" {
		t.Errorf("FormatInts = %q", got)
	}
}
