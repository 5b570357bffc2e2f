package config

import "sort"

// Preset is a named input for the sorting and searching generators.
type Preset struct {
	Description string
	Input       string
	Target      *int
}

func target(v int) *int { return &v }

var Presets = map[string]Preset{
	"example": {
		Description: "four elements, the worked example",
		Input:       "5, 3, 8, 1",
		Target:      target(5),
	},
	"textbook": {
		Description: "the classic seven element list",
		Input:       "64, 34, 25, 12, 22, 11, 90",
		Target:      target(22),
	},
	"reversed": {
		Description: "worst case for bubble and insertion sort",
		Input:       "9, 8, 7, 6, 5, 4, 3, 2, 1",
		Target:      target(1),
	},
	"sorted": {
		Description: "best case for insertion sort, worst for last-pivot quick sort",
		Input:       "1, 2, 3, 4, 5, 6, 7, 8, 9",
		Target:      target(10),
	},
	"duplicates": {
		Description: "repeated values",
		Input:       "4, 2, 4, 1, 2, 4, 3",
		Target:      target(2),
	},
	"single": {
		Description: "one element",
		Input:       "42",
		Target:      target(42),
	},
}

// GetPreset returns a copy of the named preset, nil if unknown.
func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	if p.Target != nil {
		p.Target = target(*p.Target)
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's input and target into cfg.
func (p *Preset) Apply(cfg *Config) {
	cfg.Input = p.Input
	cfg.Target = nil
	if p.Target != nil {
		cfg.Target = target(*p.Target)
	}
}
