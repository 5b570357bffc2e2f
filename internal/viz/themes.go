package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/anim"
)

// Theme maps color roles to concrete colors. The same palette drives the
// terminal canvas, the TUI chrome and SVG export.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Edge       lipgloss.Color

	Bar     lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Pivot   lipgloss.Color
	Range   lipgloss.Color
	Mid     lipgloss.Color
	Found   lipgloss.Color
	Visited lipgloss.Color
	Active  lipgloss.Color
	Sorted  lipgloss.Color
}

var (
	ThemeLight = Theme{
		Name:       "light",
		Background: lipgloss.Color("#f5f6fa"),
		Text:       lipgloss.Color("#2f3640"),
		Muted:      lipgloss.Color("#7f8c8d"),
		Accent:     lipgloss.Color("#3498db"),
		Edge:       lipgloss.Color("#95a5a6"),
		Bar:        lipgloss.Color("#3498db"),
		Compare:    lipgloss.Color("#e74c3c"),
		Swap:       lipgloss.Color("#f1c40f"),
		Pivot:      lipgloss.Color("#9b59b6"),
		Range:      lipgloss.Color("#85c1e9"),
		Mid:        lipgloss.Color("#e67e22"),
		Found:      lipgloss.Color("#2ecc71"),
		Visited:    lipgloss.Color("#27ae60"),
		Active:     lipgloss.Color("#e74c3c"),
		Sorted:     lipgloss.Color("#2ecc71"),
	}

	ThemeDark = Theme{
		Name:       "dark",
		Background: lipgloss.Color("#1e272e"),
		Text:       lipgloss.Color("#ecf0f1"),
		Muted:      lipgloss.Color("#808e9b"),
		Accent:     lipgloss.Color("#0fbcf9"),
		Edge:       lipgloss.Color("#485460"),
		Bar:        lipgloss.Color("#0fbcf9"),
		Compare:    lipgloss.Color("#ff5e57"),
		Swap:       lipgloss.Color("#ffd32a"),
		Pivot:      lipgloss.Color("#be2edd"),
		Range:      lipgloss.Color("#4bcffa"),
		Mid:        lipgloss.Color("#ffa801"),
		Found:      lipgloss.Color("#0be881"),
		Visited:    lipgloss.Color("#05c46b"),
		Active:     lipgloss.Color("#ff3f34"),
		Sorted:     lipgloss.Color("#0be881"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#ff00ff"),
		Edge:       lipgloss.Color("#444466"),
		Bar:        lipgloss.Color("#00ffff"),
		Compare:    lipgloss.Color("#ff00ff"),
		Swap:       lipgloss.Color("#ffff00"),
		Pivot:      lipgloss.Color("#ff8800"),
		Range:      lipgloss.Color("#008888"),
		Mid:        lipgloss.Color("#ff8800"),
		Found:      lipgloss.Color("#00ff00"),
		Visited:    lipgloss.Color("#00ff88"),
		Active:     lipgloss.Color("#ff0000"),
		Sorted:     lipgloss.Color("#00ff00"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
		Edge:       lipgloss.Color("#005500"),
		Bar:        lipgloss.Color("#00cc00"),
		Compare:    lipgloss.Color("#ffff00"),
		Swap:       lipgloss.Color("#88ff88"),
		Pivot:      lipgloss.Color("#ffffff"),
		Range:      lipgloss.Color("#007700"),
		Mid:        lipgloss.Color("#ffff00"),
		Found:      lipgloss.Color("#ffffff"),
		Visited:    lipgloss.Color("#88ff88"),
		Active:     lipgloss.Color("#ffff00"),
		Sorted:     lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Edge:       lipgloss.Color("#335577"),
		Bar:        lipgloss.Color("#0077be"),
		Compare:    lipgloss.Color("#ff4444"),
		Swap:       lipgloss.Color("#ffcc00"),
		Pivot:      lipgloss.Color("#ffd700"),
		Range:      lipgloss.Color("#00a8cc"),
		Mid:        lipgloss.Color("#ffcc00"),
		Found:      lipgloss.Color("#00ff88"),
		Visited:    lipgloss.Color("#00ff88"),
		Active:     lipgloss.Color("#ff4444"),
		Sorted:     lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Edge:       lipgloss.Color("#8b6b8c"),
		Bar:        lipgloss.Color("#ff6b6b"),
		Compare:    lipgloss.Color("#feca57"),
		Swap:       lipgloss.Color("#ff9ff3"),
		Pivot:      lipgloss.Color("#ffc048"),
		Range:      lipgloss.Color("#c8808a"),
		Mid:        lipgloss.Color("#ffc048"),
		Found:      lipgloss.Color("#5fd068"),
		Visited:    lipgloss.Color("#5fd068"),
		Active:     lipgloss.Color("#ff4757"),
		Sorted:     lipgloss.Color("#5fd068"),
	}

	// Themes lists every palette in cycling order. light and dark come
	// first since they are the ones the web page offers.
	Themes = []Theme{
		ThemeLight,
		ThemeDark,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// LookupTheme finds a theme by name.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// GetTheme returns the named theme, or light when the name is unknown.
func GetTheme(name string) Theme {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return ThemeLight
}

// NextTheme returns the theme after name in cycling order.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color resolves a role to this theme's color.
func (t Theme) Color(r anim.Role) lipgloss.Color {
	switch r {
	case anim.RoleCompare:
		return t.Compare
	case anim.RoleSwap:
		return t.Swap
	case anim.RolePivot:
		return t.Pivot
	case anim.RoleRange:
		return t.Range
	case anim.RoleMid:
		return t.Mid
	case anim.RoleFound:
		return t.Found
	case anim.RoleVisited:
		return t.Visited
	case anim.RoleActive:
		return t.Active
	case anim.RoleSorted:
		return t.Sorted
	default:
		return t.Bar
	}
}
