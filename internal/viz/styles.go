package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/anim"
)

// Styles is the TUI chrome derived from a theme.
type Styles struct {
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Panel     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Key       lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Running   lipgloss.Style
	Paused    lipgloss.Style
	Completed lipgloss.Style
	Cancelled lipgloss.Style
}

func NewStyles(t Theme) Styles {
	bold := lipgloss.NewStyle().Bold(true)
	return Styles{
		Title: bold.Foreground(t.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Subtle: lipgloss.NewStyle().Foreground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Label:     lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		Value:     bold.Foreground(t.Text),
		Key:       bold.Foreground(t.Accent),
		Selected:  bold.Foreground(t.Accent),
		Error:     bold.Foreground(t.Compare),
		Running:   bold.Foreground(t.Found),
		Paused:    bold.Foreground(t.Swap),
		Completed: bold.Foreground(t.Sorted),
		Cancelled: bold.Foreground(t.Compare),
	}
}

// Status renders a run state as a colored badge.
func (s Styles) Status(st anim.RunState) string {
	label := strings.ToUpper(st.String())
	switch st {
	case anim.Running:
		return s.Running.Render("▶ " + label)
	case anim.Paused:
		return s.Paused.Render("❚❚ " + label)
	case anim.Completed:
		return s.Completed.Render("✓ " + label)
	case anim.Cancelled:
		return s.Cancelled.Render("■ " + label)
	default:
		return s.Subtle.Render("○ " + label)
	}
}

// Legend lists the roles a frame actually uses, as colored swatches.
func Legend(f anim.Frame, t Theme) string {
	seen := make(map[anim.Role]bool)
	var parts []string
	add := func(r anim.Role) {
		if seen[r] {
			return
		}
		seen[r] = true
		sw := lipgloss.NewStyle().Foreground(t.Color(r)).Render("■")
		parts = append(parts, sw+" "+r.String())
	}
	for r := anim.RoleCompare; r <= anim.RoleSorted; r++ {
		for _, used := range f.Colors {
			if used == r {
				add(r)
				break
			}
		}
	}
	if len(f.Highlight) > 0 && len(f.Colors) == 0 {
		add(anim.RoleCompare)
	}
	return strings.Join(parts, "  ")
}

// Separator draws a muted rule with a center mark.
func Separator(width int, t Theme) string {
	if width < 8 {
		return ""
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

// ProgressBar fills width cells proportionally to percent in [0,1].
func ProgressBar(percent float64, width int, t Theme) string {
	filled := int(percent * float64(width))
	filled = max(0, min(filled, width))
	bar := lipgloss.NewStyle().Foreground(t.Accent).Render(strings.Repeat("█", filled))
	return bar + lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
}
