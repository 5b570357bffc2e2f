package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/viz"
)

func (a *App) View() string {
	switch a.screen {
	case screenInput:
		return a.viewInput()
	case screenRun:
		return a.viewRun()
	default:
		return a.viewMenu()
	}
}

func (a *App) helpView() string {
	var km help.KeyMap
	switch a.screen {
	case screenInput:
		km = inputKeys(a.keys)
	case screenRun:
		km = runKeys(a.keys)
	default:
		km = menuKeys(a.keys)
	}
	return a.help.View(km)
}

func (a *App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("    " + a.styles.Subtle.Render("╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("            " + a.styles.Key.Render("a l g o v i z") + "\n")
	b.WriteString("    " + a.styles.Subtle.Render("╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")
	for i, id := range a.ids {
		e := a.catalog.Lookup(id)
		line := fmt.Sprintf("%-16s", id)
		desc := fmt.Sprintf("%-28s %s", e.Title, a.catalog.Complexity(id))
		if i == a.cursor {
			b.WriteString("      " + a.styles.Selected.Render("▸ "+line) + a.styles.Value.Render(desc) + "\n")
		} else {
			b.WriteString("        " + a.styles.Subtle.Render(line+desc) + "\n")
		}
	}
	b.WriteString("\n    " + a.styles.Subtle.Render("theme: "+a.theme.Name) + "\n\n")
	b.WriteString("    " + a.helpView() + "\n")
	return b.String()
}

func (a *App) viewInput() string {
	id := a.selected()
	e := a.catalog.Lookup(id)

	var b strings.Builder
	b.WriteString("\n      " + a.styles.Key.Render(e.Title) + "  " + a.styles.Subtle.Render(a.catalog.Complexity(id)) + "\n")
	b.WriteString("      " + a.styles.Subtle.Render(strings.Repeat("─", 40)) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Width(max(a.width-12, 20)).MarginLeft(6).Render(e.Description) + "\n\n")

	b.WriteString("      " + a.inputs[0].View() + "\n")
	if a.isSearch() {
		b.WriteString("      " + a.inputs[1].View() + "\n")
		b.WriteString("      " + a.styles.Subtle.Render("tab switches field") + "\n")
	}
	if a.errMsg != "" {
		b.WriteString("\n      " + a.styles.Error.Render(a.errMsg) + "\n")
	}
	b.WriteString("\n      " + a.helpView() + "\n")
	return b.String()
}

func (a *App) viewRun() string {
	id := a.selected()
	title := a.styles.Title.Render(a.catalog.Lookup(id).Title)
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", a.styles.Status(a.state))

	cw, ch := a.canvasSize()
	canvas := viz.NewCanvas(cw, ch)
	if a.hasFrame {
		canvas.Paint(viz.Render(a.frame, a.theme, canvas.Viewport()))
	}
	stage := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.theme.Muted).
		Render(strings.TrimSuffix(canvas.String(), "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, stage, " ", a.sidePanel())

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(body + "\n")
	if a.hasFrame {
		b.WriteString(" " + a.styles.Value.Render(a.frame.Label) + "   " + viz.Legend(a.frame, a.theme) + "\n")
	} else {
		b.WriteString(" " + a.styles.Subtle.Render("press s to start") + "\n")
	}
	if a.errMsg != "" {
		b.WriteString(" " + a.styles.Error.Render(a.errMsg) + "\n")
	}
	if a.showInfo {
		b.WriteString(a.styles.Panel.Render(a.explain.View()) + "\n")
	}
	b.WriteString(" " + a.helpView())
	return b.String()
}

func (a *App) sidePanel() string {
	row := func(label, value string) string {
		return a.styles.Label.Render(label) + a.styles.Value.Render(value) + "\n"
	}

	stats := a.ctrl.Stats()
	var b strings.Builder
	b.WriteString(row("algorithm", a.selected()))
	b.WriteString(row("state", a.state.String()))
	b.WriteString(row("comparisons", fmt.Sprint(stats.Comparisons)))
	b.WriteString(row("operations", fmt.Sprint(stats.Operations)))
	b.WriteString(row("speed", fmt.Sprintf("%gx", a.ctrl.Speed())))
	b.WriteString(viz.ProgressBar(speedGauge(a.ctrl.Speed()), panelWidth-6, a.theme) + "\n")
	b.WriteString(row("complexity", a.catalog.Complexity(a.selected())))
	if a.hasFrame {
		b.WriteString(row("step", fmt.Sprint(a.frame.Seq)))
	}
	b.WriteString(viz.Separator(panelWidth-4, a.theme) + "\n")

	if len(a.comparisons) > 1 {
		chart := asciigraph.PlotMany(
			[][]float64{a.comparisons, a.operations},
			asciigraph.Height(6),
			asciigraph.Width(panelWidth-12),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.Caption("comparisons / operations"),
		)
		b.WriteString(chart + "\n")
	} else {
		b.WriteString(a.styles.Subtle.Render("counters chart appears once\nthe run emits frames") + "\n")
	}
	return a.styles.Panel.Width(panelWidth).Render(b.String())
}
