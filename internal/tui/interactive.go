package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/prefs"
	"github.com/san-kum/algoviz/internal/viz"
)

type screen int

const (
	screenMenu screen = iota
	screenInput
	screenRun
)

const (
	panelWidth    = 36
	explainHeight = 12
	seriesCap     = 400
)

var speedSteps = []float64{0.25, 0.5, 1, 2, 3, 5, 8, 10, 15, 20, 30, 50}

type frameMsg struct{ frame anim.Frame }

type stateMsg struct{ state anim.RunState }

// feed turns controller callbacks into tea messages.
type feed struct {
	events chan tea.Msg
	done   chan struct{}
	once   sync.Once
}

func newFeed() *feed {
	return &feed{events: make(chan tea.Msg, 256), done: make(chan struct{})}
}

// OnFrame drops the frame once the queue is half full so state changes
// always find room; the next frame redraws everything anyway.
func (f *feed) OnFrame(fr anim.Frame) {
	if len(f.events) >= cap(f.events)/2 {
		return
	}
	f.send(frameMsg{fr})
}

func (f *feed) OnState(s anim.RunState) { f.send(stateMsg{s}) }

func (f *feed) send(m tea.Msg) {
	select {
	case f.events <- m:
	case <-f.done:
	}
}

func (f *feed) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case m := <-f.events:
			return m
		case <-f.done:
			return nil
		}
	}
}

func (f *feed) close() { f.once.Do(func() { close(f.done) }) }

// Options seeds the interactive app. Empty fields fall back to saved
// preferences and then to built-in defaults.
type Options struct {
	Algorithm string
	Input     string
	Target    *int
	Theme     string
	Language  string
}

// App is the interactive algorithm browser and player.
type App struct {
	ctx      context.Context
	ctrl     *engine.Controller
	registry *algo.Registry
	catalog  *catalog.Catalog
	prefs    *prefs.Store
	feed     *feed

	keys    keyMap
	help    help.Model
	inputs  []textinput.Model
	focus   int
	explain viewport.Model

	screen   screen
	ids      []string
	cursor   int
	opts     Options
	theme    viz.Theme
	styles   viz.Styles
	lang     string
	showInfo bool
	errMsg   string

	frame       anim.Frame
	hasFrame    bool
	state       anim.RunState
	comparisons []float64
	operations  []float64

	width, height int
}

// NewApp builds the app and subscribes it to ctrl. store may be nil.
func NewApp(ctx context.Context, ctrl *engine.Controller, registry *algo.Registry, cat *catalog.Catalog, store *prefs.Store, opts Options) *App {
	a := &App{
		ctx:      ctx,
		ctrl:     ctrl,
		registry: registry,
		catalog:  cat,
		prefs:    store,
		feed:     newFeed(),
		keys:     defaultKeys(),
		help:     help.New(),
		explain:  viewport.New(0, 0),
		ids:      registry.List(),
		opts:     opts,
		lang:     opts.Language,
		showInfo: true,
		width:    100,
		height:   32,
	}
	if a.lang == "" {
		a.lang = catalog.Languages[0].Name
	}

	themeName := opts.Theme
	if themeName == "" && store != nil {
		saved, err := store.Theme(ctx)
		if err != nil {
			slog.Warn("Failed to read saved theme.", "err", err)
		}
		themeName = saved
	}
	a.setTheme(viz.GetTheme(themeName))
	a.layout()

	selected := opts.Algorithm
	if selected == "" && store != nil {
		if name, ok, err := store.TakeSelected(ctx); err != nil {
			slog.Warn("Failed to read selected algorithm.", "err", err)
		} else if ok {
			selected = name
		}
	}
	for i, id := range a.ids {
		if id == selected {
			a.cursor = i
		}
	}

	a.inputs = []textinput.Model{newInput("data: "), newInput("target: ")}
	a.inputs[1].Placeholder = "random value from the data"
	ctrl.Subscribe(a.feed)
	return a
}

func newInput(prompt string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.CharLimit = 512
	return in
}

// Run shows the app until the user quits or ctx is done.
func Run(ctx context.Context, a *App) error {
	defer a.feed.close()
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.feed.next())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		return a, nil
	case frameMsg:
		a.onFrame(msg.frame)
		return a, a.feed.next()
	case stateMsg:
		a.state = msg.state
		if a.state == anim.Idle {
			a.clearRun()
		}
		return a, a.feed.next()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (a.screen != screenInput && key.Matches(msg, a.keys.Quit)) {
			return a, a.quit()
		}
		switch a.screen {
		case screenMenu:
			return a.menuKey(msg)
		case screenInput:
			return a.inputKey(msg)
		case screenRun:
			return a.runKey(msg)
		}
	}
	if a.screen == screenInput {
		var cmd tea.Cmd
		a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) quit() tea.Cmd {
	if a.prefs != nil && len(a.ids) > 0 {
		if err := a.prefs.SetSelected(a.ctx, a.selected()); err != nil {
			slog.Warn("Failed to save selected algorithm.", "err", err)
		}
	}
	a.feed.close()
	a.ctrl.Reset()
	return tea.Quit
}

func (a *App) selected() string {
	if len(a.ids) == 0 {
		return ""
	}
	return a.ids[a.cursor]
}

func (a *App) isSearch() bool {
	alg, err := a.registry.Get(a.selected())
	return err == nil && algo.IsSearch(alg)
}

func (a *App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.ids)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Theme):
		a.cycleTheme()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(msg, a.keys.Select):
		return a, a.openInput()
	}
	return a, nil
}

func (a *App) openInput() tea.Cmd {
	a.screen = screenInput
	a.errMsg = ""
	if a.inputs[0].Value() == "" {
		a.inputs[0].SetValue(a.opts.Input)
	}
	if a.opts.Target != nil && a.inputs[1].Value() == "" {
		a.inputs[1].SetValue(strconv.Itoa(*a.opts.Target))
	}
	a.focus = 0
	a.inputs[1].Blur()
	return a.inputs[0].Focus()
}

func (a *App) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.screen = screenMenu
		a.errMsg = ""
		return a, nil
	case msg.Type == tea.KeyTab && a.isSearch():
		a.inputs[a.focus].Blur()
		a.focus = (a.focus + 1) % len(a.inputs)
		return a, a.inputs[a.focus].Focus()
	case key.Matches(msg, a.keys.Select):
		if a.start() {
			a.screen = screenRun
			a.inputs[a.focus].Blur()
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

// start asks the controller for a run of the selected algorithm and
// reports whether the request was accepted.
func (a *App) start() bool {
	req := engine.Request{
		Algorithm: a.selected(),
		Input:     a.inputs[0].Value(),
		Speed:     a.ctrl.Speed(),
	}
	if a.isSearch() {
		if raw := strings.TrimSpace(a.inputs[1].Value()); raw != "" {
			t, err := strconv.Atoi(raw)
			if err != nil {
				a.errMsg = fmt.Sprintf("invalid target %q", raw)
				return false
			}
			req.Target = &t
		}
	}
	if err := a.ctrl.StartRequest(req); err != nil {
		a.errMsg = err.Error()
		return false
	}
	a.errMsg = ""
	a.refreshExplain()
	return true
}

func (a *App) runKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Toggle):
		a.ctrl.Toggle()
	case key.Matches(msg, a.keys.Start):
		a.start()
	case key.Matches(msg, a.keys.Reset):
		a.ctrl.Reset()
	case key.Matches(msg, a.keys.Cancel):
		a.ctrl.Cancel()
	case key.Matches(msg, a.keys.Faster):
		a.setSpeed(fasterSpeed(a.ctrl.Speed()))
	case key.Matches(msg, a.keys.Slower):
		a.setSpeed(slowerSpeed(a.ctrl.Speed()))
	case key.Matches(msg, a.keys.Theme):
		a.cycleTheme()
		a.refreshExplain()
	case key.Matches(msg, a.keys.Explain):
		a.showInfo = !a.showInfo
		a.layout()
	case key.Matches(msg, a.keys.Language):
		a.lang = nextLanguage(a.lang)
		a.refreshExplain()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.layout()
	case key.Matches(msg, a.keys.Back):
		a.ctrl.Reset()
		a.screen = screenMenu
	default:
		var cmd tea.Cmd
		a.explain, cmd = a.explain.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) setSpeed(s float64) {
	if err := a.ctrl.SetSpeed(s); err != nil {
		a.errMsg = err.Error()
	}
}

func (a *App) setTheme(t viz.Theme) {
	a.theme = t
	a.styles = viz.NewStyles(t)
	a.help.Styles.ShortKey = a.styles.Key
	a.help.Styles.FullKey = a.styles.Key
	a.help.Styles.ShortDesc = a.styles.Subtle
	a.help.Styles.FullDesc = a.styles.Subtle
}

func (a *App) cycleTheme() {
	a.setTheme(viz.NextTheme(a.theme.Name))
	if a.prefs == nil {
		return
	}
	if err := a.prefs.SetTheme(a.ctx, a.theme.Name); err != nil {
		slog.Warn("Failed to save theme.", "theme", a.theme.Name, "err", err)
	}
}

func (a *App) onFrame(f anim.Frame) {
	if f.Seq <= 1 {
		a.comparisons = a.comparisons[:0]
		a.operations = a.operations[:0]
	}
	a.frame = f
	a.hasFrame = true
	a.comparisons = appendCapped(a.comparisons, float64(f.Stats.Comparisons))
	a.operations = appendCapped(a.operations, float64(f.Stats.Operations))
}

func (a *App) clearRun() {
	a.frame = anim.Frame{}
	a.hasFrame = false
	a.comparisons = a.comparisons[:0]
	a.operations = a.operations[:0]
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > seriesCap {
		s = s[len(s)-seriesCap:]
	}
	return s
}

func (a *App) refreshExplain() {
	id := a.selected()
	var b strings.Builder
	b.WriteString(catalog.Explain(a.catalog.Lookup(id)))
	code, err := a.catalog.Sample(id, a.lang)
	if err == nil {
		style := "monokai"
		if a.theme.Name == viz.ThemeLight.Name {
			style = "github"
		}
		if hl, herr := catalog.Highlight(code, a.lang, style); herr == nil {
			code = hl
		}
		fmt.Fprintf(&b, "\n%s\n%s", a.styles.Label.Render(a.lang), code)
	}
	a.explain.SetContent(b.String())
	a.explain.GotoTop()
}

func (a *App) layout() {
	a.help.Width = a.width
	a.explain.Width = max(a.width-4, 20)
	a.explain.Height = explainHeight
}

// canvasSize is the drawing area left after the side panel and the
// explanation pane.
func (a *App) canvasSize() (int, int) {
	w := max(a.width-panelWidth-6, 20)
	reserved := 6 + lipgloss.Height(a.helpView())
	if a.showInfo {
		reserved += explainHeight + 2
	}
	return w, max(a.height-reserved, 8)
}

func fasterSpeed(cur float64) float64 {
	for _, s := range speedSteps {
		if s > cur {
			return s
		}
	}
	return speedSteps[len(speedSteps)-1]
}

func slowerSpeed(cur float64) float64 {
	for i := len(speedSteps) - 1; i >= 0; i-- {
		if speedSteps[i] < cur {
			return speedSteps[i]
		}
	}
	return speedSteps[0]
}

// speedGauge places cur on the speed ladder, 0 to 1.
func speedGauge(cur float64) float64 {
	for i, s := range speedSteps {
		if cur <= s {
			return float64(i+1) / float64(len(speedSteps))
		}
	}
	return 1
}

func nextLanguage(cur string) string {
	for i, l := range catalog.Languages {
		if l.Name == cur {
			return catalog.Languages[(i+1)%len(catalog.Languages)].Name
		}
	}
	return catalog.Languages[0].Name
}
