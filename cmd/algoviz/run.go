package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	traceFormat string
	tracePlot   bool
	traceOut    string
	svgDir      string
	svgStep     int
	svgAll      bool
	svgWidth    int
	svgHeight   int
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "animate one run in the terminal without the interactive player",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(cmd)
	addTermFlags(cmd)
	return cmd
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "record every step of a run without pacing",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceRun,
	}
	addRunFlags(cmd)
	cmd.Flags().StringVarP(&traceFormat, "format", "f", "table", "output format (table, json, csv)")
	cmd.Flags().BoolVar(&tracePlot, "plot", false, "plot the counters after the table")
	cmd.Flags().StringVarP(&traceOut, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func newExportSVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "render steps of a run as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addRunFlags(cmd)
	cmd.Flags().StringVarP(&svgDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVar(&svgStep, "step", 0, "step to render (0 is the last)")
	cmd.Flags().BoolVar(&svgAll, "all", false, "render every step")
	cmd.Flags().IntVar(&svgWidth, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&svgHeight, "height", 400, "image height in pixels")
	return cmd
}

func runInteractive(cmd *cobra.Command, args []string) error {
	reg := algo.NewRegistry()
	opts := tui.Options{
		Input:    cfg.Input,
		Target:   cfg.Target,
		Language: cfg.Language,
	}
	if len(args) > 0 {
		if _, err := reg.Get(args[0]); err != nil {
			return err
		}
		opts.Algorithm = args[0]
	}
	// a theme given on the command line wins over the saved one
	if cmd.Flags().Changed("theme") {
		if _, err := resolveTheme(); err != nil {
			return err
		}
		opts.Theme = cfg.Theme
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openPrefs()
	defer closePrefs(store)

	discardLogs()
	ctrl := newController(reg)
	app := tui.NewApp(ctx, ctrl, reg, catalog.MustLoad(), store, opts)
	return tui.Run(ctx, app)
}

func runLive(cmd *cobra.Command, args []string) error {
	theme, err := resolveTheme()
	if err != nil {
		return err
	}
	reg := algo.NewRegistry()
	ctrl := newController(reg)

	out := cmd.OutOrStdout()
	r := tui.NewLiveRenderer(out, theme, width, height, frameRate, !noColor)
	ctrl.Subscribe(r)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	req := engine.Request{
		Algorithm: algorithmArg(args),
		Input:     cfg.Input,
		Speed:     cfg.Speed,
		Target:    cfg.Target,
	}
	r.Start()
	if err := ctrl.StartRequest(req); err != nil {
		r.Stop()
		return err
	}

	done := make(chan struct{})
	go func() {
		ctrl.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		ctrl.Cancel()
		<-done
	}
	r.Stop()

	stats := ctrl.Stats()
	fmt.Fprintf(out, "\n  %s: %d comparisons, %d operations\n", req.Algorithm, stats.Comparisons, stats.Operations)
	return nil
}

// record runs the selected algorithm to completion without pacing. Searches
// without an explicit target get one drawn from the data with cfg.Seed, the
// way the controller does it.
func record(ctx context.Context, name string) (*algo.Recorder, anim.Input, error) {
	a, err := algo.NewRegistry().Get(name)
	if err != nil {
		return nil, anim.Input{}, err
	}
	data, err := anim.ParseInput(cfg.Input)
	if err != nil {
		return nil, anim.Input{}, err
	}
	in := anim.Input{Data: data, Target: cfg.Target}
	if algo.IsSearch(a) && in.Target == nil {
		t := data[rand.New(rand.NewSource(cfg.Seed)).Intn(len(data))]
		in.Target = &t
	}
	rec, err := algo.Trace(ctx, a, in)
	if err != nil {
		return nil, in, fmt.Errorf("tracing %s: %w", name, err)
	}
	return rec, in, nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	name := algorithmArg(args)
	rec, in, err := record(cmd.Context(), name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if traceOut != "" {
		f, err := os.Create(traceOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch traceFormat {
	case "json":
		return export.WriteJSON(out, export.TraceData{
			Algorithm: name,
			Input:     in.Data,
			Target:    in.Target,
			Stats:     rec.Stats,
			Frames:    rec.Frames,
		})
	case "csv":
		return export.WriteCSV(out, rec.Frames)
	case "table":
	default:
		return fmt.Errorf("unknown format %q (table, json, csv)", traceFormat)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tCOMPARISONS\tOPERATIONS\tLABEL")
	for _, f := range rec.Frames {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", f.Seq, f.Stats.Comparisons, f.Stats.Operations, f.Label)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if last, ok := rec.Last(); ok && last.Outcome != anim.OutcomeNone {
		fmt.Fprintf(out, "\noutcome: %s\n", last.Outcome)
	}

	if tracePlot && len(rec.Frames) > 1 {
		comparisons := make([]float64, len(rec.Frames))
		operations := make([]float64, len(rec.Frames))
		for i, f := range rec.Frames {
			comparisons[i] = float64(f.Stats.Comparisons)
			operations[i] = float64(f.Stats.Operations)
		}
		graph := asciigraph.PlotMany([][]float64{comparisons, operations},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.Caption(name+": comparisons (red) / operations (blue)"),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	theme, err := resolveTheme()
	if err != nil {
		return err
	}
	name := algorithmArg(args)
	rec, _, err := record(cmd.Context(), name)
	if err != nil {
		return err
	}
	if len(rec.Frames) == 0 {
		return fmt.Errorf("%s produced no frames", name)
	}

	frames := rec.Frames
	switch {
	case svgAll:
	case svgStep == 0:
		frames = frames[len(frames)-1:]
	case svgStep < 0 || svgStep > len(frames):
		return fmt.Errorf("step %d out of range 1..%d", svgStep, len(frames))
	default:
		frames = frames[svgStep-1 : svgStep]
	}

	if err := os.MkdirAll(svgDir, 0o755); err != nil {
		return err
	}
	vp := viz.Viewport{Width: float64(svgWidth), Height: float64(svgHeight)}
	for _, f := range frames {
		path := filepath.Join(svgDir, fmt.Sprintf("%s-%03d.svg", name, f.Seq))
		if err := os.WriteFile(path, []byte(export.FrameSVG(f, vp, theme)), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
