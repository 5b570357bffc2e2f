package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/prefs"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	configFile string
	logLevel   string
	logFile    string
	prefsPath  string
	themeName  string
	language   string

	// run input
	preset    string
	input     string
	target    int
	speed     float64
	baseDelay time.Duration
	seed      int64

	// terminal output
	width     int
	height    int
	frameRate int
	noColor   bool

	cfg *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "algoviz [algorithm]",
		Short: "step through sorting, searching, graph and tree algorithms",
		Long: `algoviz animates classic algorithms one step at a time.

With no command it opens the interactive player. Pass an algorithm name to
jump straight to it.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (yaml or toml, default "+config.DefaultConfigPath()+")")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
	pf.StringVar(&prefsPath, "prefs", config.DefaultPrefsPath(), "preferences database")
	pf.StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&language, "lang", config.DefaultLanguage, "code sample language")

	addRunFlags(rootCmd)

	rootCmd.AddCommand(
		newRunCmd(),
		newTraceCmd(),
		newExportSVGCmd(),
		newListCmd(),
		newExplainCmd(),
		newPresetsCmd(),
		newThemeCmd(),
		newSelectCmd(),
		newConfigCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// addRunFlags registers the flags that describe a single run.
func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", config.DefaultInput, "comma separated integers")
	f.IntVar(&target, "target", 0, "value to look for (searches pick one from the data when unset)")
	f.StringVar(&preset, "preset", "", "use a named input preset")
	f.Float64VarP(&speed, "speed", "s", config.DefaultSpeed, "speed multiplier")
	f.DurationVar(&baseDelay, "delay", config.DefaultBaseDelay, "delay between steps at 1x")
	f.Int64Var(&seed, "seed", 0, "random seed for picked targets (0 uses the clock)")
}

func addTermFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&width, "width", 72, "canvas width in cells")
	f.IntVar(&height, "height", 18, "canvas height in cells")
	f.IntVar(&frameRate, "fps", 30, "maximum redraws per second")
	f.BoolVar(&noColor, "no-color", false, "disable colors")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg = c

	if logFile == "" {
		return logging.Configure(cfg.LogLevel)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	return logging.ConfigureWriter(f, cfg.LogLevel)
}

// loadConfig reads the config file, then applies a preset, then any flag
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (see algoviz presets)", preset)
		}
		p.Apply(c)
	}
	if flags.Changed("input") {
		c.Input = input
	}
	if flags.Changed("target") {
		t := target
		c.Target = &t
	}
	if flags.Changed("speed") {
		c.Speed = speed
	}
	if flags.Changed("delay") {
		c.BaseDelay = baseDelay
	}
	if flags.Changed("seed") {
		c.Seed = seed
	}
	if flags.Changed("theme") {
		c.Theme = themeName
	}
	if flags.Changed("lang") {
		c.Language = language
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("prefs") {
		c.PrefsPath = prefsPath
	}
	if flags.Changed("addr") {
		c.Server.Addr = addr
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func algorithmArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Algorithm
}

func resolveTheme() (viz.Theme, error) {
	t, ok := viz.LookupTheme(cfg.Theme)
	if !ok {
		return viz.Theme{}, fmt.Errorf("unknown theme %q (have %v)", cfg.Theme, viz.ThemeNames())
	}
	return t, nil
}

func newController(reg *algo.Registry) *engine.Controller {
	return engine.New(reg, engine.Config{
		BaseDelay: cfg.BaseDelay,
		Speed:     cfg.Speed,
		Seed:      cfg.Seed,
	})
}

// openPrefs opens the preferences database. Failing to open it only costs
// the saved theme and selection, so commands carry on without it.
func openPrefs() *prefs.Store {
	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		slog.Warn("Preferences unavailable.", "path", cfg.PrefsPath, "err", err)
		return nil
	}
	return store
}

func closePrefs(store *prefs.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		slog.Warn("Failed to close preferences.", "err", err)
	}
}

// discardLogs silences the default logger while the full-screen UI owns
// the terminal, unless logs already go to a file.
func discardLogs() {
	if logFile != "" {
		return
	}
	_ = logging.ConfigureWriter(io.Discard, cfg.LogLevel)
}
