package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	plainText  bool
	saveConfig bool
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}
}

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [algorithm]",
		Short: "describe an algorithm and show a code sample",
		Args:  cobra.MaximumNArgs(1),
		RunE:  explainAlgorithm,
	}
	cmd.Flags().BoolVar(&plainText, "plain", false, "print the sample without syntax highlighting")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list input presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tINPUT\tTARGET\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				t := "-"
				if p.Target != nil {
					t = fmt.Sprint(*p.Target)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, p.Input, t, p.Description)
			}
			return w.Flush()
		},
	}
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "show or save the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE:  themeCommand,
	}
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <algorithm>",
		Short: "preselect an algorithm for the next interactive session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := algo.NewRegistry().Get(args[0]); err != nil {
				return err
			}
			store := openPrefs()
			if store == nil {
				return errors.New("preferences database unavailable")
			}
			defer closePrefs(store)
			return store.SetSelected(cmd.Context(), args[0])
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	cmd.Flags().BoolVar(&saveConfig, "save", false, "write it to the config file")
	return cmd
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := algo.NewRegistry()
	cat := catalog.MustLoad()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tCOMPLEXITY\tTITLE")
	for _, id := range reg.List() {
		a, err := reg.Get(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, a.Kind(), cat.Complexity(id), cat.Lookup(id).Title)
	}
	return w.Flush()
}

func explainAlgorithm(cmd *cobra.Command, args []string) error {
	id := algorithmArg(args)
	cat := catalog.MustLoad()
	e, ok := cat.Find(id)
	if !ok {
		return fmt.Errorf("no explanation for %q", id)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, catalog.Explain(e))

	code, err := cat.Sample(id, cfg.Language)
	if err != nil {
		return err
	}
	if !plainText {
		style := "monokai"
		if cfg.Theme == viz.ThemeLight.Name {
			style = "github"
		}
		if code, err = catalog.Highlight(code, cfg.Language, style); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "%s (%s):\n\n%s\n", e.Title, cfg.Language, code)
	return nil
}

func themeCommand(cmd *cobra.Command, args []string) error {
	store := openPrefs()
	if store == nil {
		return errors.New("preferences database unavailable")
	}
	defer closePrefs(store)
	ctx := cmd.Context()

	if len(args) == 1 {
		t, ok := viz.LookupTheme(args[0])
		if !ok {
			return fmt.Errorf("unknown theme %q (have %v)", args[0], viz.ThemeNames())
		}
		return store.SetTheme(ctx, t.Name)
	}

	current, err := store.Theme(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, name := range viz.ThemeNames() {
		mark := "  "
		if name == current {
			mark = "* "
		}
		fmt.Fprintln(out, mark+name)
	}
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	if saveConfig {
		path := configFile
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "saved", path)
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
