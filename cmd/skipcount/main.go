// Package main provides the CLI entrypoint for skipcount.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/skipcount/internal/catalog"
	"github.com/verte-zerg/skipcount/internal/config"
	"github.com/verte-zerg/skipcount/internal/generator"
	"github.com/verte-zerg/skipcount/internal/model"
	"github.com/verte-zerg/skipcount/internal/tui"
)

const (
	defaultReshuffle = "start"
	defaultColumns   = 5
	maxColumns       = 10
	debugLogEnv      = "SKIPCOUNT_DEBUG_LOG"
)

type playOptions struct {
	mode         string
	reshuffle    string
	columns      int
	seed         int64
	noAnimations bool
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &playOptions{}
	rootCmd := &cobra.Command{
		Use:           "skipcount",
		Short:         "Skip-counting game for kids",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlayCmd(cmd, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.mode, "mode", "", "counting mode to open directly ("+strings.Join(catalog.IDs(), ", ")+")")
	rootCmd.Flags().StringVar(&opts.reshuffle, "reshuffle", defaultReshuffle, "when to reshuffle tiles: start or correct")
	rootCmd.Flags().IntVar(&opts.columns, "columns", defaultColumns, "tile grid columns")
	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "shuffle seed (0 = random)")
	rootCmd.Flags().BoolVar(&opts.noAnimations, "no-animations", false, "disable bounce, shake and pulse effects")

	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, opts *playOptions) error {
	cfg, err := resolveConfig(cmd, opts, config.DefaultConfigPath())
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("skipcount needs an interactive terminal")
	}

	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	m := tui.NewModel(cfg, generator.NewSeeded(cfg.Seed))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveConfig merges the config file with flags; explicitly set flags win.
func resolveConfig(cmd *cobra.Command, opts *playOptions, path string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	animations := !opts.noAnimations
	applyStringConfig(cmd, "mode", &opts.mode, fileCfg.Game.Mode)
	applyStringConfig(cmd, "reshuffle", &opts.reshuffle, fileCfg.Game.Reshuffle)
	applyIntConfig(cmd, "columns", &opts.columns, fileCfg.Game.Columns)
	applyInt64Config(cmd, "seed", &opts.seed, fileCfg.Game.Seed)
	applyBoolConfig(cmd, "no-animations", &animations, fileCfg.Game.Animations)

	policy, err := model.ParseReshufflePolicy(opts.reshuffle)
	if err != nil {
		return model.Config{}, fmt.Errorf("--reshuffle: %w", err)
	}
	cfg := model.Config{
		Mode:       strings.ToLower(strings.TrimSpace(opts.mode)),
		Reshuffle:  policy,
		Columns:    opts.columns,
		Seed:       opts.seed,
		Animations: animations,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Mode != "" {
		if _, ok := catalog.Lookup(cfg.Mode); !ok {
			return fmt.Errorf("unknown mode %q (available: %s)", cfg.Mode, strings.Join(catalog.IDs(), ", "))
		}
	}
	if cfg.Columns < 1 || cfg.Columns > maxColumns {
		return fmt.Errorf("--columns must be between 1 and %d", maxColumns)
	}
	return nil
}

func setupLogging() (func(), error) {
	path := strings.TrimSpace(os.Getenv(debugLogEnv))
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "skipcount")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List counting modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := catalog.RenderModes(cmd.OutOrStdout(), catalog.ListModes()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# skipcount configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# mode = "two"            # Open this mode directly (%s)
# reshuffle = %q     # Reshuffle tiles on "start" only or after every "correct" tap
# columns = %d             # Tile grid columns (1-%d)
# seed = 0                # Shuffle seed, 0 picks a random one
# animations = true       # Bounce, shake and pulse effects
`,
		strings.Join(catalog.IDs(), ", "),
		defaultReshuffle,
		defaultColumns,
		maxColumns,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
