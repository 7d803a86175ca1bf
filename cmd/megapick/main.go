// Package main provides the CLI entrypoint for megapick.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/megapick/internal/config"
	"github.com/verte-zerg/megapick/internal/generator"
	"github.com/verte-zerg/megapick/internal/history"
	"github.com/verte-zerg/megapick/internal/model"
	"github.com/verte-zerg/megapick/internal/stats"
	"github.com/verte-zerg/megapick/internal/tui"
)

const (
	defaultStrategy = "mixed"
	defaultCount    = 5
	defaultLogLevel = "warn"
)

var (
	configPath string
	drawsPath  string
	logLevel   string

	genStrategy string
	genCount    int
	genSeed     int64
	genColor    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "megapick",
		Short:         "Mega-Sena number generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPickerCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&drawsPath, "draws", "", "historical draws file (.toml or one draw per line; default: built-in table)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newFrequencyCmd())
	rootCmd.AddCommand(newDrawsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&genStrategy, "strategy", defaultStrategy, "strategy: "+model.StrategyNames())
	cmd.Flags().IntVar(&genCount, "count", defaultCount, "number of combinations")
	cmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().BoolVar(&genColor, "color", false, "force colored bars")
}

func runPickerCmd(cmd *cobra.Command, _ []string) error {
	log, cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(log, cfg)
	if err != nil {
		return err
	}
	picker := tui.NewModel(gen, log, cfg.Strategy, cfg.Count)
	program := tea.NewProgram(picker, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated combinations and their analysis",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	addGenerateFlags(cmd)
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	log, cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(log, cfg)
	if err != nil {
		return err
	}
	combos, err := gen.Generate(cfg.Strategy, cfg.Count)
	if err != nil {
		return err
	}
	analysis := gen.Analyze(combos)
	log.WithFields(logrus.Fields{
		"strategy": cfg.Strategy.String(),
		"count":    cfg.Count,
		"unique":   analysis.Unique,
	}).Debug("generated combinations")
	if err := stats.RenderBatch(cmd.OutOrStdout(), cfg.Strategy, combos, analysis, stats.RenderOptions{ForceColor: cfg.Color}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newFrequencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frequency",
		Short: "Show historical number frequency",
		Args:  cobra.NoArgs,
		RunE:  runFrequencyCmd,
	}
	cmd.Flags().BoolVar(&genColor, "color", false, "force colored bars")
	return cmd
}

func runFrequencyCmd(cmd *cobra.Command, _ []string) error {
	log, cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(log, cfg)
	if err != nil {
		return err
	}
	if err := stats.RenderFrequencyTable(cmd.OutOrStdout(), gen.Table(), stats.RenderOptions{ForceColor: cfg.Color}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newDrawsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draws",
		Short: "List the historical draws in use",
		Args:  cobra.NoArgs,
		RunE:  runDrawsCmd,
	}
}

func runDrawsCmd(cmd *cobra.Command, _ []string) error {
	log, cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	entries, err := loadEntries(log, cfg.DrawsPath)
	if err != nil {
		return err
	}
	if err := stats.RenderDraws(cmd.OutOrStdout(), entries); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
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
	path := configPath
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

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// setup builds the logger and merges config file values under CLI flags.
func setup(cmd *cobra.Command) (*logrus.Logger, model.Config, error) {
	log, err := newLogger(logLevel)
	if err != nil {
		return nil, model.Config{}, err
	}
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	log.WithField("path", configPath).Debug("loaded config")

	g := fileCfg.Generate
	applyConfig(cmd, "strategy", &genStrategy, g.Strategy)
	applyConfig(cmd, "count", &genCount, g.Count)
	applyConfig(cmd, "seed", &genSeed, g.Seed)
	applyConfig(cmd, "color", &genColor, g.Color)
	if g.Draws != nil && !cmd.Flags().Changed("draws") {
		drawsPath = config.ResolvePath(*g.Draws)
	}

	strategy, err := model.ParseStrategy(genStrategy)
	if err != nil {
		return nil, model.Config{}, err
	}
	cfg := model.Config{
		Strategy:  strategy,
		Count:     genCount,
		Seed:      genSeed,
		HasSeed:   cmd.Flags().Changed("seed") || g.Seed != nil,
		DrawsPath: drawsPath,
		Color:     genColor,
	}
	if err := validateConfig(cfg); err != nil {
		return nil, model.Config{}, err
	}
	return log, cfg, nil
}

func newGenerator(log logrus.FieldLogger, cfg model.Config) (*generator.Generator, error) {
	entries, err := loadEntries(log, cfg.DrawsPath)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if !cfg.HasSeed {
		seed, err = generator.NewSeed()
		if err != nil {
			return nil, err
		}
	}
	gen, err := generator.New(history.Draws(entries), generator.WithSeed(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to build frequency table: %w", err)
	}
	log.WithFields(logrus.Fields{
		"seed":  seed,
		"most":  gen.MostFrequent(),
		"least": gen.LeastFrequent(),
	}).Debug("built generator")
	return gen, nil
}

func loadEntries(log logrus.FieldLogger, path string) ([]history.Entry, error) {
	if path == "" {
		log.Debug("using built-in draws")
		return history.DefaultEntries(), nil
	}
	entries, err := history.LoadEntries(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load draws: %w", err)
	}
	log.WithFields(logrus.Fields{"path": path, "draws": len(entries)}).Debug("loaded draws")
	return entries, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(parsed)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if cfg.Count < 1 {
		return fmt.Errorf("%w: --count must be at least 1", model.ErrInvalidArgument)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# megapick configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# strategy = %q      # One of: %s
# count = %d              # Number of combinations
# seed = 1234             # Fixed seed for reproducible output
# draws = "draws.toml"    # Historical draws file, relative to this directory
# color = false           # Force colored bars
`,
		defaultStrategy,
		model.StrategyNames(),
		defaultCount,
	)
}
