package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc24/config"
	"github.com/katalvlaran/aoc24/internal/logger"
	"github.com/katalvlaran/aoc24/locations"
	"github.com/katalvlaran/aoc24/mulscan"
	"github.com/katalvlaran/aoc24/pageorder"
	"github.com/katalvlaran/aoc24/puzzle"
	"github.com/katalvlaran/aoc24/reports"
	"github.com/katalvlaran/aoc24/wordsearch"
)

// days lists every puzzle the CLI knows about.
func days() []puzzle.Day {
	return []puzzle.Day{
		locations.Day,
		reports.Day,
		mulscan.Day,
		wordsearch.Day,
		pageorder.Day,
	}
}

// app carries the flags, the resolved config and the output streams of one
// CLI invocation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	dataDir    string
	input      string
	logLevel   string
	logFormat  string
	strict     bool
	parallel   int

	cfg *config.Config
	reg *puzzle.Registry
	log zerolog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		log:    logger.New(config.DefaultLogLevel, config.DefaultLogFormat, stderr),
	}
}

// rootCmd builds the command tree bound to a.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc24",
		Short:         "Solve the daily puzzles over their input files",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	pf.StringVar(&a.dataDir, "data-dir", "", "directory holding DD.txt inputs")
	pf.StringVar(&a.logLevel, "log-level", "", "trace, debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "console or json")

	root.AddCommand(a.runCmd(), a.listCmd())

	return root
}

// setup loads .env and the config file, applies flag overrides and builds
// the logger and the registry.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if flags.Changed("parallel") {
		cfg.Parallel = a.parallel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	reg, err := puzzle.NewRegistry(days()...)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.reg = reg
	a.log = logger.New(cfg.LogLevel, cfg.LogFormat, a.stderr)
	a.log.Debug().Str("data_dir", cfg.DataDir).Bool("strict", cfg.Strict).Int("parallel", cfg.Parallel).Msg("config loaded")

	return nil
}

// execute runs the command tree with args.
func (a *app) execute(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("aoc24: %w", err)
	}

	return nil
}
