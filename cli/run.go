package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vacuum/config"
	"github.com/katalvlaran/vacuum/logging"
	"github.com/katalvlaran/vacuum/planner"
	"github.com/katalvlaran/vacuum/report"
	"github.com/katalvlaran/vacuum/world"
)

// runOptions holds flag values for the root command.
type runOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	format     string
	verify     bool
}

// bindFlags registers the root command flags.
func (a *App) bindFlags() {
	f := a.root.Flags()
	f.StringVarP(&a.opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	f.StringVar(&a.opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	f.StringVar(&a.opts.logFormat, "log-format", "", "Log format: console or json (overrides config)")
	f.StringVarP(&a.opts.format, "format", "o", "", "Output format: text or yaml (overrides config)")
	f.BoolVar(&a.opts.verify, "verify", false, "Replay the plan against the world before printing it")
}

// settings merges the config file, if any, with flags that were set.
func (a *App) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if a.opts.configPath != "" {
		var err error
		if cfg, err = config.Load(a.opts.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.opts.logFormat
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.opts.format
	}
	if flags.Changed("verify") {
		cfg.Search.Verify = a.opts.verify
	}

	return cfg, cfg.Validate()
}

// run validates the arguments, loads the world, plans and reports.
// The algorithm name is checked before the configuration and the world file.
func (a *App) run(cmd *cobra.Command, algorithm, worldPath string) error {
	strategy, err := planner.ParseStrategy(algorithm)
	if err != nil {
		return err
	}

	cfg, err := a.settings(cmd)
	if err != nil {
		return err
	}
	logging.Init(cfg.Logging(a.stderr))
	runID := uuid.New().String()

	w, err := world.Load(worldPath)
	if err != nil {
		logging.Error().
			Add(logging.RunID(runID)).
			Add(logging.World(worldPath)).
			Add(logging.ErrorField(err)).
			Msg("world rejected")
		return err
	}

	problem, err := planner.NewProblem(w.Grid, w.Start, w.Goals)
	if err != nil {
		return fmt.Errorf("%s: %w", worldPath, err)
	}

	logging.Info().
		Add(logging.RunID(runID)).
		Add(logging.World(worldPath)).
		Add(logging.Strategy(strategy)).
		Add(logging.Dimensions(w.Grid.Width, w.Grid.Height)).
		Add(logging.Goals(len(problem.Goals()))).
		Add(logging.Regions(len(w.Grid.ConnectedComponents()))).
		Add(logging.Str("output", cfg.Output.Format)).
		Msg("planning")
	warnUnreachable(runID, w)

	opts := []planner.Option{planner.WithStrategy(strategy)}
	if cfg.Log.Level == "trace" {
		opts = append(opts, traceHooks(runID)...)
	}

	started := time.Now()
	res, err := planner.Plan(problem, opts...)
	if err != nil {
		return err
	}

	logging.Info().
		Add(logging.RunID(runID)).
		Add(logging.Outcome(res)).
		Add(logging.Duration(time.Since(started))).
		Msg("search finished")

	if res.Found && cfg.Search.Verify {
		if err := planner.Verify(problem, res.Actions); err != nil {
			return fmt.Errorf("plan verification failed: %w", err)
		}
		logging.Debug().Add(logging.RunID(runID)).Msg("plan verified")
	}

	reporter, err := report.New(cfg.Output.Format, a.stdout)
	if err != nil {
		return err
	}

	return report.Deliver(reporter, res)
}

// warnUnreachable logs every dirty cell that is walled off from the start.
func warnUnreachable(runID string, w *world.World) {
	for _, g := range w.Goals {
		ok, err := w.Grid.Reachable(w.Start, g)
		if err != nil || ok {
			continue
		}
		logging.Warn().
			Add(logging.RunID(runID)).
			Add(logging.Cell(g)).
			Msg("dirty cell unreachable from start")
	}
}

// traceHooks logs every expansion and every generated successor.
func traceHooks(runID string) []planner.Option {
	return []planner.Option{
		planner.WithOnExpand(func(s planner.State) {
			logging.Trace().
				Add(logging.RunID(runID)).
				Add(logging.Cell(s.Pos)).
				Add(logging.Dirty(s.Goals.Len())).
				Msg("expand")
		}),
		planner.WithOnGenerate(func(s planner.State, act planner.Action) {
			logging.Trace().
				Add(logging.RunID(runID)).
				Add(logging.Action(act)).
				Add(logging.Cell(s.Pos)).
				Add(logging.Dirty(s.Goals.Len())).
				Msg("generate")
		}),
	}
}
