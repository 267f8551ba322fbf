package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sidetabs/internal/cli/scenario"
	"github.com/bnema/sidetabs/internal/cli/styles"
	"github.com/bnema/sidetabs/internal/domain/repository"
	"github.com/bnema/sidetabs/internal/infrastructure/clock"
	"github.com/bnema/sidetabs/internal/infrastructure/config"
	"github.com/bnema/sidetabs/internal/infrastructure/persistence/sqlite"
)

var (
	simulatePersist  bool
	simulateRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Replay a scripted tab arrangement",
	Long: `Replay a YAML scenario against an in-memory browser and print the
resulting sidebar, the stored arrangement and the outcome of every step.

By default snapshots go to a throwaway in-memory database. Use --persist to
write them to the configured database instead.

Example scenario:

  name: group three tabs
  tabs:
    - url: https://a.example
    - url: https://b.example
    - url: https://c.example
  steps:
    - op: group
      tabs: [1, 3]
    - op: collapse
      tab: 1`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&simulatePersist, "persist", false, "store snapshots in the configured database")
	simulateCmd.Flags().BoolVar(&simulateRealtime, "realtime", false, "wait tabs.observe_interval_ms between load polls")
}

func runSimulate(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewArrangementRenderer(app.Theme)

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	var values repository.WindowValueRepository
	if simulatePersist {
		values, err = app.WindowValues()
	} else {
		mem := sqlite.NewLazyDB(":memory:")
		defer func() { _ = mem.Close() }()
		values, err = mem.WindowValues(app.Ctx())
	}
	if err != nil {
		return err
	}

	runner := scenario.NewRunner(sc, values, simulateOptions(app.Config, simulateRealtime))
	report, err := runner.Run(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	fmt.Println(renderer.RenderReport(report))
	if report.Failed() {
		return errors.New("scenario had failing steps")
	}
	return nil
}

// simulateOptions maps the configuration onto replay options.
func simulateOptions(cfg *config.Config, realtime bool) scenario.Options {
	opts := scenario.Options{
		BatchConcurrency: cfg.Tabs.BatchConcurrency,
		ObserveInterval:  cfg.Tabs.ObserveInterval(),
		TabListKey:       cfg.Session.TabListKey,
		RestoreGroups:    cfg.Session.RestoreGroups,
		SnapshotDebounce: cfg.Session.SnapshotDebounce(),
	}
	if realtime {
		opts.Clock = clock.System{}
	}
	return opts
}
