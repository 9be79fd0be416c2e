package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/clicker-sim/internal/browser"
	"github.com/napolitain/clicker-sim/internal/clicker"
	"github.com/napolitain/clicker-sim/internal/loader"
	"github.com/napolitain/clicker-sim/internal/models"
	"github.com/napolitain/clicker-sim/internal/report"
)

type options struct {
	catalogFile string
	configFile  string
	duration    float64
	strategies  []string
	parallel    bool
	verbose     int
	quiet       bool
	history     bool
	chart       bool
	exportFile  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "clicker",
		Short: "Idle economy strategy simulator",
		Long: `Simulates a Cookie Clicker style economy: wait for resources, buy
upgrades that raise the production rate, repeat until time runs out.
Each strategy is run to completion and the results are compared.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulations(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.catalogFile, "catalog", "k", "", "Path to a JSON or YAML item catalog")
	pf.StringVarP(&opts.configFile, "config", "c", "", "Path to a JSON or YAML scenario file")
	pf.Float64VarP(&opts.duration, "duration", "d", models.SimTime, "Simulated time per run")
	pf.StringSliceVarP(&opts.strategies, "strategy", "s", nil, "Strategies to run (repeatable, replaces the scenario list)")
	pf.BoolVarP(&opts.parallel, "parallel", "p", false, "Run scenarios concurrently")
	pf.CountVarP(&opts.verbose, "verbose", "v", "Log progress (-vv for every purchase)")

	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only print one summary line per run")
	rootCmd.Flags().BoolVar(&opts.history, "history", false, "Print the purchase history of each run")
	rootCmd.Flags().BoolVar(&opts.chart, "chart", false, "Plot cumulative resources over time for each run")

	rootCmd.AddCommand(newStrategiesCmd(), newCatalogCmd(opts), newBrowseCmd(opts))
	return rootCmd
}

func newStrategiesCmd() *cobra.Command {
	descriptions := map[string]string{
		"cursor":    "always picks Cursor, even when it cannot be afforded in time",
		"none":      "never buys anything",
		"cheap":     "cheapest item reachable in the time left",
		"expensive": "most expensive item reachable in the time left",
		"best":      "reachable item with the highest production per unit cost",
	}

	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range clicker.Names() {
				fmt.Fprintf(out, "  %-10s %s\n", name, descriptions[name])
			}
		},
	}
}

func newCatalogCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the item catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(opts)
			if err != nil {
				return err
			}

			if opts.exportFile != "" {
				if err := loader.SaveCatalog(opts.exportFile, catalog); err != nil {
					return err
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Wrote %d items to %s\n", catalog.Len(), opts.exportFile)
				return nil
			}

			return printCatalog(cmd.OutOrStdout(), catalog)
		},
	}
	cmd.Flags().StringVarP(&opts.exportFile, "export", "o", "", "Write the catalog to a .json or .yaml file instead of printing it")
	return cmd
}

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Run the scenarios and browse the results in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := simulate(cmd, opts)
			if err != nil {
				return err
			}
			return browser.Run(results)
		},
	}
}

func newLogger(w io.Writer, verbose int) *log.Logger {
	level := log.WarnLevel
	switch {
	case verbose >= 2:
		level = log.DebugLevel
	case verbose == 1:
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "clicker",
		ReportTimestamp: true,
	})
}

func loadCatalog(opts *options) (*models.Catalog, error) {
	if opts.catalogFile == "" {
		return models.DefaultCatalog(), nil
	}
	return loader.LoadCatalog(opts.catalogFile)
}

// loadScenarios applies --config, then --strategy and --duration on top of it
func loadScenarios(cmd *cobra.Command, opts *options) ([]clicker.Scenario, error) {
	cfg := models.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := loader.LoadConfig(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(opts.strategies) > 0 {
		cfg.Scenarios = cfg.Scenarios[:0]
		for _, name := range opts.strategies {
			cfg.Scenarios = append(cfg.Scenarios, models.ScenarioConfig{Name: name, Strategy: name})
		}
	}

	if cmd.Flags().Changed("duration") {
		cfg.Duration = models.DurationOf(opts.duration)
		for i := range cfg.Scenarios {
			cfg.Scenarios[i].Duration = nil
		}
	}

	return clicker.ScenariosFromConfig(cfg)
}

func simulate(cmd *cobra.Command, opts *options) ([]clicker.Result, error) {
	catalog, err := loadCatalog(opts)
	if err != nil {
		return nil, err
	}
	scenarios, err := loadScenarios(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	logger.Info("loaded", "items", catalog.Len(), "scenarios", len(scenarios), "parallel", opts.parallel)

	return clicker.RunScenarios(cmd.Context(), catalog, scenarios, clicker.RunOptions{
		Parallel: opts.parallel,
		Logger:   logger,
	})
}

func runSimulations(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !opts.quiet {
		titleColor.Fprintln(out, "\n╭───────────────────────────╮")
		titleColor.Fprintln(out, "│  Idle Economy Simulator   │")
		titleColor.Fprintln(out, "╰───────────────────────────╯")
		fmt.Fprintln(out)
	}

	results, err := simulate(cmd, opts)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintln(out, report.Summary(r.Name, r.State))
	}
	if opts.quiet {
		return nil
	}

	infoColor.Fprintln(out, "\n📊 Strategy Comparison:")
	if err := report.ComparisonTable(out, results); err != nil {
		return err
	}

	if best := clicker.BestResult(results); best >= 0 {
		successColor.Fprintf(out, "\n✓ Best strategy: %s (%s total resources)\n",
			results[best].Name, report.FormatAmount(results[best].State.Total()))
	}

	for _, r := range results {
		if opts.history {
			infoColor.Fprintf(out, "\n🧾 %s purchases:\n", r.Name)
			if err := report.HistoryTable(out, r.State.History()); err != nil {
				return err
			}
		}
		if opts.chart {
			fmt.Fprintln(out)
			fmt.Fprintln(out, report.Chart(r.Name, report.Series(r.State), 60, 12))
		}
	}
	return nil
}

func printCatalog(w io.Writer, catalog *models.Catalog) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Item", "Cost", "Production", "Production/Cost"}),
	)
	for i, it := range catalog.Snapshot() {
		row := []string{
			fmt.Sprintf("%d", i+1),
			it.Name,
			report.FormatAmount(it.Cost),
			report.FormatAmount(it.Production),
			fmt.Sprintf("%.3g", it.Production/it.Cost),
		}
		_ = table.Append(row)
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cost growth per purchase: ×%g\n", catalog.Growth())
	return nil
}
