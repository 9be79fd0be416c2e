package clicker

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/napolitain/clicker-sim/internal/models"
)

// Scenario is one run to evaluate: a label, a duration and the strategy to use
type Scenario struct {
	Name     string
	Duration float64
	Strategy Strategy
}

// Result pairs a scenario with its final state
type Result struct {
	Name     string
	Duration float64
	State    *State
	Elapsed  time.Duration // wall-clock time spent simulating
}

// RunOptions controls how RunScenarios executes
type RunOptions struct {
	// Parallel runs every scenario in its own goroutine
	Parallel bool
	Logger   *log.Logger
}

// ScenariosFromConfig binds each configured strategy name to its function
func ScenariosFromConfig(cfg *models.Config) ([]Scenario, error) {
	if err := models.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	resolved := cfg.Resolved()
	scenarios := make([]Scenario, 0, len(resolved))
	for _, sc := range resolved {
		strategy, err := Lookup(sc.Strategy)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		scenarios = append(scenarios, Scenario{Name: sc.Name, Duration: sc.RunDuration(), Strategy: strategy})
	}
	return scenarios, nil
}

// RunScenarios simulates every scenario against its own clone of catalog.
// Results are returned in scenario order whether or not the runs are parallel.
func RunScenarios(ctx context.Context, catalog *models.Catalog, scenarios []Scenario, opts RunOptions) ([]Result, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	engine := NewEngine(opts.Logger)
	logger := engine.logger
	results := make([]Result, len(scenarios))

	run := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		sc := scenarios[i]
		logger.Info("simulating", "scenario", sc.Name, "duration", sc.Duration)

		start := time.Now()
		state, err := engine.Run(catalog.Clone(), sc.Duration, sc.Strategy)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		results[i] = Result{Name: sc.Name, Duration: sc.Duration, State: state, Elapsed: time.Since(start)}

		logger.Info("finished",
			"scenario", sc.Name,
			"purchases", state.Purchases(),
			"total", state.Total(),
			"took", results[i].Elapsed)
		return nil
	}

	if !opts.Parallel {
		for i := range scenarios {
			if err := run(ctx, i); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range scenarios {
		g.Go(func() error {
			return run(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BestResult returns the index of the result with the highest cumulative total.
// Earlier results win ties; -1 means no results.
func BestResult(results []Result) int {
	best := -1
	for i, r := range results {
		if r.State == nil {
			continue
		}
		if best < 0 || r.State.Total() > results[best].State.Total() {
			best = i
		}
	}
	return best
}
