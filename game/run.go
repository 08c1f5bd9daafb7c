package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/blobs/config"
)

// ErrInvalidDays is returned when a run is asked for a negative day count.
var ErrInvalidDays = errors.New("invalid day count")

// RunSimulation validates cfg, runs a headless simulation for up to days
// days and returns the final roster. When opts.OutputDir is set the roster
// and an end-of-run report are written there as well.
func RunSimulation(cfg *config.Config, days int, opts Options) (Roster, RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, RunResult{}, err
	}
	if days < 0 {
		return nil, RunResult{}, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}

	g, err := NewGame(cfg, opts)
	if err != nil {
		return nil, RunResult{}, err
	}
	defer func() {
		if err := g.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}()

	slog.Info("starting simulation",
		"seed", g.Seed(),
		"days", days,
		"population", cfg.Population.Initial,
		"parallel", cfg.Simulation.Parallel,
	)

	res := g.Run(days)
	roster, err := g.Finish(res)
	return roster, res, err
}

// Finish logs the end-of-run report and writes the roster and report to the
// output directory, if one is set.
func (g *Game) Finish(res RunResult) (Roster, error) {
	roster := g.Roster()
	report := g.Report(res)

	slog.Info("simulation finished", "report", report)
	slog.Info("perf", "stats", g.Perf().Stats())

	if err := g.outputManager.WriteRoster(roster); err != nil {
		return roster, fmt.Errorf("writing roster: %w", err)
	}
	if err := g.outputManager.WriteReport(report); err != nil {
		return roster, fmt.Errorf("writing report: %w", err)
	}
	return roster, nil
}
