package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pthm-cable/blobs/config"
	"github.com/pthm-cable/blobs/game"
	"github.com/pthm-cable/blobs/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	days := flag.Int("days", 20, "Number of days to simulate")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	runs := flag.Int("runs", 1, "Independent runs to execute concurrently (seeds seed, seed+1, ...)")
	parallel := flag.Bool("parallel", false, "Step blobs on a worker pool within each tick")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, roster, report and config snapshot")
	draw := flag.Bool("draw", false, "Write a PNG of trails and food at the end of every day")
	view := flag.Bool("view", false, "Watch the simulation in a window")
	logStats := flag.Bool("log-stats", false, "Log day stats at info level")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *parallel {
		cfg.Simulation.Parallel = true
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	var err error
	switch {
	case *runs > 1:
		if *draw || *view {
			slog.Error("-draw and -view need a single run")
			os.Exit(2)
		}
		err = runMany(cfg, *days, *runs, opts)
	case *view:
		err = runViewer(cfg, *days, opts, *draw)
	default:
		err = runHeadless(cfg, *days, opts, *draw)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless runs one simulation to completion without a visible window.
func runHeadless(cfg *config.Config, days int, opts game.Options, draw bool) error {
	if draw {
		dr, err := newDayRenderer(cfg, opts.OutputDir)
		if err != nil {
			return err
		}
		renderer.OpenHiddenWindow(int32(cfg.World.Width), int32(cfg.World.Height))
		defer renderer.CloseWindow()
		defer dr.Unload()
		opts.OnDayEnd = drawDay(dr)
	}

	_, _, err := game.RunSimulation(cfg, days, opts)
	return err
}

// runViewer runs one simulation in a window until the window is closed.
func runViewer(cfg *config.Config, days int, opts game.Options, draw bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if draw {
		dr, err := newDayRenderer(cfg, opts.OutputDir)
		if err != nil {
			return err
		}
		// The viewer's window owns the render texture; closing it frees both
		opts.OnDayEnd = drawDay(dr)
	}

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("starting viewer", "seed", g.Seed(), "days", days)

	res := game.NewViewer(g, days).Run()
	_, err = g.Finish(res)
	return err
}

// runMany executes independent runs concurrently, one goroutine per run.
func runMany(cfg *config.Config, days, runs int, opts game.Options) error {
	type outcome struct {
		survivors int
		res       game.RunResult
		err       error
	}
	outcomes := make([]outcome, runs)

	var wg sync.WaitGroup
	for i := range runs {
		runOpts := opts
		runOpts.Seed = opts.Seed + int64(i)
		if opts.OutputDir != "" {
			runOpts.OutputDir = filepath.Join(opts.OutputDir, fmt.Sprintf("run_%d", i))
		}

		wg.Add(1)
		go func(idx int, o game.Options) {
			defer wg.Done()
			roster, res, err := game.RunSimulation(cfg, days, o)
			outcomes[idx] = outcome{survivors: roster.Alive(), res: res, err: err}
		}(i, runOpts)
	}
	wg.Wait()

	var failed int
	for i, o := range outcomes {
		if o.err != nil {
			failed++
			slog.Error("run failed", "run", i, "seed", opts.Seed+int64(i), "error", o.err)
			continue
		}
		slog.Info("run complete",
			"run", i,
			"seed", opts.Seed+int64(i),
			"survivors", o.survivors,
			"days_run", o.res.DaysRun,
			"extinct", o.res.Extinct,
		)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d runs failed", failed, runs)
	}
	return nil
}

func newDayRenderer(cfg *config.Config, outputDir string) (*renderer.DayRenderer, error) {
	dir := "images"
	if outputDir != "" {
		dir = filepath.Join(outputDir, "images")
	}
	return renderer.NewDayRenderer(dir, cfg.World.Width, cfg.World.Height, cfg.Population.Initial)
}

// drawDay returns a day-end hook that writes the day's image.
func drawDay(dr *renderer.DayRenderer) func(g *game.Game) {
	return func(g *game.Game) {
		if err := dr.Draw(g.CurrentDay(), g.Trails(), g.FoodState()); err != nil {
			slog.Error("failed to draw day", "day", g.CurrentDay(), "error", err)
		}
	}
}
