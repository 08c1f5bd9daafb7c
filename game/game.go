// Package game runs the simulation: the blob roster, the daily food pool,
// the tick loop and the day-end life cycle.
package game

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/config"
	"github.com/pthm-cable/blobs/systems"
	"github.com/pthm-cable/blobs/telemetry"
)

// Options configures a game beyond the simulation parameters in config.
type Options struct {
	Seed      int64  // RNG seed (0 = time-based)
	OutputDir string // directory for CSV logs, roster and report ("" = disabled)
	LogStats  bool   // log day stats via slog at Info instead of Debug

	// StatsCallback receives every day's stats after they are computed.
	StatsCallback func(telemetry.DayStats)

	// OnDayEnd runs after each day is resolved, before the next day's
	// trails are cleared. The renderer hooks in here.
	OnDayEnd func(g *Game)
}

// Game holds the complete simulation state.
type Game struct {
	cfg     *config.Config
	params  systems.Params
	world   *ecs.World
	rng     *rand.Rand
	rngSeed int64

	blobMap    *ecs.Map1[components.Blob]
	blobFilter *ecs.Filter1[components.Blob]

	// Today's food and its index
	pool *components.FoodPool
	grid *systems.FoodGrid
	env  systems.Env

	// Tick scratch: active blobs gathered before each agent pass
	active   []*components.Blob
	parallel *parallelState // nil when running sequentially

	// Offspring waiting for the end of the resolution pass
	births []components.Blob

	// State
	day        int
	tick       int // ticks into the current day
	totalTicks int
	nextIndex  int
	aliveCount int

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.DayStats)
	onDayEnd      func(g *Game)
	lastStats     telemetry.DayStats
}

// NewGame creates a game and spawns the founders. The config is used as
// given; callers that accept user input should Validate it first.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	world := ecs.NewWorld()
	params := systems.ParamsFrom(cfg)

	g := &Game{
		cfg:     cfg,
		params:  params,
		world:   world,
		rng:     systems.NewRand(seed),
		rngSeed: seed,

		blobMap:    ecs.NewMap1[components.Blob](world),
		blobFilter: ecs.NewFilter1[components.Blob](world),

		grid: systems.NewFoodGrid(params.WorldW, params.WorldH, systems.FoodGridCellSize),

		collector:     telemetry.NewCollector(),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		outputManager: om,
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
		onDayEnd:      opts.OnDayEnd,
	}

	if cfg.Simulation.Parallel {
		workers := cfg.Simulation.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		g.parallel = newParallelState(workers, g.rng)
	}

	g.spawnInitialPopulation()

	return g, nil
}

// Close stops the worker pool and closes output files.
func (g *Game) Close() error {
	g.stopParallelWorkers()
	return g.outputManager.Close()
}

// Config returns the config the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Seed returns the RNG seed in use.
func (g *Game) Seed() int64 {
	return g.rngSeed
}

// CurrentDay returns the day in progress or last completed (0 before the first).
func (g *Game) CurrentDay() int {
	return g.day
}

// TickInDay returns the number of ticks run in the current day.
func (g *Game) TickInDay() int {
	return g.tick
}

// TotalTicks returns the number of ticks run since the start.
func (g *Game) TotalTicks() int {
	return g.totalTicks
}

// AliveCount returns the number of live blobs.
func (g *Game) AliveCount() int {
	return g.aliveCount
}

// LastStats returns the stats of the last completed day.
func (g *Game) LastStats() telemetry.DayStats {
	return g.lastStats
}

// Perf returns the rolling tick timing.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perfCollector
}
