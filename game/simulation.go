package game

import (
	"time"

	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/systems"
	"github.com/pthm-cable/blobs/telemetry"
)

// RunResult describes how a call to Run ended. Extinction is an outcome,
// not an error.
type RunResult struct {
	DaysRun       int
	Extinct       bool
	ExtinctionDay int // first day that found no live blob, 0 if not extinct
	Elapsed       time.Duration
}

// GenerateFood replaces the food pool with a fresh batch and rebuilds the
// food index. Items from the previous pool become unreachable.
func (g *Game) GenerateFood() {
	n := g.cfg.Food.Count
	pool := components.NewFoodPool(n)
	for i := range n {
		x, y := systems.FoodPosition(g.rng, g.params)
		pool.Set(components.FoodHandle(i), x, y, g.params.FoodEnergy)
	}

	g.pool = pool
	g.grid.Build(pool)
	g.env = systems.Env{
		Params: g.params,
		Pool:   g.pool,
		Grid:   g.grid,
		Day:    g.day,
	}
}

// BeginDay starts the given day: fresh food, cleared trails, counters reset.
func (g *Game) BeginDay(day int) {
	g.day = day
	g.tick = 0
	g.collector.StartDay()

	query := g.blobFilter.Query()
	for query.Next() {
		b := query.Get()
		b.Trail = b.Trail[:0]
		b.Energies = b.Energies[:0]
	}

	g.GenerateFood()
}

// Tick runs one agent pass: home-seeking, targeting and movement for every
// live blob that has not returned home.
func (g *Game) Tick() {
	g.perfCollector.StartTick()

	// Gather pointers once. The pass makes no structural changes to the
	// world, so they stay valid until it ends.
	g.perfCollector.StartPhase(telemetry.PhaseCollect)
	g.active = g.active[:0]
	query := g.blobFilter.Query()
	for query.Next() {
		b := query.Get()
		if b.Active() {
			g.active = append(g.active, b)
		}
	}

	g.perfCollector.StartPhase(telemetry.PhaseStep)
	n := len(g.active)
	if g.parallel != nil && n > 0 && n >= g.cfg.Simulation.ParallelThreshold {
		g.stepParallel(n)
	} else {
		g.stepChunk(0, n, g.rng)
	}

	g.perfCollector.EndTick(n)
	g.tick++
	g.totalTicks++
}

// Day runs a whole day: BeginDay, day.length ticks, then EndDay.
func (g *Game) Day(day int) {
	g.BeginDay(day)
	for range g.cfg.Day.Length {
		g.Tick()
	}
	g.EndDay()
}

// Run simulates up to days days, stopping early when no blob is alive.
func (g *Game) Run(days int) RunResult {
	s := g.NewStepper(days)
	for s.Step() {
	}
	return s.Result()
}
