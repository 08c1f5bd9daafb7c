package game

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/systems"
)

// spawnInitialPopulation places the founders along the world boundary.
func (g *Game) spawnInitialPopulation() {
	n := g.cfg.Population.Initial
	traits := components.Traits{
		Speed:         g.cfg.Blob.InitialSpeed,
		SightDistance: g.cfg.Blob.InitialSightDistance,
	}

	for i := 0; i < n; i++ {
		x, y := systems.FounderPosition(i, n, g.rng, g.params)
		b := systems.NewBlob(g.rng, x, y, traits, g.params, 0)
		g.spawnBlob(&b)
	}
}

// spawnBlob adds a blob to the world and assigns its population index.
// Must not be called while a query is open.
func (g *Game) spawnBlob(b *components.Blob) ecs.Entity {
	b.Index = g.nextIndex
	g.nextIndex++

	entity := g.blobMap.NewEntity(b)
	if b.Alive {
		g.aliveCount++
	}
	return entity
}

// EndDay resolves every live blob: stranded or underfed blobs die, well fed
// blobs reproduce, survivors are reset for the next day. Offspring are
// committed only after the pass, so they never take part in the day that
// produced them.
func (g *Game) EndDay() {
	start := time.Now()
	g.births = g.births[:0]

	// First pass: resolve fates (no structural changes while iterating)
	query := g.blobFilter.Query()
	for query.Next() {
		b := query.Get()

		if !b.Alive {
			if b.DiedOnDay == g.day {
				// Starved during today's ticks
				g.collector.RecordDeath(b.Death)
				g.collector.RecordContested(b.Blocked)
			}
			continue
		}
		g.collector.RecordContested(b.Blocked)

		switch systems.ResolveFate(b, g.params) {
		case systems.FateDie:
			systems.Die(b, components.DeathStranded, g.day)
			g.collector.RecordDeath(components.DeathStranded)
		case systems.FateReproduce:
			g.births = append(g.births, systems.Reproduce(b, g.params, g.rng, g.day))
			systems.ResetForDay(b, g.params, g.rng)
		case systems.FateSurvive:
			systems.ResetForDay(b, g.params, g.rng)
		}
	}

	// Second pass: commit offspring (query iteration complete)
	g.aliveCount = g.countAlive()
	for i := range g.births {
		g.spawnBlob(&g.births[i])
		g.collector.RecordBirth()
	}
	g.perfCollector.RecordResolve(time.Since(start))

	g.flushTelemetry()

	if g.onDayEnd != nil {
		g.onDayEnd(g)
	}
}

// countAlive counts live blobs in the world.
func (g *Game) countAlive() int {
	n := 0
	query := g.blobFilter.Query()
	for query.Next() {
		if query.Get().Alive {
			n++
		}
	}
	return n
}

// Prune removes dead blobs from the world. Dead blobs otherwise stay in the
// roster for reporting. Returns the number removed.
func (g *Game) Prune() int {
	// First pass: collect dead entities (must complete before modifying)
	var toRemove []ecs.Entity

	query := g.blobFilter.Query()
	for query.Next() {
		if !query.Get().Alive {
			toRemove = append(toRemove, query.Entity())
		}
	}

	// Second pass: remove entities (query iteration complete)
	for _, e := range toRemove {
		g.world.RemoveEntity(e)
	}

	return len(toRemove)
}
