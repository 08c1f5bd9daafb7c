package game

import (
	"log/slog"

	"github.com/pthm-cable/blobs/telemetry"
)

// flushTelemetry builds the finished day's stats, then logs and writes them.
func (g *Game) flushTelemetry() {
	speeds, sights := g.sampleTraits()

	stats := g.collector.Flush(telemetry.DayInput{
		Day:       g.day,
		Alive:     g.aliveCount,
		Speeds:    speeds,
		Sights:    sights,
		FoodTotal: g.pool.Len(),
		FoodLeft:  g.pool.Remaining(),
	})
	perfStats := g.perfCollector.Stats()
	g.lastStats = stats

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		slog.Info("day", "stats", stats, "perf", perfStats)
	} else {
		slog.Debug("day", "stats", stats)
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteDay(stats); err != nil {
			slog.Error("failed to write day stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, g.day); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleTraits collects the traits of every live blob.
func (g *Game) sampleTraits() (speeds, sights []float64) {
	query := g.blobFilter.Query()
	for query.Next() {
		b := query.Get()
		if !b.Alive {
			continue
		}
		speeds = append(speeds, b.Traits.Speed)
		sights = append(sights, b.Traits.SightDistance)
	}
	return speeds, sights
}

// Report summarises the roster after a run.
func (g *Game) Report(res RunResult) telemetry.Report {
	return telemetry.NewReport(g.Roster(), telemetry.RunInfo{
		DaysRun:       res.DaysRun,
		Extinct:       res.Extinct,
		ExtinctionDay: res.ExtinctionDay,
		Elapsed:       res.Elapsed,
		StartSpeed:    g.cfg.Blob.InitialSpeed,
		StartSight:    g.cfg.Blob.InitialSightDistance,
	})
}
