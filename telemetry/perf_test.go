package telemetry

import (
	"testing"
	"time"
)

// tick records one tick with the given phase sleeps.
func tick(pc *PerfCollector, collect, step time.Duration, blobs int) {
	pc.StartTick()
	pc.StartPhase(PhaseCollect)
	time.Sleep(collect)
	pc.StartPhase(PhaseStep)
	time.Sleep(step)
	pc.EndTick(blobs)
}

func TestPerfCollectorPhases(t *testing.T) {
	pc := NewPerfCollector(8)
	for range 4 {
		tick(pc, 0, 200*time.Microsecond, 20)
	}

	s := pc.Stats()
	if s.Ticks != 4 {
		t.Errorf("ticks = %d, want 4", s.Ticks)
	}
	if s.AvgStep < 200*time.Microsecond {
		t.Errorf("avg step = %v, want >= 200us", s.AvgStep)
	}
	if s.AvgStep > s.AvgTick || s.AvgCollect > s.AvgTick {
		t.Errorf("phase longer than tick: %+v", s)
	}
	if s.MaxTick < s.AvgTick {
		t.Errorf("max %v below avg %v", s.MaxTick, s.AvgTick)
	}
	if share := s.StepShare(); share <= 0 || share > 100 {
		t.Errorf("step share = %v", share)
	}
	// 20 blobs per >= 200us of stepping
	if s.BlobsPerSecond <= 0 || s.BlobsPerSecond > 100_000 {
		t.Errorf("blobs/sec = %v", s.BlobsPerSecond)
	}
}

func TestPerfCollectorWindow(t *testing.T) {
	pc := NewPerfCollector(3)
	for range 10 {
		tick(pc, 0, 0, 1)
	}
	if got := pc.Stats().Ticks; got != 3 {
		t.Errorf("ticks = %d, want window of 3", got)
	}

	if got := NewPerfCollector(0).Stats(); got.Ticks != 0 || got.AvgTick != 0 || got.StepShare() != 0 {
		t.Errorf("empty collector stats = %+v", got)
	}
}

func TestPerfCollectorResolveAndFrames(t *testing.T) {
	pc := NewPerfCollector(4)
	pc.RecordResolve(3 * time.Millisecond)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	s := pc.Stats()
	if s.Resolve != 3*time.Millisecond {
		t.Errorf("resolve = %v", s.Resolve)
	}
	if s.FPS <= 0 || s.FPS > 1000.0/15 {
		t.Errorf("fps = %v, want at most ~62", s.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		Ticks:          24,
		AvgTick:        500 * time.Microsecond,
		AvgStep:        400 * time.Microsecond,
		Resolve:        time.Millisecond,
		BlobsPerSecond: 1e5,
	}
	row := s.ToCSV(3)
	want := PerfStatsCSV{Day: 3, Ticks: 24, AvgTickUS: 500, StepUS: 400, ResolveUS: 1000, BlobsPerSec: 1e5}
	if row != want {
		t.Errorf("row = %+v, want %+v", row, want)
	}
	if got := s.StepShare(); got != 80 {
		t.Errorf("step share = %v, want 80", got)
	}
}
