package telemetry

import (
	"log/slog"
	"time"
)

// Phase is a timed section of a tick.
type Phase uint8

const (
	PhaseNone    Phase = iota
	PhaseCollect       // gathering active blobs from the world
	PhaseStep          // targeting and movement for every active blob
)

// TickTiming is one tick's wall time split by phase.
type TickTiming struct {
	Total   time.Duration
	Collect time.Duration
	Step    time.Duration
	Blobs   int // blobs stepped
}

// PerfCollector keeps the timings of the last few ticks, the cost of the
// last day resolution, and the viewer's frame time.
type PerfCollector struct {
	window []TickTiming
	next   int
	filled int

	cur        TickTiming
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase

	resolve time.Duration

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector averages over windowSize ticks; one day by default.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 24
	}
	return &PerfCollector{window: make([]TickTiming, windowSize)}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.cur = TickTiming{}
	p.phase = PhaseNone
}

// StartPhase closes the running phase, if any, and opens the next.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	d := now.Sub(p.phaseStart)
	switch p.phase {
	case PhaseCollect:
		p.cur.Collect += d
	case PhaseStep:
		p.cur.Step += d
	}
	p.phase = PhaseNone
}

// EndTick records the tick and how many blobs it stepped.
func (p *PerfCollector) EndTick(blobs int) {
	now := time.Now()
	p.closePhase(now)
	p.cur.Total = now.Sub(p.tickStart)
	p.cur.Blobs = blobs

	p.window[p.next] = p.cur
	p.next = (p.next + 1) % len(p.window)
	p.filled = min(p.filled+1, len(p.window))
}

// RecordResolve stores how long the last day resolution took.
func (p *PerfCollector) RecordResolve(d time.Duration) {
	p.resolve = d
}

// RecordFrame marks the end of a rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarises the collector's window.
type PerfStats struct {
	Ticks      int
	AvgTick    time.Duration
	MaxTick    time.Duration
	AvgCollect time.Duration
	AvgStep    time.Duration
	Resolve    time.Duration

	// Blob updates per second of step time.
	BlobsPerSecond float64
	FPS            float64
}

// StepShare is the percentage of tick time spent stepping blobs.
func (s PerfStats) StepShare() float64 {
	if s.AvgTick <= 0 {
		return 0
	}
	return float64(s.AvgStep) / float64(s.AvgTick) * 100
}

// Stats summarises the ticks currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Ticks: p.filled, Resolve: p.resolve}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	var total, collect, step time.Duration
	var blobs int
	for _, t := range p.window[:p.filled] {
		total += t.Total
		collect += t.Collect
		step += t.Step
		blobs += t.Blobs
		s.MaxTick = max(s.MaxTick, t.Total)
	}

	n := time.Duration(p.filled)
	s.AvgTick = total / n
	s.AvgCollect = collect / n
	s.AvgStep = step / n
	if step > 0 {
		s.BlobsPerSecond = float64(blobs) / step.Seconds()
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Float64("step_pct", s.StepShare()),
		slog.Int64("resolve_us", s.Resolve.Microseconds()),
		slog.Int("blobs_per_sec", int(s.BlobsPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	Day         int     `csv:"day"`
	Ticks       int     `csv:"ticks"`
	AvgTickUS   int64   `csv:"avg_tick_us"`
	MaxTickUS   int64   `csv:"max_tick_us"`
	CollectUS   int64   `csv:"collect_us"`
	StepUS      int64   `csv:"step_us"`
	ResolveUS   int64   `csv:"resolve_us"`
	BlobsPerSec float64 `csv:"blobs_per_sec"`
}

// ToCSV flattens the stats for day.
func (s PerfStats) ToCSV(day int) PerfStatsCSV {
	return PerfStatsCSV{
		Day:         day,
		Ticks:       s.Ticks,
		AvgTickUS:   s.AvgTick.Microseconds(),
		MaxTickUS:   s.MaxTick.Microseconds(),
		CollectUS:   s.AvgCollect.Microseconds(),
		StepUS:      s.AvgStep.Microseconds(),
		ResolveUS:   s.Resolve.Microseconds(),
		BlobsPerSec: s.BlobsPerSecond,
	}
}
