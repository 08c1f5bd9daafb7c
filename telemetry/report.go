package telemetry

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/blobs/components"
)

// RunInfo describes how a run ended.
type RunInfo struct {
	DaysRun       int
	Extinct       bool
	ExtinctionDay int
	Elapsed       time.Duration

	// Founder traits, for comparison with the evolved population
	StartSpeed float64
	StartSight float64
}

// TraitRange is the spread of one trait over a group of blobs.
type TraitRange struct {
	Min, Max, Mean float64
}

// Report is the end-of-run summary.
type Report struct {
	RunInfo

	Total     int
	Survivors int

	// Every blob that ever lived
	MaxDaysAlive int
	Speed        TraitRange
	Sight        TraitRange

	// Survivors only, zero when extinct
	OldestSurvivor int
	SurvivorSpeed  TraitRange
	SurvivorSight  TraitRange
}

// NewReport summarises a final roster.
func NewReport(roster []components.BlobState, info RunInfo) Report {
	r := Report{RunInfo: info, Total: len(roster)}

	var speeds, sights, liveSpeeds, liveSights []float64
	for _, b := range roster {
		speeds = append(speeds, b.Speed)
		sights = append(sights, b.SightDistance)
		r.MaxDaysAlive = max(r.MaxDaysAlive, b.DaysAlive)

		if b.Alive {
			r.Survivors++
			liveSpeeds = append(liveSpeeds, b.Speed)
			liveSights = append(liveSights, b.SightDistance)
			r.OldestSurvivor = max(r.OldestSurvivor, b.DaysAlive)
		}
	}

	r.Speed = traitRange(speeds)
	r.Sight = traitRange(sights)
	r.SurvivorSpeed = traitRange(liveSpeeds)
	r.SurvivorSight = traitRange(liveSights)
	return r
}

func traitRange(values []float64) TraitRange {
	if len(values) == 0 {
		return TraitRange{}
	}
	return TraitRange{
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		Mean: stat.Mean(values, nil),
	}
}

// Text renders the report for report.txt and the terminal.
func (r Report) Text() string {
	var sb strings.Builder

	section := func(title string) {
		fmt.Fprintf(&sb, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
	}

	section("Simulation Statistics")
	fmt.Fprintf(&sb, "%d Blobs survived\n", r.Survivors)
	fmt.Fprintf(&sb, "Days run: %d\n", r.DaysRun)
	if r.Extinct {
		fmt.Fprintf(&sb, "Extinct on day %d\n", r.ExtinctionDay)
	}
	fmt.Fprintf(&sb, "Simulation Run Time: %.2fs\n", r.Elapsed.Seconds())

	section("Starting Blob Statistics")
	fmt.Fprintf(&sb, "Speed: %.2f\n", r.StartSpeed)
	fmt.Fprintf(&sb, "Sight Distance: %.2f\n", r.StartSight)

	section("Overall Blob Statistics")
	fmt.Fprintf(&sb, "Blobs: %d\n", r.Total)
	fmt.Fprintf(&sb, "Max days alive: %d\n", r.MaxDaysAlive)
	fmt.Fprintf(&sb, "Max speed: %.2f\n", r.Speed.Max)
	fmt.Fprintf(&sb, "Min speed: %.2f\n", r.Speed.Min)
	fmt.Fprintf(&sb, "Max sight_distance: %.2f\n", r.Sight.Max)
	fmt.Fprintf(&sb, "Min sight_distance: %.2f\n", r.Sight.Min)

	if r.Survivors > 0 {
		section("Surviving Blob Statistics")
		fmt.Fprintf(&sb, "Oldest Surviving Blob: %d\n", r.OldestSurvivor)
		fmt.Fprintf(&sb, "Max speed: %.2f\n", r.SurvivorSpeed.Max)
		fmt.Fprintf(&sb, "Min speed: %.2f\n", r.SurvivorSpeed.Min)
		fmt.Fprintf(&sb, "Average speed: %.2f\n", r.SurvivorSpeed.Mean)
		fmt.Fprintf(&sb, "Max sight_distance: %.2f\n", r.SurvivorSight.Max)
		fmt.Fprintf(&sb, "Min sight_distance: %.2f\n", r.SurvivorSight.Min)
		fmt.Fprintf(&sb, "Average sight_distance: %.2f\n", r.SurvivorSight.Mean)
	}

	return strings.TrimPrefix(sb.String(), "\n")
}

// LogValue implements slog.LogValuer for structured logging.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("survivors", r.Survivors),
		slog.Int("total", r.Total),
		slog.Int("days_run", r.DaysRun),
		slog.Bool("extinct", r.Extinct),
		slog.Float64("elapsed_sec", r.Elapsed.Seconds()),
		slog.Int("max_days_alive", r.MaxDaysAlive),
		slog.Int("oldest_survivor", r.OldestSurvivor),
		slog.Float64("survivor_speed_mean", r.SurvivorSpeed.Mean),
		slog.Float64("survivor_sight_mean", r.SurvivorSight.Mean),
	)
}
