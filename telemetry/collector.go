package telemetry

import (
	"time"

	"github.com/pthm-cable/blobs/components"
)

// Collector accumulates events within a day and produces DayStats.
type Collector struct {
	dayStart time.Time

	// Event counters for the current day
	births         int
	deathsStranded int
	deathsStarved  int
	contested      int

	// Running totals across days
	totalBirths int
	totalDeaths int
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{dayStart: time.Now()}
}

// StartDay marks the beginning of a day for wall-time accounting.
func (c *Collector) StartDay() {
	c.dayStart = time.Now()
}

// RecordBirth records an offspring committed to the roster.
func (c *Collector) RecordBirth() {
	c.births++
	c.totalBirths++
}

// RecordDeath records a death by reason.
func (c *Collector) RecordDeath(reason components.DeathReason) {
	switch reason {
	case components.DeathStarved:
		c.deathsStarved++
	case components.DeathStranded:
		c.deathsStranded++
	default:
		return
	}
	c.totalDeaths++
}

// RecordContested records food targets a blob lost to another blob.
func (c *Collector) RecordContested(n int) {
	c.contested += n
}

// DayInput is the end-of-day state the caller hands to Flush.
type DayInput struct {
	Day       int
	Alive     int
	Speeds    []float64
	Sights    []float64
	FoodTotal int
	FoodLeft  int
}

// Flush produces the stats for the finished day and resets the counters.
func (c *Collector) Flush(in DayInput) DayStats {
	speed := Summarize(in.Speeds)
	sight := Summarize(in.Sights)

	stats := DayStats{
		Day:   in.Day,
		Alive: in.Alive,

		Births:         c.births,
		DeathsStranded: c.deathsStranded,
		DeathsStarved:  c.deathsStarved,

		FoodEaten:     in.FoodTotal - in.FoodLeft,
		FoodContested: c.contested,
		FoodLeft:      in.FoodLeft,

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP10:  speed.P10,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,

		SightMean: sight.Mean,
		SightStd:  sight.Std,
		SightP10:  sight.P10,
		SightP50:  sight.P50,
		SightP90:  sight.P90,

		ElapsedMS: float64(time.Since(c.dayStart).Microseconds()) / 1000,
	}

	c.births = 0
	c.deathsStranded = 0
	c.deathsStarved = 0
	c.contested = 0

	return stats
}

// TotalBirths returns the number of births recorded over the whole run.
func (c *Collector) TotalBirths() int {
	return c.totalBirths
}

// TotalDeaths returns the number of deaths recorded over the whole run.
func (c *Collector) TotalDeaths() int {
	return c.totalDeaths
}
