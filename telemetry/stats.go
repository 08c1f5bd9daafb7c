package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DayStats holds aggregated statistics for one simulated day.
type DayStats struct {
	Day int `csv:"day"`

	// Population after resolution
	Alive int `csv:"alive"`

	// Events during the day
	Births         int `csv:"births"`
	DeathsStranded int `csv:"deaths_stranded"`
	DeathsStarved  int `csv:"deaths_starved"`

	// Food
	FoodEaten     int `csv:"food_eaten"`
	FoodContested int `csv:"food_contested"` // targets lost to another blob
	FoodLeft      int `csv:"food_left"`

	// Trait distribution among survivors and newborns
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	SightMean float64 `csv:"sight_mean"`
	SightStd  float64 `csv:"sight_std"`
	SightP10  float64 `csv:"sight_p10"`
	SightP50  float64 `csv:"sight_p50"`
	SightP90  float64 `csv:"sight_p90"`

	ElapsedMS float64 `csv:"elapsed_ms"`
}

// Summary is the mean, standard deviation and deciles of a sample.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes a Summary. Empty input yields zeros; a single value has
// zero spread.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var s Summary
	if n == 1 {
		s.Mean = sorted[0]
	} else {
		s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	}
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s DayStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", s.Day),
		slog.Int("alive", s.Alive),
		slog.Int("births", s.Births),
		slog.Int("deaths_stranded", s.DeathsStranded),
		slog.Int("deaths_starved", s.DeathsStarved),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("food_contested", s.FoodContested),
		slog.Int("food_left", s.FoodLeft),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("sight_mean", s.SightMean),
		slog.Float64("sight_std", s.SightStd),
		slog.Float64("sight_p50", s.SightP50),
		slog.Float64("elapsed_ms", s.ElapsedMS),
	)
}
