package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/blobs/config"
	"github.com/pthm-cable/blobs/game"
)

// dayWeight rewards populations that lasted longer when survivor counts tie,
// most visibly when every seed goes extinct.
const dayWeight = 0.01

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	days       int
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	bestFitness float64
	bestRoster  game.Roster
	last        Evaluation
}

// Evaluation summarises one parameter vector across all seeds.
type Evaluation struct {
	Fitness       float64
	MeanSurvivors float64
	MeanDaysRun   float64
	Extinctions   int
	Failures      int
}

// seedResult holds the result from one seed run.
type seedResult struct {
	survivors int
	daysRun   int
	extinct   bool
	roster    game.Roster
	err       error
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, days int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		days:        days,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// BestRoster returns the final roster of the best seed of the best evaluation.
func (fe *FitnessEvaluator) BestRoster() game.Roster {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestRoster
}

// Last returns the most recent evaluation.
func (fe *FitnessEvaluator) Last() Evaluation {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate computes fitness for raw parameter values (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Run all seeds in parallel
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			roster, res, err := game.RunSimulation(cfg, fe.days, game.Options{Seed: s})
			results[idx] = seedResult{
				survivors: roster.Alive(),
				daysRun:   res.DaysRun,
				extinct:   res.Extinct,
				roster:    roster,
				err:       err,
			}
		}(i, seed)
	}
	wg.Wait()

	eval := computeEvaluation(results)

	fe.mu.Lock()
	if eval.Fitness < fe.bestFitness {
		fe.bestFitness = eval.Fitness
		fe.bestRoster = bestSeed(results).roster
	}
	fe.last = eval
	fe.mu.Unlock()

	return eval.Fitness
}

// copyConfig returns an independent copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	return fe.baseConfig.Clone()
}

// computeEvaluation aggregates seed results. Fitness is the negated mean
// survivor count plus a small bonus for days survived; failed runs count as
// zero survivors over zero days.
func computeEvaluation(results []seedResult) Evaluation {
	var eval Evaluation
	if len(results) == 0 {
		return eval
	}

	var survivors, days float64
	for _, r := range results {
		if r.err != nil {
			eval.Failures++
			continue
		}
		survivors += float64(r.survivors)
		days += float64(r.daysRun)
		if r.extinct {
			eval.Extinctions++
		}
	}

	n := float64(len(results))
	eval.MeanSurvivors = survivors / n
	eval.MeanDaysRun = days / n
	eval.Fitness = -(eval.MeanSurvivors + dayWeight*eval.MeanDaysRun)
	return eval
}

// bestSeed returns the successful result with the most survivors.
func bestSeed(results []seedResult) seedResult {
	best := seedResult{survivors: -1}
	for _, r := range results {
		if r.err == nil && r.survivors > best.survivors {
			best = r
		}
	}
	return best
}
