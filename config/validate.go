package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration and reports every violated constraint.
// Values are never clamped; a bad config is rejected as a whole.
func (c *Config) Validate() error {
	var errs []error
	fail := func(key, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalidConfig, key, fmt.Sprintf(format, args...)))
	}

	if c.World.Width <= 0 {
		fail("world.width", "must be positive, got %g", c.World.Width)
	}
	if c.World.Height <= 0 {
		fail("world.height", "must be positive, got %g", c.World.Height)
	}
	if c.Population.Initial <= 0 {
		fail("population.initial", "must be positive, got %d", c.Population.Initial)
	}

	if c.Blob.InitialEnergy < 0 {
		fail("blob.initial_energy", "must not be negative, got %g", c.Blob.InitialEnergy)
	}
	if c.Blob.InitialSpeed < 0 {
		fail("blob.initial_speed", "must not be negative, got %g", c.Blob.InitialSpeed)
	}
	if c.Blob.InitialSightDistance < 0 {
		fail("blob.initial_sight_distance", "must not be negative, got %g", c.Blob.InitialSightDistance)
	}
	if c.Blob.ReturnHomeAfterEating < 0 {
		fail("blob.return_home_after_eating", "must not be negative, got %d", c.Blob.ReturnHomeAfterEating)
	}
	if c.Blob.MinReturnHomeAfterEating < 0 {
		fail("blob.min_return_home_after_eating", "must not be negative, got %d", c.Blob.MinReturnHomeAfterEating)
	}

	if c.Mutation.Chance < 0 || c.Mutation.Chance > 1 {
		fail("mutation.chance", "must be within [0, 1], got %g", c.Mutation.Chance)
	}
	if c.Mutation.Max < 0 {
		fail("mutation.max", "must not be negative, got %g", c.Mutation.Max)
	}

	if c.Reproduction.Threshold < 0 {
		fail("reproduction.threshold", "must not be negative, got %d", c.Reproduction.Threshold)
	}
	if c.Reproduction.SpawnOffset < 0 {
		fail("reproduction.spawn_offset", "must not be negative, got %g", c.Reproduction.SpawnOffset)
	}
	if c.Survival.Threshold < 0 {
		fail("survival.threshold", "must not be negative, got %d", c.Survival.Threshold)
	}

	if c.Food.Count <= 0 {
		fail("food.count", "must be positive, got %d", c.Food.Count)
	}
	if c.Food.Energy < 0 {
		fail("food.energy", "must not be negative, got %g", c.Food.Energy)
	}
	if c.Food.Spread <= 0 {
		fail("food.spread", "must be positive, got %g", c.Food.Spread)
	}
	if c.Food.EdgeMargin < 0 {
		fail("food.edge_margin", "must not be negative, got %g", c.Food.EdgeMargin)
	} else if c.World.Width > 0 && c.World.Height > 0 &&
		(2*c.Food.EdgeMargin >= c.World.Width || 2*c.Food.EdgeMargin >= c.World.Height) {
		fail("food.edge_margin", "%g leaves no room inside a %gx%g world", c.Food.EdgeMargin, c.World.Width, c.World.Height)
	}

	if c.Day.Length <= 0 {
		fail("day.length", "must be positive, got %d", c.Day.Length)
	}
	if c.Simulation.Workers < 0 {
		fail("simulation.workers", "must not be negative, got %d", c.Simulation.Workers)
	}
	if c.Simulation.ParallelThreshold < 0 {
		fail("simulation.parallel_threshold", "must not be negative, got %d", c.Simulation.ParallelThreshold)
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		fail("screen", "size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS < 0 {
		fail("screen.target_fps", "must not be negative, got %d", c.Screen.TargetFPS)
	}

	return errors.Join(errs...)
}
