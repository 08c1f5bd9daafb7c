package systems

import (
	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/config"
)

// Params are the config values read on hot paths, flattened once per run.
type Params struct {
	WorldW, WorldH float64

	InitialEnergy            float64
	ReturnHomeAfterEating    int
	MinReturnHomeAfterEating int

	MutationChance float64
	MutationMax    float64
	SpawnOffset    float64

	SurvivalThreshold     int
	ReproductionThreshold int

	FoodEnergy float64
	FoodSpread float64
	FoodMargin float64
}

// ParamsFrom extracts Params from a loaded config.
func ParamsFrom(cfg *config.Config) Params {
	return Params{
		WorldW:                   cfg.World.Width,
		WorldH:                   cfg.World.Height,
		InitialEnergy:            cfg.Blob.InitialEnergy,
		ReturnHomeAfterEating:    cfg.Blob.ReturnHomeAfterEating,
		MinReturnHomeAfterEating: cfg.Blob.MinReturnHomeAfterEating,
		MutationChance:           cfg.Mutation.Chance,
		MutationMax:              cfg.Mutation.Max,
		SpawnOffset:              cfg.Reproduction.SpawnOffset,
		SurvivalThreshold:        cfg.Survival.Threshold,
		ReproductionThreshold:    cfg.Reproduction.Threshold,
		FoodEnergy:               cfg.Food.Energy,
		FoodSpread:               cfg.Food.Spread,
		FoodMargin:               cfg.Food.EdgeMargin,
	}
}

// Env is the context shared by every blob during one tick. Params, Grid and
// the food positions are read-only; the pool's claimed flags are the only
// shared mutable state.
type Env struct {
	Params Params
	Pool   *components.FoodPool
	Grid   *FoodGrid
	Day    int
}
