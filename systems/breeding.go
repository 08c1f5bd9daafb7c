package systems

import (
	"github.com/google/uuid"

	"github.com/pthm-cable/blobs/components"
)

// NewBlob creates a live blob at (x, y) with full energy and a fresh wander
// target. Its home is the birth position. The index is left unassigned (-1)
// until the blob joins a roster.
func NewBlob(rng Rand, x, y float64, traits components.Traits, p Params, day int) components.Blob {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		id = uuid.New()
	}
	return components.Blob{
		ID:     id,
		Index:  -1,
		Parent: -1,
		Born:   day,
		X:      x,
		Y:      y,
		Home:   components.Home{X: x, Y: y},
		Target: components.Wander(RandomCoord(rng, p.WorldW, p.WorldH)),
		Alive:  true,
		Energy: p.InitialEnergy,
		Traits: traits,
	}
}

// MutateGene returns gene perturbed by U[0, MutationMax) with a random sign,
// with probability MutationChance; otherwise gene unchanged. Traits are
// physical magnitudes, so the result is floored at zero.
func MutateGene(gene float64, p Params, rng Rand) float64 {
	if rng.Float64() < p.MutationChance {
		return max(gene+rng.Float64()*p.MutationMax*randomSign(rng), 0)
	}
	return gene
}

// Reproduce spawns an offspring next to the parent with independently
// mutated speed and sight. A parent standing on the left or right world
// edge offsets its child along Y, any other parent along X, which keeps
// children of boundary-born parents on the boundary.
func Reproduce(parent *components.Blob, p Params, rng Rand, day int) components.Blob {
	x, y := parent.X, parent.Y
	offset := rng.Float64() * p.SpawnOffset * randomSign(rng)
	if x == 0 || x == p.WorldW {
		y += offset
	} else {
		x += offset
	}
	x = Clamp(x, 0, p.WorldW)
	y = Clamp(y, 0, p.WorldH)

	traits := components.Traits{
		Speed:         MutateGene(parent.Traits.Speed, p, rng),
		SightDistance: MutateGene(parent.Traits.SightDistance, p, rng),
	}
	child := NewBlob(rng, x, y, traits, p, day)
	child.Parent = parent.Index
	return child
}
