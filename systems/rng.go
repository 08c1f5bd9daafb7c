package systems

import (
	"math/rand"

	"github.com/pthm-cable/blobs/components"
)

// Rand is the source of every random decision in the simulation.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	Float64() float64
	NormFloat64() float64
	Read(p []byte) (n int, err error)
}

// NewRand returns a seeded generator.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomSign returns -1 or +1 with equal probability.
func randomSign(rng Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// clampedGaussian samples N(0.5, sigma) scaled to size, clamped to [lo, hi].
func clampedGaussian(rng Rand, sigma, size, lo, hi float64) float64 {
	return Clamp((0.5+sigma*rng.NormFloat64())*size, lo, hi)
}

// RandomCoord samples a wander point biased toward the world centre.
func RandomCoord(rng Rand, width, height float64) components.Coord {
	return components.Coord{
		X: clampedGaussian(rng, 0.25, width, 0, width),
		Y: clampedGaussian(rng, 0.25, height, 0, height),
	}
}

// FoodPosition samples a food location: centre-biased, never within the
// edge margin.
func FoodPosition(rng Rand, p Params) (x, y float64) {
	x = clampedGaussian(rng, p.FoodSpread, p.WorldW, p.FoodMargin, p.WorldW-p.FoodMargin)
	y = clampedGaussian(rng, p.FoodSpread, p.WorldH, p.FoodMargin, p.WorldH-p.FoodMargin)
	return x, y
}

// FounderPosition places founder i of n on the world boundary: the first
// quarter on the left edge, the second on the right, then top and bottom.
// The free coordinate is uniform along the edge.
func FounderPosition(i, n int, rng Rand, p Params) (x, y float64) {
	k := float64(i + 1)
	half := float64(n) / 2
	quarter := float64(n) / 4

	if k < half {
		if k >= quarter {
			x = p.WorldW
		}
		return x, rng.Float64() * p.WorldH
	}
	if k >= quarter*3 {
		y = p.WorldH
	}
	return rng.Float64() * p.WorldW, y
}
