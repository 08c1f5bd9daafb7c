package systems

import (
	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/config"
)

// scriptedRand replays fixed sequences, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	norms  []float64
	fi, ni int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) NormFloat64() float64 {
	if len(r.norms) == 0 {
		return 0
	}
	v := r.norms[r.ni%len(r.norms)]
	r.ni++
	return v
}

func (r *scriptedRand) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(i)
	}
	return len(p), nil
}

func testParams() Params {
	return ParamsFrom(config.Default())
}

// newEnv builds a tick environment with food at the given points.
func newEnv(food ...components.Coord) *Env {
	p := testParams()
	pool := components.NewFoodPool(len(food))
	for i, c := range food {
		pool.Set(components.FoodHandle(i), c.X, c.Y, p.FoodEnergy)
	}
	grid := NewFoodGrid(p.WorldW, p.WorldH, FoodGridCellSize)
	grid.Build(pool)
	return &Env{Params: p, Pool: pool, Grid: grid, Day: 1}
}

// newTestBlob returns a live blob at (x, y) with home at the same point.
func newTestBlob(x, y, speed, sight float64) *components.Blob {
	return &components.Blob{
		Index:  0,
		Parent: -1,
		X:      x,
		Y:      y,
		Home:   components.Home{X: x, Y: y},
		Target: components.Wander(components.Coord{X: x, Y: y}),
		Alive:  true,
		Energy: 300,
		Traits: components.Traits{Speed: speed, SightDistance: sight},
	}
}
