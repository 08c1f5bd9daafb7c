// Package systems provides the per-tick and per-day rules of the simulation.
package systems

import (
	"math"

	"github.com/pthm-cable/blobs/components"
)

// FoodGridCellSize is the default cell edge of the food grid.
const FoodGridCellSize = 32.0

// FoodGrid provides nearest-food lookups using a cell-based grid.
// Food never moves during a day, so the grid is built once per pool and is
// safe for concurrent readers afterwards.
type FoodGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]components.FoodHandle
}

// NewFoodGrid creates a grid covering a width x height world.
func NewFoodGrid(width, height, cellSize float64) *FoodGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]components.FoodHandle, cols*rows)
	for i := range cells {
		cells[i] = make([]components.FoodHandle, 0, 8)
	}

	return &FoodGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all food from the grid.
func (g *FoodGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds a food handle at the given position.
func (g *FoodGrid) Insert(h components.FoodHandle, x, y float64) {
	col, row := g.cell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], h)
}

// Build clears the grid and indexes every item of the pool.
func (g *FoodGrid) Build(pool *components.FoodPool) {
	g.Clear()
	for i := range pool.Len() {
		h := components.FoodHandle(i)
		f := pool.At(h)
		g.Insert(h, f.X, f.Y)
	}
}

// NearestEdible finds the closest uneaten item within radius of (x, y).
// Equal distances resolve to the lower handle so the result does not depend
// on insertion order. Returns the squared distance alongside the handle.
func (g *FoodGrid) NearestEdible(pool *components.FoodPool, x, y, radius float64) (components.FoodHandle, float64, bool) {
	if radius < 0 || pool.Len() == 0 {
		return components.NoFood, 0, false
	}

	minCol, minRow := g.cell(x-radius, y-radius)
	maxCol, maxRow := g.cell(x+radius, y+radius)
	radiusSq := radius * radius

	best := components.NoFood
	bestSq := math.Inf(1)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, h := range g.cells[row*g.cols+col] {
				f := pool.At(h)
				if !f.Edible() {
					continue
				}
				dsq := DistanceSq(x, y, f.X, f.Y)
				if dsq > radiusSq {
					continue
				}
				if dsq < bestSq || (dsq == bestSq && h < best) {
					best, bestSq = h, dsq
				}
			}
		}
	}

	if best == components.NoFood {
		return components.NoFood, 0, false
	}
	return best, bestSq, true
}

// cell returns the clamped column and row for a world position.
func (g *FoodGrid) cell(x, y float64) (col, row int) {
	col = clampIndex(math.Floor(x/g.cellSize), g.cols)
	row = clampIndex(math.Floor(y/g.cellSize), g.rows)
	return col, row
}

func clampIndex(v float64, n int) int {
	if v < 0 {
		return 0
	}
	if v >= float64(n) {
		return n - 1
	}
	return int(v)
}
