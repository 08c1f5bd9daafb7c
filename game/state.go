package game

import (
	"slices"
	"sort"

	"github.com/pthm-cable/blobs/components"
)

// Roster is a read-only copy of every blob in the world, sorted by index.
type Roster []components.BlobState

// Alive counts the live entries.
func (r Roster) Alive() int {
	n := 0
	for _, b := range r {
		if b.Alive {
			n++
		}
	}
	return n
}

// Roster snapshots every blob, dead or alive, ordered by population index.
// Call between ticks.
func (g *Game) Roster() Roster {
	var out Roster
	query := g.blobFilter.Query()
	for query.Next() {
		out = append(out, query.Get().Snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}

// Trails copies each blob's path for the current day, ordered by index.
func (g *Game) Trails() []components.Trail {
	var out []components.Trail
	query := g.blobFilter.Query()
	for query.Next() {
		b := query.Get()
		out = append(out, components.Trail{
			Index:  b.Index,
			Born:   b.Born,
			Alive:  b.Alive,
			Points: slices.Clone(b.Trail),
			Energy: slices.Clone(b.Energies),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}

// FoodState copies the current food pool.
func (g *Game) FoodState() []components.FoodState {
	if g.pool == nil {
		return nil
	}
	out := make([]components.FoodState, g.pool.Len())
	for i := range out {
		h := components.FoodHandle(i)
		f := g.pool.At(h)
		out[i] = components.FoodState{X: f.X, Y: f.Y, Edible: f.Edible()}
	}
	return out
}
