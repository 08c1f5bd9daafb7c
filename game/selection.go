package game

import (
	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/systems"
)

// BlobAt returns the live blob nearest to (x, y) within radius, if any.
func (g *Game) BlobAt(x, y, radius float64) (components.BlobState, bool) {
	best := radius * radius
	var found *components.Blob

	query := g.blobFilter.Query()
	for query.Next() {
		b := query.Get()
		if !b.Alive {
			continue
		}
		if d := systems.DistanceSq(b.X, b.Y, x, y); d <= best {
			best = d
			found = b
		}
	}
	if found == nil {
		return components.BlobState{}, false
	}
	return found.Snapshot(), true
}

// Trail returns today's path of the blob with the given population index.
func (g *Game) Trail(index int) (components.Trail, bool) {
	for _, tr := range g.Trails() {
		if tr.Index == index {
			return tr, true
		}
	}
	return components.Trail{}, false
}

// Blob returns the blob with the given population index, dead or alive.
func (g *Game) Blob(index int) (components.BlobState, bool) {
	query := g.blobFilter.Query()
	for query.Next() {
		b := query.Get()
		if b.Index == index {
			query.Close()
			return b.Snapshot(), true
		}
	}
	return components.BlobState{}, false
}
