package game

import (
	"testing"

	"github.com/pthm-cable/blobs/components"
)

func TestBlobAt(t *testing.T) {
	g := newTestGame(t, emptyConfig(), Options{})
	addBlob(g, 100, 100)
	addBlob(g, 110, 100)

	tests := []struct {
		name      string
		x, y, r   float64
		wantIndex int
		wantOK    bool
	}{
		{"exact hit", 100, 100, 5, 0, true},
		{"nearest of two", 107, 100, 12, 1, true},
		{"edge of radius", 100, 105, 5, 0, true},
		{"miss", 300, 300, 12, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := g.BlobAt(tt.x, tt.y, tt.r)
			if ok != tt.wantOK {
				t.Fatalf("found = %v, want %v", ok, tt.wantOK)
			}
			if ok && b.Index != tt.wantIndex {
				t.Errorf("index = %d, want %d", b.Index, tt.wantIndex)
			}
		})
	}
}

func TestBlobByIndex(t *testing.T) {
	g := newTestGame(t, emptyConfig(), Options{})
	addBlob(g, 100, 100)
	addBlob(g, 200, 300)

	b, ok := g.Blob(1)
	if !ok || b.X != 200 || b.Y != 300 {
		t.Errorf("Blob(1) = %+v, %v", b, ok)
	}
	if _, ok := g.Blob(7); ok {
		t.Error("Blob(7) should not exist")
	}
}

func TestTrailByIndex(t *testing.T) {
	g := newTestGame(t, emptyConfig(), Options{})
	addBlob(g, 100, 100)
	setFood(g)
	g.Tick()

	tr, ok := g.Trail(0)
	if !ok {
		t.Fatal("Trail(0) not found")
	}
	if len(tr.Points) != 1 || tr.Points[0] != (components.Coord{X: 100, Y: 100}) {
		t.Errorf("points = %v, want the start position", tr.Points)
	}
	if len(tr.Energy) != 1 || tr.Energy[0] != g.cfg.Blob.InitialEnergy {
		t.Errorf("energy = %v, want [%v]", tr.Energy, g.cfg.Blob.InitialEnergy)
	}
	if _, ok := g.Trail(3); ok {
		t.Error("Trail(3) should not exist")
	}
}
