package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/blobs/components"
)

func TestMutateGene(t *testing.T) {
	p := testParams()

	tests := []struct {
		name   string
		gene   float64
		floats []float64
		want   float64
	}{
		{"no mutation", 15, []float64{0.9}, 15},
		{"roll at chance does not mutate", 15, []float64{0.05}, 15},
		{"positive", 15, []float64{0, 0.5, 0.9}, 16},
		{"negative", 15, []float64{0, 0.5, 0.1}, 14},
		{"floored at zero", 0.5, []float64{0, 0.5, 0.1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MutateGene(tt.gene, p, &scriptedRand{floats: tt.floats})
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MutateGene = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMutateGeneBounds(t *testing.T) {
	p := testParams()
	p.MutationChance = 1
	rng := NewRand(7)

	for range 1000 {
		got := MutateGene(30, p, rng)
		if math.Abs(got-30) >= p.MutationMax {
			t.Fatalf("mutation %v outside (-%v, %v)", got-30, p.MutationMax, p.MutationMax)
		}
	}

	p.MutationChance = 0
	for range 1000 {
		if got := MutateGene(30, p, rng); got != 30 {
			t.Fatalf("chance 0 mutated gene to %v", got)
		}
	}
}

func TestReproduceOffsetAxis(t *testing.T) {
	p := testParams()

	tests := []struct {
		name         string
		px, py       float64
		sign         float64
		wantX, wantY float64
	}{
		{"left edge offsets y", 0, 500, 0.9, 0, 501.5},
		{"right edge offsets y", 1000, 500, 0.9, 1000, 501.5},
		{"top edge offsets x", 300, 0, 0.9, 301.5, 0},
		{"bottom edge offsets x", 300, 1000, 0.1, 298.5, 1000},
		{"interior offsets x", 300, 400, 0.9, 301.5, 400},
		{"clamped to world", 0, 0, 0.1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := newTestBlob(tt.px, tt.py, 15, 30)
			parent.Index = 7
			// offset magnitude, offset sign, then two mutation rolls that miss
			rng := &scriptedRand{floats: []float64{0.5, tt.sign, 0.9, 0.9}}

			child := Reproduce(parent, p, rng, 3)

			if math.Abs(child.X-tt.wantX) > 1e-9 || math.Abs(child.Y-tt.wantY) > 1e-9 {
				t.Errorf("child at (%v, %v), want (%v, %v)", child.X, child.Y, tt.wantX, tt.wantY)
			}
			if child.Traits != parent.Traits {
				t.Errorf("traits = %+v, want unchanged %+v", child.Traits, parent.Traits)
			}
			if child.Parent != 7 {
				t.Errorf("parent = %d, want 7", child.Parent)
			}
		})
	}
}

func TestReproduceChildDefaults(t *testing.T) {
	p := testParams()
	parent := newTestBlob(0, 500, 15, 30)
	parent.NumEaten = 3
	parent.DaysAlive = 4
	parent.Energy = 12

	child := Reproduce(parent, p, NewRand(1), 5)

	if !child.Alive || child.Energy != p.InitialEnergy {
		t.Errorf("child alive=%v energy=%v, want alive with %v", child.Alive, child.Energy, p.InitialEnergy)
	}
	if child.NumEaten != 0 || child.DaysAlive != 0 || child.ReturnedHome {
		t.Errorf("child carries parent state: %+v", child)
	}
	if child.Home.Coord() != child.Position() {
		t.Errorf("home %+v differs from birth position %+v", child.Home, child.Position())
	}
	if child.Index != -1 || child.Born != 5 {
		t.Errorf("index=%d born=%d, want -1 and 5", child.Index, child.Born)
	}
	if child.Target.Kind != components.TargetWander {
		t.Errorf("target kind = %v, want wander", child.Target.Kind)
	}
	if child.ID == parent.ID {
		t.Error("child should get its own ID")
	}
	if child.Traits.Speed < 0 || child.Traits.SightDistance < 0 {
		t.Errorf("negative traits %+v", child.Traits)
	}
}

func TestNewBlobDeterministicID(t *testing.T) {
	p := testParams()
	a := NewBlob(NewRand(42), 0, 0, components.Traits{Speed: 15}, p, 0)
	b := NewBlob(NewRand(42), 0, 0, components.Traits{Speed: 15}, p, 0)
	if a.ID != b.ID {
		t.Errorf("same seed produced IDs %v and %v", a.ID, b.ID)
	}
	if a.Target != b.Target {
		t.Errorf("same seed produced targets %+v and %+v", a.Target, b.Target)
	}
}
