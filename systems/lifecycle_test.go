package systems

import (
	"testing"

	"github.com/pthm-cable/blobs/components"
)

func TestResolveFate(t *testing.T) {
	p := testParams()

	tests := []struct {
		name  string
		home  bool
		eaten int
		want  Fate
	}{
		{"stranded", false, 3, FateDie},
		{"home hungry", true, 0, FateDie},
		{"home fed", true, 1, FateSurvive},
		{"home at reproduction threshold", true, 2, FateReproduce},
		{"home well fed", true, 5, FateReproduce},
		{"stranded hungry", false, 0, FateDie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBlob(0, 0, 15, 30)
			b.ReturnedHome = tt.home
			b.NumEaten = tt.eaten
			if got := ResolveFate(b, p); got != tt.want {
				t.Errorf("ResolveFate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveFateZeroThresholds(t *testing.T) {
	p := testParams()
	p.SurvivalThreshold = 0
	p.ReproductionThreshold = 0

	b := newTestBlob(0, 0, 15, 30)
	b.ReturnedHome = true
	if got := ResolveFate(b, p); got != FateReproduce {
		t.Errorf("home blob with zero thresholds: %v, want reproduce", got)
	}
	b.ReturnedHome = false
	if got := ResolveFate(b, p); got != FateDie {
		t.Errorf("stranded blob with zero thresholds: %v, want die", got)
	}
}

func TestDieIsTerminal(t *testing.T) {
	b := newTestBlob(0, 0, 15, 30)
	Die(b, components.DeathStranded, 2)
	Die(b, components.DeathStarved, 3)

	if b.Alive || b.Energy != 0 {
		t.Errorf("alive=%v energy=%v, want dead with 0", b.Alive, b.Energy)
	}
	if b.Death != components.DeathStranded || b.DiedOnDay != 2 {
		t.Errorf("death = %v on day %d, want first death kept", b.Death, b.DiedOnDay)
	}
}

func TestResetForDay(t *testing.T) {
	p := testParams()
	b := newTestBlob(0, 400, 15, 30)
	b.Home = components.Home{X: 0, Y: 400}
	b.ReturnedHome = true
	b.NumEaten = 3
	b.Blocked = 2
	b.Energy = 17
	b.Target = components.SeekHome()

	ResetForDay(b, p, &scriptedRand{})

	if b.DaysAlive != 1 {
		t.Errorf("days alive = %d, want 1", b.DaysAlive)
	}
	if b.ReturnedHome || b.NumEaten != 0 || b.Blocked != 0 {
		t.Errorf("daily counters not cleared: %+v", b)
	}
	if b.Energy != p.InitialEnergy {
		t.Errorf("energy = %v, want %v", b.Energy, p.InitialEnergy)
	}
	if b.Target.Kind != components.TargetWander {
		t.Errorf("target kind = %v, want wander", b.Target.Kind)
	}
	if b.Home != (components.Home{X: 0, Y: 400}) || b.X != 0 || b.Y != 400 {
		t.Error("reset must not move the blob or its home")
	}
}
