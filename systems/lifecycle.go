package systems

import "github.com/pthm-cable/blobs/components"

// Fate is the day-end outcome for a live blob.
type Fate uint8

const (
	FateDie       Fate = iota // Did not make it home, or came home underfed
	FateSurvive               // Lives on without offspring
	FateReproduce             // Lives on and spawns one offspring
)

// String returns a readable name for the fate.
func (f Fate) String() string {
	switch f {
	case FateDie:
		return "die"
	case FateSurvive:
		return "survive"
	case FateReproduce:
		return "reproduce"
	default:
		return "unknown"
	}
}

// ResolveFate decides what happens to a live blob at the end of a day.
// A blob dies iff it is not home or ate fewer than SurvivalThreshold; a
// survivor reproduces iff it ate at least ReproductionThreshold.
func ResolveFate(b *components.Blob, p Params) Fate {
	if !b.ReturnedHome || b.NumEaten < p.SurvivalThreshold {
		return FateDie
	}
	if b.NumEaten >= p.ReproductionThreshold {
		return FateReproduce
	}
	return FateSurvive
}

// Die kills the blob and zeroes its energy. Death is terminal: calling Die
// on a dead blob changes nothing, including the recorded reason.
func Die(b *components.Blob, reason components.DeathReason, day int) {
	if !b.Alive {
		return
	}
	b.Alive = false
	b.Energy = 0
	b.Death = reason
	b.DiedOnDay = day
}

// ResetForDay prepares a survivor for the next day.
func ResetForDay(b *components.Blob, p Params, rng Rand) {
	b.DaysAlive++
	b.ReturnedHome = false
	b.NumEaten = 0
	b.Blocked = 0
	b.Target = components.Wander(RandomCoord(rng, p.WorldW, p.WorldH))
	b.Energy = p.InitialEnergy
}
