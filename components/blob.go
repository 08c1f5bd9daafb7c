package components

import "github.com/google/uuid"

// Blob is the ECS component holding one forager's complete state.
type Blob struct {
	// Identity
	ID     uuid.UUID
	Index  int // population index, assigned once
	Parent int // parent's index, -1 for founders
	Born   int // day of birth

	// Position and goal
	X, Y   float64
	Home   Home
	Target Target

	// Life state
	Alive        bool
	ReturnedHome bool
	NumEaten     int
	DaysAlive    int
	Energy       float64
	Death        DeathReason
	DiedOnDay    int

	Traits Traits

	// Per-day history
	Blocked  int       // times a targeted food item was eaten by someone else
	Trail    []Coord   // position at the start of every tick this day
	Energies []float64 // energy at the start of every tick this day
}

// Position returns the blob's current position.
func (b *Blob) Position() Coord {
	return Coord{X: b.X, Y: b.Y}
}

// Active reports whether the blob still takes part in the current day.
func (b *Blob) Active() bool {
	return b.Alive && !b.ReturnedHome
}
