// Package components defines the ECS components and value types of the simulation.
package components

// DeathReason records why a blob died.
type DeathReason uint8

const (
	DeathNone     DeathReason = iota // Still alive
	DeathStarved                     // Energy could no longer pay for a move
	DeathStranded                    // Did not make it home, or came home underfed
)

// String returns the reason as logged.
func (r DeathReason) String() string {
	switch r {
	case DeathNone:
		return "alive"
	case DeathStarved:
		return "running out of energy"
	case DeathStranded:
		return "did not make it home"
	default:
		return "unknown"
	}
}

// Traits are the heritable parameters of a blob, fixed at birth.
type Traits struct {
	Speed         float64
	SightDistance float64
}
