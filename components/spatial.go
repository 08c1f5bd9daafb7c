package components

// Coord is an immutable point in world space.
type Coord struct {
	X, Y float64
}

// Home is the fixed point a blob was born at and must return to each day.
type Home struct {
	X, Y float64
}

// Coord returns the home position as a point.
func (h Home) Coord() Coord {
	return Coord{X: h.X, Y: h.Y}
}
