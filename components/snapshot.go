package components

// BlobState is a read-only copy of one roster entry, taken between ticks.
// The ID is stored in its string form so rows marshal cleanly to CSV.
type BlobState struct {
	ID            string  `csv:"id"`
	Index         int     `csv:"index"`
	Parent        int     `csv:"parent"`
	Born          int     `csv:"born"`
	X             float64 `csv:"x"`
	Y             float64 `csv:"y"`
	Alive         bool    `csv:"alive"`
	DaysAlive     int     `csv:"days_alive"`
	Speed         float64 `csv:"speed"`
	SightDistance float64 `csv:"sight_distance"`
	NumEaten      int     `csv:"num_eaten"`
	Energy        float64 `csv:"energy"`
	Death         string  `csv:"death"`
	DiedOnDay     int     `csv:"died_on_day"`
}

// Snapshot copies the blob's reportable state.
func (b *Blob) Snapshot() BlobState {
	return BlobState{
		ID:            b.ID.String(),
		Index:         b.Index,
		Parent:        b.Parent,
		Born:          b.Born,
		X:             b.X,
		Y:             b.Y,
		Alive:         b.Alive,
		DaysAlive:     b.DaysAlive,
		Speed:         b.Traits.Speed,
		SightDistance: b.Traits.SightDistance,
		NumEaten:      b.NumEaten,
		Energy:        b.Energy,
		Death:         b.Death.String(),
		DiedOnDay:     b.DiedOnDay,
	}
}

// Trail is the path a blob walked during the current day, with its energy
// at each point. Blobs born at the end of the day have empty trails.
type Trail struct {
	Index  int
	Born   int
	Alive  bool
	Points []Coord
	Energy []float64
}

// FoodState is a read-only copy of one food item.
type FoodState struct {
	X, Y   float64
	Edible bool
}
