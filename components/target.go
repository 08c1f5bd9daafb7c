package components

// TargetKind tags the variant held by a Target.
type TargetKind uint8

const (
	TargetWander TargetKind = iota // Heading for a random point
	TargetFood                     // Heading for a food item in the day's pool
	TargetHome                     // Heading back to the blob's home
)

// String returns a readable name for the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetWander:
		return "wander"
	case TargetFood:
		return "food"
	case TargetHome:
		return "home"
	default:
		return "unknown"
	}
}

// Target is the current movement goal of a blob.
// Point is meaningful for TargetWander, Food for TargetFood. Home targets
// resolve through the owning blob's Home.
type Target struct {
	Kind  TargetKind
	Point Coord
	Food  FoodHandle
}

// Wander returns a target for a random point.
func Wander(c Coord) Target {
	return Target{Kind: TargetWander, Point: c, Food: NoFood}
}

// SeekFood returns a target referencing a food item.
func SeekFood(h FoodHandle) Target {
	return Target{Kind: TargetFood, Food: h}
}

// SeekHome returns a target for the blob's own home.
func SeekHome() Target {
	return Target{Kind: TargetHome, Food: NoFood}
}
