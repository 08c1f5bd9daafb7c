package systems

import "testing"

func TestFounderPositionOnBoundary(t *testing.T) {
	p := testParams()
	rng := NewRand(3)
	const n = 20

	var left, right, top, bottom int
	for i := range n {
		x, y := FounderPosition(i, n, rng, p)
		switch {
		case x == 0:
			left++
		case x == p.WorldW:
			right++
		case y == 0:
			top++
		case y == p.WorldH:
			bottom++
		default:
			t.Fatalf("founder %d at (%v, %v) is not on the boundary", i, x, y)
		}
		if x < 0 || x > p.WorldW || y < 0 || y > p.WorldH {
			t.Fatalf("founder %d at (%v, %v) is out of bounds", i, x, y)
		}
	}

	if left != 4 || right != 5 || top != 5 || bottom != 6 {
		t.Errorf("edge counts l=%d r=%d t=%d b=%d, want 4/5/5/6", left, right, top, bottom)
	}
}

func TestFounderPositionSingle(t *testing.T) {
	p := testParams()
	x, y := FounderPosition(0, 1, &scriptedRand{floats: []float64{0.5}}, p)
	if y != p.WorldH || x != 500 {
		t.Errorf("single founder at (%v, %v), want (500, %v)", x, y, p.WorldH)
	}
}

func TestFoodPositionRespectsMargin(t *testing.T) {
	p := testParams()
	rng := NewRand(11)
	for range 5000 {
		x, y := FoodPosition(rng, p)
		if x < p.FoodMargin || x > p.WorldW-p.FoodMargin || y < p.FoodMargin || y > p.WorldH-p.FoodMargin {
			t.Fatalf("food at (%v, %v) inside the edge margin", x, y)
		}
	}

	// Extreme draws clamp onto the margin
	x, y := FoodPosition(&scriptedRand{norms: []float64{-100, 100}}, p)
	if x != p.FoodMargin || y != p.WorldH-p.FoodMargin {
		t.Errorf("clamped food at (%v, %v)", x, y)
	}
}

func TestRandomCoordInBounds(t *testing.T) {
	rng := NewRand(5)
	for range 5000 {
		c := RandomCoord(rng, 200, 100)
		if c.X < 0 || c.X > 200 || c.Y < 0 || c.Y > 100 {
			t.Fatalf("wander point %+v outside the world", c)
		}
	}
	if c := RandomCoord(&scriptedRand{}, 200, 100); c.X != 100 || c.Y != 50 {
		t.Errorf("zero draw = %+v, want centre", c)
	}
}
