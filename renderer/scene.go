// Package renderer draws the world with raylib: food, blobs and their daily
// trails, either to the screen or to a PNG per day.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobs/components"
)

// Palette
var (
	BackgroundColor = rl.NewColor(102, 102, 102, 255)
	FoodColor       = rl.NewColor(37, 75, 0, 255)
	EatenFoodColor  = rl.NewColor(80, 90, 70, 255)
	HomeColor       = rl.NewColor(230, 230, 230, 255)
)

const (
	foodRadius  = 4
	blobRadius  = 6
	trailAlpha  = 153 // 60% opacity
	trailWeight = 1.5
)

// TrailHue returns the hue in degrees for a blob's trail. Founders spread
// evenly around the colour wheel; later indices wrap around.
func TrailHue(index, population int) float32 {
	if population <= 0 {
		return 0
	}
	h := math.Mod(float64(index)/float64(population), 1)
	return float32(h * 360)
}

// TrailColor returns the trail colour for a blob index.
func TrailColor(index, population int) rl.Color {
	c := rl.ColorFromHSV(TrailHue(index, population), 1, 1)
	c.A = trailAlpha
	return c
}

// Scene draws world-space content into the current render target. Scale
// maps world units to pixels; the origin maps to Offset.
type Scene struct {
	Population int
	Scale      float32
	Offset     rl.Vector2
}

// ToScreen maps a world point to render-target pixels.
func (s Scene) ToScreen(c components.Coord) rl.Vector2 {
	return rl.Vector2{
		X: s.Offset.X + float32(c.X)*s.Scale,
		Y: s.Offset.Y + float32(c.Y)*s.Scale,
	}
}

// DrawBackground fills the world rectangle.
func (s Scene) DrawBackground(worldW, worldH float64) {
	rl.DrawRectangleV(s.Offset, rl.Vector2{X: float32(worldW) * s.Scale, Y: float32(worldH) * s.Scale}, BackgroundColor)
}

// DrawFood draws every item; eaten items are drawn faded.
func (s Scene) DrawFood(food []components.FoodState) {
	r := max(foodRadius*s.Scale, 1)
	for _, f := range food {
		col := FoodColor
		if !f.Edible {
			col = EatenFoodColor
		}
		rl.DrawCircleV(s.ToScreen(components.Coord{X: f.X, Y: f.Y}), r, col)
	}
}

// DrawTrails draws each non-empty trail as a polyline in the blob's colour.
func (s Scene) DrawTrails(trails []components.Trail) {
	for _, t := range trails {
		if len(t.Points) < 2 {
			continue
		}
		col := TrailColor(t.Index, s.Population)
		prev := s.ToScreen(t.Points[0])
		for _, p := range t.Points[1:] {
			cur := s.ToScreen(p)
			rl.DrawLineEx(prev, cur, trailWeight, col)
			prev = cur
		}
	}
}

// DrawBlobs draws live blobs at their current position.
func (s Scene) DrawBlobs(blobs []components.BlobState) {
	r := max(blobRadius*s.Scale, 2)
	for _, b := range blobs {
		if !b.Alive {
			continue
		}
		col := TrailColor(b.Index, s.Population)
		col.A = 255
		rl.DrawCircleV(s.ToScreen(components.Coord{X: b.X, Y: b.Y}), r, col)
	}
}
