package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobs/components"
)

// DayRenderer draws a finished day to a PNG through an off-screen render
// texture. A raylib window must exist; headless callers open a hidden one
// with OpenHiddenWindow.
type DayRenderer struct {
	dir            string
	worldW, worldH float64
	scene          Scene

	target      rl.RenderTexture2D
	initialized bool
}

// OpenHiddenWindow creates the invisible window raylib needs for GPU work.
func OpenHiddenWindow(width, height int32) {
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, "blobs")
}

// CloseWindow closes the window opened by OpenHiddenWindow.
func CloseWindow() {
	rl.CloseWindow()
}

// NewDayRenderer creates a renderer writing day_<n>.png files into dir.
// Images are one pixel per world unit.
func NewDayRenderer(dir string, worldW, worldH float64, population int) (*DayRenderer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}
	return &DayRenderer{
		dir:    dir,
		worldW: worldW,
		worldH: worldH,
		scene:  Scene{Population: population, Scale: 1},
	}, nil
}

// Init allocates the render texture (must be called after the window is created).
func (d *DayRenderer) Init() {
	if d.initialized {
		return
	}
	d.target = rl.LoadRenderTexture(int32(d.worldW), int32(d.worldH))
	d.initialized = true
}

// Path returns the file a day is written to.
func (d *DayRenderer) Path(day int) string {
	return filepath.Join(d.dir, fmt.Sprintf("day_%d.png", day))
}

// Draw renders food and trails for a day and exports the image.
func (d *DayRenderer) Draw(day int, trails []components.Trail, food []components.FoodState) error {
	if !d.initialized {
		d.Init()
	}

	rl.BeginTextureMode(d.target)
	rl.ClearBackground(BackgroundColor)
	d.scene.DrawBackground(d.worldW, d.worldH)
	d.scene.DrawFood(food)
	d.scene.DrawTrails(trails)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(d.target.Texture)
	rl.ImageFlipVertical(img)
	defer rl.UnloadImage(img)

	path := d.Path(day)
	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("exporting %s", path)
	}
	return nil
}

// Unload frees resources.
func (d *DayRenderer) Unload() {
	if d.initialized {
		rl.UnloadRenderTexture(d.target)
		d.initialized = false
	}
}
