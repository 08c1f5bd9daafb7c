package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/renderer"
	"github.com/pthm-cable/blobs/ui"
)

const controlsLegend = "[Space] Pause  [N] Finish day  [,/.] Speed  [Arrows] Pan  [+/-] Zoom  [Home] Reset view  [S] Stats"

// Draw renders one frame: the world through the camera, then the HUD.
func (v *Viewer) Draw() {
	g := v.g
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	ox, oy := v.camera.WorldToScreen(0, 0)
	scene := renderer.Scene{
		Population: g.cfg.Population.Initial,
		Scale:      v.camera.Zoom,
		Offset:     rl.Vector2{X: ox, Y: oy},
	}
	scene.DrawBackground(g.params.WorldW, g.params.WorldH)
	scene.DrawFood(g.FoodState())
	scene.DrawTrails(g.Trails())
	scene.DrawBlobs(g.Roster())
	v.drawSelection(scene)

	v.drawUI()

	rl.EndDrawing()
}

// drawUI draws the HUD and panels over the world.
func (v *Viewer) drawUI() {
	g := v.g
	res := v.stepper.Result()

	foodLeft, foodTotal := 0, 0
	if g.pool != nil {
		foodLeft, foodTotal = g.pool.Remaining(), g.pool.Len()
	}

	v.hud.Draw(ui.HUDData{
		Title:         "Blobs",
		Day:           g.CurrentDay(),
		LastDay:       v.stepper.LastDay(),
		Tick:          g.TickInDay(),
		DayLength:     g.cfg.Day.Length,
		Alive:         g.AliveCount(),
		FoodLeft:      foodLeft,
		FoodTotal:     foodTotal,
		TicksPerFrame: v.controls.TicksPerFrame,
		FPS:           rl.GetFPS(),
		Paused:        v.controls.Paused,
		Finished:      v.stepper.Done(),
		Extinct:       res.Extinct,
	})
	v.hud.DrawControls(int32(v.screenHeight), controlsLegend)

	v.controls = v.controlsPanel.Draw(v.controls)

	if v.showStats && g.LastStats().Day > 0 {
		v.panels.DrawPanelDescriptor(10, 100, v.statsPanel, g.LastStats())
	}

	if v.selected >= 0 {
		if b, ok := g.Blob(v.selected); ok {
			x := int32(v.screenWidth) - v.inspector.Width - 10
			bottom := v.panels.DrawPanelDescriptor(x, ui.ControlsHeight+20, v.inspector, b)
			if tr, ok := g.Trail(v.selected); ok {
				v.panels.DrawEnergyHistory(x, bottom+6, v.inspector.Width, tr.Energy, g.cfg.Blob.InitialEnergy)
			}
		}
	}
}

// drawSelection rings the inspected blob.
func (v *Viewer) drawSelection(scene renderer.Scene) {
	if v.selected < 0 {
		return
	}
	b, ok := v.g.Blob(v.selected)
	if !ok || !b.Alive {
		return
	}
	pos := scene.ToScreen(components.Coord{X: b.X, Y: b.Y})
	rl.DrawCircleLinesV(pos, pickRadius, rl.White)
}
