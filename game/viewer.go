package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobs/camera"
	"github.com/pthm-cable/blobs/ui"
)

const (
	controlsWidth = 220
	pickRadius    = 12 // screen pixels
)

// Viewer runs a game in a raylib window, a few ticks per frame, with pan,
// zoom and run controls.
type Viewer struct {
	g       *Game
	stepper *Stepper

	camera        *camera.Camera
	hud           *ui.HUD
	controlsPanel *ui.ControlsPanel
	panels        *ui.Renderer
	statsPanel    ui.PanelDescriptor
	inspector     ui.PanelDescriptor
	controls      ui.ControlsState
	showStats     bool
	selected      int // population index of the inspected blob, -1 for none

	screenWidth, screenHeight float32
}

// NewViewer prepares a viewer for up to days days of g. Call Run from the
// main goroutine.
func NewViewer(g *Game, days int) *Viewer {
	w := float32(g.cfg.Screen.Width)
	h := float32(g.cfg.Screen.Height)
	return &Viewer{
		g:             g,
		stepper:       g.NewStepper(days),
		camera:        camera.New(w, h, float32(g.params.WorldW), float32(g.params.WorldH)),
		hud:           ui.NewHUD(),
		controlsPanel: ui.NewControlsPanel(int32(w)-controlsWidth-10, 10, controlsWidth),
		panels:        ui.NewRenderer(),
		statsPanel:    ui.DayStatsPanel(),
		inspector:     ui.InspectorPanel(g.cfg.Blob.InitialEnergy),
		controls:      ui.ControlsState{TicksPerFrame: 1},
		showStats:     true,
		selected:      -1,
		screenWidth:   w,
		screenHeight:  h,
	}
}

// Run opens the window and loops until it is closed. The simulation stops
// advancing once the run is over but the window stays up for inspection.
func (v *Viewer) Run() RunResult {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(v.screenWidth), int32(v.screenHeight), "Blobs")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(v.g.cfg.Screen.TargetFPS))

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()
	}
	return v.stepper.Result()
}

// Update handles input and advances the simulation for one frame.
func (v *Viewer) Update() {
	v.handleInput()
	v.g.perfCollector.RecordFrame()

	if v.controls.Paused || v.stepper.Done() {
		return
	}

	if v.controls.StepDay {
		v.stepper.FinishDay()
		v.controls.StepDay = false
		v.controls.Paused = true
		return
	}

	for range v.controls.TicksPerFrame {
		if !v.stepper.Step() {
			break
		}
	}
}
