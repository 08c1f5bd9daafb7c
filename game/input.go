package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobs/ui"
)

// handleInput processes keyboard input.
func (v *Viewer) handleInput() {
	// Window resize propagation
	v.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		v.controls.Paused = !v.controls.Paused
	}

	// Ticks-per-frame control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		v.controls.TicksPerFrame = ui.ClampTicksPerFrame(v.controls.TicksPerFrame - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		v.controls.TicksPerFrame = ui.ClampTicksPerFrame(v.controls.TicksPerFrame + 1)
	}

	if rl.IsKeyPressed(rl.KeyN) {
		v.controls.StepDay = true
		v.controls.Paused = false
	}

	if rl.IsKeyPressed(rl.KeyS) {
		v.showStats = !v.showStats
	}

	// Camera controls
	v.handleCameraInput()

	v.handleSelection()
}

// handleSelection picks the blob under a left click, or clears the selection.
func (v *Viewer) handleSelection() {
	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return
	}
	mouse := rl.GetMousePosition()
	if mouse.X >= v.screenWidth-controlsWidth-10 && mouse.Y <= ui.ControlsHeight+10 {
		return // click landed on the controls panel
	}
	wx, wy := v.camera.ScreenToWorld(mouse.X, mouse.Y)
	radius := float64(pickRadius / v.camera.Zoom)
	if b, ok := v.g.BlobAt(float64(wx), float64(wy), radius); ok {
		v.selected = b.Index
	} else {
		v.selected = -1
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (v *Viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == v.screenWidth && h == v.screenHeight {
		return
	}
	v.screenWidth = w
	v.screenHeight = h

	v.camera.Resize(w, h)
	v.controlsPanel.SetPosition(int32(w)-controlsWidth-10, 10)
}

// handleCameraInput processes camera pan/zoom controls.
func (v *Viewer) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / v.camera.Zoom

	// Arrow key panning
	if rl.IsKeyDown(rl.KeyRight) {
		v.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		v.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		v.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		v.camera.Pan(0, -panSpeed)
	}

	// Zoom controls: mouse wheel or +/- keys
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		v.camera.ZoomBy(1.0 + wheelMove*0.1)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		v.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		v.camera.ZoomBy(0.8)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		v.camera.Reset()
	}
}
