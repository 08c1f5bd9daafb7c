package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Speed limits for the ticks-per-frame slider.
const (
	MinTicksPerFrame = 1
	MaxTicksPerFrame = 24
)

// ControlsHeight is the panel's height in pixels.
const ControlsHeight = 110

// ControlsState is what the player set on the controls panel this frame.
type ControlsState struct {
	Paused        bool
	TicksPerFrame int
	StepDay       bool // run to the end of the current day, then pause
}

// ControlsPanel renders the raygui run controls.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Draw renders the panel and returns the updated state.
func (c *ControlsPanel) Draw(state ControlsState) ControlsState {
	r := c.renderer
	padding := r.Theme.Padding

	r.DrawPanel(c.x, c.y, c.width, ControlsHeight)

	x := float32(c.x + padding)
	y := float32(c.y + padding)
	inner := float32(c.width - 2*padding)

	rl.DrawText("Controls", int32(x), int32(y), 16, rl.White)
	y += 22

	half := (inner - 10) / 2
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, toggleText(state.Paused, "Resume", "Pause")) {
		state.Paused = !state.Paused
	}
	if gui.Button(rl.Rectangle{X: x + half + 10, Y: y, Width: half, Height: 24}, "Finish Day") {
		state.StepDay = true
		state.Paused = false
	}
	y += 34

	rl.DrawText("Ticks per frame", int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += 14
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: inner - 30, Height: 16},
		"", "",
		float32(state.TicksPerFrame), MinTicksPerFrame, MaxTicksPerFrame,
	)
	state.TicksPerFrame = ClampTicksPerFrame(int(v + 0.5))
	rl.DrawText(fmt.Sprintf("%d", state.TicksPerFrame), int32(x+inner-24), int32(y), r.Theme.FontSize, r.Theme.ValueColor)

	return state
}

// ClampTicksPerFrame keeps n within the slider range.
func ClampTicksPerFrame(n int) int {
	return max(MinTicksPerFrame, min(n, MaxTicksPerFrame))
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
