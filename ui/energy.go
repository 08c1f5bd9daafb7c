package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const energyPlotHeight = 60

// DrawEnergyHistory draws a blob's per-tick energy for the day as a line
// plot in its own panel and returns the panel's bottom edge.
func (r *Renderer) DrawEnergyHistory(x, y, width int32, energy []float64, maxEnergy float64) int32 {
	pad := r.Theme.Padding
	height := energyPlotHeight + 2*pad + r.Theme.LineHeight
	r.DrawPanel(x, y, width, height)
	rl.DrawText("Energy today", x+pad, y+pad, r.Theme.FontSize, r.Theme.LabelColor)

	plot := rl.Rectangle{
		X:      float32(x + pad),
		Y:      float32(y + pad + r.Theme.LineHeight),
		Width:  float32(width - 2*pad),
		Height: energyPlotHeight,
	}
	rl.DrawRectangleRec(plot, r.Theme.BarBg)

	points := EnergyPlot(energy, maxEnergy, plot)
	for i := 1; i < len(points); i++ {
		rl.DrawLineV(points[i-1], points[i], r.Theme.BarFill)
	}
	return y + height
}

// EnergyPlot maps energy samples onto bounds, one point per tick, oldest on
// the left. The vertical scale is maxEnergy or the largest sample, whichever
// is greater.
func EnergyPlot(energy []float64, maxEnergy float64, bounds rl.Rectangle) []rl.Vector2 {
	if len(energy) == 0 {
		return nil
	}
	top := maxEnergy
	for _, e := range energy {
		top = max(top, e)
	}

	dx := float32(0)
	if len(energy) > 1 {
		dx = bounds.Width / float32(len(energy)-1)
	}
	points := make([]rl.Vector2, len(energy))
	for i, e := range energy {
		frac := float32(0)
		if top > 0 {
			frac = float32(max(e, 0) / top)
		}
		points[i] = rl.Vector2{
			X: bounds.X + float32(i)*dx,
			Y: bounds.Y + bounds.Height*(1-frac),
		}
	}
	return points
}
