package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobs/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title         string
	Day           int
	LastDay       int
	Tick          int
	DayLength     int
	Alive         int
	FoodLeft      int
	FoodTotal     int
	TicksPerFrame int
	FPS           int32
	Paused        bool
	Finished      bool
	Extinct       bool
}

// Status returns the one-word run state shown under the counters.
func (d HUDData) Status() string {
	switch {
	case d.Extinct:
		return "EXTINCT"
	case d.Finished:
		return "FINISHED"
	case d.Paused:
		return "PAUSED"
	default:
		return "Running"
	}
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Day: %d/%d | Tick: %d/%d", data.Day, data.LastDay, data.Tick, data.DayLength),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Alive: %d | Food: %d/%d | Speed: %dx | FPS: %d",
			data.Alive, data.FoodLeft, data.FoodTotal, data.TicksPerFrame, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	rl.DrawText(data.Status(), 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// DayStatsPanel describes the panel showing the last finished day.
// Its data is a telemetry.DayStats.
func DayStatsPanel() PanelDescriptor {
	stat := func(f func(s telemetry.DayStats) float64) func(any) float32 {
		return func(data any) float32 {
			s, ok := data.(telemetry.DayStats)
			if !ok {
				return 0
			}
			return float32(f(s))
		}
	}
	return PanelDescriptor{
		ID:    "day_stats",
		Title: "Last Day",
		Width: 220,
		Sections: []SectionDescriptor{
			{
				ID:    "population",
				Title: "Population",
				Fields: []FieldDescriptor{
					{ID: "alive", Label: "Alive", Widget: WidgetText, Getter: stat(func(s telemetry.DayStats) float64 { return float64(s.Alive) })},
					{ID: "births", Label: "Births", Widget: WidgetText, Getter: stat(func(s telemetry.DayStats) float64 { return float64(s.Births) })},
					{ID: "stranded", Label: "Stranded", Widget: WidgetText, Getter: stat(func(s telemetry.DayStats) float64 { return float64(s.DeathsStranded) })},
					{ID: "starved", Label: "Starved", Widget: WidgetText, Getter: stat(func(s telemetry.DayStats) float64 { return float64(s.DeathsStarved) })},
				},
			},
			{
				ID:    "food",
				Title: "Food",
				Fields: []FieldDescriptor{
					{ID: "eaten", Label: "Eaten", Widget: WidgetText, Getter: stat(func(s telemetry.DayStats) float64 { return float64(s.FoodEaten) })},
					{ID: "contested", Label: "Contested", Widget: WidgetText, Getter: stat(func(s telemetry.DayStats) float64 { return float64(s.FoodContested) })},
				},
			},
			{
				ID:    "traits",
				Title: "Traits",
				Fields: []FieldDescriptor{
					{ID: "speed_mean", Label: "Speed", Widget: WidgetText, Format: "%.2f", Getter: stat(func(s telemetry.DayStats) float64 { return s.SpeedMean })},
					{ID: "speed_std", Label: "Speed sd", Widget: WidgetText, Format: "%.2f", Getter: stat(func(s telemetry.DayStats) float64 { return s.SpeedStd })},
					{ID: "sight_mean", Label: "Sight", Widget: WidgetText, Format: "%.1f", Getter: stat(func(s telemetry.DayStats) float64 { return s.SightMean })},
					{ID: "sight_std", Label: "Sight sd", Widget: WidgetText, Format: "%.1f", Getter: stat(func(s telemetry.DayStats) float64 { return s.SightStd })},
				},
			},
		},
	}
}
