package ui

import (
	"fmt"

	"github.com/pthm-cable/blobs/components"
)

// InspectorPanel describes the panel for one selected blob. Its data is a
// components.BlobState; the energy bar spans [0, maxEnergy].
func InspectorPanel(maxEnergy float64) PanelDescriptor {
	num := func(f func(b components.BlobState) float64) func(any) float32 {
		return func(data any) float32 {
			b, ok := data.(components.BlobState)
			if !ok {
				return 0
			}
			return float32(f(b))
		}
	}
	text := func(f func(b components.BlobState) string) func(any) string {
		return func(data any) string {
			b, ok := data.(components.BlobState)
			if !ok {
				return ""
			}
			return f(b)
		}
	}
	dead := func(data any) bool {
		b, ok := data.(components.BlobState)
		return ok && !b.Alive
	}

	return PanelDescriptor{
		ID:    "inspector",
		Title: "Blob",
		Width: 240,
		Sections: []SectionDescriptor{
			{
				ID: "identity",
				Fields: []FieldDescriptor{
					{ID: "index", Label: "Index", Widget: WidgetText, TextGetter: text(func(b components.BlobState) string { return fmt.Sprintf("#%d", b.Index) })},
					{ID: "parent", Label: "Parent", Widget: WidgetText, TextGetter: text(parentText)},
					{ID: "id", Label: "ID", Widget: WidgetText, TextGetter: text(func(b components.BlobState) string { return shortID(b.ID) })},
					{ID: "born", Label: "Born", Widget: WidgetText, Format: "day %.0f", Getter: num(func(b components.BlobState) float64 { return float64(b.Born) })},
				},
			},
			{
				ID:    "genes",
				Title: "Genes",
				Fields: []FieldDescriptor{
					{ID: "speed", Label: "Speed", Widget: WidgetText, Format: "%.2f", Getter: num(func(b components.BlobState) float64 { return b.Speed })},
					{ID: "sight", Label: "Sight", Widget: WidgetText, Format: "%.1f", Getter: num(func(b components.BlobState) float64 { return b.SightDistance })},
				},
			},
			{
				ID:    "life",
				Title: "Life",
				Fields: []FieldDescriptor{
					{ID: "days_alive", Label: "Days alive", Widget: WidgetText, Getter: num(func(b components.BlobState) float64 { return float64(b.DaysAlive) })},
					{ID: "energy", Label: "Energy", Widget: WidgetBar, Range: FieldRange{Max: float32(maxEnergy)}, Getter: num(func(b components.BlobState) float64 { return b.Energy })},
					{ID: "eaten", Label: "Eaten today", Widget: WidgetText, Getter: num(func(b components.BlobState) float64 { return float64(b.NumEaten) })},
					{ID: "death", Label: "Death", Widget: WidgetText, Visible: dead, TextGetter: text(func(b components.BlobState) string {
						return fmt.Sprintf("%s (day %d)", b.Death, b.DiedOnDay)
					})},
				},
			},
		},
	}
}

func parentText(b components.BlobState) string {
	if b.Parent < 0 {
		return "founder"
	}
	return fmt.Sprintf("#%d", b.Parent)
}

// shortID trims a UUID to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
