// Roster plot tool - renders the final blob positions of a saved run to a PNG.
//
// Usage: go run ./cmd/rosterplot -roster out/roster.csv -out roster.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobs/config"
	"github.com/pthm-cable/blobs/renderer"
	"github.com/pthm-cable/blobs/telemetry"
)

func main() {
	rosterPath := flag.String("roster", "roster.csv", "Path to a roster.csv written by a run")
	configPath := flag.String("config", "", "Config the run used (empty = use defaults)")
	outPath := flag.String("out", "roster.png", "Output PNG path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	roster, err := telemetry.ReadRoster(*rosterPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read roster: %v\n", err)
		os.Exit(1)
	}

	width := int32(cfg.World.Width)
	height := int32(cfg.World.Height)

	// Initialize raylib with hidden window
	renderer.OpenHiddenWindow(width, height)
	defer rl.CloseWindow()

	// Create render texture
	target := rl.LoadRenderTexture(width, height)
	defer rl.UnloadRenderTexture(target)

	scene := renderer.Scene{Population: cfg.Population.Initial, Scale: 1}

	rl.BeginTextureMode(target)
	rl.ClearBackground(renderer.BackgroundColor)
	scene.DrawBlobs(roster)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	// Export to PNG
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if !success {
		fmt.Fprintf(os.Stderr, "Failed to export image: %s\n", *outPath)
		os.Exit(1)
	}

	alive := 0
	for _, b := range roster {
		if b.Alive {
			alive++
		}
	}
	fmt.Printf("Plotted %d live blobs of %d to %s\n", alive, len(roster), *outPath)
}
