package game

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/renderer"
)

// Draw renders one frame from a fresh world snapshot.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw()

	snap := g.world.Snapshot()

	for _, f := range snap.Food {
		renderer.DrawFood(f, g.cfg.Derived.FoodRadius32)
	}

	// Sort by displayed radius ascending so large cells draw on top.
	g.sorted = append(g.sorted[:0], snap.Cells...)
	sort.Slice(g.sorted, func(i, j int) bool {
		return g.sorted[i].Radius < g.sorted[j].Radius
	})
	for i := range g.sorted {
		renderer.DrawTrail(g.sorted[i])
	}
	for i := range g.sorted {
		renderer.DrawCell(g.sorted[i])
	}

	g.drawHUD(snap.Population, snap.Births, snap.FoodCount, snap.SpeedMultiplier, snap.Paused)
	g.drawControlPanel()

	rl.EndDrawing()
}

// drawHUD renders the stats and control legend.
func (g *Game) drawHUD(population, births, foodCount int, speed float32, paused bool) {
	rl.DrawText(
		fmt.Sprintf("Population: %d   Births: %d   Food: %d", population, births, foodCount),
		10, 8, 18, rl.Color{R: 230, G: 230, B: 230, A: 255},
	)

	pauseText := "OFF"
	if paused {
		pauseText = "ON"
	}
	rl.DrawText(
		fmt.Sprintf("Speed x%.2f   Pause: %s", speed, pauseText),
		10, 28, 18, rl.Color{R: 200, G: 200, B: 200, A: 255},
	)

	rl.DrawText(
		"SPACE: Pause | UP/DOWN: Speed | Click/F: Add Food | R: Reset",
		10, 50, 18, rl.Color{R: 180, G: 180, B: 180, A: 255},
	)

	rl.DrawText(
		"Cells breathe, eat, and multiply - watch the colony thrive!",
		10, int32(g.cfg.Screen.Height)-26, 18, rl.Color{R: 160, G: 160, B: 160, A: 255},
	)
}
