package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Control panel geometry, anchored to the top-right corner.
const (
	panelWidth  = 180
	panelHeight = 140
	panelPad    = 10
)

// panelBounds returns the panel rectangle in screen coordinates.
func (g *Game) panelBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(g.cfg.Screen.Width) - panelWidth - panelPad,
		Y:      panelPad,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

// panelContains reports whether a screen point lies on the control panel,
// so clicks there don't also drop food into the world.
func (g *Game) panelContains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, g.panelBounds())
}

// drawControlPanel renders the raygui controls mirroring the key bindings.
func (g *Game) drawControlPanel() {
	bounds := g.panelBounds()
	rl.DrawRectangleRec(bounds, rl.Color{R: 0, G: 0, B: 0, A: 150})
	rl.DrawRectangleLinesEx(bounds, 1, rl.Color{R: 90, G: 100, B: 120, A: 255})

	x := bounds.X + 10
	y := bounds.Y + 10
	w := bounds.Width - 20

	pauseText := "Pause"
	if g.world.Paused() {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, pauseText) {
		g.world.TogglePause()
	}
	y += 32

	speed := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w, Height: 18},
		"", fmt.Sprintf("x%.2f", g.world.SpeedMultiplier()),
		g.world.SpeedMultiplier(), speedMin, speedMax,
	)
	g.world.SetSpeedMultiplier(speed)
	y += 26

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, "Spawn Food") {
		g.world.SpawnFoodBatch(g.cfg.Food.SpawnBatch)
	}
	y += 32

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 24}, "Reset") {
		g.world.Reset()
	}
}
