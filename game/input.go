package game

import rl "github.com/gen2brain/raylib-go/raylib"

// Speed multiplier bounds and step for the UP/DOWN keys.
const (
	speedStep = 0.25
	speedMin  = 0.25
	speedMax  = 4.0
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.world.TogglePause()
	}

	if rl.IsKeyPressed(rl.KeyUp) {
		g.adjustSpeed(speedStep)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		g.adjustSpeed(-speedStep)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.world.Reset()
	}

	// F drops a batch of food at random positions
	if rl.IsKeyPressed(rl.KeyF) {
		g.world.SpawnFoodBatch(g.cfg.Food.SpawnBatch)
	}

	// Left click drops a single food item under the cursor, unless the
	// click landed on the control panel.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		mouse := rl.GetMousePosition()
		if !g.panelContains(mouse) {
			g.world.SpawnFood(mouse.X, mouse.Y)
		}
	}
}

// adjustSpeed nudges the time-scale multiplier, clamped to its bounds.
func (g *Game) adjustSpeed(delta float32) {
	s := g.world.SpeedMultiplier() + delta
	if s < speedMin {
		s = speedMin
	}
	if s > speedMax {
		s = speedMax
	}
	g.world.SetSpeedMultiplier(s)
}
