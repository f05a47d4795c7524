package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/sim"
)

var (
	foodColor = rl.Color{R: 255, G: 200, B: 80, A: 255}
	eyeColor  = rl.Color{R: 20, G: 20, B: 20, A: 255}
	barBack   = rl.Color{R: 60, G: 60, B: 60, A: 255}
	barFill   = rl.Color{R: 80, G: 255, B: 120, A: 255}
)

// DrawFood renders one food item.
func DrawFood(f sim.FoodState, radius float32) {
	rl.DrawCircleV(rl.Vector2{X: f.X, Y: f.Y}, radius, foodColor)
}

// DrawCell renders one cell: halo, glowing body, eye and energy bar. The
// radius is the breathing display radius from the snapshot.
func DrawCell(c sim.CellState) {
	base := rl.Color{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: 255}

	// Outer halo
	halo := base
	halo.A = 60
	rl.DrawCircleGradient(int32(c.X), int32(c.Y), c.Radius*1.5, halo, rl.Blank)

	// Body: bright core fading to a dim rim
	core := rl.Color{
		R: addChannel(c.Color.R, 40),
		G: addChannel(c.Color.G, 40),
		B: addChannel(c.Color.B, 40),
		A: 255,
	}
	rim := base
	rim.A = 90
	rl.DrawCircleGradient(int32(c.X), int32(c.Y), c.Radius, core, rim)

	// Eye on the heading side
	ex := c.X + cosf(c.Heading)*c.Radius*0.4
	ey := c.Y + sinf(c.Heading)*c.Radius*0.4
	eyeRadius := c.Radius / 4
	if eyeRadius < 2 {
		eyeRadius = 2
	}
	rl.DrawCircleV(rl.Vector2{X: ex, Y: ey}, eyeRadius, eyeColor)

	// Energy bar below the cell
	barW := c.Radius * 1.8
	const barH = 5
	bar := rl.Rectangle{X: c.X - barW/2, Y: c.Y + c.Radius + 8, Width: barW, Height: barH}
	rl.DrawRectangleRounded(bar, 0.6, 4, barBack)
	if c.EnergyFrac > 0 {
		fill := bar
		fill.Width = barW * c.EnergyFrac
		rl.DrawRectangleRounded(fill, 0.6, 4, barFill)
	}
}

// DrawTrail renders the position history as dots fading toward the oldest.
func DrawTrail(c sim.CellState) {
	n := len(c.Trail)
	for i, p := range c.Trail {
		alpha := uint8(20 + 60*i/max(n, 1))
		col := rl.Color{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: alpha}
		rl.DrawCircleV(rl.Vector2{X: p.X, Y: p.Y}, 2, col)
	}
}

func addChannel(c uint8, d int) uint8 {
	v := int(c) + d
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func cosf(a float32) float32 { return float32(math.Cos(float64(a))) }
func sinf(a float32) float32 { return float32(math.Sin(float64(a))) }
