// Package renderer draws the world: background, food, cells and trails.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/config"
)

// Background renders the vertical gradient backdrop.
type Background struct {
	width, height int32
	top, bottom   rl.Color
}

// NewBackground creates the backdrop renderer from the screen config.
func NewBackground(cfg *config.ScreenConfig) *Background {
	return &Background{
		width:  int32(cfg.Width),
		height: int32(cfg.Height),
		top:    rl.Color{R: cfg.TopColor.R, G: cfg.TopColor.G, B: cfg.TopColor.B, A: 255},
		bottom: rl.Color{R: cfg.BotColor.R, G: cfg.BotColor.G, B: cfg.BotColor.B, A: 255},
	}
}

// Draw fills the screen with the gradient.
func (b *Background) Draw() {
	rl.DrawRectangleGradientV(0, 0, b.width, b.height, b.top, b.bottom)
}
