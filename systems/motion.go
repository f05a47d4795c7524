package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/petri/components"
)

// Advance moves a position one step along the heading. Speed is a per-tick
// step length fixed at construction, not scaled by elapsed time.
func Advance(pos *components.Position, heading, speed float32) {
	pos.X += cosf(heading) * speed
	pos.Y += sinf(heading) * speed
}

// ConfineToBounds clamps the position to stay within margin of the world
// rectangle. Each side is checked independently; on a hit the heading is
// redrawn from the half-plane pointing back into the interior, which
// scatters cells off walls instead of letting them stick. Returns true if
// any wall was hit.
func ConfineToBounds(pos *components.Position, rot *components.Rotation, width, height, margin float32, rng *rand.Rand) bool {
	hit := false
	if pos.X < margin {
		pos.X = margin
		rot.Heading = uniform(rng, -math.Pi/2, math.Pi/2)
		hit = true
	}
	if pos.X > width-margin {
		pos.X = width - margin
		rot.Heading = uniform(rng, math.Pi/2, 3*math.Pi/2)
		hit = true
	}
	if pos.Y < margin {
		pos.Y = margin
		rot.Heading = uniform(rng, 0, math.Pi)
		hit = true
	}
	if pos.Y > height-margin {
		pos.Y = height - margin
		rot.Heading = uniform(rng, -math.Pi, 0)
		hit = true
	}
	return hit
}

// uniform returns a random float32 in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
